// Package userror prints categorized, user-facing diagnostic messages
// from command-line programs.
//
// Every message is one line on standard error, shaped as
//
//	program: severity: message
//
// where program is the invoking executable's base name (omitted when it
// can not be resolved) and severity is one of info, warning, error,
// fatal or internal. With color enabled the program name and severity
// label are wrapped in ANSI color escapes; the message itself never is.
//
// # Usage
//
// Pick a color mode once at startup, then call the severity functions:
//
//	userror.Init(userror.ColorAuto)
//	userror.Info("starting up")
//	userror.Warn("low memory")
//	if err := userror.Error("disk full"); err != nil {
//		// the write to stderr itself failed
//	}
//
// Fatal prints its message and terminates the process with a non-zero
// status. It never returns, and deferred functions do not run:
//
//	userror.Fatal("cannot read user input")
//
// Programs that want several independent configurations can construct
// printers directly with New instead of using the package-level
// functions.
//
// # Location annotation
//
// Internal errors are bugs, so their messages carry the call site:
//
//	userror.Internalf("queue drained twice")  // main.go:40: queue drained twice
//	f := userror.Must(os.Open(path))          // fatal with location on failure
//
//	n, err := strconv.Atoi(s)
//	port := userror.Expect(n, err, "parsing port")
//
// Here, Annotate and Annotatef expose the raw "file.go:line" strings for
// building messages by hand.
package userror
