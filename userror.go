package userror

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Severity categorizes a diagnostic message and selects its label and color.
type Severity int

const (
	// SeverityInfo marks non-erroneous information.
	SeverityInfo Severity = iota
	// SeverityWarning marks sub-optimal, but not strictly incorrect, behaviour.
	SeverityWarning
	// SeverityError marks recoverable failures that prevent the program from
	// working properly or in its entirety.
	SeverityError
	// SeverityFatal marks failures that can not be recovered from.
	SeverityFatal
	// SeverityInternal marks bugs or failed invariants in the program itself.
	SeverityInternal
)

// Label returns the lowercase label printed for the severity.
func (s Severity) Label() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	case SeverityInternal:
		return "internal"
	}
	return "unknown"
}

func (s Severity) String() string { return s.Label() }

// ParseSeverity maps a label back to its Severity.
func ParseSeverity(label string) (Severity, error) {
	switch label {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "fatal":
		return SeverityFatal, nil
	case "internal":
		return SeverityInternal, nil
	}
	return 0, errors.Errorf("unknown severity %q", label)
}

// ColorMode selects how a Printer renders severity labels and the program
// name. It is fixed when the Printer is constructed; there is no per-call
// toggle.
type ColorMode int

const (
	// ColorAuto enables color only when stderr is a terminal.
	ColorAuto ColorMode = iota
	// ColorEnabled always wraps labels in ANSI color escapes.
	ColorEnabled
	// ColorDisabled passes labels through unchanged.
	ColorDisabled
)

// Injection points for testing. Production code never touches these.
var (
	stderr     io.Writer = os.Stderr
	executable           = os.Executable
	exit                 = os.Exit
)

// Printer formats diagnostic lines and writes them to standard error.
// Each call is independent and stateless; no locking is added beyond
// whatever the underlying stream provides, so concurrent calls may
// interleave their bytes.
type Printer struct {
	out io.Writer

	// label colors, matching the original scheme: the program name is
	// blue, info magenta, warnings yellow, everything else red.
	program *color.Color
	info    *color.Color
	warn    *color.Color
	fail    *color.Color
}

// New builds a Printer for the given ColorMode. Construct it once at
// program start and share it; the mode can not be changed afterwards.
func New(mode ColorMode) *Printer {
	enabled := mode == ColorEnabled
	if mode == ColorAuto {
		fd := os.Stderr.Fd()
		enabled = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	p := &Printer{
		out:     stderr,
		program: color.New(color.FgBlue),
		info:    color.New(color.FgMagenta),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.program, p.info, p.warn, p.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// print builds and writes one diagnostic line. The executable name is
// looked up fresh on every call; when the lookup fails the program-name
// prefix is silently omitted rather than failing the whole print.
func (p *Printer) print(c *color.Color, label, message string) error {
	path, err := executable()
	if err != nil {
		_, werr := fmt.Fprintf(p.out, "%s: %s\n", c.Sprint(label), message)
		return werr
	}
	name := filepath.Base(path)
	_, werr := fmt.Fprintf(p.out, "%s:%s: %s\n", p.program.Sprint(name), c.Sprint(label), message)
	return werr
}

// Info prints some non-erroneous information.
func (p *Printer) Info(message string) error {
	return p.print(p.info, SeverityInfo.Label(), message)
}

// Warn prints a warning message. Warnings lead to sub-optimal, but not
// strictly incorrect, behaviour, such as falling back to a default
// stylesheet when a custom one fails to load.
func (p *Printer) Warn(message string) error {
	return p.print(p.warn, SeverityWarning.Label(), message)
}

// Error prints an error message. Errors are recoverable but prevent the
// program from working properly, such as printing results to screen when
// an output file can not be opened.
func (p *Printer) Error(message string) error {
	return p.print(p.fail, SeverityError.Label(), message)
}

// Internal prints an internal error message. Internal errors are bugs or
// failed invariants in the program; they are not necessarily fatal, and
// the caller decides whether to continue.
func (p *Printer) Internal(message string) error {
	return p.print(p.fail, SeverityInternal.Label(), message)
}

// Fatal prints a fatal error message and terminates the process with a
// non-zero status. It never returns, even when the message can not be
// written; deferred functions do not run.
func (p *Printer) Fatal(message string) {
	// A write failure can not be reported anywhere, so exit regardless.
	_ = p.print(p.fail, SeverityFatal.Label(), message)
	exit(1)
}

// Print dispatches to the entry point for the given severity. For
// SeverityFatal it behaves like Fatal and does not return.
func (p *Printer) Print(severity Severity, message string) error {
	switch severity {
	case SeverityInfo:
		return p.Info(message)
	case SeverityWarning:
		return p.Warn(message)
	case SeverityError:
		return p.Error(message)
	case SeverityFatal:
		p.Fatal(message)
		return nil
	case SeverityInternal:
		return p.Internal(message)
	}
	return errors.Errorf("unknown severity %d", severity)
}

// std is the package-level default Printer backing the top-level
// functions. It starts in ColorAuto; call Init to rebuild it.
var std = New(ColorAuto)

// Init rebuilds the default Printer with the given ColorMode. Call it
// once at program start, before any diagnostic is printed.
func Init(mode ColorMode) {
	std = New(mode)
}

// Info prints some non-erroneous information via the default Printer.
func Info(message string) error { return std.Info(message) }

// Warn prints a warning message via the default Printer.
func Warn(message string) error { return std.Warn(message) }

// Error prints an error message via the default Printer.
func Error(message string) error { return std.Error(message) }

// Internal prints an internal error message via the default Printer.
func Internal(message string) error { return std.Internal(message) }

// Fatal prints a fatal error message via the default Printer and
// terminates the process. It never returns.
func Fatal(message string) { std.Fatal(message) }

// Print dispatches to the default Printer's entry point for the given
// severity.
func Print(severity Severity, message string) error { return std.Print(severity, message) }
