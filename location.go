package userror

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// here resolves the caller's file base name and line, skip frames above
// this function.
func here(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Here returns the call site as "file.go:42", useful as a bare location
// tag.
func Here() string {
	return here(1)
}

// Annotate prepends the call site to a message: "file.go:42: message".
//
// This is useful for internal errors, where the file and line are what
// makes the message debuggable.
func Annotate(message string) string {
	return here(1) + ": " + message
}

// Annotatef formats a message and prepends the call site, like Annotate
// for fmt.Sprintf-style arguments.
func Annotatef(format string, v ...any) string {
	return here(1) + ": " + fmt.Sprintf(format, v...)
}

// Must returns v, or terminates the process fatally with a
// location-annotated rendering of err when it is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		std.Fatal(here(1) + ": " + err.Error())
	}
	return v
}

// Expect is Must with a caller-supplied message, printed between the
// location and the error: "file.go:42: message: err".
func Expect[T any](v T, err error, message string) T {
	if err != nil {
		std.Fatal(here(1) + ": " + message + ": " + err.Error())
	}
	return v
}

// Internalf prints a location-annotated internal error message via the
// default Printer.
func Internalf(format string, v ...any) error {
	return std.Internal(here(1) + ": " + fmt.Sprintf(format, v...))
}
