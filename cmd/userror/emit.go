package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sean1708/userror"
)

// One subcommand per severity. Arguments are joined into a single
// message so quoting on the shell side is optional.

var infoCmd = &cobra.Command{
	Use:   "info <message>...",
	Short: "Print some non-erroneous information",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return userror.Info(strings.Join(args, " "))
	},
}

var warnCmd = &cobra.Command{
	Use:   "warn <message>...",
	Short: "Print a warning message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return userror.Warn(strings.Join(args, " "))
	},
}

var errorCmd = &cobra.Command{
	Use:   "error <message>...",
	Short: "Print an error message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return userror.Error(strings.Join(args, " "))
	},
}

var internalCmd = &cobra.Command{
	Use:   "internal <message>...",
	Short: "Print an internal error message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return userror.Internal(strings.Join(args, " "))
	},
}

var fatalCmd = &cobra.Command{
	Use:   "fatal <message>...",
	Short: "Print a fatal error message and exit non-zero",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userror.Fatal(strings.Join(args, " "))
	},
}
