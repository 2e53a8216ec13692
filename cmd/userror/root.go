package main

import (
	"github.com/spf13/cobra"

	"github.com/Sean1708/userror"
)

// colorFlag holds the value of the global --color flag.
var colorFlag string

// rootCmd is the base command for the demo CLI.
var rootCmd = &cobra.Command{
	Use:   "userror",
	Short: "Print user-facing diagnostic messages",

	// The color mode is fixed once, before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		userror.Init(colorMode(colorFlag))
	},

	SilenceErrors: true,
	SilenceUsage:  true,
}

func colorMode(s string) userror.ColorMode {
	switch s {
	case "always":
		return userror.ColorEnabled
	case "never":
		return userror.ColorDisabled
	}
	return userror.ColorAuto
}

// Execute registers flags and subcommands and runs the CLI. Command
// failures are reported through the library's own fatal path, so the
// process exits non-zero on error.
func Execute() {
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Colorize labels: auto, always or never")

	rootCmd.AddCommand(infoCmd, warnCmd, errorCmd, internalCmd, fatalCmd)
	rootCmd.AddCommand(replayCmd)

	if err := rootCmd.Execute(); err != nil {
		userror.Fatal(err.Error())
	}
}
