package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sean1708/userror"
)

// scriptPath is the path of the YAML script passed via --file / -f.
var scriptPath string

// replayEntry is one diagnostic in a replay script.
type replayEntry struct {
	Severity string `yaml:"severity"`
	Message  string `yaml:"message"`
}

// replayCmd prints every diagnostic listed in a YAML script, in order.
// A script looks like:
//
//	messages:
//	  - severity: warning
//	    message: low memory
//	  - severity: error
//	    message: disk full
//
// Replay stops at the first unknown severity or failed write. A fatal
// entry terminates the process like a direct Fatal call would.
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Print every diagnostic listed in a YAML script",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadScript(scriptPath)
		if err != nil {
			return err
		}
		for _, e := range entries {
			severity, err := userror.ParseSeverity(e.Severity)
			if err != nil {
				return err
			}
			if err := userror.Print(severity, e.Message); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVarP(&scriptPath, "file", "f", "", "Path to the YAML script to replay")
	_ = replayCmd.MarkFlagRequired("file")
}

// loadScript reads and parses a replay script.
func loadScript(path string) ([]replayEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading script %s", path)
	}
	var wrapper struct {
		Messages []replayEntry `yaml:"messages"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, errors.Wrapf(err, "parsing script %s", path)
	}
	return wrapper.Messages, nil
}
