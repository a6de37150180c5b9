// Package cmd implements the tzbucket command line interface.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tzbucket/tzbucket/app"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "tzbucket",
	Short:         "DST-safe time bucketing tool",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI and returns the process exit code. Errors are
// rendered on stderr in the output format of the failed command.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var appErr *app.Error
		if !errors.As(err, &appErr) {
			// Anything untyped at this point is a usage error from
			// flag parsing.
			appErr = app.InputError(err.Error())
		}
		return renderError(appErr)
	}
	return app.ExitSuccess
}
