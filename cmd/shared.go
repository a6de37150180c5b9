package cmd

import (
	"fmt"
	"os"

	"github.com/tzbucket/tzbucket/app"
	"github.com/tzbucket/tzbucket/config"
	"github.com/tzbucket/tzbucket/pkg/render"
)

// errFormat is the output format active when an error escapes to
// Execute. Commands set it once their own format is resolved; until
// then errors render as text.
var errFormat = "text"

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, app.InputError(fmt.Sprintf("load config: %v", err))
	}
	return cfg, nil
}

// resolveOutput picks the output format: the command flag wins, then
// the configured default, then the command's own fallback.
func resolveOutput(flagValue string, cfg *config.Config, fallback string) (string, error) {
	out := flagValue
	if out == "" {
		out = cfg.Defaults.OutputFormat
	}
	if out == "" {
		out = fallback
	}
	if out != "json" && out != "text" {
		return "", app.InputError(fmt.Sprintf("invalid output_format %q: expected json, text", out))
	}
	errFormat = out
	return out, nil
}

func renderError(appErr *app.Error) int {
	if errFormat == "json" {
		envelope := render.ErrorEnvelope{
			Error:    appErr.Message,
			ExitCode: appErr.Code,
			Status:   appErr.Status,
		}
		if err := render.WriteJSON(os.Stderr, envelope); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", appErr.Message)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", appErr.Message)
	}
	return appErr.Code
}
