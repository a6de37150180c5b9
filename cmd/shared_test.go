package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzbucket/tzbucket/app"
	"github.com/tzbucket/tzbucket/config"
)

func TestResolveOutput(t *testing.T) {
	cfg := config.Default()

	out, err := resolveOutput("", cfg, "text")
	require.NoError(t, err)
	assert.Equal(t, "text", out)

	out, err = resolveOutput("json", cfg, "text")
	require.NoError(t, err)
	assert.Equal(t, "json", out)

	cfg.Defaults.OutputFormat = "text"
	out, err = resolveOutput("", cfg, "json")
	require.NoError(t, err)
	assert.Equal(t, "text", out)

	_, err = resolveOutput("xml", cfg, "json")
	require.Error(t, err)
	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ExitInput, appErr.Code)
}

func TestRenderErrorCodes(t *testing.T) {
	errFormat = "text"
	assert.Equal(t, 2, renderError(app.InputError("bad input")))
	assert.Equal(t, 3, renderError(app.RuntimeError("broken")))

	errFormat = "json"
	code := renderError(&app.Error{Message: "ambiguous time", Code: app.ExitInput, Status: "ambiguous"})
	assert.Equal(t, 2, code)
	errFormat = "text"
}

func TestLoadConfigDefault(t *testing.T) {
	cfgPath = ""
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Defaults.TZ)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfgPath = "does-not-exist.yaml"
	defer func() { cfgPath = "" }()
	_, err := loadConfig()
	require.Error(t, err)
	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ExitInput, appErr.Code)
}
