package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/strokedash/internal/assets/assetstest"
	"github.com/mtlprog/strokedash/internal/dashboard"
	"github.com/mtlprog/strokedash/internal/domain"
)

func writeAssets(t *testing.T, paths ...string) string {
	t.Helper()
	dir := t.TempDir()
	for path, file := range assetstest.FS(t, paths...) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, path), file.Data, 0o644))
	}
	return dir
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"strokedash", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestCheck_AllAssetsPresent(t *testing.T) {
	dir := writeAssets(t, dashboard.AssetConclusion, dashboard.AssetOutput, dashboard.AssetResult)

	out, err := runApp(t, "--assets-dir", dir, "check")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "ok  "))
	assert.Contains(t, out, dashboard.AssetResult)
}

func TestCheck_MissingAsset(t *testing.T) {
	dir := writeAssets(t, dashboard.AssetConclusion, dashboard.AssetResult)

	_, err := runApp(t, "--assets-dir", dir, "check")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	assert.Contains(t, err.Error(), dashboard.AssetOutput)
}

func TestExport_Stdout(t *testing.T) {
	dir := writeAssets(t, dashboard.AssetConclusion, dashboard.AssetOutput, dashboard.AssetResult)

	out, err := runApp(t, "--assets-dir", dir, "export")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Equal(t, 3, strings.Count(out, "data:image/png;base64,"))
}

func TestExport_File(t *testing.T) {
	dir := writeAssets(t, dashboard.AssetConclusion, dashboard.AssetOutput, dashboard.AssetResult)
	target := filepath.Join(t.TempDir(), "page.html")

	_, err := runApp(t, "--assets-dir", dir, "export", "--out", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Stroke Prediction App")
}

func TestExport_MissingAssetWritesNothing(t *testing.T) {
	dir := writeAssets(t, dashboard.AssetConclusion, dashboard.AssetOutput)
	target := filepath.Join(t.TempDir(), "page.html")

	_, err := runApp(t, "--assets-dir", dir, "export", "--out", target)
	require.Error(t, err)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

// appWithServeStub replaces the serve action at both app and command level
// and records the port it would bind.
func appWithServeStub(t *testing.T, port *string) *cli.App {
	t.Helper()
	app := newApp()
	app.Writer = &bytes.Buffer{}
	stub := func(c *cli.Context) error {
		*port = servePort(c)
		return nil
	}
	app.Action = stub
	for _, cmd := range app.Commands {
		if cmd.Name == "serve" {
			cmd.Action = stub
		}
	}
	return app
}

func TestServePort(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{"default action reads PORT", "9123", nil, "9123"},
		{"default action flag", "", []string{"--port", "9000"}, "9000"},
		{"default action fallback", "", nil, "8501"},
		{"serve reads PORT", "9124", []string{"serve"}, "9124"},
		{"serve flag", "", []string{"serve", "--port", "9001"}, "9001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.env)

			var port string
			app := appWithServeStub(t, &port)
			args := append([]string{"strokedash", "--log-level", "error"}, tt.args...)
			require.NoError(t, app.Run(args))
			assert.Equal(t, tt.want, port)
		})
	}
}

func TestRun_EnvFileReachesFlags(t *testing.T) {
	assetsDir := writeAssets(t, dashboard.AssetConclusion, dashboard.AssetOutput, dashboard.AssetResult)

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".env"), []byte("ASSETS_DIR="+assetsDir+"\n"), 0o644))
	t.Chdir(workDir)

	t.Setenv("ASSETS_DIR", "")
	require.NoError(t, os.Unsetenv("ASSETS_DIR"))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, run(app, []string{"strokedash", "--log-level", "error", "check"}))

	assert.Equal(t, 3, strings.Count(out.String(), "ok  "))
}
