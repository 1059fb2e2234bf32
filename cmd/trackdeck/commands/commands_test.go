package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/trackdeck/internal/config"
	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("trackdeck"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&Global{Out: &out}, &cli)
	return out.String(), err
}

// writeTrack creates a one-deck track under dir and returns its path.
func writeTrack(t *testing.T, dir string) string {
	t.Helper()
	files := map[string]string{
		"track.yaml": `name: CLI Course
modules:
  - name: Basics
    units:
      - name: Hello
        sections:
          - content: hello.md
            objectives: [Say hello]
            images: [logo.png]
`,
		"hello.md": "# Hello\n\n![logo](images/logo.png)\n\n![chart](images/chart.png)\n",
		"logo.png": "png",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return filepath.Join(dir, "track.yaml")
}

func TestInit_WritesConfigOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackdeck.yaml")

	out, err := runCLI(t, "-c", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized successfully")
	assert.FileExists(t, path)

	_, err = runCLI(t, "-c", path, "init")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))

	_, err = runCLI(t, "-c", path, "init", "--force")
	require.NoError(t, err)
}

func TestSlides_RendersWithFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	trackPath := writeTrack(t, dir)
	out := filepath.Join(dir, "site")
	metricsFile := filepath.Join(dir, "trackdeck.prom")

	_, err := runCLI(t, "slides", "--track", trackPath, "--output", out,
		"--theme", "seriph", "--url-base", "/academy/", "--metrics-file", metricsFile)
	require.NoError(t, err)

	deck, err := os.ReadFile(filepath.Join(out, "slides", "1_1_hello.md"))
	require.NoError(t, err)
	assert.Contains(t, string(deck), "theme: seriph")
	assert.FileExists(t, filepath.Join(out, "slides", "images", "logo.png"))

	manifest, err := os.ReadFile(filepath.Join(out, "slides", "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"name": "cli-course"`)
	assert.Contains(t, string(manifest), "--base /academy/slides/1_1/")

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `trackdeck_decks_total{result="written"} 1`)
	assert.Contains(t, string(prom), `trackdeck_render_outcomes_total{outcome="success"} 1`)
}

func TestSlides_UsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	writeTrack(t, dir)
	cfgPath := filepath.Join(dir, "course.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("track: track.yaml\noutput: build\nslides:\n  theme: apple-basic\n"), 0o600))

	_, err := runCLI(t, "-c", cfgPath, "slides")
	require.NoError(t, err)

	deck, err := os.ReadFile(filepath.Join(dir, "build", "slides", "1_1_hello.md"))
	require.NoError(t, err)
	assert.Contains(t, string(deck), "theme: apple-basic")
}

func TestSlides_MissingTrack(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := runCLI(t, "slides", "--track", "nope.yaml")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestSlides_MissingExplicitConfig(t *testing.T) {
	_, err := runCLI(t, "-c", filepath.Join(t.TempDir(), "custom.yaml"), "slides")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestCheck_PrintsWarnings(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	trackPath := writeTrack(t, dir)

	out, err := runCLI(t, "check", "--track", trackPath)
	require.NoError(t, err)
	assert.Contains(t, out, `warning: 1_1 `)
	assert.Contains(t, out, `image "images/chart.png" is not listed`)
	assert.NotContains(t, out, "logo.png")
	assert.Contains(t, out, "CLI Course: 1 deck(s), 3 file(s), 1 warning(s)")
}

func TestRenderRunner_ReportsTrackWhenLoadFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "track.yaml")
	r := (&SlidesCmd{Track: missing}).runner(config.Default())

	files, err := r.render(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{missing}, files)
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Logging.Format = config.LogFormatJSON

	newLogger(&buf, cfg, false).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger(&buf, cfg, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, cfg, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestRenderRunner_TagsLogsWithRunID(t *testing.T) {
	dir := t.TempDir()
	trackPath := writeTrack(t, dir)
	r := (&SlidesCmd{Track: trackPath, Output: filepath.Join(dir, "out")}).runner(config.Default())
	var logs bytes.Buffer
	r.logger = slog.New(slog.NewTextHandler(&logs, nil))

	files, err := r.render(context.Background())
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Contains(t, logs.String(), "run_id=")
	assert.Contains(t, logs.String(), "Track check")
}
