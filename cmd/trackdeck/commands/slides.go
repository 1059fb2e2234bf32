package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/trackdeck/internal/config"
	"git.home.luguber.info/inful/trackdeck/internal/logfields"
	"git.home.luguber.info/inful/trackdeck/internal/metrics"
	"git.home.luguber.info/inful/trackdeck/internal/slides"
	"git.home.luguber.info/inful/trackdeck/internal/track"
	"git.home.luguber.info/inful/trackdeck/internal/watch"
)

// SlidesCmd implements the 'slides' command. Flags override the
// configuration file; flag paths are relative to the working directory.
type SlidesCmd struct {
	Track       string `short:"t" help:"Track file"`
	Output      string `short:"o" help:"Output directory; decks are written to <output>/slides"`
	Theme       string `help:"Slidev theme"`
	URLBase     string `name:"url-base" help:"Path the built decks are served under"`
	PackageJSON string `name:"package-json" help:"package.json to merge generated scripts into"`
	Watch       bool   `short:"w" help:"Re-render whenever a track file changes"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after each render"`
}

func (s *SlidesCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	r := s.runner(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.logger = newLogger(os.Stderr, cfg, root.Verbose)
	slog.SetDefault(r.logger)

	if !s.Watch {
		_, err := r.render(context.Background())
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	r.logger.Info("Watching track for changes", logfields.Path(r.trackPath))
	return watch.New(r.render, watch.WithLogger(r.logger)).Run(ctx)
}

// runner applies flag overrides to cfg and returns the resolved render settings.
func (s *SlidesCmd) runner(cfg *config.Config) *renderRunner {
	r := &renderRunner{
		trackPath:   cfg.Resolve(cfg.Track),
		outDir:      cfg.Resolve(cfg.Output),
		packageJSON: cfg.Resolve(cfg.Slides.PackageJSON),
		metricsFile: cfg.Resolve(cfg.Metrics.Textfile),
		opts: slides.RenderOptions{
			Theme:   cfg.Slides.Theme,
			URLBase: cfg.Slides.URLBase,
		},
	}
	if s.Track != "" {
		cfg.Track, r.trackPath = s.Track, s.Track
	}
	if s.Output != "" {
		cfg.Output, r.outDir = s.Output, s.Output
	}
	if s.Theme != "" {
		cfg.Slides.Theme, r.opts.Theme = s.Theme, s.Theme
	}
	if s.URLBase != "" {
		cfg.Slides.URLBase, r.opts.URLBase = s.URLBase, s.URLBase
	}
	if s.PackageJSON != "" {
		cfg.Slides.PackageJSON, r.packageJSON = s.PackageJSON, s.PackageJSON
	}
	if s.MetricsFile != "" {
		cfg.Metrics.Textfile, r.metricsFile = s.MetricsFile, s.MetricsFile
	}
	r.opts.PackageJSON = r.packageJSON

	r.opts.Recorder = metrics.NoopRecorder{}
	if r.metricsFile != "" {
		r.registry = prom.NewRegistry()
		r.opts.Recorder = metrics.NewPrometheusRecorder(r.registry)
	}
	return r
}

type renderRunner struct {
	trackPath   string
	outDir      string
	packageJSON string
	metricsFile string
	opts        slides.RenderOptions
	registry    *prom.Registry
	logger      *slog.Logger
}

// render loads the track and renders it. It matches watch.RenderFunc and
// always reports the track file so a broken track is still watched.
func (r *renderRunner) render(_ context.Context) ([]string, error) {
	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(logfields.RunID(uuid.NewString()))

	tr, err := track.Load(r.trackPath)
	if err != nil {
		return []string{r.trackPath}, err
	}
	files := tr.Files()
	for _, w := range tr.Check() {
		logger.Warn("Track check", slog.String("warning", w.String()))
	}

	pkg, err := tr.Package()
	if err != nil {
		return files, err
	}

	opts := r.opts
	opts.Logger = logger
	err = pkg.Render(r.outDir, opts)

	if r.registry != nil {
		if werr := metrics.WriteTextfile(r.metricsFile, r.registry); werr != nil {
			logger.Warn("Failed to write metrics textfile", logfields.Path(r.metricsFile), logfields.Error(werr))
		}
	}
	return files, err
}
