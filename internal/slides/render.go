package slides

import (
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/inful/mdfp"

	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
	"git.home.luguber.info/inful/trackdeck/internal/fsutil"
	"git.home.luguber.info/inful/trackdeck/internal/logfields"
	"git.home.luguber.info/inful/trackdeck/internal/manifest"
	"git.home.luguber.info/inful/trackdeck/internal/metrics"
	"git.home.luguber.info/inful/trackdeck/internal/tag"
)

//go:embed include/package.json
var packageJSONStub []byte

//go:embed include/default.md
var defaultTemplate string

const (
	slidesDirName   = "slides"
	imagesDirName   = "images"
	manifestName    = "package.json"
	renderFailedMsg = "unable to render slides"
	manifestMsg     = "invalid package manifest"
)

// ErrRenderFailed matches every error returned by Render. The cause chain
// carries the underlying I/O, JSON or manifest error.
var ErrRenderFailed = derrors.RenderError(renderFailedMsg).Build()

// RenderOptions configures Render.
type RenderOptions struct {
	// Theme is substituted for the theme placeholder.
	Theme string
	// PackageJSON is an optional manifest to start from instead of the built-in stub.
	PackageJSON string
	// URLBase is the path the built decks are served under. Surrounding slashes are ignored.
	URLBase string

	Logger   *slog.Logger
	Recorder metrics.Recorder
}

// Render writes the package's decks, images and manifest below outDir/slides.
//
// Every deck is rebuilt. Decks whose content, objectives and summary are all
// empty are skipped entirely. The first failure stops the render; files that
// were already written are left in place.
func (p *Package) Render(outDir string, opts RenderOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	start := time.Now()
	r := &renderer{
		pkg:       p,
		slidesDir: filepath.Join(outDir, slidesDirName),
		theme:     opts.Theme,
		urlBase:   strings.Trim(opts.URLBase, "/"),
		logger:    logger,
		recorder:  rec,
		scripts:   manifest.NewScripts(),
	}
	err := r.run(opts.PackageJSON)
	rec.ObserveRenderDuration(time.Since(start))

	if err != nil {
		rec.IncRenderOutcome(metrics.OutcomeFailed)
		return derrors.RenderError(renderFailedMsg).
			WithCause(err).
			WithContext("output", outDir).
			Build()
	}
	rec.IncRenderOutcome(metrics.OutcomeSuccess)
	logger.Info("Rendered slides",
		logfields.Track(p.Name),
		logfields.Path(r.slidesDir),
		logfields.Scripts(r.scripts.Len()),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

type renderer struct {
	pkg       *Package
	slidesDir string
	theme     string
	urlBase   string
	logger    *slog.Logger
	recorder  metrics.Recorder
	scripts   *manifest.Scripts
}

func (r *renderer) imagesDir() string {
	return filepath.Join(r.slidesDir, imagesDirName)
}

func (r *renderer) run(packageJSON string) error {
	doc, err := loadManifest(packageJSON)
	if err != nil {
		return err
	}
	doc.SetString("name", tag.Of(r.pkg.Name))

	if err := fsutil.EnsureDir(r.slidesDir); err != nil {
		return err
	}
	if err := fsutil.EnsureDir(r.imagesDir()); err != nil {
		return err
	}

	for i := range r.pkg.Decks {
		if err := r.renderDeck(&r.pkg.Decks[i]); err != nil {
			return err
		}
	}

	r.scripts.Set(sentinelScript, "")
	if err := doc.MergeScripts(r.scripts); err != nil {
		return manifestError(err, packageJSON)
	}
	data, err := doc.MarshalIndent()
	if err != nil {
		return err
	}
	return fsutil.WriteFile(filepath.Join(r.slidesDir, manifestName), data)
}

func (r *renderer) renderDeck(deck *Deck) error {
	prefix := deck.Prefix()
	slug := tag.Prefixed(deck.Name, prefix)
	file := slug + ".md"
	log := r.logger.With(logfields.Deck(slug), logfields.Module(deck.ModuleName))

	text, err := aggregate(deck.Sections, fsutil.ReadString)
	if err != nil {
		return fmt.Errorf("deck %s: %w", slug, err)
	}
	if text.empty() {
		log.Debug("Skipping empty deck", logfields.Sections(len(deck.Sections)))
		r.recorder.IncDeck(metrics.DeckSkipped)
		return nil
	}

	registerDeckScripts(r.scripts, deck, slug, file, r.urlBase)

	images := 0
	for i := range deck.Sections {
		if err := fsutil.CopyInto(r.imagesDir(), deck.Sections[i].Images...); err != nil {
			return fmt.Errorf("deck %s: %w", slug, err)
		}
		images += len(deck.Sections[i].Images)
	}
	r.recorder.AddImagesCopied(images)

	template := defaultTemplate
	if deck.Template != "" {
		if template, err = fsutil.ReadString(deck.Template); err != nil {
			return fmt.Errorf("deck %s template: %w", slug, err)
		}
	}

	rendered := substitute(template, deck, text, r.theme)
	output := filepath.Join(r.slidesDir, file)
	if err := fsutil.WriteFile(output, []byte(rendered)); err != nil {
		return fmt.Errorf("deck %s: %w", slug, err)
	}

	fingerprint := mdfp.CalculateFingerprintFromParts("", rendered)
	r.recorder.IncDeck(metrics.DeckWritten)
	r.recorder.SetDeckFingerprint(slug, fingerprint)
	log.Debug("Rendered deck",
		logfields.Path(output),
		logfields.Sections(len(deck.Sections)),
		logfields.Images(images),
		logfields.Fingerprint(fingerprint))
	return nil
}

// loadManifest parses the manifest at path, or the built-in stub when path is empty.
func loadManifest(path string) (*manifest.Document, error) {
	if path == "" {
		return manifest.Parse(packageJSONStub)
	}
	data, err := fsutil.ReadString(path)
	if err != nil {
		return nil, err
	}
	doc, err := manifest.Parse([]byte(data))
	if err != nil {
		return nil, manifestError(err, path)
	}
	return doc, nil
}

// manifestError classifies a parse or merge failure of the manifest at path.
// An empty path means the built-in stub.
func manifestError(err error, path string) error {
	b := derrors.ManifestError(manifestMsg).WithCause(err)
	if path != "" {
		b = b.WithContext("path", path)
	}
	return b.Build()
}
