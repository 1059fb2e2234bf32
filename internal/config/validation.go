package config

import (
	"strings"

	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
)

// normalize rewrites enum fields to their canonical form and rejects
// values that are not recognized.
func normalize(cfg *Config) error {
	level, err := logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level))
	if err != nil {
		return derrors.ConfigError("invalid logging.level").WithCause(err).Build()
	}
	format, err := logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format))
	if err != nil {
		return derrors.ConfigError("invalid logging.format").WithCause(err).Build()
	}
	cfg.Logging.Level = level
	cfg.Logging.Format = format
	cfg.Slides.Theme = strings.TrimSpace(cfg.Slides.Theme)
	return nil
}

// Validate checks the fields that cannot be defaulted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Track) == "" {
		return derrors.ConfigError("track path is required").Build()
	}
	if strings.TrimSpace(c.Output) == "" {
		return derrors.ConfigError("output directory is required").Build()
	}
	if strings.ContainsAny(c.Slides.URLBase, " \t\n?#") {
		return derrors.ConfigError("slides.url_base must be a plain path").
			WithContext("url_base", c.Slides.URLBase).
			Build()
	}
	return nil
}
