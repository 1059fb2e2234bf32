package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "trackdeck.yaml"

// Config represents the trackdeck configuration file.
type Config struct {
	Track   string        `yaml:"track"`
	Output  string        `yaml:"output"`
	Slides  SlidesConfig  `yaml:"slides"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// SlidesConfig holds the render settings handed to the slide renderer.
type SlidesConfig struct {
	Theme       string `yaml:"theme"`
	URLBase     string `yaml:"url_base"`
	PackageJSON string `yaml:"package_json"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig enables the Prometheus textfile export when Textfile is set.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration at path. Environment files are loaded first
// and ${VAR} references in the file are expanded before parsing.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, derrors.ConfigError("failed to load environment files").WithCause(err).Build()
	}

	// #nosec G304 -- the config path is chosen by the user.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, derrors.NewError(derrors.CategoryNotFound, "configuration file not found").
				WithContext("path", path).
				UserAction().
				Build()
		}
		return nil, derrors.ConfigError("failed to read config file").WithCause(err).Build()
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, derrors.ConfigError("failed to parse config file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	cfg.dir = filepath.Dir(path)

	applyDefaults(&cfg)
	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve returns p relative to the configuration file's directory.
// Absolute and empty paths are returned unchanged.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

func applyDefaults(cfg *Config) {
	if cfg.Track == "" {
		cfg.Track = "track.yaml"
	}
	if cfg.Output == "" {
		cfg.Output = "out"
	}
	if cfg.Slides.Theme == "" {
		cfg.Slides.Theme = "default"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}

// Init writes an example configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return derrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	example := Config{
		Track:  "./track.yaml",
		Output: "./out",
		Slides: SlidesConfig{
			Theme:   "default",
			URLBase: "${TRACKDECK_URL_BASE}",
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
	data, err := yaml.Marshal(&example)
	if err != nil {
		return derrors.InternalError("failed to marshal config").WithCause(err).Build()
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return derrors.FileSystemError("failed to write config file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
