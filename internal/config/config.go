package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Environment variables read by NewAppConfig
const (
	EnvConfigFile     = "MUSICARD_CONFIG"
	EnvFontDirs       = "MUSICARD_FONT_DIRS"
	EnvOutputDir      = "MUSICARD_OUTPUT_DIR"
	EnvBackgroundMode = "MUSICARD_BACKGROUND_MODE"
	EnvFetchTimeout   = "MUSICARD_FETCH_TIMEOUT"
	EnvOnUpdate       = "MUSICARD_ON_UPDATE"
)

// Settings is the on-disk and in-memory shape of the configuration
type Settings struct {
	FontDirs       []string      `yaml:"fontDirs" default:"[\"/usr/share/musicard/fonts\",\"./fonts\"]"`
	OutputDir      string        `yaml:"outputDir" default:"/tmp/musicard"`
	BackgroundMode string        `yaml:"backgroundMode" default:"flat"`
	FetchTimeout   time.Duration `yaml:"fetchTimeout" default:"10s"`
	OnUpdate       string        `yaml:"onUpdate"`
}

// AppConfig holds application configuration
type AppConfig struct {
	logger   *zap.Logger
	settings Settings
}

// NewAppConfig builds the configuration from defaults, an optional YAML file
// named by MUSICARD_CONFIG, and environment overrides, in that order.
func NewAppConfig(logger *zap.Logger) (*AppConfig, error) {
	s, err := Load(os.Getenv(EnvConfigFile), os.LookupEnv)
	if err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.Strings("fontDirs", s.FontDirs),
		zap.String("outputDir", s.OutputDir),
		zap.String("backgroundMode", s.BackgroundMode),
		zap.Duration("fetchTimeout", s.FetchTimeout),
		zap.Bool("onUpdate", s.OnUpdate != ""))

	return &AppConfig{logger: logger, settings: s}, nil
}

// Load resolves Settings. path may be empty; lookup reads the environment.
func Load(path string, lookup func(string) (string, bool)) (Settings, error) {
	var s Settings
	if err := defaults.Set(&s); err != nil {
		return s, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(expandPath(path))
		if err != nil {
			return s, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v, ok := lookup(EnvFontDirs); ok && v != "" {
		s.FontDirs = filepath.SplitList(v)
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		s.OutputDir = v
	}
	if v, ok := lookup(EnvBackgroundMode); ok && v != "" {
		s.BackgroundMode = v
	}
	if v, ok := lookup(EnvFetchTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return s, fmt.Errorf("invalid %s: %w", EnvFetchTimeout, err)
		}
		s.FetchTimeout = d
	}

	if v, ok := lookup(EnvOnUpdate); ok {
		s.OnUpdate = v
	}

	s.BackgroundMode = strings.ToLower(strings.TrimSpace(s.BackgroundMode))
	if s.BackgroundMode != "flat" && s.BackgroundMode != "blur" {
		return s, fmt.Errorf("unknown background mode %q (want flat or blur)", s.BackgroundMode)
	}
	if s.FetchTimeout <= 0 {
		return s, fmt.Errorf("fetch timeout must be positive, got %s", s.FetchTimeout)
	}

	s.OutputDir = expandPath(s.OutputDir)
	for i, dir := range s.FontDirs {
		s.FontDirs[i] = expandPath(dir)
	}
	return s, nil
}

// expandPath expands environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetFontDirs returns the font search roots in priority order
func (c *AppConfig) GetFontDirs() []string {
	return append([]string(nil), c.settings.FontDirs...)
}

// GetOutputDir returns the directory for rendered cards
func (c *AppConfig) GetOutputDir() string {
	return c.settings.OutputDir
}

// GetBackgroundMode returns "flat" or "blur"
func (c *AppConfig) GetBackgroundMode() string {
	return c.settings.BackgroundMode
}

func (c *AppConfig) GetFetchTimeout() time.Duration {
	return c.settings.FetchTimeout
}

// GetOnUpdate returns the command run after each card update
func (c *AppConfig) GetOnUpdate() string {
	return c.settings.OnUpdate
}
