package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override. Nested keys use a
	// double underscore: LESSONSLOT_LOG__LEVEL sets log.level.
	EnvPrefix = "LESSONSLOT_"
	// EnvConfigFile names the config file when no path is passed to Load.
	EnvConfigFile = EnvPrefix + "CONFIG"
)

type Config struct {
	DBPath string        `json:"db_path"`
	Log    LoggingConfig `json:"log"`
}

// Load reads the optional config file at path (or $LESSONSLOT_CONFIG when
// path is empty), applies LESSONSLOT_* environment overrides, then fills
// defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// envKey maps LESSONSLOT_LOG__LEVEL to log.level.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath()
	}
	c.Log.SetDefaults()
}

func (c Config) Validate() error {
	return c.Log.Validate()
}

// DefaultDBPath is ~/.lessonslot/lessonslot.db, or a path relative to the
// working directory when the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lessonslot", "lessonslot.db")
	}
	return filepath.Join(home, ".lessonslot", "lessonslot.db")
}
