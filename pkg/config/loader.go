package config

import (
	"path/filepath"

	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/logging"
)

// rawBytesProvider implements koanf's provider interface for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load reads and validates the config file at path. The format follows the
// extension: .toml loads as TOML, everything else as YAML (doot.yaml being
// the default name).
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("mode", string(cfg.Mode)).
		Int("groups", len(cfg.Groups)).
		Int("plans", len(cfg.Plans)).
		Msg("Config loaded")

	return cfg, nil
}

// Parse loads a config from raw YAML bytes. Used by tests and anywhere a
// config does not come from a file.
func Parse(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, kyaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config")
	}
	return decode(k)
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	if filepath.Ext(path) == ".toml" {
		return ktoml.Parser()
	}
	return kyaml.Parser()
}
