package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides
const EnvPrefix = "FIELDPTR_"

// Load reads, validates and returns the case at path. The format is chosen
// by extension: .toml, .yaml/.yml or .xml.
func Load(path string) (*Case, error) {
	return LoadWithOverlays(path)
}

// LoadWithOverlays loads the case at path, then merges each overlay on top
// in order. Overlays may use any supported format. Tables are merged and
// lists such as fields and bindings are appended.
func LoadWithOverlays(path string, overlays ...string) (*Case, error) {
	logger := logging.GetLogger("config")

	defaults := koanf.New(".")
	if err := defaults.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	merged := defaults.Raw()

	for _, p := range append([]string{path}, overlays...) {
		m, err := readCaseMap(p)
		if err != nil {
			return nil, err
		}
		mergeMaps(merged, m)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(merged, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load merged case")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env overrides")
	}

	c, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	c.Source = path

	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("case", c.Name).
		Str("path", path).
		Strs("overlays", overlays).
		Int("fields", len(c.Fields)).
		Int("bindings", len(c.Bindings)).
		Msg("Case loaded")
	return c, nil
}

// readCaseMap parses one case file into a nested map
func readCaseMap(path string) (map[string]interface{}, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read case %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = k.Load(file.Provider(path), toml.Parser())
	case ".yaml", ".yml":
		err = k.Load(file.Provider(path), yaml.Parser())
	case ".xml":
		return readXML(path)
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported case format %q", ext).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse case %s", path).
			WithDetail("path", path)
	}
	return k.Raw(), nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func unmarshal(k *koanf.Koanf) (*Case, error) {
	var c Case
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &c,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &c, conf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal case")
	}
	c.normalize()
	return &c, nil
}

func (c *Case) normalize() {
	for i := range c.Fields {
		if c.Fields[i].Location == "" {
			c.Fields[i].Location = "cells"
		}
		if c.Fields[i].Dim == 0 {
			c.Fields[i].Dim = 1
		}
	}
}
