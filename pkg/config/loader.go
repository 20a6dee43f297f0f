package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// keyDelim separates koanf key paths. Link keys are file paths and
// routinely contain dots, so "." cannot be used.
const keyDelim = "::"

// EnvPrefix prefixes environment overrides of the group defaults
const EnvPrefix = "IDOT_"

// envKeys are the group settings that can be overridden from the environment
var envKeys = map[string]bool{
	"relative": true,
	"force":    true,
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"relative": true,
	}
}

// DetectPath returns the configuration file of workspace, or false if none
// of the candidate files is present.
func DetectPath(workspace string) (string, bool) {
	info, err := os.Stat(workspace)
	if err != nil || !info.IsDir() {
		return "", false
	}
	for _, name := range candidateFiles {
		path := filepath.Join(workspace, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// Load finds and loads the configuration of workspace
func Load(workspace string) (*GroupConfig, string, error) {
	path, ok := DetectPath(workspace)
	if !ok {
		return nil, "", errors.Newf(errors.ErrConfigMissing,
			"no configuration file (%s) found in %s", strings.Join(candidateFiles, ", "), workspace).
			WithDetail("workspace", workspace)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// LoadFile loads a configuration file, choosing the parser by extension
func LoadFile(path string) (*GroupConfig, error) {
	logger := logging.GetLogger("config")

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(keyDelim)

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), keyDelim), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. The file
	if err := k.Load(file.Provider(path), format.parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigMissing, "configuration file %s not found", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("format", string(format))
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, keyDelim, func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !envKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Unmarshal
	var cfg GroupConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "failed to decode %s", path)
	}

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("links", len(cfg.Links)).
		Msg("Configuration loaded")

	return &cfg, nil
}
