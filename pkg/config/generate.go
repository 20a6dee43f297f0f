package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Starter returns the configuration written by `idot init`
func Starter() *GroupConfig {
	return &GroupConfig{
		Relative: Bool(true),
		Links: map[string]LinkSpec{
			"~/.vimrc": {Target: "vim/vimrc"},
			"~/.config/git/config": {
				Target:   "git/config",
				Relative: Bool(false),
			},
		},
	}
}

// Generate encodes cfg in the given format
func Generate(cfg *GroupConfig, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode json")
		}
		return append(data, '\n'), nil
	case FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return data, nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unsupported configuration format %q", format)
	}
}

// WriteStarter writes the starter configuration into workspace. It refuses
// to run when the workspace already has a configuration file.
func WriteStarter(workspace string, format Format) (string, error) {
	logger := logging.GetLogger("config.generate")

	if existing, ok := DetectPath(workspace); ok {
		return existing, errors.Newf(errors.ErrInvalidInput, "configuration already exists at %s", existing).
			WithDetail("path", existing)
	}

	data, err := Generate(Starter(), format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(workspace, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", workspace)
	}

	path := filepath.Join(workspace, format.FileName())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Str("format", string(format)).Msg("Written config file")
	return path, nil
}
