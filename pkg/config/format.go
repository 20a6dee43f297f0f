package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// Format is a configuration file format
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ConfigBaseName is the file name, without extension, of a workspace configuration
const ConfigBaseName = "idot"

// candidateFiles lists the configuration file names in lookup order
var candidateFiles = []string{
	ConfigBaseName + ".json",
	ConfigBaseName + ".toml",
	ConfigBaseName + ".yaml",
	ConfigBaseName + ".yml",
}

// Formats returns the supported formats
func Formats() []Format {
	return []Format{FormatJSON, FormatTOML, FormatYAML}
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat, "unsupported configuration format %q", s)
	}
}

// FormatForPath selects the format from a file extension
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// FileName returns the configuration file name for the format
func (f Format) FileName() string {
	return ConfigBaseName + "." + string(f)
}

func (f Format) parser() koanf.Parser {
	switch f {
	case FormatJSON:
		return json.Parser()
	case FormatTOML:
		return toml.Parser()
	default:
		return yaml.Parser()
	}
}
