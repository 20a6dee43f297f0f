// Package config loads the link configuration of a workspace.
//
// A workspace holds one configuration file, idot.json, idot.toml, idot.yaml
// or idot.yml, looked up in that order. The file is decoded into a
// GroupConfig: a map from symlink path to LinkSpec plus group-wide
// defaults for the relative and force policies.
//
// Loading is layered with koanf:
//
//  1. Built-in defaults (relative = true)
//  2. The configuration file, parsed by the parser matching its extension
//  3. Environment overrides IDOT_RELATIVE and IDOT_FORCE
//
// The result is decoded with mapstructure and validated. The package also
// generates starter configuration files in each supported format.
package config
