package config

import (
	"sort"

	"github.com/arthur-debert/idot/pkg/errors"
)

// GroupConfig is a named collection of links with group-wide defaults
type GroupConfig struct {
	Links    map[string]LinkSpec `koanf:"links" json:"links,omitempty" toml:"links,omitempty" yaml:"links,omitempty"`
	Clean    *CleanConfig        `koanf:"clean" json:"clean,omitempty" toml:"clean,omitempty" yaml:"clean,omitempty"`
	Relative *bool               `koanf:"relative" json:"relative,omitempty" toml:"relative,omitempty" yaml:"relative,omitempty"`
	Force    *bool               `koanf:"force" json:"force,omitempty" toml:"force,omitempty" yaml:"force,omitempty"`
}

// LinkSpec describes one desired link. Its identity is the symlink path
// used as the key in GroupConfig.Links.
type LinkSpec struct {
	Target   string `koanf:"target" json:"target" toml:"target" yaml:"target"`
	Relative *bool  `koanf:"relative" json:"relative,omitempty" toml:"relative,omitempty" yaml:"relative,omitempty"`
	Force    *bool  `koanf:"force" json:"force,omitempty" toml:"force,omitempty" yaml:"force,omitempty"`
}

// CleanConfig is carried along with the group but not acted on
type CleanConfig struct {
	Targets map[string]CleanTarget `koanf:"targets" json:"targets,omitempty" toml:"targets,omitempty" yaml:"targets,omitempty"`
	Force   *bool                  `koanf:"force" json:"force,omitempty" toml:"force,omitempty" yaml:"force,omitempty"`
}

// CleanTarget is one entry of the clean section
type CleanTarget struct {
	Force *bool `koanf:"force" json:"force,omitempty" toml:"force,omitempty" yaml:"force,omitempty"`
}

// Bool returns a pointer to b, for building configurations in code
func Bool(b bool) *bool {
	return &b
}

// EffectiveRelative merges the link's relative flag with the group default.
// Unset at both levels means false.
func (g *GroupConfig) EffectiveRelative(spec LinkSpec) bool {
	return pick(spec.Relative, g.Relative)
}

// EffectiveForce merges the link's force flag with the group default.
// Unset at both levels means false.
func (g *GroupConfig) EffectiveForce(spec LinkSpec) bool {
	return pick(spec.Force, g.Force)
}

func pick(own, group *bool) bool {
	if own != nil {
		return *own
	}
	if group != nil {
		return *group
	}
	return false
}

// LinkNames returns the configured symlink paths in a stable order
func (g *GroupConfig) LinkNames() []string {
	names := make([]string, 0, len(g.Links))
	for name := range g.Links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every link has a path and a target
func (g *GroupConfig) Validate() error {
	for _, name := range g.LinkNames() {
		if name == "" {
			return errors.New(errors.ErrConfigInvalid, "link with empty symlink path")
		}
		if g.Links[name].Target == "" {
			return errors.Newf(errors.ErrConfigInvalid, "link %s has no target", name).
				WithDetail("link", name)
		}
	}
	return nil
}
