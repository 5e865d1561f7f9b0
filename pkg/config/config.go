package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/errors"
)

// Config is the effective configuration of a dotfiles checkout
type Config struct {
	Link  Link  `koanf:"link" toml:"link" yaml:"link"`
	Hook  Hook  `koanf:"hook" toml:"hook" yaml:"hook"`
	Tools Tools `koanf:"tools" toml:"tools" yaml:"tools"`
}

// Link holds the symlink reconciliation layout
type Link struct {
	// Source is the directory inside the checkout mirrored into $HOME
	Source string `koanf:"source" toml:"source" yaml:"source"`
	// Nested is the entry of Source linked one level down into $HOME/<Nested>
	Nested string `koanf:"nested" toml:"nested" yaml:"nested"`
	// Exclude lists extra entry names skipped by the $HOME pass
	Exclude []string `koanf:"exclude" toml:"exclude" yaml:"exclude"`
}

// Hook holds the startup-file hook settings
type Hook struct {
	AtomicWrite bool `koanf:"atomic_write" toml:"atomic_write" yaml:"atomic_write"`
}

// Tools holds the tool registry settings
type Tools struct {
	KeepGoing bool     `koanf:"keep_going" toml:"keep_going" yaml:"keep_going"`
	Skip      []string `koanf:"skip" toml:"skip" yaml:"skip"`
}

// HomeExcludes returns the names the $HOME pass must skip: the nested
// subtree, linked by its own pass, plus the configured excludes.
func (c *Config) HomeExcludes() []string {
	var names []string
	if c.Link.Nested != "" {
		names = append(names, c.Link.Nested)
	}
	return append(names, c.Link.Exclude...)
}

// SkipsTool reports whether a tool is listed in tools.skip
func (c *Config) SkipsTool(name string) bool {
	for _, skipped := range c.Tools.Skip {
		if skipped == name {
			return true
		}
	}
	return false
}

// Validate checks that the link layout names entries inside the checkout
func (c *Config) Validate() error {
	if c.Link.Source == "" {
		return errors.New(errors.ErrInvalidInput, "link.source must not be empty")
	}
	if err := validateRelative("link.source", c.Link.Source, false); err != nil {
		return err
	}
	if c.Link.Nested != "" {
		if err := validateRelative("link.nested", c.Link.Nested, true); err != nil {
			return err
		}
	}
	return nil
}

func validateRelative(key, value string, singleName bool) error {
	if filepath.IsAbs(value) {
		return errors.Newf(errors.ErrInvalidInput, "%s must be relative, got %q", key, value)
	}
	clean := filepath.Clean(value)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrInvalidInput, "%s must stay inside the dotfiles directory, got %q", key, value)
	}
	if singleName && strings.ContainsRune(clean, filepath.Separator) {
		return errors.Newf(errors.ErrInvalidInput, "%s must be a single entry name, got %q", key, value)
	}
	return nil
}
