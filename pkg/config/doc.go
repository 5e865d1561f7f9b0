// Package config handles configuration management for dotfiles.
// It layers embedded defaults, a dotfiles.toml (or YAML) file at the root of
// the checkout, and DOTFILES_<SECTION>_<KEY> environment variables.
package config
