// Package types defines the interfaces shared across dotfiles packages.
package types
