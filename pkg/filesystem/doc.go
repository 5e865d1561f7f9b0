// Package filesystem provides filesystem implementations for dotfiles.
//
// This package contains the OS implementation of the types.FS interface
// and the atomic write helper used when rewriting shell startup files.
package filesystem
