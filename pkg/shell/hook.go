package shell

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/types"
)

// HookMarker identifies an installed hook regardless of its arguments
const HookMarker = `eval "$(dotfiles hook`

// defaultStartupFilePerm is used when the startup file does not exist yet
const defaultStartupFilePerm fs.FileMode = 0644

// HookOutcome is the result of ensuring the hook
type HookOutcome int

const (
	// AlreadyPresent means the marker was found and nothing was written
	AlreadyPresent HookOutcome = iota
	// Inserted means the hook line was prepended to the startup file
	Inserted
)

func (o HookOutcome) String() string {
	switch o {
	case AlreadyPresent:
		return "already present"
	case Inserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// HookLine returns the activation line for a shell
func HookLine(v Variant) string {
	return fmt.Sprintf(`eval "$(dotfiles hook --shell %s)"`, v.Name())
}

// HookOptions configures a HookInstaller
type HookOptions struct {
	// AtomicWrite rewrites the file through a temp file and rename
	AtomicWrite bool
	// DryRun reports the outcome without writing
	DryRun bool
}

// HookInstaller keeps the activation line at the top of a startup file
type HookInstaller struct {
	fs     types.FS
	logger zerolog.Logger
	opts   HookOptions
}

// NewHookInstaller creates a HookInstaller
func NewHookInstaller(fs types.FS, logger zerolog.Logger, opts HookOptions) *HookInstaller {
	return &HookInstaller{fs: fs, logger: logger, opts: opts}
}

// IsConfigured reports whether the startup file already contains the hook
// marker. A missing file is not configured.
func (h *HookInstaller) IsConfigured(configPath string) (bool, error) {
	content, err := h.read(configPath)
	if err != nil {
		return false, err
	}
	return strings.Contains(content, HookMarker), nil
}

// Ensure prepends the hook line to configPath unless the marker is already
// there. The file is rewritten as a whole.
func (h *HookInstaller) Ensure(configPath string, v Variant) (HookOutcome, error) {
	content, err := h.read(configPath)
	if err != nil {
		return AlreadyPresent, err
	}

	if strings.Contains(content, HookMarker) {
		h.logger.Info().Str("path", configPath).Msg("Dotfiles hook already configured")
		return AlreadyPresent, nil
	}

	hook := HookLine(v)
	var updated string
	if content == "" {
		updated = hook + "\n"
	} else {
		updated = hook + "\n\n" + content
	}

	dest, err := h.destination(configPath)
	if err != nil {
		return AlreadyPresent, err
	}

	if h.opts.DryRun {
		h.logger.Info().Str("path", configPath).Str("hook", hook).Msg("Dry run: would add dotfiles hook")
		return Inserted, nil
	}

	if err := h.write(configPath, dest, []byte(updated)); err != nil {
		return AlreadyPresent, err
	}

	h.logger.Info().Str("path", configPath).Str("hook", hook).Msg("Added dotfiles hook")
	return Inserted, nil
}

func (h *HookInstaller) read(path string) (string, error) {
	data, err := h.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.IoFailure(path, err)
	}
	return string(data), nil
}

// destination returns the file to write for path. A symlinked startup file
// is written through its resolved path so the link itself survives the
// rename. A dangling link is never replaced.
func (h *HookInstaller) destination(path string) (string, error) {
	info, err := h.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", errors.IoFailure(path, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return path, nil
	}

	resolved, err := h.fs.EvalSymlinks(path)
	if err != nil {
		return "", errors.IoFailure(path, err)
	}
	return resolved, nil
}

// write replaces dest, keeping its permissions when it already exists
func (h *HookInstaller) write(path, dest string, data []byte) error {
	perm := defaultStartupFilePerm
	if info, err := h.fs.Stat(dest); err == nil {
		perm = info.Mode().Perm()
	}

	var err error
	if h.opts.AtomicWrite {
		err = h.fs.WriteFileAtomic(dest, data, perm)
	} else {
		err = h.fs.WriteFile(dest, data, perm)
	}
	if err != nil {
		return errors.IoFailure(path, err)
	}
	return nil
}
