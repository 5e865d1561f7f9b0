package symlink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/types"
)

// Outcome describes what reconciling a single target did, or would do in a
// dry run.
type Outcome int

const (
	AlreadyLinked Outcome = iota
	Relinked
	BackedUpAndLinked
	Created
)

func (o Outcome) String() string {
	switch o {
	case AlreadyLinked:
		return "already linked"
	case Relinked:
		return "relinked"
	case BackedUpAndLinked:
		return "backed up and linked"
	case Created:
		return "created"
	default:
		return "unknown"
	}
}

// Target pairs a source path with the location its symlink should occupy
type Target struct {
	Source string
	Target string
}

// Result records the outcome for one target
type Result struct {
	Target
	Outcome Outcome
	// BackupPath is set only for BackedUpAndLinked
	BackupPath string
}

// Skipped is a source entry that could not be inspected
type Skipped struct {
	Name string
	Err  error
}

// TreeResult aggregates one pass over a source tree
type TreeResult struct {
	SourceDir string
	TargetDir string
	Results   []Result
	Skipped   []Skipped
}

// Count returns how many results have the given outcome
func (r *TreeResult) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Options configures a Reconciler
type Options struct {
	// Now stamps backup names; defaults to time.Now
	Now func() time.Time
	// DryRun computes outcomes without touching the filesystem
	DryRun bool
}

// Reconciler makes target paths symlinks to their sources
type Reconciler struct {
	fs     types.FS
	logger zerolog.Logger
	now    func() time.Time
	dryRun bool
}

// New creates a Reconciler
func New(fs types.FS, logger zerolog.Logger, opts Options) *Reconciler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Reconciler{fs: fs, logger: logger, now: now, dryRun: opts.DryRun}
}

// BackupPath returns the backup location for target at time t
func BackupPath(target string, t time.Time) string {
	return fmt.Sprintf("%s.backup.%d", target, t.Unix())
}

// ReconcileTree links every immediate child of sourceDir into targetDir.
// Children named in exclude are ignored. A child that cannot be inspected is
// logged and recorded in Skipped; any other failure aborts the pass and
// leaves earlier links in place.
func (r *Reconciler) ReconcileTree(sourceDir, targetDir string, exclude []string) (*TreeResult, error) {
	logger := r.logger.With().Str("source", sourceDir).Str("target", targetDir).Logger()

	entries, err := r.fs.ReadDir(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.PathNotFound(sourceDir, "source tree")
		}
		return nil, errors.IoFailure(sourceDir, err)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	result := &TreeResult{SourceDir: sourceDir, TargetDir: targetDir}
	for _, entry := range entries {
		name := entry.Name()
		if excluded[name] {
			logger.Trace().Str("entry", name).Msg("Entry excluded")
			continue
		}

		source := filepath.Join(sourceDir, name)
		if _, err := r.fs.Lstat(source); err != nil {
			logger.Warn().Err(err).Str("entry", name).Msg("Skipping unreadable entry")
			result.Skipped = append(result.Skipped, Skipped{Name: name, Err: err})
			continue
		}

		res, err := r.ReconcileOne(source, filepath.Join(targetDir, name))
		if err != nil {
			return result, err
		}
		result.Results = append(result.Results, res)
	}

	logger.Debug().
		Int("linked", len(result.Results)).
		Int("skipped", len(result.Skipped)).
		Msg("Tree reconciled")
	return result, nil
}

// ReconcileOne makes target a symlink to source
func (r *Reconciler) ReconcileOne(source, target string) (Result, error) {
	res := Result{Target: Target{Source: source, Target: target}}
	logger := r.logger.With().Str("source", source).Str("target", target).Logger()

	info, err := r.fs.Lstat(target)
	switch {
	case os.IsNotExist(err):
		res.Outcome = Created
		if err := r.link(source, target); err != nil {
			return res, err
		}

	case err != nil:
		return res, errors.IoFailure(target, err)

	case info.Mode()&os.ModeSymlink != 0:
		dest, err := r.fs.Readlink(target)
		if err != nil {
			return res, errors.IoFailure(target, err)
		}
		if dest == source {
			res.Outcome = AlreadyLinked
			logger.Trace().Msg("Symlink already correct")
			return res, nil
		}

		res.Outcome = Relinked
		logger.Debug().Str("previous", dest).Msg("Replacing stale symlink")
		if !r.dryRun {
			if err := r.fs.Remove(target); err != nil {
				return res, errors.IoFailure(target, err)
			}
		}
		if err := r.link(source, target); err != nil {
			return res, err
		}

	default:
		res.Outcome = BackedUpAndLinked
		res.BackupPath = BackupPath(target, r.now())
		if err := r.backupAndLink(source, target, res.BackupPath); err != nil {
			return res, err
		}
		logger.Info().Str("backup", res.BackupPath).Msg("Backed up existing file")
	}

	logger.Debug().Str("outcome", res.Outcome.String()).Bool("dry_run", r.dryRun).Msg("Symlink reconciled")
	return res, nil
}

func (r *Reconciler) backupAndLink(source, target, backup string) error {
	if r.dryRun {
		return nil
	}

	if err := r.fs.Rename(target, backup); err != nil {
		return errors.IoFailure(target, err)
	}

	if err := r.link(source, target); err != nil {
		if restoreErr := r.fs.Rename(backup, target); restoreErr != nil {
			r.logger.Error().
				Err(restoreErr).
				Str("backup", backup).
				Str("target", target).
				Msg("Failed to restore backup")
		}
		return err
	}
	return nil
}

func (r *Reconciler) link(source, target string) error {
	if r.dryRun {
		return nil
	}
	if err := r.fs.Symlink(source, target); err != nil {
		return errors.IoFailure(target, err)
	}
	return nil
}
