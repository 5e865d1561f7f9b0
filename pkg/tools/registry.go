package tools

import (
	goerrors "errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotfiles/pkg/errors"
)

// Status reports whether a tool is on PATH
type Status struct {
	Tool      `yaml:",inline"`
	Installed bool `json:"installed" yaml:"installed"`
}

// InstallOutcome is what InstallMissing did with one tool
type InstallOutcome int

const (
	AlreadyInstalled InstallOutcome = iota
	Installed
	Skipped
	Failed
)

func (o InstallOutcome) String() string {
	switch o {
	case AlreadyInstalled:
		return "already installed"
	case Installed:
		return "installed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// InstallResult records one tool's outcome
type InstallResult struct {
	Tool    Tool
	Outcome InstallOutcome
	Err     error
}

// InstallOptions controls InstallMissing
type InstallOptions struct {
	// KeepGoing continues past failures and returns them joined
	KeepGoing bool
	// Skip reports tools that must not be installed
	Skip func(name string) bool
}

// Registry checks and installs the tool table
type Registry struct {
	runner Runner
	logger zerolog.Logger
	tools  []Tool
}

// NewRegistry creates a Registry over tools, or DefaultTools when nil
func NewRegistry(runner Runner, logger zerolog.Logger, tools []Tool) *Registry {
	if tools == nil {
		tools = DefaultTools()
	}
	return &Registry{runner: runner, logger: logger, tools: tools}
}

// IsInstalled reports whether the tool's binary is on PATH
func (r *Registry) IsInstalled(tool Tool) bool {
	_, err := r.runner.LookPath(tool.Name)
	return err == nil
}

// Install runs the tool's package manager
func (r *Registry) Install(tool Tool) error {
	logger := r.logger.With().Str("tool", tool.Name).Str("manager", tool.Manager).Logger()

	if _, err := r.runner.LookPath(tool.Manager); err != nil {
		return errors.ToolUnavailable(tool.Manager)
	}

	logger.Info().Str("package", tool.Package).Msg("Installing tool")
	_, stderr, err := r.runner.Run(tool.Manager, tool.InstallArgs()...)
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = err.Error()
		}
		return errors.SubprocessFailure(tool.Name, msg)
	}

	logger.Info().Msg("Tool installed")
	return nil
}

// List returns every tool with its installed state, in table order
func (r *Registry) List() []Status {
	statuses := make([]Status, 0, len(r.tools))
	for _, tool := range r.tools {
		statuses = append(statuses, Status{Tool: tool, Installed: r.IsInstalled(tool)})
	}
	return statuses
}

// InstallMissing installs every tool not already on PATH. By default the
// first failure stops the batch; with KeepGoing all failures are joined
// into the returned error. Results cover every tool visited.
func (r *Registry) InstallMissing(opts InstallOptions) ([]InstallResult, error) {
	var (
		results  []InstallResult
		failures []error
	)

	for _, tool := range r.tools {
		if r.IsInstalled(tool) {
			r.logger.Debug().Str("tool", tool.Name).Msg("Tool already installed")
			results = append(results, InstallResult{Tool: tool, Outcome: AlreadyInstalled})
			continue
		}
		if opts.Skip != nil && opts.Skip(tool.Name) {
			r.logger.Info().Str("tool", tool.Name).Msg("Tool skipped by configuration")
			results = append(results, InstallResult{Tool: tool, Outcome: Skipped})
			continue
		}

		if err := r.Install(tool); err != nil {
			r.logger.Error().Err(err).Str("tool", tool.Name).Msg("Tool installation failed")
			results = append(results, InstallResult{Tool: tool, Outcome: Failed, Err: err})
			if !opts.KeepGoing {
				return results, err
			}
			failures = append(failures, err)
			continue
		}
		results = append(results, InstallResult{Tool: tool, Outcome: Installed})
	}

	return results, goerrors.Join(failures...)
}
