package tools

import (
	"bytes"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotfiles/pkg/logging"
)

// Runner finds and runs external commands
type Runner interface {
	LookPath(name string) (string, error)
	Run(name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates an ExecRunner
func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes name with args and waits for it, capturing both streams
func (r *ExecRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	logging.LogCommand(r.logger, name, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		r.logger.Debug().
			Err(err).
			Str("command", name).
			Str("stderr", stderr.String()).
			Msg("Command failed")
	}
	return stdout.Bytes(), stderr.Bytes(), err
}
