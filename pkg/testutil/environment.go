// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, paths
// PURPOSE: Orchestrate isolated test environments

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/arthur-debert/dotfiles/pkg/types"
)

// TestEnvironment is a real filesystem rooted in a temp directory with HOME,
// SHELL, DOTFILES_DIR and XDG_STATE_HOME pointing into it.
type TestEnvironment struct {
	Root        string
	HomeDir     string
	DotfilesDir string
	StateDir    string

	FS types.FS

	t *testing.T
}

// NewTestEnvironment creates an isolated environment for the given login
// shell path. An empty shell leaves SHELL unset.
func NewTestEnvironment(t *testing.T, shellPath string) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:        root,
		HomeDir:     filepath.Join(root, "home"),
		DotfilesDir: filepath.Join(root, "dotfiles"),
		StateDir:    filepath.Join(root, "state"),
		FS:          filesystem.NewOS(),
		t:           t,
	}

	for _, dir := range []string{env.HomeDir, env.DotfilesDir, env.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvShell, shellPath)
	t.Setenv(paths.EnvDotfilesDir, env.DotfilesDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)

	return env
}

// Resolver returns a resolver over the environment's variables
func (env *TestEnvironment) Resolver() *paths.Resolver {
	return paths.NewResolverFromMap(map[string]string{
		paths.EnvHome:        env.HomeDir,
		paths.EnvShell:       os.Getenv(paths.EnvShell),
		paths.EnvDotfilesDir: env.DotfilesDir,
	})
}

// WriteDotfile creates a file under the dotfiles checkout, making parent
// directories as needed, and returns its absolute path.
func (env *TestEnvironment) WriteDotfile(rel, content string) string {
	env.t.Helper()
	return env.write(filepath.Join(env.DotfilesDir, rel), content)
}

// WriteHomeFile creates a file under HOME and returns its absolute path
func (env *TestEnvironment) WriteHomeFile(rel, content string) string {
	env.t.Helper()
	return env.write(filepath.Join(env.HomeDir, rel), content)
}

// ReadHomeFile returns the content of a file under HOME
func (env *TestEnvironment) ReadHomeFile(rel string) string {
	env.t.Helper()
	data, err := os.ReadFile(filepath.Join(env.HomeDir, rel))
	if err != nil {
		env.t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

func (env *TestEnvironment) write(path, content string) string {
	env.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
