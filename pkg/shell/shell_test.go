// pkg/shell/shell_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: filesystem
// PURPOSE: Test shell detection and startup file selection

package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		shellPath string
		expected  shell.Variant
		wantErr   bool
	}{
		{name: "zsh", shellPath: "/bin/zsh", expected: shell.Zsh},
		{name: "homebrew_bash", shellPath: "/opt/homebrew/bin/bash", expected: shell.Bash},
		{name: "usr_bin_zsh", shellPath: "/usr/bin/zsh", expected: shell.Zsh},
		{name: "zsh_checked_first", shellPath: "/opt/bash-tools/zsh", expected: shell.Zsh},
		{name: "fish", shellPath: "/usr/bin/fish", wantErr: true},
		{name: "empty", shellPath: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := shell.Detect(tt.shellPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedShell))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParse(t *testing.T) {
	v, err := shell.Parse("zsh")
	require.NoError(t, err)
	assert.Equal(t, shell.Zsh, v)

	v, err = shell.Parse("bash")
	require.NoError(t, err)
	assert.Equal(t, shell.Bash, v)

	for _, name := range []string{"fish", "ZSH", "/bin/bash", ""} {
		_, err := shell.Parse(name)
		require.Error(t, err, name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedShell))
		assert.Contains(t, err.Error(), "unsupported shell")
	}
}

func TestVariant_StartupFiles(t *testing.T) {
	assert.Equal(t, []string{".zshrc"}, shell.Zsh.StartupFiles())
	assert.Equal(t, []string{".bashrc", ".bash_profile", ".profile"}, shell.Bash.StartupFiles())

	files := shell.Bash.StartupFiles()
	files[0] = "mutated"
	assert.Equal(t, ".bashrc", shell.Bash.StartupFiles()[0])
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name     string
		variant  shell.Variant
		existing []string
		expected string
	}{
		{name: "zsh_missing", variant: shell.Zsh, expected: ".zshrc"},
		{name: "zsh_present", variant: shell.Zsh, existing: []string{".zshrc"}, expected: ".zshrc"},
		{name: "bash_none", variant: shell.Bash, expected: ".bashrc"},
		{name: "bash_profile_only", variant: shell.Bash, existing: []string{".profile"}, expected: ".profile"},
		{name: "bash_profile_and_bash_profile", variant: shell.Bash, existing: []string{".profile", ".bash_profile"}, expected: ".bash_profile"},
		{name: "bashrc_preferred", variant: shell.Bash, existing: []string{".profile", ".bashrc"}, expected: ".bashrc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			for _, name := range tt.existing {
				require.NoError(t, os.WriteFile(filepath.Join(home, name), []byte("# rc\n"), 0644))
			}

			got := shell.ConfigPath(filesystem.NewOS(), home, tt.variant)
			assert.Equal(t, filepath.Join(home, tt.expected), got)

			// Selection never creates files
			for _, name := range tt.variant.StartupFiles() {
				_, err := os.Lstat(filepath.Join(home, name))
				if !contains(tt.existing, name) {
					assert.True(t, os.IsNotExist(err), "%s should not be created", name)
				}
			}
		})
	}
}

func TestConfigPath_DanglingSymlinkSkipped(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(home, "missing"), filepath.Join(home, ".bashrc")))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".profile"), []byte("export A=1\n"), 0644))

	got := shell.ConfigPath(filesystem.NewOS(), home, shell.Bash)
	assert.Equal(t, filepath.Join(home, ".profile"), got)
}

func TestConfigPath_LiveSymlinkCounts(t *testing.T) {
	home := t.TempDir()
	target := filepath.Join(t.TempDir(), "bash_profile")
	require.NoError(t, os.WriteFile(target, []byte(""), 0644))
	require.NoError(t, os.Symlink(target, filepath.Join(home, ".bash_profile")))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".profile"), []byte(""), 0644))

	got := shell.ConfigPath(filesystem.NewOS(), home, shell.Bash)
	assert.Equal(t, filepath.Join(home, ".bash_profile"), got)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
