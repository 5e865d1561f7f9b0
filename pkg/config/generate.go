package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotfiles/pkg/errors"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [link], [tools]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// WriteDefault writes the commented default configuration into dotfilesDir.
// An existing file is only replaced when force is set.
func WriteDefault(dotfilesDir string, force bool) (string, error) {
	path := filepath.Join(dotfilesDir, FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return path, errors.Newf(errors.ErrInvalidInput, "%s already exists (use --force to overwrite)", path).
			WithDetail(errors.DetailPath, path)
	}

	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return path, errors.IoFailure(path, err)
	}
	return path, nil
}

// Marshal renders a configuration as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return data, nil
}
