package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotfiles/pkg/errors"
)

const (
	// EnvPrefix prefixes configuration overrides in the environment
	EnvPrefix = "DOTFILES_"

	// FileName is the configuration file written by `config init`
	FileName = "dotfiles.toml"
)

// candidateFiles are checked in order inside the dotfiles directory; the
// first one found is loaded.
var candidateFiles = []string{FileName, ".dotfiles.toml", "dotfiles.yaml", "dotfiles.yml"}

// reservedEnv are DOTFILES_ variables that are not configuration keys
var reservedEnv = map[string]bool{
	"DOTFILES_DIR": true,
}

// Loaded is a configuration together with the file it was read from
type Loaded struct {
	*Config
	// Path is the configuration file that was merged, empty when only
	// defaults and environment were used
	Path string
}

// Load builds the configuration for a dotfiles directory.
// Layers, lowest precedence first:
//  1. embedded defaults
//  2. dotfiles.toml (or .dotfiles.toml / dotfiles.yaml) in dotfilesDir
//  3. DOTFILES_<SECTION>_<KEY> environment variables
func Load(dotfilesDir string) (*Loaded, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	path, err := findConfigFile(dotfilesDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail(errors.DetailPath, path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Loaded{Config: &cfg, Path: path}, nil
}

// defaults returns the embedded defaults without consulting files or the
// environment.
func defaults() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return &cfg
}

func findConfigFile(dotfilesDir string) (string, error) {
	if dotfilesDir == "" {
		return "", nil
	}
	for _, name := range candidateFiles {
		path := filepath.Join(dotfilesDir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", errors.IoFailure(path, err)
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps DOTFILES_TOOLS_KEEP_GOING to tools.keep_going. Variables
// without a section, and reserved ones, are ignored.
func envKey(s string) string {
	if reservedEnv[s] {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, found := strings.Cut(key, "_")
	if !found || section == "" || name == "" {
		return ""
	}
	return section + "." + name
}
