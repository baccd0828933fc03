package app

import (
	"os"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/jeemodel/pkg/utils"
)

const CONFIG_FILE = ".jeectl"

const (
	ENV_LANG   = "JEECTL_LANG"
	ENV_OUTPUT = "JEECTL_OUTPUT"
)

type Config struct {
	Lang      *string           `json:"lang,omitempty"`
	Output    *string           `json:"output,omitempty"`
	Env       *bool             `json:"env,omitempty"`
	LogLevel  *string           `json:"logLevel,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

// GetConfig reads the config files from the home directory
// and the current working directory and applies the
// environment settings.
func GetConfig(fs vfs.FileSystem) *Config {
	var cfg Config

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_FILE))

	if v := os.Getenv(ENV_LANG); v != "" {
		cfg.Lang = utils.Pointer(v)
	}
	if v := os.Getenv(ENV_OUTPUT); v != "" {
		cfg.Output = utils.Pointer(v)
	}
	return &cfg
}

func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Warn("ignoring invalid config file {{path}}: {{error}}", "path", path, "error", err)
		return nil
	}
	log.Debug("using config file {{path}}", "path", path)
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Lang != nil {
		cfg.Lang = add.Lang
	}
	if add.Output != nil {
		cfg.Output = add.Output
	}
	if add.Env != nil {
		cfg.Env = add.Env
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
	for k, v := range add.Variables {
		if cfg.Variables == nil {
			cfg.Variables = map[string]string{}
		}
		cfg.Variables[k] = v
	}
}
