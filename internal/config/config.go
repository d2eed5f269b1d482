package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/autocrud/internal/core/model"
)

// Dir is the per-project configuration directory.
const Dir = ".autocrud"

// DefaultStubsPath is where published stubs override the embedded ones.
const DefaultStubsPath = "stubs/vendor/autocrud"

// Config represents the autocrud project configuration.
type Config struct {
	ModelsPath      string   `json:"models_path,omitempty" yaml:"models_path,omitempty"`
	ModelsNamespace string   `json:"models_namespace,omitempty" yaml:"models_namespace,omitempty"`
	AppPath         string   `json:"app_path,omitempty" yaml:"app_path,omitempty"`
	AppNamespace    string   `json:"app_namespace,omitempty" yaml:"app_namespace,omitempty"`
	StubsPath       string   `json:"stubs_path,omitempty" yaml:"stubs_path,omitempty"`
	ModelBases      []string `json:"model_bases,omitempty" yaml:"model_bases,omitempty"` // Extra persistence-model base classes
}

// Default returns the configuration of a stock Laravel application.
func Default() *Config {
	return &Config{
		ModelsPath:      model.DefaultModelsPath,
		ModelsNamespace: model.DefaultModelsNamespace,
		AppPath:         "app",
		AppNamespace:    "App",
		StubsPath:       DefaultStubsPath,
	}
}

// LoadConfig reads .autocrud/config.yaml or .autocrud/config.json from the
// project directory and applies it over the defaults.
// A project without a config file gets the defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		path := filepath.Join(dir, Dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		var file Config
		if filepath.Ext(name) == ".json" {
			err = json.Unmarshal(data, &file)
		} else {
			err = yaml.Unmarshal(data, &file)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}

		cfg.Apply(file)
		return cfg, nil
	}

	return cfg, nil
}

// SaveConfig writes config.json to the project directory.
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, Dir)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", Dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Apply overrides fields of c with the non-empty fields of other.
func (c *Config) Apply(other Config) {
	if other.ModelsPath != "" {
		c.ModelsPath = other.ModelsPath
	}
	if other.ModelsNamespace != "" {
		c.ModelsNamespace = other.ModelsNamespace
	}
	if other.AppPath != "" {
		c.AppPath = other.AppPath
	}
	if other.AppNamespace != "" {
		c.AppNamespace = other.AppNamespace
	}
	if other.StubsPath != "" {
		c.StubsPath = other.StubsPath
	}
	if len(other.ModelBases) > 0 {
		c.ModelBases = append([]string(nil), other.ModelBases...)
	}
}

// ModelContext returns the models location for one invocation.
func (c *Config) ModelContext() model.Context {
	return model.NewContext(c.ModelsPath, c.ModelsNamespace)
}

// Resolve returns path as a filesystem location inside the project at dir.
// Absolute paths are returned unchanged.
func Resolve(dir, path string) string {
	p := filepath.FromSlash(path)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}
