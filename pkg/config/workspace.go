package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Workspace names a directory holding scene files and their catalogs.
type Workspace struct {
	Name        string `yaml:"name"`
	Dir         string `yaml:"dir"`
	Description string `yaml:"description,omitempty"`
}

// Config holds the workspace configurations.
type Config struct {
	Workspaces []Workspace `yaml:"workspaces"`
	Selected   string      `yaml:"selected,omitempty"`
}

// LoadWorkspaces loads workspace configurations from the default location.
func LoadWorkspaces() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".sph-sim", "workspaces.yaml")
	return LoadWorkspacesFromFile(configPath)
}

// LoadWorkspacesFromFile loads workspace configurations from a specific file.
func LoadWorkspacesFromFile(path string) (*Config, error) {
	// If the file doesn't exist, fall back to the default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveWorkspaces saves the workspace configuration.
func SaveWorkspaces(config *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".sph-sim")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "workspaces.yaml")
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Active returns the workspace to use: the SPH_SIM_WORKSPACE override if
// set, then the selected workspace, then the first configured one.
func (c *Config) Active() (*Workspace, error) {
	name := os.Getenv("SPH_SIM_WORKSPACE")
	if name == "" {
		name = c.Selected
	}

	if name != "" {
		for i := range c.Workspaces {
			if c.Workspaces[i].Name == name {
				return &c.Workspaces[i], nil
			}
		}
		return nil, fmt.Errorf("workspace %s not configured", name)
	}

	if len(c.Workspaces) == 0 {
		return nil, fmt.Errorf("no workspaces configured")
	}
	return &c.Workspaces[0], nil
}

// getDefaultConfig returns a default configuration pointing at the
// conventional scenes directory.
func getDefaultConfig() *Config {
	return &Config{
		Workspaces: []Workspace{
			{
				Name:        "local",
				Dir:         "scenes",
				Description: "Scene files in the current project",
			},
		},
	}
}
