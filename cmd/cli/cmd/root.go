package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fluidform/sph-simulations/pkg/config"
	"github.com/fluidform/sph-simulations/pkg/logger"
)

var (
	cfgFile       string
	workspaceName string
	logLevel      string
	noColor       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sph-sim",
	Short: "SPH scene tooling",
	Long: `sph-sim works with the plain-text scene files that bootstrap a
particle-based fluid simulation. Its preload pass scans a scene once,
gathering the simulation box, particle and membrane counts, and physical
constants the solver needs to size its device buffers before the full
per-row data is loaded.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sph-sim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workspaceName, "workspace", "", "workspace holding the scene files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(preloadCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(workspaceCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	// Configure output based on flags
	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)
	if noColor {
		color.NoColor = true
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath("$HOME/.sph-sim")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	_ = viper.ReadInConfig()
}

// resolveWorkspace returns the workspace the scene commands operate on:
// the --workspace flag if set, otherwise the configured active workspace.
func resolveWorkspace() (*config.Workspace, error) {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("failed to load workspaces: %w", err)
	}

	if workspaceName != "" {
		for i := range cfg.Workspaces {
			if cfg.Workspaces[i].Name == workspaceName {
				return &cfg.Workspaces[i], nil
			}
		}
		return nil, fmt.Errorf("workspace %s not configured", workspaceName)
	}

	return cfg.Active()
}
