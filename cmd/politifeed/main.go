// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the politifeed CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the politifeed CLI.
var rootCmd = &cobra.Command{
	Use:   "politifeed",
	Short: "Track which politicians Hebrew news items actually discuss",
	Long: `politifeed ingests Hebrew news feeds and detects which registered public
figures each item genuinely discusses, as opposed to names that merely
co-occur as noise. Detection is surface-pattern based: bounded name and
alias matching, role-title resolution, and zone-aware relevance scoring.

Each stage is a subcommand: detect runs the engine over a single article,
poll fetches feeds and persists detected mentions, mentions queries the
stored results, and registry inspects the politicians file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./politifeed.yaml or ~/.config/politifeed/config.yaml)")
	rootCmd.PersistentFlags().String("registry", "", "politicians registry file (JSON or YAML)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("politifeed")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "politifeed"))
		}
	}

	viper.SetEnvPrefix("POLITIFEED")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
