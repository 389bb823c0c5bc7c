// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gilshw/politifeed/pkg/types"
)

const defaultRegistryPath = "data/politicians.json"

// registryPath resolves the registry file: flag first, then config,
// then the default location.
func registryPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("registry"); path != "" {
		return path
	}
	if path := viper.GetString("registry"); path != "" {
		return path
	}
	return defaultRegistryPath
}

// engineConfig builds the engine settings from the config file.
// Zero values let detect.New apply its defaults.
func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		ContextWindow:  viper.GetInt("engine.context_window"),
		RoleWindow:     viper.GetInt("engine.role_window"),
		QuoteWindow:    viper.GetInt("engine.quote_window"),
		ReactionWindow: viper.GetInt("engine.reaction_window"),
		MinBodyRunes:   viper.GetInt("engine.min_body_runes"),
		MinScore:       viper.GetInt("engine.min_score"),
		LowMinScore:    viper.GetInt("engine.low_min_score"),
		MaxResults:     viper.GetInt("engine.max_results"),
	}
}

// ingestConfig builds the feed-polling settings from the config file.
func ingestConfig() (types.IngestConfig, error) {
	cfg := types.IngestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("ingest.timeout"),
			UserAgent: viper.GetString("ingest.user_agent"),
		},
	}
	if err := viper.UnmarshalKey("ingest.feeds", &cfg.Feeds); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// storeConfig builds the store settings from flags and the config file.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		return types.StoreConfig{DBPath: path}
	}
	return types.StoreConfig{DBPath: viper.GetString("store.db_path")}
}
