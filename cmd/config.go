/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noteleap/noteleap/types"
)

const (
	configName = ".noteleap"
	envPrefix  = "NOTELEAP"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate caches struct info across config validations.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env first if present; a missing file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., NOTELEAP_VAULT_PATH
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")  // ./.noteleap.yaml
		viper.AddConfigPath(home) // $HOME/.noteleap.yaml
		viper.SetConfigName(configName)
	}

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error unmarshaling config:", err)
		os.Exit(1)
	}
	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error validating config:", err)
		os.Exit(1)
	}
}

func setDefaults() {
	defaults := types.DefaultAppConfig()

	viper.SetDefault("vault.path", defaults.Vault.Path)
	viper.SetDefault("vault.excludedPaths", defaults.Vault.ExcludedPaths)
	viper.SetDefault("vault.indexFile", defaults.Vault.IndexFile)

	viper.SetDefault("recency.capacity", defaults.Recency.Capacity)

	viper.SetDefault("ranking.extendResults", defaults.Ranking.ExtendResults)
	viper.SetDefault("ranking.filterRelatedDocuments", defaults.Ranking.FilterRelatedDocuments)
	viper.SetDefault("ranking.unfilteredFallback", defaults.Ranking.UnfilteredFallback)
	viper.SetDefault("ranking.recent.enabled", defaults.Ranking.Recent.Enabled)
	viper.SetDefault("ranking.recent.priority", defaults.Ranking.Recent.Priority)
	viper.SetDefault("ranking.recent.bypassFilters", defaults.Ranking.Recent.BypassFilters)
	viper.SetDefault("ranking.outgoing.enabled", defaults.Ranking.Outgoing.Enabled)
	viper.SetDefault("ranking.outgoing.priority", defaults.Ranking.Outgoing.Priority)
	viper.SetDefault("ranking.backlink.enabled", defaults.Ranking.Backlink.Enabled)
	viper.SetDefault("ranking.backlink.priority", defaults.Ranking.Backlink.Priority)
	viper.SetDefault("ranking.twoHop.enabled", defaults.Ranking.TwoHop.Enabled)
	viper.SetDefault("ranking.twoHop.priority", defaults.Ranking.TwoHop.Priority)

	viper.SetDefault("telemetry.enabled", defaults.Telemetry.Enabled)
	viper.SetDefault("telemetry.apiKey", defaults.Telemetry.APIKey)
}

// GetConfig returns the loaded application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
