/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/noteleap/noteleap/internal/ranking"
	"github.com/noteleap/noteleap/internal/telemetry"
	"github.com/noteleap/noteleap/store"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// openProvider builds the document provider for the configured vault.
// With an index file configured it opens the sqlite index and refreshes
// it from the vault; otherwise the vault is walked directly.
func openProvider() (store.DocumentProvider, error) {
	cfg := GetConfig()

	vault := store.NewVaultStore(afero.NewOsFs(), cfg.Vault.Path)
	if cfg.Vault.IndexFile == "" {
		return vault, nil
	}

	idx, err := store.NewIndexStore(cfg.Vault.IndexFile)
	if err != nil {
		return nil, fmt.Errorf("open index %q: %w", cfg.Vault.IndexFile, err)
	}
	docs, err := vault.Documents()
	if err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("read vault: %w", err)
	}
	if err := idx.Refresh(docs); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("refresh index: %w", err)
	}
	return idx, nil
}

// newEngine wires the ranking engine from the loaded configuration,
// seeding the recency cache from the persisted recent list.
func newEngine(provider store.DocumentProvider) *ranking.Engine {
	cfg := GetConfig()
	return ranking.NewEngine(provider, loadRecency(cfg.Recency.Capacity), ranking.Options{
		Filters:       cfg.Filters,
		ExcludedPaths: cfg.Vault.ExcludedPaths,
	})
}

// newTelemetry builds the telemetry client from config. Disabled or
// misconfigured telemetry degrades to a no-op client.
func newTelemetry() telemetry.Client {
	cfg := GetConfig()
	return telemetry.New(cfg.Telemetry.Enabled, cfg.Telemetry.APIKey, version)
}
