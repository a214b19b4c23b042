/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/noteleap/noteleap/store"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and keep the index fresh",
	Long: `Watch the vault directory for markdown changes and, when an index
file is configured, refresh the sqlite index on every change. Runs until
interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	vault := store.NewVaultStore(afero.NewOsFs(), cfg.Vault.Path)

	var idx *store.IndexStore
	if cfg.Vault.IndexFile != "" {
		var err error
		idx, err = store.NewIndexStore(cfg.Vault.IndexFile)
		if err != nil {
			return fmt.Errorf("open index %q: %w", cfg.Vault.IndexFile, err)
		}
		defer func() { _ = idx.Close() }()
	}

	watcher, err := store.NewWatcher(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("watch vault %q: %w", cfg.Vault.Path, err)
	}
	defer func() { _ = watcher.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go watcher.Run(ctx)

	if !isQuiet() {
		cmd.Printf("Watching %s (ctrl-c to stop)\n", cfg.Vault.Path)
	}

	for ev := range watcher.Events() {
		if !isQuiet() {
			switch ev.Op {
			case store.VaultOpChanged:
				cmd.Printf("changed  %s\n", ev.ID)
			case store.VaultOpRemoved:
				cmd.Printf("removed  %s\n", ev.ID)
			}
		}
		if idx == nil {
			continue
		}
		docs, err := vault.Documents()
		if err != nil {
			return fmt.Errorf("read vault: %w", err)
		}
		if err := idx.Refresh(docs); err != nil {
			return fmt.Errorf("refresh index: %w", err)
		}
	}
	return nil
}
