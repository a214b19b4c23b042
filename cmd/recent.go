/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noteleap/noteleap/internal/ui"
	"github.com/noteleap/noteleap/models"
)

// recentCmd represents the recent command
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened documents",
	Long: `List the recently opened documents, newest first. Entries whose
files no longer exist in the vault are skipped.`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	provider, err := openProvider()
	if err != nil {
		return err
	}
	defer func() { _ = provider.Close() }()

	cache := loadRecency(GetConfig().Recency.Capacity)

	var docs []models.Document
	for _, id := range cache.List() {
		doc, ok, err := provider.Document(id)
		if err != nil {
			return err
		}
		if ok {
			docs = append(docs, doc)
		}
	}

	if isJSON() {
		return printJSON(docs)
	}
	if len(docs) == 0 {
		if !isQuiet() {
			cmd.Println("No recent documents.")
		}
		return nil
	}
	if !isQuiet() {
		ui.RenderPageHeader("Recently opened", "newest first")
	}
	for _, d := range docs {
		cmd.Printf("%s  %s\n", ui.StylePrimary.Render(d.Name), ui.StyleSubtle.Render(d.ID))
	}
	return nil
}
