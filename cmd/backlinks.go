/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noteleap/noteleap/internal/graph"
	"github.com/noteleap/noteleap/internal/ui"
	"github.com/noteleap/noteleap/store"
)

// backlinksCmd represents the backlinks command
var backlinksCmd = &cobra.Command{
	Use:   "backlinks <document>",
	Short: "List documents that link to a document",
	Long: `List every vault document whose outgoing links point at the given
document, by vault-relative path.

Examples:
  noteleap backlinks projects/roadmap.md
  noteleap backlinks projects/roadmap.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBacklinks,
}

func init() {
	rootCmd.AddCommand(backlinksCmd)
}

func runBacklinks(cmd *cobra.Command, args []string) error {
	provider, err := openProvider()
	if err != nil {
		return err
	}
	defer func() { _ = provider.Close() }()

	target := args[0]
	if _, ok, err := provider.Document(target); err != nil {
		return fmt.Errorf("look up %q: %w", target, err)
	} else if !ok {
		return fmt.Errorf("document %q not found in the vault", target)
	}

	backlinks, err := backlinksOf(provider, target)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]any{
			"document":  target,
			"backlinks": backlinks,
		})
	}
	if len(backlinks) == 0 {
		if !isQuiet() {
			cmd.Printf("No documents link to %s.\n", target)
		}
		return nil
	}
	for _, id := range backlinks {
		cmd.Println(ui.StylePrimary.Render(id))
	}
	return nil
}

// backlinksOf uses the index's reverse-link table when available and
// falls back to building the link graph in memory.
func backlinksOf(provider store.DocumentProvider, target string) ([]string, error) {
	if idx, ok := provider.(*store.IndexStore); ok {
		backlinks, err := idx.Backlinks(target)
		if err != nil {
			return nil, fmt.Errorf("query backlinks: %w", err)
		}
		return backlinks, nil
	}

	docs, err := provider.Documents()
	if err != nil {
		return nil, fmt.Errorf("enumerate documents: %w", err)
	}
	adjacency := make(map[string][]string, len(docs))
	for _, d := range docs {
		adjacency[d.ID] = d.Links
	}
	return graph.Backlinks(graph.NewLinkGraph(adjacency), target), nil
}
