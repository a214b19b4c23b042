/*
Copyright © 2025 Noteleap Authors
*/
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/noteleap/noteleap/internal/ranking"
	"github.com/noteleap/noteleap/internal/telemetry"
	"github.com/noteleap/noteleap/internal/ui"
	"github.com/noteleap/noteleap/models"
)

var (
	jumpCurrent     string
	jumpInteractive bool
	jumpLimit       int
)

// jumpCmd represents the jump command
var jumpCmd = &cobra.Command{
	Use:   "jump [query]",
	Short: "Rank vault documents and jump to one",
	Long: `Rank the vault's documents against an optional query and the
document you are currently on, then print the ranked list or open an
interactive picker.

The --current document anchors the link-graph categories: its outgoing
links, backlinks, and two-hop neighbors rank above unrelated matches.

Examples:
  noteleap jump                          # ranked list for an empty query
  noteleap jump meeting                  # fuzzy search for "meeting"
  noteleap jump -C projects/roadmap.md   # rank relative to a document
  noteleap jump -i                       # interactive picker`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJump,
}

func init() {
	rootCmd.AddCommand(jumpCmd)

	jumpCmd.Flags().StringVarP(&jumpCurrent, "current", "C", "", "vault path of the document you are jumping from")
	jumpCmd.Flags().BoolVarP(&jumpInteractive, "interactive", "i", false, "open the interactive picker")
	jumpCmd.Flags().IntVarP(&jumpLimit, "limit", "n", 0, "maximum results to print (0 = all)")
}

func runJump(cmd *cobra.Command, args []string) error {
	tel := newTelemetry()
	defer func() { _ = tel.Close() }()

	provider, err := openProvider()
	if err != nil {
		tel.Track(telemetry.EventCommandError, map[string]any{"command": "jump"})
		return err
	}
	defer func() { _ = provider.Close() }()

	engine := newEngine(provider)
	policy := GetConfig().Ranking

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	if jumpInteractive {
		return runJumpInteractive(engine, policy, tel)
	}

	results, err := engine.Rank(query, policy, jumpCurrent)
	if err != nil {
		tel.Track(telemetry.EventCommandError, map[string]any{"command": "jump"})
		return fmt.Errorf("rank documents: %w", err)
	}
	if jumpLimit > 0 && len(results) > jumpLimit {
		results = results[:jumpLimit]
	}
	tel.Track(telemetry.EventCommandExecuted, map[string]any{
		"command": "jump",
		"results": len(results),
	})

	if isJSON() {
		return printJSON(results)
	}
	if len(results) == 0 {
		if !isQuiet() {
			cmd.Println("No matching documents.")
		}
		return nil
	}
	cmd.Print(ui.RenderResults(results))
	return nil
}

func runJumpInteractive(engine *ranking.Engine, policy models.RankingPolicy, tel telemetry.Client) error {
	if !ui.IsInteractive() {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	picker := ui.NewPicker(func(query string) ([]models.RankedResult, error) {
		return engine.Rank(query, policy, jumpCurrent)
	})
	final, err := tea.NewProgram(picker).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	chosen := final.(*ui.Picker).Selected
	if chosen == nil {
		return nil
	}

	// Selecting a document is the "open" event: record it so the next
	// invocation ranks it as recent.
	engine.Recency().Add(chosen.Document.ID)
	if err := saveRecency(engine.Recency()); err != nil {
		return fmt.Errorf("save recent list: %w", err)
	}
	tel.Track(telemetry.EventJumpSession, map[string]any{
		"category": string(chosen.Category),
	})

	fmt.Println(chosen.Document.ID)
	return nil
}
