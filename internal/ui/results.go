package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/noteleap/noteleap/models"
)

const fallbackWidth = 80

// IsInteractive checks if stdout is a terminal, to avoid prompting when
// piping output.
func IsInteractive() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// TerminalWidth returns the current terminal width, or a fallback when
// stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// RenderResults formats a ranked result list for one-shot output: one
// line per result with its category label, display name, and path.
// Paths are shortened before styling so lines fit the terminal.
func RenderResults(results []models.RankedResult) string {
	if len(results) == 0 {
		return StyleSubtle.Render("No documents found.")
	}

	width := TerminalWidth()
	var sb strings.Builder
	for i, r := range results {
		// "NN. [category] name  path"; budget the path with what the
		// fixed parts leave over.
		fixed := 4 + len(r.Category) + 3 + len(r.Document.Name) + 2
		path := shortenPath(r.Document.ID, width-fixed)
		fmt.Fprintf(&sb, "%2d. %s %s  %s\n",
			i+1,
			CategoryLabel(r.Category),
			StyleTitle.Render(r.Document.Name),
			StyleSubtle.Render(path),
		)
	}
	return sb.String()
}

// RenderPageHeader displays a consistent styled header for commands.
func RenderPageHeader(title, subtitle string) {
	fmt.Println(StylePrimary.Bold(true).Render(title))
	if subtitle != "" {
		fmt.Println(StyleSubtle.Render("  " + subtitle))
	}
}

// shortenPath elides the middle of long paths, keeping the basename
// visible.
func shortenPath(path string, budget int) string {
	runes := []rune(path)
	if budget <= 0 || len(runes) <= budget {
		return path
	}
	if budget <= 1 {
		return "…"
	}
	keep := budget - 1
	head := keep / 3
	tail := keep - head
	return string(runes[:head]) + "…" + string(runes[len(runes)-tail:])
}
