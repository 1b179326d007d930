package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/claude-history/internal/scan"
	"github.com/Zuo-Peng/claude-history/internal/search"
)

// linesPerItem is the number of terminal lines each result occupies.
const linesPerItem = 2

// renderList renders the left panel: results list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.results) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No results")
	}

	var lines []string
	for i, r := range m.results {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatResultLine(r, width, i == m.cursor)...)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatResultLine formats a single result as two lines:
//
//	line 1: [>] * MM-DD project  display
//	line 2:    snippet (dimmed)
//
// The marker is green when the transcript was found.
func formatResultLine(r search.Result, width int, selected bool) []string {
	rec := r.Record

	marker := styleIndexOnly.Render("o")
	if rec.HasFullContent {
		marker = styleFull.Render("*")
	}

	// "2025-01-27 10:00:00" -> "01-27"
	date := rec.FormattedTime
	if len(date) >= 10 {
		date = date[5:10]
	}

	project := lastSegment(rec.Project)
	display := strings.ReplaceAll(rec.Display, "\n", " ")
	line1Max := width - 2 - 2 - 6 - runewidth.StringWidth(project) - 1
	if line1Max < 0 {
		line1Max = 0
	}
	if runewidth.StringWidth(display) > line1Max {
		display = runewidth.Truncate(display, line1Max, "")
	}

	line1 := fmt.Sprintf("%s %s %s %s", marker, date, project, display)
	if selected {
		line1 = styleListSelected.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	snippet := strings.NewReplacer(">>>", "", "<<<", "", "\t", " ").Replace(r.Snippet)
	snippetMax := width - 4
	if snippetMax < 0 {
		snippetMax = 0
	}
	if runewidth.StringWidth(snippet) > snippetMax {
		snippet = runewidth.Truncate(snippet, snippetMax, "")
	}
	line2 := "    " + lipgloss.NewStyle().Foreground(colorDim).Render(snippet)

	return []string{line1, line2}
}

func lastSegment(project string) string {
	label := scan.ProjectLabel(project)
	if i := strings.LastIndex(label, "-"); i >= 0 && i < len(label)-1 {
		return label[i+1:]
	}
	return label
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
