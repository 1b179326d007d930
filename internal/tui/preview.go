package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zuo-Peng/claude-history/internal/render"
	"github.com/Zuo-Peng/claude-history/internal/search"
)

// previewRenderedMsg is sent when an async preview render completes.
type previewRenderedMsg struct {
	key     string
	content string
	hitLine int
}

// loadPreviewCmd renders the conversation preview off the update loop.
func loadPreviewCmd(r search.Result, query string, width int) tea.Cmd {
	key := previewCacheKey(r)
	return func() tea.Msg {
		content, hitLine := render.Conversation(r.Record, render.Options{
			HitMessage: r.MessageIndex,
			Context:    -1,
			Width:      width,
			Query:      query,
		})
		return previewRenderedMsg{key: key, content: content, hitLine: hitLine}
	}
}

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
