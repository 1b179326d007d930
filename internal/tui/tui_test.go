package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zuo-Peng/claude-history/internal/parse"
	"github.com/Zuo-Peng/claude-history/internal/search"
)

func TestResumeCommand(t *testing.T) {
	rec := parse.ConversationRecord{IndexEntry: parse.IndexEntry{
		SessionID: "3f2b7c1e-8a4d-4e2f-9b6a-1c2d3e4f5a6b",
		Project:   "/work/my app",
	}}
	got, err := ResumeCommand(rec)
	if err != nil {
		t.Fatal(err)
	}
	want := `cd "/work/my app" && claude --resume 3f2b7c1e-8a4d-4e2f-9b6a-1c2d3e4f5a6b`
	if got != want {
		t.Fatalf("ResumeCommand = %q, want %q", got, want)
	}

	rec.Project = parse.UnknownProject
	if got, _ := ResumeCommand(rec); strings.HasPrefix(got, "cd ") {
		t.Fatalf("unknown project should not cd: %q", got)
	}

	rec.SessionID = "not-a-session"
	if _, err := ResumeCommand(rec); err == nil {
		t.Fatal("expected error for non-uuid session id")
	}
}

func TestLastSegment(t *testing.T) {
	cases := map[string]string{
		"/Users/me/code/app": "app",
		"plain":              "plain",
		"/trailing/":         "trailing-",
	}
	for in, want := range cases {
		if got := lastSegment(in); got != want {
			t.Errorf("lastSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatResultLine(t *testing.T) {
	r := search.Result{
		Record: parse.ConversationRecord{
			IndexEntry: parse.IndexEntry{
				Project:       "/work/app",
				Display:       "fix the build please",
				FormattedTime: "2025-01-27 10:00:00",
			},
			HasFullContent: true,
		},
		MessageIndex: -1,
		Snippet:      "the >>>build<<< fails",
	}
	lines := formatResultLine(r, 60, true)
	if len(lines) != linesPerItem {
		t.Fatalf("expected %d lines, got %d", linesPerItem, len(lines))
	}
	if !strings.Contains(lines[0], "01-27 app fix the build please") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "the build fails") || strings.Contains(lines[1], ">>>") {
		t.Fatalf("unexpected snippet line %q", lines[1])
	}
}

func TestUpdateAppliesCurrentResultsOnly(t *testing.T) {
	m := initialModel(nil, search.Options{Query: "build"})
	results := []search.Result{{MessageIndex: -1}}

	next, _ := m.Update(searchResultMsg{query: "stale", results: results})
	if got := next.(model); len(got.results) != 0 {
		t.Fatal("stale results should be ignored")
	}

	next, _ = m.Update(searchResultMsg{query: "build", results: results})
	if got := next.(model); len(got.results) != 1 || got.cursor != 0 {
		t.Fatalf("results not applied: %+v", got.results)
	}
}

func TestUpdateTogglesScope(t *testing.T) {
	m := initialModel(nil, search.Options{Query: "x"})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(model).searchOpts.Scope != search.ScopeMetadata {
		t.Fatal("tab should switch to metadata scope")
	}
	if cmd == nil {
		t.Fatal("scope change should trigger a search")
	}
}
