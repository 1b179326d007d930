package parse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTranscriptUserLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s1.jsonl")
	writeFile(t, path, `{"type":"user","uuid":"u1","timestamp":"2025-01-02T03:04:05Z","message":{"role":"user","content":"hello"}}`)

	msgs := LoadTranscript(path)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Role != RoleUser || m.Content != "hello" {
		t.Fatalf("unexpected message: %+v", m)
	}
	if m.ID != "u1" || m.RawTimestamp != "2025-01-02T03:04:05Z" || m.FormattedTime != "2025-01-02 03:04:05" {
		t.Fatalf("unexpected metadata: %+v", m)
	}
}

func TestLoadTranscriptFiltersAndSkips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s2.jsonl")
	writeFile(t, path,
		`{"type":"summary","summary":"a summary"}`,
		`{"type":"system","message":{"content":"system text"}}`,
		`{"type":"user","message":{"role":"user","content":"first"}}`,
		`not json at all`,
		``,
		`{"type":"assistant","message":{"role":"assistant","content":[{"type":"text","text":"a"},{"type":"tool_use","name":"grep"},{"type":"text","text":"b"}]}}`,
		`{"type":"user","message":{"role":"user","content":[{"type":"tool_result","content":"x"}]}}`,
		`{"type":"assistant","message":{"role":"assistant","content":""}}`,
		`{"type":"assistant","message":{"role":"assistant","content":"last"}}`,
	)

	msgs := LoadTranscript(path)
	want := []struct {
		role    Role
		content string
	}{
		{RoleUser, "first"},
		{RoleAssistant, "a\n[using tool: grep]\nb"},
		{RoleAssistant, "last"},
	}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %d: %+v", len(want), len(msgs), msgs)
	}
	for i, w := range want {
		if msgs[i].Role != w.role || msgs[i].Content != w.content {
			t.Fatalf("message %d = %+v, want %+v", i, msgs[i], w)
		}
		if msgs[i].Content == "" {
			t.Fatalf("message %d has empty content", i)
		}
	}
	if msgs[0].LineNumber != 3 || msgs[2].LineNumber != 9 {
		t.Fatalf("unexpected line numbers: %d, %d", msgs[0].LineNumber, msgs[2].LineNumber)
	}
	if msgs[0].FormattedTime != UnknownTime {
		t.Fatalf("missing timestamp should format as %q", UnknownTime)
	}
}

func TestLoadTranscriptSystemAlwaysDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s3.jsonl")
	writeFile(t, path,
		`{"type":"system","message":{"content":"plain"}}`,
		`{"type":"system","message":{"content":[{"type":"text","text":"blocks"}]}}`,
	)
	if msgs := LoadTranscript(path); msgs != nil {
		t.Fatalf("expected no transcript, got %+v", msgs)
	}
}

func TestLoadTranscriptMissing(t *testing.T) {
	if msgs := LoadTranscript(filepath.Join(t.TempDir(), "nope.jsonl")); msgs != nil {
		t.Fatalf("expected nil, got %+v", msgs)
	}
}

func TestLoadTranscriptLongLine(t *testing.T) {
	big := strings.Repeat("y", 11<<20)
	path := filepath.Join(t.TempDir(), "s4.jsonl")
	writeFile(t, path,
		`{"type":"user","message":{"role":"user","content":"first"}}`,
		`{"type":"user","message":{"role":"user","content":"`+big+`"}}`,
		`{"type":"assistant","message":{"role":"assistant","content":"after big line"}}`,
	)

	msgs := LoadTranscript(path)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if len(msgs[1].Content) != len(big) {
		t.Fatalf("long message truncated to %d bytes", len(msgs[1].Content))
	}
	if msgs[2].Content != "after big line" || msgs[2].LineNumber != 3 {
		t.Fatalf("unexpected last message: %q line %d", msgs[2].Content, msgs[2].LineNumber)
	}
}

func TestLoadTranscriptCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s5.jsonl")
	body := `{"type":"user","message":{"role":"user","content":"one"}}` + "\r\n" +
		`{"type":"user","message":{"role":"user","content":"two"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	msgs := LoadTranscript(path)
	if len(msgs) != 2 || msgs[1].Content != "two" || msgs[1].LineNumber != 2 {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}
