package open

import (
	"strings"
	"testing"
)

func TestEditorCommand(t *testing.T) {
	cases := []struct {
		editor string
		want   string
	}{
		{"vim", "vim +12 /tmp/s.jsonl"},
		{"/usr/bin/nvim", "/usr/bin/nvim +12 /tmp/s.jsonl"},
		{"code", "code --goto /tmp/s.jsonl:12"},
		{"less", "less +12 /tmp/s.jsonl"},
		{"nano", "nano /tmp/s.jsonl"},
	}
	for _, tc := range cases {
		cmd := EditorCommand(tc.editor, "/tmp/s.jsonl", 12)
		if got := strings.Join(cmd.Args, " "); got != tc.want {
			t.Errorf("EditorCommand(%q) = %q, want %q", tc.editor, got, tc.want)
		}
	}
}
