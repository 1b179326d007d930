package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/claude-history/internal/history"
	"github.com/Zuo-Peng/claude-history/internal/parse"
)

// OpenSession opens sessionID's transcript in $EDITOR (less by default),
// positioned at the given message when hitMessage >= 0.
func OpenSession(reader *history.Reader, sessionID string, hitMessage int) error {
	filePath, ok := reader.TranscriptPath(sessionID)
	if !ok {
		return fmt.Errorf("transcript not found: %s", sessionID)
	}

	lineNum := 1
	if hitMessage >= 0 {
		msgs := parse.LoadTranscript(filePath)
		if hitMessage < len(msgs) {
			lineNum = msgs[hitMessage].LineNumber
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	cmd := EditorCommand(editor, filePath, lineNum)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// EditorCommand builds the command that opens filePath at lineNum for the
// editors that support a line argument.
func EditorCommand(editor, filePath string, lineNum int) *exec.Cmd {
	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		return exec.Command(editor, fmt.Sprintf("+%d", lineNum), filePath)
	case strings.Contains(editor, "code"):
		return exec.Command(editor, "--goto", filePath+":"+strconv.Itoa(lineNum))
	case strings.Contains(editor, "less"):
		return exec.Command(editor, "+"+strconv.Itoa(lineNum), filePath)
	default:
		return exec.Command(editor, filePath)
	}
}
