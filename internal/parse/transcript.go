package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/Zuo-Peng/claude-history/internal/log"
)

type transcriptRecord struct {
	Type      string          `json:"type"`
	Timestamp string          `json:"timestamp"`
	UUID      string          `json:"uuid"`
	Message   json.RawMessage `json:"message"`
}

// LoadTranscript reads a session transcript and returns its user and
// assistant turns in file order. It returns nil when the file is missing,
// unreadable or holds no usable turns. Malformed lines are logged and
// skipped.
func LoadTranscript(filePath string) []Message {
	f, err := os.Open(filePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", filePath).Msg("open transcript")
		}
		return nil
	}
	defer f.Close()

	return readTranscript(f, filePath)
}

func readTranscript(r io.Reader, name string) []Message {
	var messages []Message
	err := forEachLine(r, func(lineNum int, line []byte) bool {
		if len(bytes.TrimSpace(line)) == 0 {
			return true
		}

		var rec transcriptRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			log.Warn().Err(err).Str("file", name).Int("line", lineNum).Msg("skip malformed transcript line")
			return true
		}

		if rec.Type != string(RoleUser) && rec.Type != string(RoleAssistant) {
			return true
		}

		text, ok := ExtractText(rec.Message)
		if !ok || text == "" {
			return true
		}

		messages = append(messages, Message{
			Role:          Role(rec.Type),
			Content:       text,
			RawTimestamp:  rec.Timestamp,
			FormattedTime: FormatISO(rec.Timestamp),
			ID:            rec.UUID,
			LineNumber:    lineNum,
		})
		return true
	})
	if err != nil {
		log.Warn().Err(err).Str("file", name).Msg("stop reading transcript")
	}

	if len(messages) == 0 {
		return nil
	}
	return messages
}
