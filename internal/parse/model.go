package parse

import "encoding/json"

// UnknownProject is used for index entries that carry no project.
const UnknownProject = "Unknown"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IndexEntry is one line of history.jsonl.
type IndexEntry struct {
	Timestamp     int64                      `json:"timestamp,omitempty"` // epoch ms, 0 if absent
	SessionID     string                     `json:"sessionId,omitempty"`
	Project       string                     `json:"project"`
	Display       string                     `json:"display"`
	FormattedTime string                     `json:"formattedTime"`
	Extra         map[string]json.RawMessage `json:"extra,omitempty"`
	Line          int                        `json:"-"`
}

// Message is one user or assistant turn of a transcript.
type Message struct {
	Role          Role   `json:"role"`
	Content       string `json:"content"`
	RawTimestamp  string `json:"timestamp,omitempty"`
	FormattedTime string `json:"formattedTime"`
	ID            string `json:"id,omitempty"`
	LineNumber    int    `json:"-"` // line number in original file
}

// ConversationRecord is an index entry joined to its transcript.
type ConversationRecord struct {
	IndexEntry
	Messages       []Message `json:"messages,omitempty"`
	HasFullContent bool      `json:"hasFullContent"`
	TranscriptPath string    `json:"-"`
}
