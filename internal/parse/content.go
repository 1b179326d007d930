package parse

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ContentKind tags the shape of a message's content field.
type ContentKind int

const (
	Unsupported ContentKind = iota
	PlainText
	BlockSequence
)

func (k ContentKind) String() string {
	switch k {
	case PlainText:
		return "plain_text"
	case BlockSequence:
		return "block_sequence"
	default:
		return "unsupported"
	}
}

type BlockKind int

const (
	BlockOther BlockKind = iota
	BlockText
	BlockToolUse
	BlockBareString
)

// Block is one element of a block-sequence content field.
type Block struct {
	Kind BlockKind
	Text string // text blocks and bare strings
	Name string // tool_use blocks
}

// Content is the decoded form of a message's content field.
type Content struct {
	Kind   ContentKind
	Text   string
	Blocks []Block
}

type contentBlock struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
	Name *string `json:"name"`
}

// DecodeContent classifies a raw content value.
func DecodeContent(raw json.RawMessage) Content {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Content{}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Content{}
		}
		return Content{Kind: PlainText, Text: s}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return Content{}
		}
		blocks := make([]Block, 0, len(elems))
		for _, e := range elems {
			blocks = append(blocks, decodeBlock(e))
		}
		return Content{Kind: BlockSequence, Blocks: blocks}
	}
	return Content{}
}

func decodeBlock(raw json.RawMessage) Block {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Block{}
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return Block{Kind: BlockBareString, Text: s}
		}
	case '{':
		var b contentBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return Block{}
		}
		switch b.Type {
		case "text":
			blk := Block{Kind: BlockText}
			if b.Text != nil {
				blk.Text = *b.Text
			}
			return blk
		case "tool_use":
			blk := Block{Kind: BlockToolUse, Name: "unknown"}
			if b.Name != nil {
				blk.Name = *b.Name
			}
			return blk
		}
	}
	return Block{}
}

// Flatten returns the human-readable text of c. ok is false when c carries
// no usable text: unsupported shapes, empty strings, and block sequences
// that contribute nothing.
func (c Content) Flatten() (text string, ok bool) {
	switch c.Kind {
	case PlainText:
		return c.Text, c.Text != ""
	case BlockSequence:
		var parts []string
		for _, b := range c.Blocks {
			switch b.Kind {
			case BlockText, BlockBareString:
				parts = append(parts, b.Text)
			case BlockToolUse:
				parts = append(parts, "[using tool: "+b.Name+"]")
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, "\n"), true
	}
	return "", false
}

// ExtractText flattens the content field of a message payload
// ({"role": ..., "content": ...}).
func ExtractText(payload json.RawMessage) (string, bool) {
	var msg struct {
		Content json.RawMessage `json:"content"`
	}
	if len(bytes.TrimSpace(payload)) == 0 || json.Unmarshal(payload, &msg) != nil {
		return "", false
	}
	return DecodeContent(msg.Content).Flatten()
}
