package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Zuo-Peng/claude-history/internal/parse"
)

type Scope int

const (
	// ScopeFull matches the display text or any transcript message.
	ScopeFull Scope = iota
	// ScopeMetadata matches the display text only.
	ScopeMetadata
)

// ParseScope maps "meta"/"metadata" to ScopeMetadata and anything else to
// ScopeFull.
func ParseScope(s string) Scope {
	switch strings.ToLower(s) {
	case "meta", "metadata", "display":
		return ScopeMetadata
	default:
		return ScopeFull
	}
}

type Options struct {
	Query   string
	Project string // "" = all projects; exact match otherwise
	Scope   Scope
	Limit   int // 0 = no limit
}

type Result struct {
	Record parse.ConversationRecord
	// MessageIndex is the first matching message, or -1 when the display
	// text matched.
	MessageIndex int
	Snippet      string
}

const snippetContext = 40

// Run filters records and annotates each hit with a snippet. Output keeps
// input order.
func Run(records []parse.ConversationRecord, opts Options) []Result {
	q := fold(opts.Query)
	if q == "" {
		return nil
	}

	var results []Result
	for _, rec := range records {
		if opts.Project != "" && rec.Project != opts.Project {
			continue
		}
		idx, ok := match(rec, q, opts.Scope)
		if !ok {
			continue
		}
		text := rec.Display
		if idx >= 0 {
			text = rec.Messages[idx].Content
		}
		results = append(results, Result{
			Record:       rec,
			MessageIndex: idx,
			Snippet:      Snippet(text, opts.Query, snippetContext),
		})
		if opts.Limit > 0 && len(results) >= opts.Limit {
			break
		}
	}
	return results
}

// Metadata returns records whose display text contains query.
func Metadata(records []parse.ConversationRecord, query, project string) []parse.ConversationRecord {
	return unwrap(Run(records, Options{Query: query, Project: project, Scope: ScopeMetadata}))
}

// Full returns records whose display text or transcript contains query.
func Full(records []parse.ConversationRecord, query, project string) []parse.ConversationRecord {
	return unwrap(Run(records, Options{Query: query, Project: project, Scope: ScopeFull}))
}

func unwrap(results []Result) []parse.ConversationRecord {
	if len(results) == 0 {
		return nil
	}
	out := make([]parse.ConversationRecord, len(results))
	for i, r := range results {
		out[i] = r.Record
	}
	return out
}

// match reports whether rec contains the folded query q.
func match(rec parse.ConversationRecord, q string, scope Scope) (int, bool) {
	if strings.Contains(fold(rec.Display), q) {
		return -1, true
	}
	if scope == ScopeMetadata || !rec.HasFullContent {
		return 0, false
	}
	for i, m := range rec.Messages {
		if strings.Contains(fold(m.Content), q) {
			return i, true
		}
	}
	return 0, false
}

// fold lower-cases s rune by rune so folded and original text stay aligned.
func fold(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// Snippet extracts an excerpt around the first case-insensitive occurrence
// of query in text, marking the hit with >>> and <<<.
func Snippet(text, query string, contextChars int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)

	folded := fold(text)
	idx := -1
	if query != "" {
		idx = strings.Index(folded, fold(query))
	}
	if idx < 0 {
		// no match, return head
		if len(runes) > contextChars*2 {
			return string(runes[:contextChars*2]) + "..."
		}
		return text
	}

	runePos := utf8.RuneCountInString(folded[:idx])
	qLen := utf8.RuneCountInString(query)
	start := runePos - contextChars
	if start < 0 {
		start = 0
	}
	end := runePos + qLen + contextChars
	if end > len(runes) {
		end = len(runes)
	}
	prefix := ""
	suffix := ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(runes) {
		suffix = "..."
	}
	return prefix + string(runes[start:runePos]) +
		">>>" + string(runes[runePos:runePos+qLen]) + "<<<" +
		string(runes[runePos+qLen:end]) + suffix
}
