package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/claude-history/internal/parse"
)

const (
	colorReset   = "\033[0m"
	colorUser    = "\033[1;34m" // bold blue
	colorAssist  = "\033[1;32m" // bold green
	colorDim     = "\033[2m"
	colorHit     = "\033[43m"   // yellow background
	colorBoldRed = "\033[1;31m" // bold red for keyword highlights
)

type Options struct {
	HitMessage int    // index of the message to mark, -1 for none
	Context    int    // messages before/after hit to show; <0 shows all
	Width      int    // wrap width (0 = no wrap)
	Query      string // search query for keyword highlighting
	NoColor    bool
}

// highlightKeywords wraps case-insensitive matches of query in bold red.
// Matching is done on runes folded one at a time, so offsets in the folded
// text are offsets in the original.
func highlightKeywords(text, query string) string {
	if query == "" {
		return text
	}
	runes := []rune(text)
	folded := []rune(strings.Map(unicode.ToLower, text))
	q := []rune(strings.Map(unicode.ToLower, query))

	var b strings.Builder
	last := 0
	for i := 0; i+len(q) <= len(folded); {
		if !equalRunes(folded[i:i+len(q)], q) {
			i++
			continue
		}
		b.WriteString(string(runes[last:i]))
		b.WriteString(colorBoldRed)
		b.WriteString(string(runes[i : i+len(q)]))
		b.WriteString(colorReset)
		i += len(q)
		last = i
	}
	if last == 0 {
		return text
	}
	b.WriteString(string(runes[last:]))
	return b.String()
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// indentLines prepends each line of text with the given prefix.
func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// Conversation renders a record and returns the text and the 0-based line
// of the hit message header (-1 if there is no hit).
func Conversation(rec parse.ConversationRecord, opts Options) (string, int) {
	if opts.Context == 0 {
		opts.Context = 10
	}

	var b strings.Builder
	hitLine := -1
	lineCount := 0

	writeLine := func(s string) {
		if opts.NoColor {
			s = stripANSI(s)
		}
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
			lineCount++
		}
	}

	writeLine(fmt.Sprintf("%s--- %s [%s] %s ---%s", colorDim, rec.FormattedTime, rec.Project, rec.SessionID, colorReset))
	writeLine(highlightKeywords(rec.Display, opts.Query))

	if !rec.HasFullContent {
		writeLine(colorDim + "(transcript not available)" + colorReset)
		return b.String(), -1
	}

	msgs := rec.Messages
	start, end := 0, len(msgs)
	if opts.Context > 0 && opts.HitMessage >= 0 && opts.HitMessage < len(msgs) {
		start = max(opts.HitMessage-opts.Context, 0)
		end = min(opts.HitMessage+opts.Context+1, len(msgs))
	}

	separator := colorDim + strings.Repeat("-", 50) + colorReset
	writeLine(separator)

	if start > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages before) ...%s", colorDim, start, colorReset))
	}

	for i := start; i < end; i++ {
		m := msgs[i]
		isHit := i == opts.HitMessage

		if i > start {
			writeLine(separator)
		}
		if isHit {
			hitLine = lineCount
		}

		roleColor, roleLabel := colorAssist, "ASST"
		if m.Role == parse.RoleUser {
			roleColor, roleLabel = colorUser, "USER"
		}

		if isHit {
			writeLine(fmt.Sprintf("%s>> %s > %s <<%s", colorHit, roleLabel, m.FormattedTime, colorReset))
		} else {
			writeLine(fmt.Sprintf("%s%s >%s %s%s%s", roleColor, roleLabel, colorReset, colorDim, m.FormattedTime, colorReset))
		}

		text := indentLines(highlightKeywords(m.Content, opts.Query), "  ")
		for _, tl := range strings.Split(text, "\n") {
			writeLine(tl)
		}
		writeLine("")
	}

	if after := len(msgs) - end; after > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages after) ...%s", colorDim, after, colorReset))
	}

	return b.String(), hitLine
}

func stripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
