package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/Zuo-Peng/claude-history/internal/log"
)

type HistoryOptions struct {
	// Strict aborts the whole load on the first malformed line and returns
	// no entries. The default skips the line and keeps going.
	Strict bool
}

var knownHistoryKeys = map[string]bool{
	"timestamp": true,
	"sessionId": true,
	"project":   true,
	"display":   true,
}

// LoadHistory reads history.jsonl and returns its entries sorted newest
// first. A missing file yields no entries.
func LoadHistory(filePath string, opts HistoryOptions) []IndexEntry {
	f, err := os.Open(filePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", filePath).Msg("open history")
		}
		return nil
	}
	defer f.Close()

	return ReadHistory(f, filePath, opts)
}

// ReadHistory is LoadHistory over an already-open reader.
func ReadHistory(r io.Reader, name string, opts HistoryOptions) []IndexEntry {
	var entries []IndexEntry
	aborted := false
	err := forEachLine(r, func(lineNum int, line []byte) bool {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			return true
		}

		entry, err := decodeIndexEntry(line)
		if err != nil {
			if opts.Strict {
				log.Warn().Err(err).Str("file", name).Int("line", lineNum).Msg("abort history load on malformed line")
				aborted = true
				return false
			}
			log.Warn().Err(err).Str("file", name).Int("line", lineNum).Msg("skip malformed history line")
			return true
		}
		entry.Line = lineNum
		entries = append(entries, entry)
		return true
	})
	if aborted {
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Str("file", name).Msg("stop reading history")
		if opts.Strict {
			return nil
		}
	}

	// newest first; ties keep file order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries
}

func decodeIndexEntry(line []byte) (IndexEntry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return IndexEntry{}, err
	}
	if fields == nil {
		return IndexEntry{}, errors.New("history line is not an object")
	}

	entry := IndexEntry{Project: UnknownProject}
	if raw, ok := fields["timestamp"]; ok {
		entry.Timestamp = decodeMillis(raw)
	}
	if raw, ok := fields["sessionId"]; ok {
		_ = json.Unmarshal(raw, &entry.SessionID)
	}
	if raw, ok := fields["project"]; ok {
		var p string
		// null and "" keep the Unknown default
		if json.Unmarshal(raw, &p) == nil && p != "" {
			entry.Project = p
		}
	}
	if raw, ok := fields["display"]; ok {
		_ = json.Unmarshal(raw, &entry.Display)
	}
	entry.FormattedTime = FormatMillis(entry.Timestamp)

	for k, v := range fields {
		if knownHistoryKeys[k] {
			continue
		}
		if entry.Extra == nil {
			entry.Extra = make(map[string]json.RawMessage)
		}
		entry.Extra[k] = v
	}
	return entry, nil
}

func decodeMillis(raw json.RawMessage) int64 {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return int64(f)
	}
	return 0
}
