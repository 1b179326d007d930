package history

import (
	"github.com/Zuo-Peng/claude-history/internal/log"
	"github.com/Zuo-Peng/claude-history/internal/parse"
)

// Assemble joins each entry to its transcript, keeping entry order. Entries
// whose transcript cannot be found or is empty come back with
// HasFullContent false and every index field intact.
func (r *Reader) Assemble(entries []parse.IndexEntry) []parse.ConversationRecord {
	if len(entries) == 0 {
		return nil
	}
	recs := make([]parse.ConversationRecord, len(entries))
	for i, e := range entries {
		recs[i] = r.assembleOne(e)
	}
	return recs
}

func (r *Reader) assembleOne(e parse.IndexEntry) parse.ConversationRecord {
	rec := parse.ConversationRecord{IndexEntry: e}
	if e.SessionID == "" {
		return rec
	}

	path, ok := r.resolver.Resolve(e.SessionID, e.Project)
	if !ok {
		log.Debug().Str("session", e.SessionID).Str("project", e.Project).Msg("transcript not found")
		return rec
	}

	msgs := r.loader.Load(path)
	if len(msgs) == 0 {
		return rec
	}
	rec.Messages = msgs
	rec.HasFullContent = true
	rec.TranscriptPath = path
	return rec
}
