package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Zuo-Peng/claude-history/internal/config"
	"github.com/Zuo-Peng/claude-history/internal/log"
	"github.com/Zuo-Peng/claude-history/internal/parse"
	"github.com/Zuo-Peng/claude-history/internal/scan"
	"github.com/Zuo-Peng/claude-history/internal/search"
)

type Options struct {
	HistoryFile string
	ProjectsDir string
	DebugDir    string
	StrictIndex bool
	// CacheSize > 0 keeps up to that many parsed transcripts keyed by file
	// path, mtime and size. 0 re-reads every transcript on every call.
	CacheSize int
}

// Reader is the read-only query surface over the assistant's logs. Every
// call reloads history.jsonl; full-content calls also re-resolve and re-read
// each transcript unless a cache is configured. A Reader holds no other
// state and is safe for concurrent use.
type Reader struct {
	opts     Options
	resolver *scan.Resolver
	loader   TranscriptLoader
}

func New(opts Options) (*Reader, error) {
	r := &Reader{
		opts:     opts,
		resolver: scan.NewResolver(opts.ProjectsDir),
		loader:   fileLoader{},
	}
	if opts.CacheSize > 0 {
		cl, err := newCachedLoader(r.loader, opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("transcript cache: %w", err)
		}
		r.loader = cl
	}
	return r, nil
}

func FromConfig(cfg *config.Config) (*Reader, error) {
	opts := Options{
		HistoryFile: cfg.HistoryFile(),
		ProjectsDir: cfg.ProjectsDir(),
		DebugDir:    cfg.DebugDir(),
		StrictIndex: cfg.StrictIndex,
	}
	if cfg.CacheTranscripts {
		opts.CacheSize = cfg.CacheSize
	}
	return New(opts)
}

func (r *Reader) Options() Options {
	return r.opts
}

func (r *Reader) LoadIndex() []parse.IndexEntry {
	return parse.LoadHistory(r.opts.HistoryFile, parse.HistoryOptions{Strict: r.opts.StrictIndex})
}

func (r *Reader) Summarize() Summary {
	return Summarize(r.LoadIndex())
}

// Projects lists the distinct projects in the index, sorted.
func (r *Reader) Projects() []string {
	return r.Summarize().Projects
}

func (r *Reader) AssembleAll() []parse.ConversationRecord {
	return r.Assemble(r.LoadIndex())
}

// Search returns records whose display text or transcript contains query.
func (r *Reader) Search(query, project string) []parse.ConversationRecord {
	return search.Full(r.AssembleAll(), query, project)
}

// SearchMetadata matches display text only. Transcripts are read for the
// matching entries alone.
func (r *Reader) SearchMetadata(query, project string) []parse.ConversationRecord {
	shallow := bare(r.LoadIndex())
	hits := search.Metadata(shallow, query, project)
	entries := make([]parse.IndexEntry, len(hits))
	for i, h := range hits {
		entries[i] = h.IndexEntry
	}
	return r.Assemble(entries)
}

// Find runs a search and returns annotated results.
func (r *Reader) Find(opts search.Options) []search.Result {
	if opts.Scope == search.ScopeMetadata {
		results := search.Run(bare(r.LoadIndex()), opts)
		for i := range results {
			results[i].Record = r.assembleOne(results[i].Record.IndexEntry)
		}
		return results
	}
	return search.Run(r.AssembleAll(), opts)
}

type Detail struct {
	Conversation *parse.ConversationRecord `json:"conversation"`
	DebugLogs    *string                   `json:"debugLogs"`
	HasLogs      bool                      `json:"hasLogs"`
}

// Conversation returns the newest index occurrence of sessionID together
// with its debug log. ok is false when neither exists.
func (r *Reader) Conversation(sessionID string) (Detail, bool) {
	var d Detail
	for _, e := range r.LoadIndex() {
		if e.SessionID == sessionID {
			rec := r.assembleOne(e)
			d.Conversation = &rec
			break
		}
	}
	if logs, ok := r.ResolveDebugLog(sessionID); ok {
		d.DebugLogs = &logs
		d.HasLogs = true
	}
	return d, d.Conversation != nil || d.HasLogs
}

// TranscriptPath resolves the transcript for sessionID, using the project
// recorded in the index when there is one.
func (r *Reader) TranscriptPath(sessionID string) (string, bool) {
	project := ""
	for _, e := range r.LoadIndex() {
		if e.SessionID == sessionID {
			project = e.Project
			break
		}
	}
	return r.resolver.Resolve(sessionID, project)
}

// ResolveDebugLog returns debug/<sessionID>.txt verbatim.
func (r *Reader) ResolveDebugLog(sessionID string) (string, bool) {
	if r.opts.DebugDir == "" || !scan.ValidSessionID(sessionID) {
		return "", false
	}
	path := filepath.Join(r.opts.DebugDir, sessionID+".txt")
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", path).Msg("read debug log")
		}
		return "", false
	}
	return string(b), true
}

// bare wraps entries as records without transcripts.
func bare(entries []parse.IndexEntry) []parse.ConversationRecord {
	recs := make([]parse.ConversationRecord, len(entries))
	for i, e := range entries {
		recs[i] = parse.ConversationRecord{IndexEntry: e}
	}
	return recs
}
