package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zuo-Peng/claude-history/internal/parse"
	"github.com/Zuo-Peng/claude-history/internal/search"
)

type fixture struct {
	dir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{dir: t.TempDir()}
}

func (f *fixture) write(t *testing.T, rel string, lines ...string) string {
	t.Helper()
	path := filepath.Join(f.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func (f *fixture) reader(t *testing.T, cacheSize int) *Reader {
	t.Helper()
	r, err := New(Options{
		HistoryFile: filepath.Join(f.dir, "history.jsonl"),
		ProjectsDir: filepath.Join(f.dir, "projects"),
		DebugDir:    filepath.Join(f.dir, "debug"),
		CacheSize:   cacheSize,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return r
}

// standard writes an index with four entries:
//
//	s1 twice (resumed), s2 with a transcript under another project dir,
//	s3 with no transcript, and one entry without a session id.
func standard(t *testing.T) *fixture {
	f := newFixture(t)
	f.write(t, "history.jsonl",
		`{"display":"fix the build","timestamp":1000,"project":"/work/app","sessionId":"s1"}`,
		`{"display":"moved project","timestamp":2000,"project":"/old/place","sessionId":"s2"}`,
		`{"display":"lost transcript","timestamp":3000,"project":"/work/app","sessionId":"s3"}`,
		`{"display":"resume build","timestamp":4000,"project":"/work/app","sessionId":"s1"}`,
		`{"display":"no session","timestamp":500}`,
	)
	f.write(t, "projects/work-app/s1.jsonl",
		`{"type":"user","uuid":"a","timestamp":"2025-01-01T10:00:00Z","message":{"role":"user","content":"why does the build fail"}}`,
		`{"type":"assistant","uuid":"b","timestamp":"2025-01-01T10:00:05Z","message":{"role":"assistant","content":[{"type":"text","text":"Missing import."},{"type":"tool_use","name":"Edit"}]}}`,
	)
	f.write(t, "projects/new-place/s2.jsonl",
		`{"type":"user","message":{"role":"user","content":"Deploy to staging"}}`,
	)
	f.write(t, "projects/work-app/s3.jsonl",
		`{"type":"system","message":{"content":"only system"}}`,
	)
	f.write(t, "debug/s1.txt", "debug line 1", "debug line 2")
	return f
}

func TestAssembleAll(t *testing.T) {
	r := standard(t).reader(t, 0)
	recs := r.AssembleAll()
	if len(recs) != 5 {
		t.Fatalf("expected one record per index line, got %d", len(recs))
	}

	var order []string
	for _, rec := range recs {
		order = append(order, rec.Display)
	}
	if got := strings.Join(order, "|"); got != "resume build|lost transcript|moved project|fix the build|no session" {
		t.Fatalf("unexpected order: %s", got)
	}

	resumed, original := recs[0], recs[3]
	if !resumed.HasFullContent || !original.HasFullContent {
		t.Fatal("both occurrences of s1 should resolve")
	}
	if len(resumed.Messages) != 2 || len(original.Messages) != 2 {
		t.Fatalf("unexpected message counts %d/%d", len(resumed.Messages), len(original.Messages))
	}
	for i := range resumed.Messages {
		if resumed.Messages[i] != original.Messages[i] {
			t.Fatalf("message %d differs between occurrences", i)
		}
	}
	if resumed.Messages[1].Content != "Missing import.\n[using tool: Edit]" {
		t.Fatalf("unexpected assistant content %q", resumed.Messages[1].Content)
	}

	if !recs[2].HasFullContent || recs[2].Messages[0].Content != "Deploy to staging" {
		t.Fatalf("fallback resolution failed: %+v", recs[2])
	}

	lost := recs[1]
	if lost.HasFullContent || lost.Messages != nil {
		t.Fatalf("system-only transcript should count as missing: %+v", lost)
	}
	if lost.SessionID != "s3" || lost.Project != "/work/app" || lost.Display != "lost transcript" {
		t.Fatalf("index fields not preserved: %+v", lost.IndexEntry)
	}

	if recs[4].HasFullContent || recs[4].Project != parse.UnknownProject {
		t.Fatalf("entry without session: %+v", recs[4])
	}
}

func TestSearch(t *testing.T) {
	r := standard(t).reader(t, 0)

	full := r.Search("DEPLOY", "")
	if len(full) != 1 || full[0].SessionID != "s2" {
		t.Fatalf("content search = %+v", full)
	}

	build := r.Search("build", "/work/app")
	if len(build) != 2 || build[0].Display != "resume build" || build[1].Display != "fix the build" {
		t.Fatalf("project-filtered search = %+v", build)
	}

	if res := r.Search("missing import", "/old/place"); res != nil {
		t.Fatalf("project filter should exclude content hits, got %+v", res)
	}

	meta := r.SearchMetadata("deploy", "")
	if meta != nil {
		t.Fatalf("metadata search must ignore transcript text, got %+v", meta)
	}
	meta = r.SearchMetadata("Moved", "")
	if len(meta) != 1 || !meta[0].HasFullContent {
		t.Fatalf("metadata hits should be assembled: %+v", meta)
	}
}

func TestFindMetadataScope(t *testing.T) {
	r := standard(t).reader(t, 0)
	res := r.Find(search.Options{Query: "build", Scope: search.ScopeMetadata})
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if !res[0].Record.HasFullContent || res[0].MessageIndex != -1 {
		t.Fatalf("unexpected result: %+v", res[0])
	}
}

func TestSummarize(t *testing.T) {
	s := standard(t).reader(t, 0).Summarize()
	if s.Total != 5 || s.Sessions != 3 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if got := strings.Join(s.Projects, ","); got != "/old/place,/work/app,Unknown" {
		t.Fatalf("unexpected projects: %s", got)
	}
	if s.DateRange == nil ||
		s.DateRange.Earliest != parse.FormatMillis(500) ||
		s.DateRange.Latest != parse.FormatMillis(4000) {
		t.Fatalf("unexpected date range: %+v", s.DateRange)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := newFixture(t).reader(t, 0).Summarize()
	if s.Total != 0 || len(s.Projects) != 0 || s.Sessions != 0 || s.DateRange != nil {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

func TestSummarizeWithoutTimestamps(t *testing.T) {
	s := Summarize([]parse.IndexEntry{{Project: "/a", Display: "x"}})
	if s.Total != 1 || s.DateRange != nil {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummarizeNegativeTimestamps(t *testing.T) {
	s := Summarize([]parse.IndexEntry{
		{Project: "/a", Timestamp: -5000},
		{Project: "/a", Timestamp: -1000},
	})
	if s.DateRange == nil ||
		s.DateRange.Earliest != parse.FormatMillis(-5000) ||
		s.DateRange.Latest != parse.FormatMillis(-1000) {
		t.Fatalf("unexpected date range: %+v", s.DateRange)
	}
}

func TestConversationAndDebugLog(t *testing.T) {
	r := standard(t).reader(t, 0)

	d, ok := r.Conversation("s1")
	if !ok || d.Conversation == nil || d.Conversation.Display != "resume build" {
		t.Fatalf("unexpected detail: %+v", d)
	}
	if !d.HasLogs || *d.DebugLogs != "debug line 1\ndebug line 2\n" {
		t.Fatalf("unexpected debug logs: %+v", d)
	}

	d, ok = r.Conversation("s2")
	if !ok || d.HasLogs || d.DebugLogs != nil {
		t.Fatalf("s2 has no debug log: %+v", d)
	}

	if _, ok := r.Conversation("nope"); ok {
		t.Fatal("unknown session should not be found")
	}
	if _, ok := r.ResolveDebugLog("../history"); ok {
		t.Fatal("debug lookup must reject traversal")
	}
}

func TestTranscriptPath(t *testing.T) {
	f := standard(t)
	r := f.reader(t, 0)
	p, ok := r.TranscriptPath("s2")
	if !ok || p != filepath.Join(f.dir, "projects", "new-place", "s2.jsonl") {
		t.Fatalf("TranscriptPath = (%s, %v)", p, ok)
	}
	if _, ok := r.TranscriptPath("s9"); ok {
		t.Fatal("unknown session should not resolve")
	}
}

func TestReloadEveryCall(t *testing.T) {
	for _, size := range []int{0, 8} {
		f := standard(t)
		r := f.reader(t, size)

		if got := len(r.AssembleAll()[2].Messages); got != 1 {
			t.Fatalf("cache=%d: expected 1 message, got %d", size, got)
		}
		f.write(t, "projects/new-place/s2.jsonl",
			`{"type":"user","message":{"role":"user","content":"Deploy to staging"}}`,
			`{"type":"assistant","message":{"role":"assistant","content":"Deployed."}}`,
		)
		f.write(t, "history.jsonl",
			`{"display":"moved project","timestamp":2000,"project":"/old/place","sessionId":"s2"}`,
		)

		recs := r.AssembleAll()
		if len(recs) != 1 {
			t.Fatalf("cache=%d: index not reloaded, got %d records", size, len(recs))
		}
		if got := len(recs[0].Messages); got != 2 {
			t.Fatalf("cache=%d: transcript not reloaded, got %d messages", size, got)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, p := Paginate(items, 2, 2)
	if len(got) != 2 || got[0] != 3 || !p.HasPrev || !p.HasNext || p.Pages != 3 || p.Total != 5 {
		t.Fatalf("page 2 = %v %+v", got, p)
	}
	got, p = Paginate(items, 3, 2)
	if len(got) != 1 || p.HasNext {
		t.Fatalf("last page = %v %+v", got, p)
	}
	got, p = Paginate(items, 0, 0)
	if len(got) != 5 || p.Page != 1 || p.PerPage != DefaultPerPage || p.HasPrev {
		t.Fatalf("defaults = %v %+v", got, p)
	}
	if got, _ = Paginate(items, 9, 2); got != nil {
		t.Fatalf("out of range page should be empty, got %v", got)
	}
}
