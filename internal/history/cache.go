package history

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Zuo-Peng/claude-history/internal/parse"
)

// TranscriptLoader turns a resolved transcript path into messages.
type TranscriptLoader interface {
	Load(path string) []parse.Message
}

type fileLoader struct{}

func (fileLoader) Load(path string) []parse.Message {
	return parse.LoadTranscript(path)
}

type cacheKey struct {
	path  string
	mtime int64
	size  int64
}

// cachedLoader memoizes transcripts per file version. An appended or
// rewritten file changes mtime or size and therefore misses.
type cachedLoader struct {
	next  TranscriptLoader
	cache *lru.Cache[cacheKey, []parse.Message]
}

func newCachedLoader(next TranscriptLoader, size int) (*cachedLoader, error) {
	c, err := lru.New[cacheKey, []parse.Message](size)
	if err != nil {
		return nil, err
	}
	return &cachedLoader{next: next, cache: c}, nil
}

func (l *cachedLoader) Load(path string) []parse.Message {
	info, err := os.Stat(path)
	if err != nil {
		return l.next.Load(path)
	}
	key := cacheKey{path: path, mtime: info.ModTime().UnixNano(), size: info.Size()}
	if msgs, ok := l.cache.Get(key); ok {
		return msgs
	}
	msgs := l.next.Load(path)
	l.cache.Add(key, msgs)
	return msgs
}
