package dc

import (
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// memo caches (pos, neg) -> RE across recursive calls, the same
// mutex-guarded generic LRU wrapper shape as the teacher pack's
// metadb.CachedDatabase, applied here to recursive subproblems instead of
// database lookups. A nil *memo (MemoSize == 0) always misses.
type memo struct {
	cache *lru.Cache[string, string]
	mu    sync.Mutex
}

func newMemo(size int) *memo {
	if size <= 0 {
		return nil
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil
	}
	return &memo{cache: cache}
}

func (m *memo) get(pos, neg []string) (string, bool) {
	if m == nil {
		return "", false
	}
	key := memoKey(pos, neg)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Get(key)
}

func (m *memo) put(pos, neg []string, re string) {
	if m == nil {
		return
	}
	key := memoKey(pos, neg)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Add(key, re)
}

// memoKey sorts copies of pos and neg before joining them, so two calls
// presenting the same sets in different orders share a cache entry.
func memoKey(pos, neg []string) string {
	p := append([]string(nil), pos...)
	n := append([]string(nil), neg...)
	sort.Strings(p)
	sort.Strings(n)
	var b strings.Builder
	b.WriteString(strings.Join(p, "\x00"))
	b.WriteString("\x01")
	b.WriteString(strings.Join(n, "\x00"))
	return b.String()
}
