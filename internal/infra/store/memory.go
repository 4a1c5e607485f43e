package store

import (
	"sort"
	"sync"

	"github.com/rojanmagar2001/linkverify/internal/domain"
)

type entry struct {
	index int
	res   domain.Result
}

// Memory is a mutex-guarded accumulator of probe outcomes.
type Memory struct {
	mu      sync.Mutex
	entries []entry
}

func NewMemory(sizeHint int) *Memory {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Memory{entries: make([]entry, 0, sizeHint)}
}

func (m *Memory) Record(index int, res domain.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry{index: index, res: res})
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Partition splits the recorded outcomes into valid and invalid URLs, each in
// input order.
func (m *Memory) Partition() domain.URLLinksResult {
	m.mu.Lock()
	sorted := make([]entry, len(m.entries))
	copy(sorted, m.entries)
	m.mu.Unlock()

	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].index < sorted[j].index })

	out := domain.URLLinksResult{
		Valid:   []string{},
		Invalid: []string{},
	}
	for _, e := range sorted {
		if e.res.Reachable() {
			out.Valid = append(out.Valid, e.res.URL)
		} else {
			out.Invalid = append(out.Invalid, e.res.URL)
		}
	}
	return out
}
