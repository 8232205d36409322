// Package dedupe tracks which wallet addresses a batch has already scored.
package dedupe

import (
	"context"
	"sync"

	"github.com/okian/beastscore/internal/domain/model"
)

// defaultMaxSize bounds the set when no option is given.
const defaultMaxSize = 50_000

// Deduper records seen addresses so each is scored at most once per batch.
type Deduper interface {
	// SeenAndRecord atomically checks if addr was seen and records it if not.
	// Returns true if addr was already seen.
	SeenAndRecord(ctx context.Context, addr model.Address) bool

	// Size returns the number of distinct addresses remembered.
	Size() int64
}

// addressSet implements Deduper with a map plus an insertion-order ring used
// for oldest-first eviction when bounded.
type addressSet struct {
	mu      sync.Mutex
	seen    map[model.Address]struct{}
	order   []model.Address
	maxSize int // <= 0 means unbounded
}

// NewAddressSet creates a deduper with configuration options.
func NewAddressSet(opts ...Option) Deduper {
	d := &addressSet{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[model.Address]struct{})
	return d
}

func (d *addressSet) SeenAndRecord(_ context.Context, addr model.Address) bool {
	key := model.Canonical(string(addr))

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		d.evictOldest()
	}
	d.seen[key] = struct{}{}
	d.order = append(d.order, key)
	return false
}

// evictOldest drops the earliest recorded address. Caller holds d.mu.
func (d *addressSet) evictOldest() {
	if len(d.order) == 0 {
		return
	}
	oldest := d.order[0]
	d.order = d.order[1:]
	delete(d.seen, oldest)
}

func (d *addressSet) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
