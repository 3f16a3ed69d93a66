package memory

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps the companions, session_history and bookmarks tables in process memory.
// Rows never expire. Like the hosted store it enforces no uniqueness beyond primary keys.
type Store struct {
	companions *table
	sessions   *table
	bookmarks  *table

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		companions: newTable(),
		sessions:   newTable(),
		bookmarks:  newTable(),
		now:        time.Now,
	}
}

type record struct {
	seq   uint64
	value any
}

type table struct {
	items *cache.Cache
	seq   atomic.Uint64
}

func newTable() *table {
	// cleanup interval 0 disables the janitor; nothing expires anyway
	return &table{items: cache.New(cache.NoExpiration, 0)}
}

func (t *table) insert(id string, value any) {
	t.items.Set(id, record{seq: t.seq.Add(1), value: value}, cache.NoExpiration)
}

func (t *table) get(id string) (any, bool) {
	x, found := t.items.Get(id)
	if !found {
		return nil, false
	}
	return x.(record).value, true
}

func (t *table) delete(id string) {
	t.items.Delete(id)
}

// scan returns every row in insertion order.
func (t *table) scan() []record {
	items := t.items.Items()
	rows := make([]record, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.Object.(record))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	return rows
}
