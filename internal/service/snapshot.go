package service

import (
	"sort"
	"sync"
)

type entry[T any] struct {
	item T
	seq  uint64
}

// lateWrite is a write that landed while an older fetch was still in flight.
type lateWrite[T any] struct {
	entry[T]
	created bool
	removed bool
}

// listCache is the local, non authoritative copy of one collection.
//
// Every fetch and write takes a sequence number when it is issued. A fetch result is
// committed only if no later fetch was issued, and a write result is merged only if the
// cached entity was not produced by a later operation. Writes issued after the committed
// fetch are replayed over its result. Out of order responses therefore never overwrite
// newer local state.
type listCache[T any] struct {
	mu        sync.RWMutex
	id        func(T) string
	keep      func(T) bool
	entries   []entry[T]
	late      map[string]lateWrite[T]
	seq       uint64
	lastFetch uint64
	loading   int
	version   uint64
}

func newListCache[T any](id func(T) string) *listCache[T] {
	return &listCache[T]{id: id}
}

func (c *listCache[T]) beginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.lastFetch = c.seq
	c.loading++
	return c.seq
}

func (c *listCache[T]) endFetch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--
	if c.loading == 0 {
		c.late = nil
	}
}

// commitFetch replaces the list with items when seq is the latest issued fetch.
// keep reports whether an entity belongs to the list and is consulted by later
// writes; nil keeps everything.
func (c *listCache[T]) commitFetch(seq uint64, items []T, keep func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.lastFetch {
		return false
	}

	late := c.late
	c.late = nil
	c.keep = keep

	var created []entry[T]
	for id, w := range late {
		if w.created && !w.removed && c.belongs(w.item) && !containsID(items, id, c.id) {
			created = append(created, w.entry)
		}
	}
	sort.Slice(created, func(i, j int) bool { return created[i].seq > created[j].seq })

	entries := make([]entry[T], 0, len(created)+len(items))
	entries = append(entries, created...)
	for _, item := range items {
		e := entry[T]{item: item, seq: seq}
		if w, ok := late[c.id(item)]; ok {
			if w.removed || !c.belongs(w.item) {
				continue
			}
			e = w.entry
		}
		entries = append(entries, e)
	}
	c.entries = entries
	c.version++
	return true
}

func (c *listCache[T]) beginWrite() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// prepend adds a created entity. An entity already cached, because a fetch issued
// after the create returned it, is merged instead.
func (c *listCache[T]) prepend(seq uint64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noteLate(lateWrite[T]{entry: entry[T]{item: item, seq: seq}, created: true})
	if i := c.indexOf(c.id(item)); i >= 0 {
		return c.replace(i, seq, item)
	}
	if !c.belongs(item) {
		return false
	}
	c.entries = append([]entry[T]{{item: item, seq: seq}}, c.entries...)
	c.version++
	return true
}

// merge replaces the cached entity with the same id. It is dropped when the entity is
// not cached or was produced by an operation issued after seq. An entity that no longer
// belongs to the list is removed.
func (c *listCache[T]) merge(seq uint64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noteLate(lateWrite[T]{entry: entry[T]{item: item, seq: seq}})
	i := c.indexOf(c.id(item))
	if i < 0 {
		return false
	}
	return c.replace(i, seq, item)
}

func (c *listCache[T]) remove(seq uint64, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq > c.lastFetch && c.loading > 0 {
		var zero T
		c.noteLateID(id, lateWrite[T]{entry: entry[T]{item: zero, seq: seq}, removed: true})
	}
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i:i], c.entries[i+1:]...)
	c.version++
	return true
}

func (c *listCache[T]) replace(i int, seq uint64, item T) bool {
	if c.entries[i].seq > seq {
		return false
	}
	if !c.belongs(item) {
		c.entries = append(c.entries[:i:i], c.entries[i+1:]...)
	} else {
		c.entries[i] = entry[T]{item: item, seq: seq}
	}
	c.version++
	return true
}

// noteLate records w when a fetch issued before it is still in flight.
func (c *listCache[T]) noteLate(w lateWrite[T]) {
	if w.seq > c.lastFetch && c.loading > 0 {
		c.noteLateID(c.id(w.item), w)
	}
}

func (c *listCache[T]) noteLateID(id string, w lateWrite[T]) {
	prev, ok := c.late[id]
	if ok && prev.seq > w.seq {
		return
	}
	if ok && prev.created {
		w.created = true
	}
	if c.late == nil {
		c.late = make(map[string]lateWrite[T])
	}
	c.late[id] = w
}

func (c *listCache[T]) belongs(item T) bool {
	return c.keep == nil || c.keep(item)
}

func containsID[T any](items []T, id string, idOf func(T) string) bool {
	for _, item := range items {
		if idOf(item) == id {
			return true
		}
	}
	return false
}

func (c *listCache[T]) find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.entries[i].item, true
	}
	var zero T
	return zero, false
}

func (c *listCache[T]) items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.item)
	}
	return out
}

func (c *listCache[T]) isLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading > 0
}

func (c *listCache[T]) currentVersion() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *listCache[T]) indexOf(id string) int {
	for i, e := range c.entries {
		if c.id(e.item) == id {
			return i
		}
	}
	return -1
}
