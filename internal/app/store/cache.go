package store

import (
	"reflect"
	"strings"
	"sync"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// cache is the authoritative in-memory collection shared by the project
// and task stores. Only the owning store mutates it; consumers get
// copies. Loads are fenced with a monotonic ticket so a response from a
// superseded load is discarded instead of clobbering newer state.
type cache[E any] struct {
	id     func(E) string
	text   func(E) (name, description string)
	status func(E) string

	mu           sync.Mutex
	items        []E
	loadSeq      uint64
	filterText   string
	statusFilter string
	observers    []func([]E)
}

func newCache[E any](id func(E) string, text func(E) (string, string), status func(E) string) *cache[E] {
	return &cache[E]{
		id:           id,
		text:         text,
		status:       status,
		statusFilter: StatusAll,
	}
}

// subscribe registers an observer invoked with a snapshot after every
// effective change. Not safe to call from inside an observer.
func (c *cache[E]) subscribe(fn func([]E)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// beginLoad hands out a ticket for an in-flight load. Only the ticket
// from the most recently issued load (and not invalidated by clear) may
// apply its response.
func (c *cache[E]) beginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadSeq++
	return c.loadSeq
}

// applyLoad replaces the collection wholesale with the given items if
// ticket is still current, reporting whether it was applied. Equal
// content suppresses observer notification but still counts as applied.
func (c *cache[E]) applyLoad(ticket uint64, items []E) bool {
	c.mu.Lock()
	if ticket != c.loadSeq {
		c.mu.Unlock()
		return false
	}

	changed := !reflect.DeepEqual(c.items, items)
	c.items = items
	c.mu.Unlock()

	if changed {
		c.notify()
	}
	return true
}

func (c *cache[E]) append(item E) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	c.notify()
}

// replace swaps the entry with the same id in place, preserving order.
// A miss is a no-op, mirroring a map-over-collection update.
func (c *cache[E]) replace(item E) {
	id := c.id(item)

	c.mu.Lock()
	replaced := false
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			replaced = true
			break
		}
	}
	c.mu.Unlock()

	if replaced {
		c.notify()
	}
}

func (c *cache[E]) remove(id string) {
	c.mu.Lock()
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if c.id(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	c.mu.Unlock()

	if removed {
		c.notify()
	}
}

func (c *cache[E]) find(id string) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}

	var zero E
	return zero, false
}

// clear empties the collection and invalidates every in-flight load
// ticket, so responses from before the clear are discarded.
func (c *cache[E]) clear() {
	c.mu.Lock()
	c.loadSeq++
	changed := len(c.items) > 0
	c.items = nil
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

// snapshot returns a copy; consumers may not mutate the cache directly.
func (c *cache[E]) snapshot() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyItems()
}

func (c *cache[E]) setFilterText(text string) {
	c.mu.Lock()
	changed := c.filterText != text
	c.filterText = text
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

func (c *cache[E]) setStatusFilter(status string) {
	c.mu.Lock()
	changed := c.statusFilter != status
	c.statusFilter = status
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

// filtered recomputes the derived view on every read: case-insensitive
// substring match of the filter text against name or description, and
// an exact status match unless the filter is StatusAll.
func (c *cache[E]) filtered() []E {
	c.mu.Lock()
	defer c.mu.Unlock()

	text := strings.ToLower(c.filterText)
	matched := make([]E, 0, len(c.items))
	for _, item := range c.items {
		name, description := c.text(item)
		matchesText := strings.Contains(strings.ToLower(name), text) ||
			strings.Contains(strings.ToLower(description), text)
		matchesStatus := c.statusFilter == StatusAll || c.status(item) == c.statusFilter
		if matchesText && matchesStatus {
			matched = append(matched, item)
		}
	}
	return matched
}

func (c *cache[E]) notify() {
	c.mu.Lock()
	observers := make([]func([]E), len(c.observers))
	copy(observers, c.observers)
	items := c.copyItems()
	c.mu.Unlock()

	for _, fn := range observers {
		fn(items)
	}
}

func (c *cache[E]) copyItems() []E {
	items := make([]E, len(c.items))
	copy(items, c.items)
	return items
}
