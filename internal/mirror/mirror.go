// Package mirror keeps a local in-memory copy of one backend table: the
// ordered rows of the last successful fetch plus a loading flag and the
// last write-error message. Mutations go through the backing source and
// splice the confirmed result into the local copy; nothing is applied
// optimistically before the backend confirms.
package mirror

import (
	"context"
	"sync"
)

// Source is the operation family a collection mirrors. Implemented by
// gateway stores; List never fails (it degrades to empty), writes do.
type Source[E any] interface {
	List(ctx context.Context, orderBy string, ascending bool) []E
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, id uint64, changes map[string]any) (*E, error)
	UpsertBy(ctx context.Context, field, value string, e *E) (*E, error)
	Delete(ctx context.Context, id uint64) error
}

// Collection is the local mirror of one table.
//
// Operations are not queued or serialized: when two mutations race, the
// last backend response to land wins the local state, and a Refetch is
// always available to reconcile. The backend remains the source of truth.
type Collection[E any] struct {
	source  Source[E]
	keyOf   func(*E) uint64
	orderBy string
	asc     bool

	mu      sync.Mutex
	items   []E
	loading bool
	lastErr string
	closed  bool
}

// NewCollection creates a mirror over the source and runs the initial
// fetch. keyOf extracts the key used to match items on splices.
func NewCollection[E any](
	ctx context.Context,
	source Source[E],
	keyOf func(*E) uint64,
	orderBy string,
	ascending bool,
) *Collection[E] {
	c := &Collection[E]{
		source:  source,
		keyOf:   keyOf,
		orderBy: orderBy,
		asc:     ascending,
		items:   make([]E, 0),
	}

	c.Refetch(ctx)

	return c
}

// Refetch reloads the collection wholesale and replaces the local copy
// in the order the backend returned. List failures degrade to an empty
// collection at the source, so this never raises; loading is always
// false afterwards.
func (c *Collection[E]) Refetch(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.mu.Unlock()

	items := c.source.List(ctx, c.orderBy, c.asc)

	c.mu.Lock()
	defer c.mu.Unlock()

	// The owning component may be gone by the time the fetch lands;
	// discarded state must not be written to.
	if c.closed {
		return
	}

	c.items = items
	c.loading = false
}

// Items returns a copy of the mirrored rows in their fetched order.
func (c *Collection[E]) Items() []E {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]E, len(c.items))
	copy(out, c.items)

	return out
}

// Loading reports whether a refetch is in flight.
func (c *Collection[E]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

// Err returns the last write-error message, or empty.
func (c *Collection[E]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastErr
}

// Len returns the number of mirrored rows.
func (c *Collection[E]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Find returns the mirrored row with the given key.
func (c *Collection[E]) Find(id uint64) (*E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.keyOf(&c.items[i]) == id {
			item := c.items[i]

			return &item, true
		}
	}

	return nil, false
}

// Create inserts through the source and prepends the confirmed item.
// On failure the local copy is untouched, the message is cached, and the
// error returns to the caller so the UI can react.
func (c *Collection[E]) Create(ctx context.Context, e *E) error {
	if err := c.source.Create(ctx, e); err != nil {
		c.setErr(err)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.items = append([]E{*e}, c.items...)
	c.lastErr = ""

	return nil
}

// Update applies the change set through the source and replaces the
// matching item in place, preserving its position.
func (c *Collection[E]) Update(ctx context.Context, id uint64, changes map[string]any) error {
	updated, err := c.source.Update(ctx, id, changes)
	if err != nil {
		c.setErr(err)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	for i := range c.items {
		if c.keyOf(&c.items[i]) == id {
			c.items[i] = *updated

			break
		}
	}

	c.lastErr = ""

	return nil
}

// Upsert writes through the source's upsert-by-unique-field operation and
// replaces the matching mirrored item, or prepends when the key is new.
func (c *Collection[E]) Upsert(ctx context.Context, field, value string, e *E) error {
	stored, err := c.source.UpsertBy(ctx, field, value, e)
	if err != nil {
		c.setErr(err)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	id := c.keyOf(stored)
	for i := range c.items {
		if c.keyOf(&c.items[i]) == id {
			c.items[i] = *stored
			c.lastErr = ""

			return nil
		}
	}

	c.items = append([]E{*stored}, c.items...)
	c.lastErr = ""

	return nil
}

// Delete removes through the source, then filters the item out locally.
// The local copy changes only after the backend confirmed the removal.
func (c *Collection[E]) Delete(ctx context.Context, id uint64) error {
	if err := c.source.Delete(ctx, id); err != nil {
		c.setErr(err)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	filtered := c.items[:0]

	for i := range c.items {
		if c.keyOf(&c.items[i]) != id {
			filtered = append(filtered, c.items[i])
		}
	}

	c.items = filtered
	c.lastErr = ""

	return nil
}

// Close marks the collection as torn down. All state updates from calls
// still in flight are dropped; pairs with NewCollection on every
// shutdown path.
func (c *Collection[E]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
}

func (c *Collection[E]) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.lastErr = err.Error()
}
