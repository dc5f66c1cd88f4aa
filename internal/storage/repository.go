package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"budgetcal/internal/log"
)

// Collection is the CRUD facade for one entity kind. All seven kinds share
// the same read-modify-write behavior over the Store; what differs per kind
// (storage key, id access, timestamp stamping) is injected through config.
//
// Repositories perform no field validation and no cascading deletes; both
// are the caller's responsibility.
type Collection[T any] struct {
	store    *Store
	key      string
	id       func(*T) string
	setID    func(*T, string)
	onCreate func(*T, time.Time)
	onUpdate func(*T, time.Time)
}

// CollectionConfig wires a Collection to one entity kind.
type CollectionConfig[T any] struct {
	Key      string
	ID       func(*T) string
	SetID    func(*T, string)
	OnCreate func(*T, time.Time) // stamp creation timestamps, may be nil
	OnUpdate func(*T, time.Time) // refresh update timestamps, may be nil
}

// NewCollection creates a repository over the given store.
func NewCollection[T any](store *Store, cfg CollectionConfig[T]) *Collection[T] {
	return &Collection[T]{
		store:    store,
		key:      cfg.Key,
		id:       cfg.ID,
		setID:    cfg.SetID,
		onCreate: cfg.OnCreate,
		onUpdate: cfg.OnUpdate,
	}
}

// Key returns the storage key backing this collection.
func (c *Collection[T]) Key() string { return c.key }

// GetAll returns the persisted collection, or an empty slice if none exists.
// This is a pure read; seeding happens explicitly at startup, never here.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	c.store.Get(ctx, c.key, &items)
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Add assigns a fresh id, stamps creation timestamps and appends the entity
// to the persisted collection.
func (c *Collection[T]) Add(ctx context.Context, item T) (T, error) {
	c.setID(&item, uuid.NewString())
	if c.onCreate != nil {
		c.onCreate(&item, time.Now().UTC())
	}

	err := c.mutate(ctx, func(items []T) ([]T, bool) {
		return append(items, item), true
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("add to %s: %w", c.key, err)
	}

	c.store.logger.InfoContext(ctx, "Entity added",
		log.FieldKey, c.key, log.FieldEntityID, c.id(&item))
	return item, nil
}

// Update applies a partial mutation to the entity with the given id and
// re-persists the collection. A nil entity with nil error means the id was
// not found; that is an expected condition, not a failure.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	var updated *T
	err := c.mutate(ctx, func(items []T) ([]T, bool) {
		updated = nil
		for i := range items {
			if c.id(&items[i]) != id {
				continue
			}
			apply(&items[i])
			if c.onUpdate != nil {
				c.onUpdate(&items[i], time.Now().UTC())
			}
			clone := items[i]
			updated = &clone
			return items, true
		}
		return items, false
	})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", c.key, err)
	}
	return updated, nil
}

// Delete removes the entity with the given id. Returns false when the id was
// not found; calling it twice is a safe no-op the second time.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	err := c.mutate(ctx, func(items []T) ([]T, bool) {
		removed = false
		kept := items[:0]
		for i := range items {
			if c.id(&items[i]) == id {
				removed = true
				continue
			}
			kept = append(kept, items[i])
		}
		return kept, removed
	})
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", c.key, err)
	}
	if removed {
		c.store.logger.InfoContext(ctx, "Entity deleted",
			log.FieldKey, c.key, log.FieldEntityID, id)
	}
	return removed, nil
}

// mutate runs a read-modify-write cycle against the store. The transform
// returns the new collection and whether anything changed; unchanged
// collections are not rewritten. A lost revision race is retried once
// against the fresh state.
func (c *Collection[T]) mutate(ctx context.Context, transform func([]T) ([]T, bool)) error {
	for attempt := 0; ; attempt++ {
		var items []T
		revision, _ := c.store.Get(ctx, c.key, &items)

		next, changed := transform(items)
		if !changed {
			return nil
		}

		_, err := c.store.Set(ctx, c.key, next, revision)
		if errors.Is(err, ErrRevisionConflict) && attempt == 0 {
			c.store.logger.WarnContext(ctx, "Concurrent write detected, retrying",
				log.FieldKey, c.key)
			continue
		}
		return err
	}
}

// Replace persists the collection wholesale, retrying once on a revision
// race. Used by the seeder for fixed default sets.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	err := c.mutate(ctx, func([]T) ([]T, bool) {
		return items, true
	})
	if err != nil {
		return fmt.Errorf("replace %s: %w", c.key, err)
	}
	return nil
}
