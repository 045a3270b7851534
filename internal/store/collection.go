// AngelaMos | 2026
// collection.go

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/copilothub/internal/core"
)

// Meta is the generated part of every stored record. Entities embed it.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Meta) RecordID() string {
	return m.ID
}

func (m *Meta) RecordCreatedAt() time.Time {
	return m.CreatedAt
}

func (m *Meta) Stamp(id string, createdAt time.Time) {
	m.ID = id
	m.CreatedAt = createdAt
}

// Entity constrains collection element pointers to the stamped-record shape.
type Entity[T any] interface {
	*T
	RecordID() string
	RecordCreatedAt() time.Time
	Stamp(id string, createdAt time.Time)
}

// Collection is a typed view over one KV key holding a JSON array of records.
// A mutex serializes each read-modify-write, so every mutation is a single
// atomic write of the whole collection. Cross-collection sequences are not
// isolated; that limit is accepted for the single-session scope.
type Collection[T any, P Entity[T]] struct {
	kv   KV
	name string
	key  string
	mu   sync.Mutex

	now   func() time.Time
	genID func() string
}

func NewCollection[T any, P Entity[T]](
	kv KV,
	namespace, name string,
) *Collection[T, P] {
	return &Collection[T, P]{
		kv:    kv,
		name:  name,
		key:   namespace + ":" + name,
		now:   time.Now,
		genID: func() string { return uuid.New().String() },
	}
}

func (c *Collection[T, P]) Name() string {
	return c.name
}

func (c *Collection[T, P]) load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", c.name, core.ErrPersistence, err)
	}

	if len(raw) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", c.name, core.ErrPersistence, err)
	}

	return records, nil
}

func (c *Collection[T, P]) persist(ctx context.Context, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", c.name, core.ErrPersistence, err)
	}

	if err := c.kv.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("persist %s: %w: %w", c.name, core.ErrPersistence, err)
	}

	return nil
}

func (c *Collection[T, P]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

func (c *Collection[T, P]) Filter(
	ctx context.Context,
	pred func(T) bool,
) ([]T, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0)
	for _, rec := range records {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}

	return matched, nil
}

// Any reports whether at least one record matches.
func (c *Collection[T, P]) Any(
	ctx context.Context,
	pred func(T) bool,
) (bool, error) {
	records, err := c.List(ctx)
	if err != nil {
		return false, err
	}

	for _, rec := range records {
		if pred(rec) {
			return true, nil
		}
	}

	return false, nil
}

func (c *Collection[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if P(&records[i]).RecordID() == id {
			return &records[i], nil
		}
	}

	return nil, fmt.Errorf("find %s %q: %w", c.name, id, core.ErrNotFound)
}

// Create assigns a fresh ID and creation timestamp, appends the record and
// persists the collection.
func (c *Collection[T, P]) Create(ctx context.Context, record T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	P(&record).Stamp(c.genID(), c.now().UTC())

	records = append(records, record)
	if err := c.persist(ctx, records); err != nil {
		return nil, err
	}

	return &record, nil
}

// Update replaces the record whose ID matches. An unknown ID is a silent
// no-op; callers that need existence resolve it first.
func (c *Collection[T, P]) Update(ctx context.Context, record T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	id := P(&record).RecordID()
	for i := range records {
		if P(&records[i]).RecordID() == id {
			// createdAt is immutable once assigned
			P(&record).Stamp(id, P(&records[i]).RecordCreatedAt())
			records[i] = record
			if err := c.persist(ctx, records); err != nil {
				return nil, err
			}
			break
		}
	}

	return &record, nil
}

// Delete removes the record whose ID matches; unknown IDs are a no-op.
func (c *Collection[T, P]) Delete(ctx context.Context, id string) error {
	_, err := c.DeleteWhere(ctx, func(rec T) bool {
		return P(&rec).RecordID() == id
	})
	return err
}

// DeleteWhere removes every matching record in a single collection write, so
// a multi-record deletion (the cascade path) cannot half-apply.
func (c *Collection[T, P]) DeleteWhere(
	ctx context.Context,
	pred func(T) bool,
) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return 0, err
	}

	kept := records[:0]
	removed := 0
	for _, rec := range records {
		if pred(rec) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}

	if removed == 0 {
		return 0, nil
	}

	if err := c.persist(ctx, kept); err != nil {
		return 0, err
	}

	return removed, nil
}

func (c *Collection[T, P]) Count(ctx context.Context) (int, error) {
	records, err := c.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
