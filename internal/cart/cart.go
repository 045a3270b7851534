// AngelaMos | 2026
// cart.go

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

// Item is one cart line: a jump, a block of hours, or an extra service.
type Item struct {
	ID       string  `json:"id"`
	RefID    string  `json:"refId,omitempty"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

const (
	KindJump    = "jump"
	KindHours   = "hours"
	KindService = "service"
)

// Cart is the single active cart, stored whole under one key. The total is
// adjusted incrementally on add and remove rather than resummed.
type Cart struct {
	Items     []Item    `json:"items"`
	Total     float64   `json:"total"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddItemRequest struct {
	RefID    string  `json:"refId"    validate:"omitempty"`
	Name     string  `json:"name"     validate:"required,min=1,max=200"`
	Kind     string  `json:"kind"     validate:"required,oneof=jump hours service"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
}

// Service owns the cart key. A mutex serializes read-modify-write cycles the
// same way collections do.
type Service struct {
	kv  store.KV
	key string
	mu  sync.Mutex

	now   func() time.Time
	genID func() string
}

func NewService(kv store.KV, namespace string) *Service {
	return &Service{
		kv:    kv,
		key:   namespace + ":cart",
		now:   time.Now,
		genID: func() string { return uuid.New().String() },
	}
}

func (s *Service) load(ctx context.Context) (*Cart, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w: %w", core.ErrPersistence, err)
	}

	if len(raw) == 0 {
		return &Cart{Items: []Item{}}, nil
	}

	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w: %w", core.ErrPersistence, err)
	}
	if c.Items == nil {
		c.Items = []Item{}
	}

	return &c, nil
}

func (s *Service) persist(ctx context.Context, c *Cart) error {
	c.UpdatedAt = s.now().UTC()

	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w: %w", core.ErrPersistence, err)
	}

	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("persist cart: %w: %w", core.ErrPersistence, err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// AddItem appends a line item and bumps the running total by price×quantity.
func (s *Service) AddItem(ctx context.Context, req AddItemRequest) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	item := Item{
		ID:       s.genID(),
		RefID:    req.RefID,
		Name:     req.Name,
		Kind:     req.Kind,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	c.Items = append(c.Items, item)
	c.Total += item.Price * float64(item.Quantity)

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// RemoveItem drops a line item and subtracts its price×quantity from the
// running total.
func (s *Service) RemoveItem(ctx context.Context, itemID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID == itemID {
			found = true
			c.Total -= item.Price * float64(item.Quantity)
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, fmt.Errorf("find cart item %q: %w", itemID, core.ErrNotFound)
	}
	c.Items = kept

	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Clear empties the cart and resets the total.
func (s *Service) Clear(ctx context.Context) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &Cart{Items: []Item{}}
	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
