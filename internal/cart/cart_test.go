// AngelaMos | 2026
// cart_test.go

package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemoryKV(), "test")
}

func TestEmptyCart(t *testing.T) {
	svc := newTestService(t)

	c, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}

func TestAddItemBumpsTotal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.AddItem(ctx, AddItemRequest{
		Name:     "Customer Support Assistant",
		Kind:     KindJump,
		Price:    2500,
		Quantity: 1,
	})
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2500.0, c.Total)

	c, err = svc.AddItem(ctx, AddItemRequest{
		Name:     "Customization hours",
		Kind:     KindHours,
		Price:    90,
		Quantity: 10,
	})
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, 3400.0, c.Total)
	assert.False(t, c.UpdatedAt.IsZero())
}

func TestRemoveItemSubtractsTotal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.AddItem(ctx, AddItemRequest{
		Name:     "Sales Outreach Engine",
		Kind:     KindJump,
		Price:    4000,
		Quantity: 1,
	})
	require.NoError(t, err)
	jumpItemID := c.Items[0].ID

	c, err = svc.AddItem(ctx, AddItemRequest{
		Name:     "Onboarding workshop",
		Kind:     KindService,
		Price:    500,
		Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, c.Total)

	c, err = svc.RemoveItem(ctx, jumpItemID)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1000.0, c.Total)
	assert.Equal(t, "Onboarding workshop", c.Items[0].Name)
}

func TestRemoveUnknownItem(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RemoveItem(context.Background(), "no-such-item")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestClearResetsCart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, AddItemRequest{
		Name:     "Back-Office Document Pipeline",
		Kind:     KindJump,
		Price:    6000,
		Quantity: 1,
	})
	require.NoError(t, err)

	c, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)

	// the cleared state is persisted
	c, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}
