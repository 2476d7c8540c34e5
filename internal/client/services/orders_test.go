package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []models.Order {
	return []models.Order{{ID: 1}, {ID: 2}, {ID: 3}}
}

func TestOrderView_Refresh(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{Orders: sampleOrders()}
	v := NewOrderView(fc, nil, nil, nil)

	assert.Len(t, v.Refresh(ctx), 3)

	fc.OrdersErr = common.ErrUnavailable
	got := v.Refresh(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, v.Orders())
}

func TestOrderView_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed", func(t *testing.T) {
		fc := &fakeClient{Orders: sampleOrders()}
		n := &recordingNotifier{}
		cf := &fixedConfirmer{answer: true}
		v := NewOrderView(fc, n, cf, nil)

		orders, err := v.Delete(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, []string{"DeleteOrder", "ListUserOrders"}, fc.Calls())
		assert.Equal(t, []string{"Delete order #2?"}, cf.prompts)
		assert.Equal(t, []string{"Order deleted"}, n.successes)
	})

	t.Run("declined", func(t *testing.T) {
		fc := &fakeClient{Orders: sampleOrders()}
		v := NewOrderView(fc, nil, &fixedConfirmer{answer: false}, nil)

		_, err := v.Delete(ctx, 2)
		require.ErrorIs(t, err, common.ErrCancelled)
		assert.Empty(t, fc.Calls())
	})

	t.Run("server failure", func(t *testing.T) {
		fc := &fakeClient{Orders: sampleOrders(), DelOrdErr: common.ErrNotFound}
		n := &recordingNotifier{}
		v := NewOrderView(fc, n, nil, nil)

		_, err := v.Delete(ctx, 9)
		require.ErrorIs(t, err, common.ErrNotFound)
		assert.Equal(t, []string{"Failed to delete order"}, n.errors)
		assert.Zero(t, fc.Count("ListUserOrders"))
	})
}

func TestOrderView_ClearAll(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed", func(t *testing.T) {
		fc := &fakeClient{Orders: sampleOrders()}
		v := NewOrderView(fc, nil, &fixedConfirmer{answer: true}, nil)

		orders, err := v.ClearAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.Equal(t, []string{"ClearUserOrders", "ListUserOrders"}, fc.Calls())
	})

	t.Run("declined", func(t *testing.T) {
		fc := &fakeClient{Orders: sampleOrders()}
		v := NewOrderView(fc, nil, &fixedConfirmer{answer: false}, nil)

		_, err := v.ClearAll(ctx)
		require.ErrorIs(t, err, common.ErrCancelled)
		assert.Empty(t, fc.Calls())
	})
}
