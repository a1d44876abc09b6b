package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/domain/order"
)

func TestGormTransactionScope(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when the callback succeeds", func(t *testing.T) {
		db := openTestDB(t)
		scope := NewGormTransactionScope(db)
		c := seedCustomer(t, db)

		var created *order.Order
		err := scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
			o, err := order.NewOrder(c.ID, order.SumItemTotals(nil), "USD", nil)
			if err != nil {
				return err
			}
			created = o
			return repos.OrderRepo().Create(ctx, o)
		})
		require.NoError(t, err)

		found, err := NewGormOrderRepository(db).FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("rolls back everything when the callback fails", func(t *testing.T) {
		db := openTestDB(t)
		scope := NewGormTransactionScope(db)
		c := seedCustomer(t, db)
		item := seedInventoryItem(t, db, 10)

		boom := errors.New("boom")
		err := scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
			o, err := order.NewOrder(c.ID, order.SumItemTotals(nil), "USD", nil)
			if err != nil {
				return err
			}
			if err := repos.OrderRepo().Create(ctx, o); err != nil {
				return err
			}
			ok, err := repos.InventoryRepo().DecrementStock(ctx, item.ID, 4)
			if err != nil {
				return err
			}
			require.True(t, ok)
			return boom
		})
		require.ErrorIs(t, err, boom)

		// Neither the order insert nor the decrement survived.
		count, err := NewGormOrderRepository(db).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		refreshed, err := NewGormInventoryRepository(db).FindByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(10), refreshed.Quantity)
	})
}
