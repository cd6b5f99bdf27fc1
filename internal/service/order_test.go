package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
)

func TestOrderCreate_Validation(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	user := seedUser(t, r, "clerk_order_1")

	ctx := context.Background()
	line := models.CartLine{Name: "tee", Size: "M", Qty: 1, Price: 10}

	_, err := svc.Create(ctx, CreateOrderInput{UserID: user.ID, PaymentMethod: "cod"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateOrderInput{UserID: user.ID, Lines: []models.CartLine{line}})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateOrderInput{
		UserID: user.ID, Lines: []models.CartLine{line}, PaymentMethod: "cod", Total: -1,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrderList_FiltersAndOrdering(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	user := seedUser(t, r, "clerk_order_2")

	now := time.Now()
	mk := func(paid bool, status string, age time.Duration, total float64) {
		order := models.Order{
			UserID:        user.ID,
			PaymentMethod: "cod",
			Total:         total,
			IsPaid:        paid,
			Status:        status,
			CreatedAt:     now.Add(-age),
			Lines: []models.OrderLine{
				{Name: "tee", Size: "M", Qty: 1, Price: total},
			},
		}
		require.NoError(t, r.DB.Create(&order).Error)
	}

	mk(true, models.OrderStatusCompleted, 3*time.Hour, 10)
	mk(false, models.OrderStatusNew, 2*time.Hour, 20)
	mk(true, models.OrderStatusNew, 1*time.Hour, 30)

	ctx := context.Background()

	all, err := svc.List(ctx, "clerk_order_2", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, 30.0, all[0].Total)
	assert.Equal(t, 20.0, all[1].Total)
	assert.Equal(t, 10.0, all[2].Total)
	require.Len(t, all[0].Lines, 1)

	paid, err := svc.List(ctx, "clerk_order_2", "paid")
	require.NoError(t, err)
	require.Len(t, paid, 2)
	assert.Equal(t, 30.0, paid[0].Total)

	unpaid, err := svc.List(ctx, "clerk_order_2", "unpaid")
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, 20.0, unpaid[0].Total)

	completed, err := svc.List(ctx, "clerk_order_2", models.OrderStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 10.0, completed[0].Total)
}

func TestOrderList_UnknownUser(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &OrderService{Repo: r}

	_, err := svc.List(context.Background(), "no_such_clerk", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderGet_ScopedToOwner(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	alice := seedUser(t, r, "clerk_order_4a")
	seedUser(t, r, "clerk_order_4b")

	order := models.Order{
		UserID: alice.ID, PaymentMethod: "cod", Total: 15, Status: models.OrderStatusNew,
		Lines: []models.OrderLine{{Name: "tee", Size: "M", Qty: 1, Price: 15}},
	}
	require.NoError(t, r.DB.Create(&order).Error)

	ctx := context.Background()

	got, err := svc.Get(ctx, "clerk_order_4a", order.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.Total)
	require.Len(t, got.Lines, 1)

	// someone else's order id reads as not found
	_, err = svc.Get(ctx, "clerk_order_4b", order.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "no_such_clerk", order.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderList_ScopedToUser(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	alice := seedUser(t, r, "clerk_order_3a")
	seedUser(t, r, "clerk_order_3b")

	require.NoError(t, r.DB.Create(&models.Order{
		UserID: alice.ID, PaymentMethod: "cod", Total: 5, Status: models.OrderStatusNew,
	}).Error)

	mine, err := svc.List(context.Background(), "clerk_order_3a", "")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.List(context.Background(), "clerk_order_3b", "")
	require.NoError(t, err)
	assert.Len(t, theirs, 0)
}
