package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
)

// CreateOrder persists the order snapshot and empties the user's cart
// in the same transaction: the cart is only cleared once the order row
// is committed, so a failed placement leaves the cart intact.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return r.DeleteCartByUser(ctx, tx, order.UserID)
	})
}

// ListOrders returns a user's orders newest first. Filter is one of
// "", "paid", "unpaid" or an order status.
func (r *GormRepo) ListOrders(ctx context.Context, userID uuid.UUID, filter string) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{}).Preload("Lines").Where("user_id = ?", userID)

	switch filter {
	case "":
	case "paid":
		q = q.Where("is_paid = ?", true)
	case "unpaid":
		q = q.Where("is_paid = ?", false)
	default:
		q = q.Where("status = ?", filter)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderForUser fetches an order only if the given user owns it; a
// foreign order id reads as not found.
func (r *GormRepo) GetOrderForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Lines").
		Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
