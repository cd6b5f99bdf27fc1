package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
)

func (r *GormRepo) GetCartByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Preload("Lines").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// SaveCart upserts the user's single cart row. Re-saving replaces the
// lines and resets any previously applied coupon discount; the row
// itself survives, so there is never a window with no cart.
func (r *GormRepo) SaveCart(ctx context.Context, cart *models.Cart) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Cart
		err := forUpdate(tx).Where("user_id = ?", cart.UserID).First(&existing).Error

		switch {
		case err == nil:
			cart.ID = existing.ID
			if err := tx.Where("cart_id = ?", existing.ID).Delete(&models.CartLine{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Cart{}).Where("id = ?", existing.ID).Updates(map[string]any{
				"cart_total":           cart.CartTotal,
				"total_after_discount": 0,
			}).Error; err != nil {
				return err
			}
			for i := range cart.Lines {
				cart.Lines[i].CartID = existing.ID
			}
			if len(cart.Lines) == 0 {
				return nil
			}
			return tx.Create(&cart.Lines).Error

		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(cart).Error

		default:
			return err
		}
	})
}

// SetCartDiscountByUser stores the coupon-adjusted total on the cart
// found by its owning user reference.
func (r *GormRepo) SetCartDiscountByUser(ctx context.Context, userID uuid.UUID, totalAfterDiscount float64) error {
	res := r.DB.WithContext(ctx).Model(&models.Cart{}).
		Where("user_id = ?", userID).
		Update("total_after_discount", totalAfterDiscount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteCartByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	if tx == nil {
		tx = r.DB.WithContext(ctx)
	}
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartLine{}).Error; err != nil {
		return err
	}
	return tx.Delete(&cart).Error
}
