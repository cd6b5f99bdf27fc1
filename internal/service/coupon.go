package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
)

type CouponService struct {
	Repo *repo.GormRepo
}

// Apply validates the coupon code against the user's cart and stores
// the discounted total on the cart row keyed by its owning user. An
// unknown code never mutates the cart.
func (s *CouponService) Apply(ctx context.Context, code string, userID uuid.UUID) (totalAfterDiscount, discount float64, err error) {
	if code == "" {
		return 0, 0, fmt.Errorf("coupon code required: %w", ErrValidation)
	}

	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, fmt.Errorf("User not found: %w", ErrNotFound)
		}
		return 0, 0, err
	}

	coupon, err := s.Repo.GetCouponByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, fmt.Errorf("Invalid Coupon: %w", ErrNotFound)
	}
	if err != nil {
		return 0, 0, err
	}

	cart, err := s.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, fmt.Errorf("cart: %w", ErrNotFound)
	}
	if err != nil {
		return 0, 0, err
	}

	totalAfterDiscount = round2(cart.CartTotal - cart.CartTotal*coupon.Discount/100)
	if err := s.Repo.SetCartDiscountByUser(ctx, userID, totalAfterDiscount); err != nil {
		return 0, 0, err
	}

	return totalAfterDiscount, coupon.Discount, nil
}
