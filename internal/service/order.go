package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrderInput is the full snapshot handed over by the checkout
// workflow: priced lines, billing address, payment method and totals.
type CreateOrderInput struct {
	UserID        uuid.UUID
	Lines         []models.CartLine
	Address       models.Address
	PaymentMethod string
	Total         float64
	CartTotal     float64
	CouponApplied string
	TotalSaved    float64
}

// Create persists an immutable order record. The user's cart is
// emptied in the same transaction, so a failed insert leaves the cart
// populated for retry.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("items required: %w", ErrValidation)
	}
	if in.PaymentMethod == "" {
		return nil, fmt.Errorf("payment method required: %w", ErrValidation)
	}
	if in.Total < 0 || in.CartTotal < 0 {
		return nil, fmt.Errorf("total must be >= 0: %w", ErrValidation)
	}

	lines := make([]models.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, models.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Color:     l.Color,
			Image:     l.Image,
			Size:      l.Size,
			Qty:       l.Qty,
			Price:     l.Price,
			Saved:     l.Saved,
			Vendor:    l.Vendor,
		})
	}

	order := &models.Order{
		UserID: in.UserID,
		Lines:  lines,
		ShippingAddress: models.OrderAddress{
			FirstName:   in.Address.FirstName,
			LastName:    in.Address.LastName,
			PhoneNumber: in.Address.PhoneNumber,
			State:       in.Address.State,
			City:        in.Address.City,
			ZipCode:     in.Address.ZipCode,
			Address1:    in.Address.Address1,
			Address2:    in.Address.Address2,
			Country:     in.Address.Country,
		},
		PaymentMethod:       in.PaymentMethod,
		Total:               in.Total,
		TotalBeforeDiscount: in.CartTotal,
		CouponApplied:       in.CouponApplied,
		TotalSaved:          in.TotalSaved,
		Status:              models.OrderStatusNew,
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the user's order history, newest first, optionally
// filtered by "paid", "unpaid" or a status value.
func (s *OrderService) List(ctx context.Context, clerkID, filter string) ([]models.Order, error) {
	user, err := s.Repo.GetUserByClerkID(ctx, clerkID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("User not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.Repo.ListOrders(ctx, user.ID, filter)
}

// Get resolves a single order for the confirmation view. The lookup is
// scoped to the calling user, so someone else's order id reads as not
// found.
func (s *OrderService) Get(ctx context.Context, clerkID string, id uuid.UUID) (*models.Order, error) {
	user, err := s.Repo.GetUserByClerkID(ctx, clerkID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("User not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	order, err := s.Repo.GetOrderForUser(ctx, id, user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}
