package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/events"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer events.Publisher
}

// SaveCart prices every selection against the catalog and replaces
// the user's cart with the result. Unit price is the variant's size
// price with the variant discount applied; the client never supplies
// a price.
func (s *CartService) SaveCart(ctx context.Context, userID uuid.UUID, selections []transport.CartSelection) (*models.Cart, error) {
	if len(selections) == 0 {
		return nil, fmt.Errorf("items required: %w", ErrValidation)
	}

	lines := make([]models.CartLine, 0, len(selections))
	var cartTotal float64

	for i := range selections {
		line, err := s.priceSelection(ctx, &selections[i])
		if err != nil {
			return nil, err
		}
		cartTotal += line.Price * float64(line.Qty)
		lines = append(lines, *line)
	}

	cart := &models.Cart{
		UserID:    userID,
		Lines:     lines,
		CartTotal: round2(cartTotal),
	}
	if err := s.Repo.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TopicCart, userID.String(), map[string]any{
		"type":       "cart_saved",
		"user_id":    userID,
		"lines":      len(cart.Lines),
		"cart_total": cart.CartTotal,
	})

	return cart, nil
}

func (s *CartService) priceSelection(ctx context.Context, sel *transport.CartSelection) (*models.CartLine, error) {
	if sel.ProductID == uuid.Nil {
		return nil, fmt.Errorf("product_id required: %w", ErrValidation)
	}
	if sel.Qty == 0 {
		return nil, fmt.Errorf("qty must be more than zero: %w", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, sel.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", sel.ProductID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if sel.Style < 0 || sel.Style >= len(product.SubProducts) {
		return nil, fmt.Errorf("variant %d of product %s: %w", sel.Style, product.Slug, ErrNotFound)
	}
	variant := product.SubProducts[sel.Style]

	var base float64
	found := false
	for _, sp := range variant.Sizes {
		if sp.Size == sel.Size {
			base = sp.Price
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("size %q of product %s: %w", sel.Size, product.Slug, ErrNotFound)
	}

	unit := round2(base)
	if variant.Discount > 0 {
		unit = round2(base - base*variant.Discount/100)
	}

	vendorID := ""
	if v, ok := sel.Vendor["_id"].(string); ok {
		vendorID = v
	}

	return &models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Color:     variant.Color,
		Image:     variant.Image,
		Size:      sel.Size,
		Qty:       sel.Qty,
		Price:     unit,
		Saved:     round2(base - unit),
		Vendor:    sel.Vendor,
		VendorID:  vendorID,
	}, nil
}

func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "topic", topic, "error", err)
	}
}
