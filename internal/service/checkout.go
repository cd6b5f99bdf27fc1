package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/events"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

// Step is the checkout position: address, then coupon, then payment.
// Transitions are linear, both directions, and never skip validation.
type Step int

const (
	StepAddress Step = iota + 1
	StepCoupon
	StepPayment
)

func (s Step) Next() Step {
	if s < StepPayment {
		return s + 1
	}
	return s
}

func (s Step) Prev() Step {
	if s > StepAddress {
		return s - 1
	}
	return s
}

type checkoutSession struct {
	step          Step
	coupon        string
	paymentMethod string
	placing       bool
}

// CheckoutService drives the address → coupon → payment sequence.
// Session state lives in memory per user; the durable pieces (cart,
// addresses, applied discount) live on their own rows, so losing a
// session only resets the step pointer.
type CheckoutService struct {
	Repo     *repo.GormRepo
	Coupons  *CouponService
	Orders   *OrderService
	Producer events.Publisher

	mu       sync.Mutex
	sessions map[uuid.UUID]*checkoutSession
}

func NewCheckoutService(r *repo.GormRepo, coupons *CouponService, orders *OrderService, producer events.Publisher) *CheckoutService {
	return &CheckoutService{
		Repo:     r,
		Coupons:  coupons,
		Orders:   orders,
		Producer: producer,
		sessions: make(map[uuid.UUID]*checkoutSession),
	}
}

func (s *CheckoutService) session(userID uuid.UUID) *checkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &checkoutSession{step: StepAddress}
		s.sessions[userID] = sess
	}
	return sess
}

func (s *CheckoutService) resolveUser(ctx context.Context, clerkID string) (*models.User, error) {
	user, err := s.Repo.GetUserByClerkID(ctx, clerkID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("User not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// LoadSession is the load-at-session-start step: user, saved cart and
// active address in one shot.
func (s *CheckoutService) LoadSession(ctx context.Context, clerkID string) (*transport.CheckoutSessionResponse, error) {
	user, err := s.resolveUser(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	cart, err := s.Repo.GetCartByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sess := s.session(user.ID)

	return &transport.CheckoutSessionResponse{
		User:    user,
		Cart:    cart,
		Address: activeAddress(user.Addresses),
		Step:    int(sess.step),
	}, nil
}

// SaveAddress validates the billing address, persists it as the new
// active address and advances the session past the address step.
func (s *CheckoutService) SaveAddress(ctx context.Context, clerkID string, req transport.SaveAddressRequest) ([]models.Address, error) {
	if err := validateAddress(req); err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.Repo.AddAddress(ctx, &models.Address{
		UserID:      user.ID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		State:       req.State,
		City:        req.City,
		ZipCode:     req.ZipCode,
		Address1:    req.Address1,
		Address2:    req.Address2,
		Country:     req.Country,
	})
	if err != nil {
		return nil, err
	}

	sess := s.session(user.ID)
	s.mu.Lock()
	if sess.step == StepAddress {
		sess.step = sess.step.Next()
	}
	s.mu.Unlock()

	return addresses, nil
}

// ApplyCoupon runs the coupon step; success advances to payment.
func (s *CheckoutService) ApplyCoupon(ctx context.Context, clerkID, code string) (*transport.ApplyCouponResponse, error) {
	user, err := s.resolveUser(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	totalAfterDiscount, discount, err := s.Coupons.Apply(ctx, code, user.ID)
	if err != nil {
		return nil, err
	}

	sess := s.session(user.ID)
	s.mu.Lock()
	sess.coupon = code
	if sess.step == StepCoupon {
		sess.step = sess.step.Next()
	}
	s.mu.Unlock()

	return &transport.ApplyCouponResponse{
		TotalAfterDiscount: totalAfterDiscount,
		Discount:           discount,
		Success:            true,
	}, nil
}

// SkipCoupon moves past the optional coupon step without one.
func (s *CheckoutService) SkipCoupon(ctx context.Context, clerkID string) (Step, error) {
	user, err := s.resolveUser(ctx, clerkID)
	if err != nil {
		return 0, err
	}

	sess := s.session(user.ID)
	s.mu.Lock()
	if sess.step == StepCoupon {
		sess.step = sess.step.Next()
	}
	step := sess.step
	s.mu.Unlock()
	return step, nil
}

// Back steps the session one step backwards.
func (s *CheckoutService) Back(ctx context.Context, clerkID string) (Step, error) {
	user, err := s.resolveUser(ctx, clerkID)
	if err != nil {
		return 0, err
	}

	sess := s.session(user.ID)
	s.mu.Lock()
	sess.step = sess.step.Prev()
	step := sess.step
	s.mu.Unlock()
	return step, nil
}

func (s *CheckoutService) SelectPayment(ctx context.Context, clerkID, method string) error {
	if method == "" {
		return fmt.Errorf("Please choose a payment method: %w", ErrValidation)
	}

	user, err := s.resolveUser(ctx, clerkID)
	if err != nil {
		return err
	}

	sess := s.session(user.ID)
	s.mu.Lock()
	sess.paymentMethod = method
	s.mu.Unlock()
	return nil
}

// PlaceOrder is the terminal checkout action. A second concurrent
// placement for the same user is rejected while the first is in
// flight; on failure the guard is released and the cart is untouched,
// so retrying is safe.
func (s *CheckoutService) PlaceOrder(ctx context.Context, clerkID string) (uuid.UUID, error) {
	user, err := s.resolveUser(ctx, clerkID)
	if err != nil {
		return uuid.Nil, err
	}

	// Snapshot the session under the same lock that arms the guard, so
	// a concurrent SelectPayment or ApplyCoupon cannot race the reads
	// below.
	sess := s.session(user.ID)
	s.mu.Lock()
	if sess.placing {
		s.mu.Unlock()
		return uuid.Nil, fmt.Errorf("order placement already in flight: %w", ErrConflict)
	}
	sess.placing = true
	paymentMethod := sess.paymentMethod
	coupon := sess.coupon
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		sess.placing = false
		s.mu.Unlock()
	}()

	if paymentMethod == "" {
		return uuid.Nil, fmt.Errorf("Please choose a payment method: %w", ErrValidation)
	}

	address := activeAddress(user.Addresses)
	if address == nil || address.FirstName == "" {
		return uuid.Nil, fmt.Errorf("Please fill in all details in billing address: %w", ErrValidation)
	}

	cart, err := s.Repo.GetCartByUser(ctx, user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("no items in cart: %w", ErrValidation)
	}
	if err != nil {
		return uuid.Nil, err
	}
	if len(cart.Lines) == 0 {
		return uuid.Nil, fmt.Errorf("no items in cart: %w", ErrValidation)
	}

	total := cart.CartTotal
	if cart.TotalAfterDiscount > 0 {
		total = cart.TotalAfterDiscount
	}

	totalSaved := round2(cart.CartTotal - total)
	for _, line := range cart.Lines {
		totalSaved = round2(totalSaved + line.Saved*float64(line.Qty))
	}

	order, err := s.Orders.Create(ctx, CreateOrderInput{
		UserID:        user.ID,
		Lines:         cart.Lines,
		Address:       *address,
		PaymentMethod: paymentMethod,
		Total:         total,
		CartTotal:     cart.CartTotal,
		CouponApplied: coupon,
		TotalSaved:    totalSaved,
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	delete(s.sessions, user.ID)
	s.mu.Unlock()

	if s.Producer != nil {
		if perr := s.Producer.PublishEvent(ctx, events.TopicOrder, user.ID.String(), map[string]any{
			"type":     "order_created",
			"user_id":  user.ID,
			"order_id": order.ID,
			"total":    order.Total,
		}); perr != nil {
			logging.FromContext(ctx).Error("event publish failed", "topic", events.TopicOrder, "error", perr)
		}
	}

	return order.ID, nil
}

func activeAddress(addresses []models.Address) *models.Address {
	for i := range addresses {
		if addresses[i].Active {
			return &addresses[i]
		}
	}
	return nil
}

func validateAddress(req transport.SaveAddressRequest) error {
	fail := func(msg string) error { return fmt.Errorf("%s: %w", msg, ErrValidation) }

	if len(strings.TrimSpace(req.FirstName)) < 3 {
		return fail("first name must be at least 3 letters")
	}
	if len(strings.TrimSpace(req.LastName)) < 2 {
		return fail("last name must be at least 2 letters")
	}
	if len(strings.TrimSpace(req.PhoneNumber)) < 10 {
		return fail("phone number must be at least 10 digits")
	}
	if len(req.State) < 2 {
		return fail("state must be at least 2 letters")
	}
	if len(req.City) < 2 {
		return fail("city must be at least 2 letters")
	}
	if len(req.ZipCode) < 6 {
		return fail("zip code must be at least 6 characters")
	}
	if req.Address1 == "" {
		return fail("address line 1 is required")
	}
	if len(req.Address1) > 100 {
		return fail("address line 1 must not exceed 100 characters")
	}
	if len(req.Address2) > 100 {
		return fail("address line 2 must not exceed 100 characters")
	}
	if req.Country == "" {
		return fail("country is required")
	}
	return nil
}
