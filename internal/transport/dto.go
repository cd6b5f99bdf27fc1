package transport

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
)

// CartSelection is one product/variant/size/quantity pick coming from
// the client. Pricing is resolved server-side; the client never sends
// a price.
type CartSelection struct {
	ProductID uuid.UUID         `json:"product_id"`
	Style     int               `json:"style"`
	Size      string            `json:"size"`
	Qty       uint              `json:"qty"`
	Vendor    datatypes.JSONMap `json:"vendor,omitempty"`
}

type SaveCartRequest struct {
	Items []CartSelection `json:"items"`
}

type SaveCartResponse struct {
	Cart *models.Cart `json:"cart"`
}

type CheckoutSessionResponse struct {
	User    *models.User    `json:"user"`
	Cart    *models.Cart    `json:"cart"`
	Address *models.Address `json:"address"`
	Step    int             `json:"step"`
}

type SaveAddressRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	State       string `json:"state"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Country     string `json:"country"`
}

type SaveAddressResponse struct {
	Addresses []models.Address `json:"addresses"`
}

type ApplyCouponRequest struct {
	Coupon string `json:"coupon"`
}

type ApplyCouponResponse struct {
	TotalAfterDiscount float64 `json:"total_after_discount"`
	Discount           float64 `json:"discount"`
	Success            bool    `json:"success"`
}

type SelectPaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type PlaceOrderResponse struct {
	Success bool      `json:"success"`
	OrderID uuid.UUID `json:"order_id,omitempty"`
	Message string    `json:"message,omitempty"`
}

type CreateProductRequest struct {
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	SubProducts []models.SubProduct `json:"sub_products"`
}

type PatchProductRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

type PatchTopBarRequest struct {
	Title      *string `json:"title"`
	Link       *string `json:"link"`
	TextColor  *string `json:"text_color"`
	Background *string `json:"background"`
}

type CreateCouponRequest struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// IdentityEvent is the webhook envelope the identity provider posts
// on account changes.
type IdentityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Username string `json:"username"`
		Image    string `json:"image"`
	} `json:"data"`
}
