package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User mirrors an identity-provider account. ClerkID is the stable
// external id; everything else is profile data synced over webhooks.
type User struct {
	ID        uuid.UUID `gorm:"primaryKey"           json:"id"`
	ClerkID   string    `gorm:"uniqueIndex;not null" json:"clerk_id"`
	Email     string    `gorm:"not null"             json:"email"`
	Username  string    `json:"username"`
	Image     string    `json:"image"`
	Addresses []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is owned by exactly one user. At most one address per user
// carries Active=true; repo.SetActiveAddress keeps that invariant.
type Address struct {
	ID          uuid.UUID `gorm:"primaryKey"     json:"id"`
	UserID      uuid.UUID `gorm:"index;not null" json:"user_id"`
	FirstName   string    `gorm:"not null"       json:"first_name"`
	LastName    string    `gorm:"not null"       json:"last_name"`
	PhoneNumber string    `gorm:"not null"       json:"phone_number"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	ZipCode     string    `json:"zip_code"`
	Address1    string    `gorm:"not null" json:"address1"`
	Address2    string    `json:"address2"`
	Country     string    `gorm:"not null" json:"country"`
	Active      bool      `gorm:"default:false" json:"active"`
}

type Product struct {
	ID          uuid.UUID    `gorm:"primaryKey"           json:"id"`
	Name        string       `gorm:"not null"             json:"name"`
	Slug        string       `gorm:"uniqueIndex;not null" json:"slug"`
	Category    string       `gorm:"index"                json:"category"`
	Description string       `json:"description"`
	Rating      float64      `gorm:"default:0" json:"rating"`
	NumReviews  uint         `gorm:"default:0" json:"num_reviews"`
	SubProducts []SubProduct `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sub_products"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// SubProduct is one purchasable variant of a product: a color with its
// own images, per-size price list and discount percentage.
type SubProduct struct {
	ID        uuid.UUID      `gorm:"primaryKey"     json:"id"`
	ProductID uuid.UUID      `gorm:"index;not null" json:"product_id"`
	SKU       string         `json:"sku"`
	Color     string         `json:"color"`
	Image     string         `json:"image"`
	Images    datatypes.JSON `json:"images"`
	Sizes     []SizePrice    `gorm:"foreignKey:SubProductID;constraint:OnDelete:CASCADE" json:"sizes"`
	Discount  float64        `gorm:"default:0"     json:"discount"`
	OnSale    bool           `gorm:"default:false" json:"on_sale"`
	Sold      uint           `gorm:"default:0"     json:"sold"`
}

type SizePrice struct {
	ID           uuid.UUID `gorm:"primaryKey"     json:"id"`
	SubProductID uuid.UUID `gorm:"index;not null" json:"sub_product_id"`
	Size         string    `gorm:"not null"       json:"size"`
	Qty          uint      `gorm:"default:0"      json:"qty"`
	Price        float64   `gorm:"not null"       json:"price"`
}

// Cart is 1:1 with its user; saving a cart upserts the single row
// keyed by user_id instead of the delete-then-insert the old
// storefront did, so a crash can never leave the user cartless.
type Cart struct {
	ID                 uuid.UUID  `gorm:"primaryKey"           json:"id"`
	UserID             uuid.UUID  `gorm:"uniqueIndex;not null" json:"user_id"`
	Lines              []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"lines"`
	CartTotal          float64    `gorm:"not null"  json:"cart_total"`
	TotalAfterDiscount float64    `gorm:"default:0" json:"total_after_discount"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CartLine is one priced selection. Price is the discounted unit
// price at the time the cart was saved.
type CartLine struct {
	ID        uuid.UUID         `gorm:"primaryKey"     json:"id"`
	CartID    uuid.UUID         `gorm:"index;not null" json:"cart_id"`
	ProductID uuid.UUID         `gorm:"not null"       json:"product_id"`
	Name      string            `json:"name"`
	Color     string            `json:"color"`
	Image     string            `json:"image"`
	Size      string            `json:"size"`
	Qty       uint              `gorm:"default:1;check:qty>0" json:"qty"`
	Price     float64           `gorm:"not null" json:"price"`
	Saved     float64           `gorm:"default:0" json:"saved"`
	Vendor    datatypes.JSONMap `json:"vendor"`
	VendorID  string            `json:"vendor_id"`
}

type Coupon struct {
	ID       uuid.UUID `gorm:"primaryKey"           json:"id"`
	Code     string    `gorm:"uniqueIndex;not null" json:"code"`
	Discount float64   `gorm:"not null"             json:"discount"`
}

const (
	OrderStatusNew       = "new"
	OrderStatusCompleted = "completed"
)

// Order is an immutable snapshot taken at checkout completion.
type Order struct {
	ID                  uuid.UUID    `gorm:"primaryKey"     json:"id"`
	UserID              uuid.UUID    `gorm:"index;not null" json:"user_id"`
	Lines               []OrderLine  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	ShippingAddress     OrderAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod       string       `gorm:"not null" json:"payment_method"`
	Total               float64      `gorm:"not null" json:"total"`
	TotalBeforeDiscount float64      `gorm:"not null" json:"total_before_discount"`
	CouponApplied       string       `json:"coupon_applied"`
	TotalSaved          float64      `gorm:"default:0"          json:"total_saved"`
	IsPaid              bool         `gorm:"default:false"      json:"is_paid"`
	Status              string       `gorm:"not null;default:new" json:"status"`
	CreatedAt           time.Time    `gorm:"index" json:"created_at"`
}

// OrderAddress is the address snapshot embedded into the order row;
// later edits to the user's address book must not touch it.
type OrderAddress struct {
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

type OrderLine struct {
	ID        uuid.UUID         `gorm:"primaryKey"     json:"id"`
	OrderID   uuid.UUID         `gorm:"index;not null" json:"order_id"`
	ProductID uuid.UUID         `gorm:"not null"       json:"product_id"`
	Name      string            `json:"name"`
	Color     string            `json:"color"`
	Image     string            `json:"image"`
	Size      string            `json:"size"`
	Qty       uint              `gorm:"default:1;check:qty>0" json:"qty"`
	Price     float64           `gorm:"not null" json:"price"`
	Saved     float64           `gorm:"default:0" json:"saved"`
	Vendor    datatypes.JSONMap `json:"vendor"`
}

// TopBar is admin-fed page decoration, independent from checkout.
type TopBar struct {
	ID         uuid.UUID `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null"   json:"title"`
	Link       string    `json:"link"`
	TextColor  string    `json:"text_color"`
	Background string    `json:"background"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`
}

func (m *User) BeforeCreate(tx *gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *Address) BeforeCreate(tx *gorm.DB) error    { ensureID(&m.ID); return nil }
func (m *Product) BeforeCreate(tx *gorm.DB) error    { ensureID(&m.ID); return nil }
func (m *SubProduct) BeforeCreate(tx *gorm.DB) error { ensureID(&m.ID); return nil }
func (m *SizePrice) BeforeCreate(tx *gorm.DB) error  { ensureID(&m.ID); return nil }
func (m *Cart) BeforeCreate(tx *gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *CartLine) BeforeCreate(tx *gorm.DB) error   { ensureID(&m.ID); return nil }
func (m *Coupon) BeforeCreate(tx *gorm.DB) error     { ensureID(&m.ID); return nil }
func (m *Order) BeforeCreate(tx *gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *OrderLine) BeforeCreate(tx *gorm.DB) error  { ensureID(&m.ID); return nil }
func (m *TopBar) BeforeCreate(tx *gorm.DB) error     { ensureID(&m.ID); return nil }

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every entity for AutoMigrate.
func All() []any {
	return []any{
		&User{}, &Address{},
		&Product{}, &SubProduct{}, &SizePrice{},
		&Cart{}, &CartLine{},
		&Coupon{},
		&Order{}, &OrderLine{},
		&TopBar{},
	}
}
