package order

import "time"

// ShippingAddress is embedded in the order document.
type ShippingAddress struct {
	FullName    string `json:"fullName"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
}

// LineItem is the denormalized snapshot of one cart entry. UnitPrice and
// StoreID are frozen at order-creation time and never re-read from the
// catalog.
type LineItem struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	StoreID   string `json:"store_id"`
	Quantity  int    `json:"quantity"`
	// We store prices as strings to avoid rounding errors (NUMERIC in Postgres)
	UnitPrice string `json:"unit_price"`

	// Read-side hydration, not persisted with the snapshot.
	Product *ProductSummary `json:"product,omitempty"`
	Store   *StoreSummary   `json:"store,omitempty"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id,omitempty"` // empty => guest order
	Items           []LineItem      `json:"products"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	OrderStatus     Status          `json:"orderStatus"`
	ItemsPrice      string          `json:"itemsPrice"`
	ShippingPrice   string          `json:"shippingPrice"`
	TaxPrice        string          `json:"taxPrice"`
	TotalPrice      string          `json:"totalPrice"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	User *UserSummary `json:"user,omitempty"`
}

// ProductSummary is what a hydrated line item exposes about its product.
type ProductSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  string   `json:"price"`
	Images []string `json:"images,omitempty"`
}

type StoreSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StatusStat is one row of the per-status aggregation.
type StatusStat struct {
	Status      Status `json:"status"`
	Count       int64  `json:"count"`
	TotalAmount string `json:"totalAmount"`
}

type Stats struct {
	OrdersByStatus []StatusStat `json:"ordersByStatus"`
	TotalOrders    int64        `json:"totalOrders"`
	TotalRevenue   string       `json:"totalRevenue"` // sum of totalPrice where paymentStatus = Paid
}
