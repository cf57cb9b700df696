package order

// CartLine is one entry of an incoming cart. Price and StoreID are
// optional overrides; see PriceCart for the trust rules.
// swagger:model CartLine
type CartLine struct {
	ProductID string `json:"product" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int    `json:"quantity" example:"2"`
	Price     string `json:"price,omitempty" example:"99.90"`
	StoreID   string `json:"store_id,omitempty"`
}

// CreateRequest is the POST /api/orders payload.
// swagger:model CreateOrderRequest
type CreateRequest struct {
	UserID          string          `json:"user_id,omitempty"`
	Products        []CartLine      `json:"products"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// UpdateStatusRequest is the PUT /api/orders/:id/status payload.
// swagger:model
type UpdateStatusRequest struct {
	OrderStatus    Status `json:"orderStatus"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

// UpdatePaymentRequest is the PUT /api/orders/:id/payment payload.
// swagger:model
type UpdatePaymentRequest struct {
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
