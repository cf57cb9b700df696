package product

import (
	"time"

	"github.com/MikeMC777/bazaar-api/internal/category"
)

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// We store prices as strings to avoid rounding errors (NUMERIC in Postgres)
	Price      string            `json:"price"`
	SalePrice  string            `json:"sale_price,omitempty"` // empty => not on sale
	Category   category.Category `json:"category"`
	Images     []string          `json:"images"`
	Quantity   int               `json:"quantity"`
	StoreID    string            `json:"store_id"`
	SaleEndsAt *time.Time        `json:"saleEndingDate,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	// Owning seller of the product's store, filled on reads that join
	// stores. Not serialized.
	StoreSellerID string `json:"-"`
}

// CreateRequest payload of creation.
// swagger:model CreateProductRequest
type CreateRequest struct {
	Name        string            `json:"name" example:"Mechanical Keyboard"`
	Description string            `json:"description" example:"RGB 60%"`
	Price       string            `json:"price" example:"199.90"`
	SalePrice   string            `json:"sale_price,omitempty"`
	Category    category.Category `json:"category"`
	Images      []string          `json:"images,omitempty"`
	Quantity    int               `json:"quantity" example:"10"`
	StoreID     string            `json:"store_id"`
	SaleEndsAt  *time.Time        `json:"saleEndingDate,omitempty"`
}

// UpdateRequest payload of partial update. Nil fields are left untouched;
// the repository builds one atomic field-set from the allow-list.
// swagger:model UpdateProductRequest
type UpdateRequest struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Price       *string            `json:"price,omitempty"`
	SalePrice   *string            `json:"sale_price,omitempty"`
	Category    *category.Category `json:"category,omitempty"`
	Images      *[]string          `json:"images,omitempty"`
	Quantity    *int               `json:"quantity,omitempty"`
	SaleEndsAt  *time.Time         `json:"saleEndingDate,omitempty"`
}
