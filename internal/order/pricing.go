package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart = errors.New("products are required")

	// ErrPriceOverrideForbidden rejects a client-supplied unit price from a
	// caller that does not own the product's store. The catalog price is
	// authoritative for everyone else.
	ErrPriceOverrideForbidden = errors.New("price override requires store ownership")
)

// ProductNotFoundError names the cart line that referenced a missing product.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

// CatalogProduct is the slice of a product the pricing engine needs.
type CatalogProduct struct {
	ID         string
	Price      string
	SalePrice  string // empty when the product is not on sale
	SaleEndsAt *time.Time
	StoreID    string
	SellerID   string // owner of the product's store
}

// Catalog resolves product references during pricing. Implementations
// report a missing product as *ProductNotFoundError; any other error is
// a lookup failure and propagates as such.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*CatalogProduct, error)
}

var (
	shippingFlat = decimal.NewFromInt(50)
	taxRate      = decimal.New(5, -2) // 5%
)

// effectivePrice picks the sale price while a sale is running, the regular
// price otherwise.
func (p *CatalogProduct) effectivePrice(now time.Time) (decimal.Decimal, error) {
	if p.SalePrice != "" && (p.SaleEndsAt == nil || p.SaleEndsAt.After(now)) {
		return decimal.NewFromString(p.SalePrice)
	}
	return decimal.NewFromString(p.Price)
}

// PriceCart resolves each cart line against the catalog and accumulates the
// items price. sellerID is the authenticated seller making the request, or
// empty for anonymous callers; a line-level price override is honored only
// when that seller owns the product's store. The resolved store reference is
// the client-supplied one if present, else the product's owning store.
//
// PriceCart is pure: it never mutates stock or the catalog.
func PriceCart(ctx context.Context, lines []CartLine, cat Catalog, sellerID string) ([]LineItem, decimal.Decimal, error) {
	if len(lines) == 0 {
		return nil, decimal.Zero, ErrEmptyCart
	}

	now := time.Now()
	itemsPrice := decimal.Zero
	resolved := make([]LineItem, 0, len(lines))

	for _, line := range lines {
		p, err := cat.GetProduct(ctx, line.ProductID)
		if err != nil {
			var nf *ProductNotFoundError
			if errors.As(err, &nf) {
				return nil, decimal.Zero, nf
			}
			// storage failures are not "not found"
			return nil, decimal.Zero, fmt.Errorf("catalog lookup for %s: %w", line.ProductID, err)
		}

		unit, err := p.effectivePrice(now)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("catalog price for %s: %w", p.ID, err)
		}
		if line.Price != "" {
			if sellerID == "" || sellerID != p.SellerID {
				return nil, decimal.Zero, ErrPriceOverrideForbidden
			}
			unit, err = decimal.NewFromString(line.Price)
			if err != nil {
				return nil, decimal.Zero, fmt.Errorf("override price for %s: %w", p.ID, err)
			}
		}

		storeID := line.StoreID
		if storeID == "" {
			storeID = p.StoreID
		}

		itemsPrice = itemsPrice.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
		resolved = append(resolved, LineItem{
			ProductID: line.ProductID,
			StoreID:   storeID,
			Quantity:  line.Quantity,
			UnitPrice: unit.StringFixed(2),
		})
	}

	return resolved, itemsPrice, nil
}

// Totals derives the shipping, tax and grand total from the items price:
// flat shipping, 5% tax, total = items + shipping + tax. These are frozen
// on the order at creation and never recomputed.
func Totals(itemsPrice decimal.Decimal) (shipping, tax, total decimal.Decimal) {
	shipping = shippingFlat
	tax = itemsPrice.Mul(taxRate).Round(2)
	total = itemsPrice.Add(shipping).Add(tax)
	return shipping, tax, total
}
