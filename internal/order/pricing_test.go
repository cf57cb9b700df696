package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog map[string]*CatalogProduct

func (f fakeCatalog) GetProduct(_ context.Context, id string) (*CatalogProduct, error) {
	p, ok := f[id]
	if !ok {
		return nil, &ProductNotFoundError{ProductID: id}
	}
	return p, nil
}

func TestPriceCart(t *testing.T) {
	cat := fakeCatalog{
		"p1": {ID: "p1", Price: "100", StoreID: "s1", SellerID: "owner"},
		"p2": {ID: "p2", Price: "19.99", StoreID: "s2", SellerID: "other"},
	}

	items, itemsPrice, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}, cat, "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "100.00", items[0].UnitPrice)
	assert.Equal(t, "s1", items[0].StoreID)
	assert.Equal(t, "19.99", items[1].UnitPrice)
	assert.Equal(t, "219.99", itemsPrice.StringFixed(2))
}

func TestPriceCartEmpty(t *testing.T) {
	_, _, err := PriceCart(context.Background(), nil, fakeCatalog{}, "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

type errorCatalog struct{ err error }

func (e errorCatalog) GetProduct(context.Context, string) (*CatalogProduct, error) {
	return nil, e.err
}

// A catalog lookup failure is not a missing product; it must keep its
// identity so callers answer 500, not 404.
func TestPriceCartLookupFailure(t *testing.T) {
	boom := errors.New("connection refused")
	_, _, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 1},
	}, errorCatalog{err: boom}, "")

	require.Error(t, err)
	var nf *ProductNotFoundError
	assert.False(t, errors.As(err, &nf))
	assert.ErrorIs(t, err, boom)
}

func TestPriceCartUnknownProduct(t *testing.T) {
	_, _, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "ghost", Quantity: 1},
	}, fakeCatalog{}, "")

	var nf *ProductNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ghost", nf.ProductID)
	assert.Equal(t, "product with ID ghost not found", nf.Error())
}

func TestPriceCartSalePrice(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)
	cat := fakeCatalog{
		"on-sale":  {ID: "on-sale", Price: "100", SalePrice: "80", SaleEndsAt: &future, StoreID: "s1", SellerID: "owner"},
		"expired":  {ID: "expired", Price: "100", SalePrice: "80", SaleEndsAt: &past, StoreID: "s1", SellerID: "owner"},
		"open-end": {ID: "open-end", Price: "100", SalePrice: "75", StoreID: "s1", SellerID: "owner"},
	}

	items, _, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "on-sale", Quantity: 1},
		{ProductID: "expired", Quantity: 1},
		{ProductID: "open-end", Quantity: 1},
	}, cat, "")
	require.NoError(t, err)

	assert.Equal(t, "80.00", items[0].UnitPrice)
	assert.Equal(t, "100.00", items[1].UnitPrice)
	assert.Equal(t, "75.00", items[2].UnitPrice)
}

func TestPriceCartOverride(t *testing.T) {
	cat := fakeCatalog{
		"p1": {ID: "p1", Price: "100", StoreID: "s1", SellerID: "owner"},
	}

	// The owning seller may override the unit price.
	items, itemsPrice, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 3, Price: "90"},
	}, cat, "owner")
	require.NoError(t, err)
	assert.Equal(t, "90.00", items[0].UnitPrice)
	assert.Equal(t, "270.00", itemsPrice.StringFixed(2))

	// Anonymous callers may not.
	_, _, err = PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 1, Price: "1"},
	}, cat, "")
	assert.ErrorIs(t, err, ErrPriceOverrideForbidden)

	// Neither may a different seller.
	_, _, err = PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 1, Price: "1"},
	}, cat, "someone-else")
	assert.ErrorIs(t, err, ErrPriceOverrideForbidden)
}

func TestPriceCartStoreOverride(t *testing.T) {
	cat := fakeCatalog{
		"p1": {ID: "p1", Price: "10", StoreID: "catalog-store", SellerID: "owner"},
	}

	items, _, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 1, StoreID: "client-store"},
	}, cat, "")
	require.NoError(t, err)
	assert.Equal(t, "client-store", items[0].StoreID)
}

func TestTotals(t *testing.T) {
	items, itemsPrice, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 2},
	}, fakeCatalog{"p1": {ID: "p1", Price: "100", StoreID: "s1"}}, "")
	require.NoError(t, err)
	require.Len(t, items, 1)

	shipping, tax, total := Totals(itemsPrice)
	assert.Equal(t, "200.00", itemsPrice.StringFixed(2))
	assert.Equal(t, "50.00", shipping.StringFixed(2))
	assert.Equal(t, "10.00", tax.StringFixed(2))
	assert.Equal(t, "260.00", total.StringFixed(2))
}

func TestTotalsRoundsTax(t *testing.T) {
	_, itemsPrice, err := PriceCart(context.Background(), []CartLine{
		{ProductID: "p1", Quantity: 1},
	}, fakeCatalog{"p1": {ID: "p1", Price: "19.99", StoreID: "s1"}}, "")
	require.NoError(t, err)

	_, tax, total := Totals(itemsPrice)
	assert.Equal(t, "1.00", tax.StringFixed(2)) // 0.9995 rounds up
	assert.Equal(t, "70.99", total.StringFixed(2))
}
