package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidateCreate mirrors the catalog field bounds enforced at the edge.
func ValidateCreate(req *CreateRequest) []string {
	var errs []string
	if req.Name == "" || len(req.Name) > 100 {
		errs = append(errs, "Product name is required and cannot exceed 100 characters")
	}
	if req.Description == "" || len(req.Description) > 1000 {
		errs = append(errs, "Product description is required and cannot exceed 1000 characters")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		errs = append(errs, "Price must be a non-negative number")
	}
	if req.SalePrice != "" {
		sale, serr := decimal.NewFromString(req.SalePrice)
		if serr != nil || sale.IsNegative() {
			errs = append(errs, "Sale price must be a non-negative number")
		} else if err == nil && !sale.LessThan(price) {
			errs = append(errs, "Sale price must be less than regular price")
		}
	}
	if !req.Category.Valid() {
		errs = append(errs, "Invalid product category")
	}
	if req.Quantity < 0 {
		errs = append(errs, "Quantity cannot be negative")
	}
	if _, err := uuid.Parse(req.StoreID); err != nil {
		errs = append(errs, "Invalid store ID format")
	}
	return errs
}

func ValidateUpdate(req *UpdateRequest) []string {
	var errs []string
	if req.Name != nil && (*req.Name == "" || len(*req.Name) > 100) {
		errs = append(errs, "Product name cannot be empty or exceed 100 characters")
	}
	if req.Description != nil && (*req.Description == "" || len(*req.Description) > 1000) {
		errs = append(errs, "Product description cannot be empty or exceed 1000 characters")
	}
	if req.Price != nil {
		if p, err := decimal.NewFromString(*req.Price); err != nil || p.IsNegative() {
			errs = append(errs, "Price must be a non-negative number")
		}
	}
	if req.SalePrice != nil && *req.SalePrice != "" {
		if p, err := decimal.NewFromString(*req.SalePrice); err != nil || p.IsNegative() {
			errs = append(errs, "Sale price must be a non-negative number")
		}
	}
	if req.Category != nil && !req.Category.Valid() {
		errs = append(errs, "Invalid product category")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errs = append(errs, "Quantity cannot be negative")
	}
	return errs
}
