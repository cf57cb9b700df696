package order

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxLineQuantity = 100
	MaxNotesLen     = 500
)

var (
	postalCodeRe = regexp.MustCompile(`^[0-9]{5}$`)
	phoneRe      = regexp.MustCompile(`^(\+92|0)?[0-9]{10,11}$`)
	maxLinePrice = decimal.NewFromInt(1_000_000)
)

// ValidID reports whether id is a well-formed identifier.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func validPhone(phone string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(phone)
	return phoneRe.MatchString(cleaned)
}

// ValidateCreate checks a create-order payload before pricing. It returns
// every problem found, not just the first.
func ValidateCreate(req *CreateRequest) []string {
	var errs []string

	if req.UserID != "" && !ValidID(req.UserID) {
		errs = append(errs, "Invalid user ID format")
	}

	if len(req.Products) == 0 {
		errs = append(errs, "Products array is required and cannot be empty")
	}
	for i, line := range req.Products {
		n := i + 1
		if !ValidID(line.ProductID) {
			errs = append(errs, fmt.Sprintf("Product %d: Invalid product ID format", n))
		}
		if line.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("Product %d: Quantity must be a positive number", n))
		}
		if line.Quantity > MaxLineQuantity {
			errs = append(errs, fmt.Sprintf("Product %d: Quantity cannot exceed %d items", n, MaxLineQuantity))
		}
		if line.Price != "" {
			p, err := decimal.NewFromString(line.Price)
			switch {
			case err != nil || p.IsNegative():
				errs = append(errs, fmt.Sprintf("Product %d: Price must be a positive number", n))
			case p.GreaterThan(maxLinePrice):
				errs = append(errs, fmt.Sprintf("Product %d: Price cannot exceed 1,000,000", n))
			}
		}
		if line.StoreID != "" && !ValidID(line.StoreID) {
			errs = append(errs, fmt.Sprintf("Product %d: Invalid store ID format", n))
		}
	}

	errs = append(errs, validateAddress(&req.ShippingAddress)...)

	if req.PaymentMethod != "" && !req.PaymentMethod.Valid() {
		errs = append(errs, "Invalid payment method")
	}
	if len(req.Notes) > MaxNotesLen {
		errs = append(errs, "Notes cannot exceed 500 characters")
	}
	return errs
}

func validateAddress(a *ShippingAddress) []string {
	var errs []string
	if a == nil || *a == (ShippingAddress{}) {
		return []string{"Shipping address is required"}
	}
	if n := len(strings.TrimSpace(a.FullName)); n < 2 {
		errs = append(errs, "Full name is required and must be at least 2 characters")
	} else if len(a.FullName) > 100 {
		errs = append(errs, "Full name cannot exceed 100 characters")
	}
	if n := len(strings.TrimSpace(a.AddressLine)); n < 5 {
		errs = append(errs, "Address line is required and must be at least 5 characters")
	} else if len(a.AddressLine) > 200 {
		errs = append(errs, "Address line cannot exceed 200 characters")
	}
	if n := len(strings.TrimSpace(a.City)); n < 2 {
		errs = append(errs, "City is required and must be at least 2 characters")
	} else if len(a.City) > 50 {
		errs = append(errs, "City name cannot exceed 50 characters")
	}
	if !postalCodeRe.MatchString(a.PostalCode) {
		errs = append(errs, "Invalid postal code format (must be 5 digits)")
	}
	if len(a.Country) > 50 {
		errs = append(errs, "Country name cannot exceed 50 characters")
	}
	if a.Phone == "" || !validPhone(a.Phone) {
		errs = append(errs, "Invalid phone number format")
	}
	return errs
}

// ValidateStatusUpdate checks the status-change payload. The transition
// itself is judged later, against the stored order.
func ValidateStatusUpdate(req *UpdateStatusRequest) []string {
	var errs []string
	if !req.OrderStatus.Valid() {
		errs = append(errs, "Invalid order status")
	}
	if tn := req.TrackingNumber; tn != "" && (len(tn) < 5 || len(tn) > 50) {
		errs = append(errs, "Tracking number must be between 5 and 50 characters")
	}
	return errs
}

func ValidatePaymentUpdate(req *UpdatePaymentRequest) []string {
	if req.PaymentStatus == "" {
		return []string{"Payment status is required"}
	}
	if !req.PaymentStatus.Valid() {
		return []string{"Invalid payment status"}
	}
	return nil
}

// ValidatePagination bounds page/limit after defaults have been applied.
func ValidatePagination(page, limit int) []string {
	var errs []string
	if page < 1 {
		errs = append(errs, "Page must be a positive number")
	} else if page > 1000 {
		errs = append(errs, "Page number cannot exceed 1000")
	}
	if limit < 1 {
		errs = append(errs, "Limit must be a positive number")
	} else if limit > 100 {
		errs = append(errs, "Limit cannot exceed 100")
	}
	return errs
}

// ValidateFilter checks the list query string values.
func ValidateFilter(f Filter) []string {
	var errs []string
	if f.Status != "" && !f.Status.Valid() {
		errs = append(errs, "Invalid order status filter")
	}
	if f.PaymentStatus != "" && !f.PaymentStatus.Valid() {
		errs = append(errs, "Invalid payment status filter")
	}
	if f.UserID != "" && !ValidID(f.UserID) {
		errs = append(errs, "Invalid user ID format in filter")
	}
	return errs
}

// Sanitize trims whitespace from free-text fields in place.
func Sanitize(req *CreateRequest) {
	a := &req.ShippingAddress
	a.FullName = strings.TrimSpace(a.FullName)
	a.AddressLine = strings.TrimSpace(a.AddressLine)
	a.City = strings.TrimSpace(a.City)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.TrimSpace(a.Country)
	a.Phone = strings.TrimSpace(a.Phone)
	req.Notes = strings.TrimSpace(req.Notes)
}
