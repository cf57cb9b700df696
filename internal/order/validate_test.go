package order

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *CreateRequest {
	return &CreateRequest{
		Products: []CartLine{
			{ProductID: uuid.NewString(), Quantity: 2},
		},
		ShippingAddress: ShippingAddress{
			FullName:    "Ali Khan",
			AddressLine: "House 12, Street 4",
			City:        "Lahore",
			PostalCode:  "54000",
			Country:     "Pakistan",
			Phone:       "03001234567",
		},
	}
}

func TestValidateCreateOK(t *testing.T) {
	assert.Empty(t, ValidateCreate(validCreateRequest()))
}

func TestValidateCreateEmptyProducts(t *testing.T) {
	req := validCreateRequest()
	req.Products = nil
	errs := ValidateCreate(req)
	assert.Contains(t, errs, "Products array is required and cannot be empty")
}

func TestValidateCreateBadLines(t *testing.T) {
	req := validCreateRequest()
	req.Products = []CartLine{
		{ProductID: "not-a-uuid", Quantity: 0},
		{ProductID: uuid.NewString(), Quantity: 101},
		{ProductID: uuid.NewString(), Quantity: 1, Price: "-5"},
		{ProductID: uuid.NewString(), Quantity: 1, Price: "1000001"},
		{ProductID: uuid.NewString(), Quantity: 1, StoreID: "bogus"},
	}
	errs := ValidateCreate(req)

	assert.Contains(t, errs, "Product 1: Invalid product ID format")
	assert.Contains(t, errs, "Product 1: Quantity must be a positive number")
	assert.Contains(t, errs, "Product 2: Quantity cannot exceed 100 items")
	assert.Contains(t, errs, "Product 3: Price must be a positive number")
	assert.Contains(t, errs, "Product 4: Price cannot exceed 1,000,000")
	assert.Contains(t, errs, "Product 5: Invalid store ID format")
}

func TestValidateCreateAddress(t *testing.T) {
	req := validCreateRequest()
	req.ShippingAddress = ShippingAddress{}
	errs := ValidateCreate(req)
	assert.Contains(t, errs, "Shipping address is required")

	req = validCreateRequest()
	req.ShippingAddress.FullName = "A"
	req.ShippingAddress.AddressLine = "x"
	req.ShippingAddress.PostalCode = "1234"
	req.ShippingAddress.Phone = "abc"
	errs = ValidateCreate(req)
	assert.Contains(t, errs, "Full name is required and must be at least 2 characters")
	assert.Contains(t, errs, "Address line is required and must be at least 5 characters")
	assert.Contains(t, errs, "Invalid postal code format (must be 5 digits)")
	assert.Contains(t, errs, "Invalid phone number format")
}

func TestValidateCreatePhoneFormats(t *testing.T) {
	for _, phone := range []string{"03001234567", "+923001234567", "0300-1234567", "0300 1234567", "3001234567"} {
		req := validCreateRequest()
		req.ShippingAddress.Phone = phone
		assert.Emptyf(t, ValidateCreate(req), "phone %q", phone)
	}
	for _, phone := range []string{"", "12345", "+4412345678901234"} {
		req := validCreateRequest()
		req.ShippingAddress.Phone = phone
		assert.NotEmptyf(t, ValidateCreate(req), "phone %q", phone)
	}
}

func TestValidateCreateNotesAndUserID(t *testing.T) {
	req := validCreateRequest()
	req.Notes = strings.Repeat("x", 501)
	req.UserID = "nope"
	errs := ValidateCreate(req)
	assert.Contains(t, errs, "Notes cannot exceed 500 characters")
	assert.Contains(t, errs, "Invalid user ID format")
}

func TestValidateCreatePaymentMethod(t *testing.T) {
	req := validCreateRequest()
	req.PaymentMethod = "Barter"
	assert.Contains(t, ValidateCreate(req), "Invalid payment method")

	req.PaymentMethod = MethodStripe
	assert.Empty(t, ValidateCreate(req))
}

func TestValidateStatusUpdate(t *testing.T) {
	errs := ValidateStatusUpdate(&UpdateStatusRequest{OrderStatus: "Bogus"})
	assert.Contains(t, errs, "Invalid order status")

	errs = ValidateStatusUpdate(&UpdateStatusRequest{OrderStatus: StatusShipped, TrackingNumber: "abc"})
	assert.Contains(t, errs, "Tracking number must be between 5 and 50 characters")

	assert.Empty(t, ValidateStatusUpdate(&UpdateStatusRequest{OrderStatus: StatusShipped, TrackingNumber: "TRK-12345"}))
}

func TestValidatePaymentUpdate(t *testing.T) {
	assert.Equal(t, []string{"Payment status is required"}, ValidatePaymentUpdate(&UpdatePaymentRequest{}))
	assert.Equal(t, []string{"Invalid payment status"}, ValidatePaymentUpdate(&UpdatePaymentRequest{PaymentStatus: "Settled"}))
	assert.Nil(t, ValidatePaymentUpdate(&UpdatePaymentRequest{PaymentStatus: PaymentPaid}))
}

func TestValidatePagination(t *testing.T) {
	assert.Empty(t, ValidatePagination(1, 10))
	assert.Contains(t, ValidatePagination(0, 10), "Page must be a positive number")
	assert.Contains(t, ValidatePagination(1001, 10), "Page number cannot exceed 1000")
	assert.Contains(t, ValidatePagination(1, 0), "Limit must be a positive number")
	assert.Contains(t, ValidatePagination(1, 101), "Limit cannot exceed 100")
}

func TestValidateFilter(t *testing.T) {
	assert.Empty(t, ValidateFilter(Filter{}))
	assert.Contains(t, ValidateFilter(Filter{Status: "Bogus"}), "Invalid order status filter")
	assert.Contains(t, ValidateFilter(Filter{PaymentStatus: "Bogus"}), "Invalid payment status filter")
	assert.Contains(t, ValidateFilter(Filter{UserID: "nope"}), "Invalid user ID format in filter")
}

func TestSanitize(t *testing.T) {
	req := validCreateRequest()
	req.ShippingAddress.FullName = "  Ali Khan  "
	req.ShippingAddress.City = " Lahore "
	req.Notes = "  leave at the gate  "
	Sanitize(req)
	require.Equal(t, "Ali Khan", req.ShippingAddress.FullName)
	require.Equal(t, "Lahore", req.ShippingAddress.City)
	require.Equal(t, "leave at the gate", req.Notes)
}
