package user

import "time"

// User is a customer account. Orders may reference one, or carry no user at
// all for guest checkout.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest payload of customer registration.
// swagger:model UserSignupRequest
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest payload of customer login.
// swagger:model UserLoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
