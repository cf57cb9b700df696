package store

import (
	"time"

	"github.com/MikeMC777/bazaar-api/internal/category"
)

type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

type Store struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    category.Category `json:"category"`
	Description string            `json:"description"`
	Banner      string            `json:"banner,omitempty"`
	Logo        string            `json:"logo,omitempty"`
	SellerID    string            `json:"seller_id"`
	ContactInfo ContactInfo       `json:"contactInfo"`
	SocialLinks SocialLinks       `json:"socialLinks"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// CreateRequest payload of store creation.
// swagger:model CreateStoreRequest
type CreateRequest struct {
	Name        string            `json:"name"`
	Category    category.Category `json:"category"`
	Description string            `json:"description"`
	Banner      string            `json:"banner,omitempty"`
	Logo        string            `json:"logo,omitempty"`
	ContactInfo ContactInfo       `json:"contactInfo"`
	SocialLinks SocialLinks       `json:"socialLinks"`
}

// UpdateRequest payload of partial update; nil fields are left untouched.
// swagger:model UpdateStoreRequest
type UpdateRequest struct {
	Name        *string            `json:"name,omitempty"`
	Category    *category.Category `json:"category,omitempty"`
	Description *string            `json:"description,omitempty"`
	Banner      *string            `json:"banner,omitempty"`
	Logo        *string            `json:"logo,omitempty"`
	ContactInfo *ContactInfo       `json:"contactInfo,omitempty"`
	SocialLinks *SocialLinks       `json:"socialLinks,omitempty"`
}

func ValidateCreate(req *CreateRequest) []string {
	var errs []string
	if req.Name == "" || len(req.Name) > 100 {
		errs = append(errs, "Store name is required and cannot exceed 100 characters")
	}
	if !req.Category.Valid() {
		errs = append(errs, "Invalid store category")
	}
	if req.Description == "" || len(req.Description) > 500 {
		errs = append(errs, "Store description is required and cannot exceed 500 characters")
	}
	return errs
}

func ValidateUpdate(req *UpdateRequest) []string {
	var errs []string
	if req.Name != nil && (*req.Name == "" || len(*req.Name) > 100) {
		errs = append(errs, "Store name cannot be empty or exceed 100 characters")
	}
	if req.Category != nil && !req.Category.Valid() {
		errs = append(errs, "Invalid store category")
	}
	if req.Description != nil && (*req.Description == "" || len(*req.Description) > 500) {
		errs = append(errs, "Store description cannot be empty or exceed 500 characters")
	}
	return errs
}
