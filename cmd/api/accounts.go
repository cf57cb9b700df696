package main

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/bazaar-api/internal/auth"
	"github.com/MikeMC777/bazaar-api/internal/httpx"
	"github.com/MikeMC777/bazaar-api/internal/seller"
	"github.com/MikeMC777/bazaar-api/internal/user"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func sellerSignupHandler(sellers seller.Repository, tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req seller.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		var errs []string
		if req.Name == "" {
			errs = append(errs, "Name is required")
		}
		if !emailRe.MatchString(req.Email) {
			errs = append(errs, "A valid email is required")
		}
		if len(req.Password) < 6 {
			errs = append(errs, "Password must be at least 6 characters")
		}
		if len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}

		hash, err := seller.HashPassword(req.Password)
		if err != nil {
			log.Printf("[seller] hash: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		s := &seller.Seller{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Phone:        req.Phone,
		}
		if err := sellers.Create(c.Request.Context(), s); err != nil {
			if errors.Is(err, seller.ErrAlreadyExist) {
				httpx.Fail(c, http.StatusBadRequest, "Seller already exists with this email")
				return
			}
			log.Printf("[seller] create: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		token, err := tokens.Sign(auth.Actor{ID: s.ID, Type: "seller"})
		if err != nil {
			log.Printf("[seller] sign token: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.Created(c, "Seller registered successfully", gin.H{"token": token, "seller": s})
	}
}

func sellerLoginHandler(sellers seller.Repository, tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req seller.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		s, err := sellers.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, seller.ErrNotFound) {
				httpx.Fail(c, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Printf("[seller] login lookup: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !seller.CheckPassword(s.PasswordHash, req.Password) {
			httpx.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		token, err := tokens.Sign(auth.Actor{ID: s.ID, Type: "seller"})
		if err != nil {
			log.Printf("[seller] sign token: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Seller login successful", gin.H{"token": token, "seller": s})
	}
}

func sellerProfileHandler(sellers seller.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := sellers.GetByID(c.Request.Context(), auth.SellerID(c))
		if err != nil {
			if errors.Is(err, seller.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Seller not found")
				return
			}
			log.Printf("[seller] profile: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Seller profile retrieved successfully", gin.H{"seller": s})
	}
}

func updateSellerProfileHandler(sellers seller.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req seller.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		s, err := sellers.Update(c.Request.Context(), auth.SellerID(c), &req)
		if err != nil {
			if errors.Is(err, seller.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Seller not found")
				return
			}
			log.Printf("[seller] update profile: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Profile updated successfully", gin.H{"seller": s})
	}
}

func userSignupHandler(users user.Repository, tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		var errs []string
		if req.Name == "" {
			errs = append(errs, "Name is required")
		}
		if !emailRe.MatchString(req.Email) {
			errs = append(errs, "A valid email is required")
		}
		if len(req.Password) < 6 {
			errs = append(errs, "Password must be at least 6 characters")
		}
		if len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}

		hash, err := user.HashPassword(req.Password)
		if err != nil {
			log.Printf("[auth] hash: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		u := &user.User{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Phone:        req.Phone,
		}
		if err := users.Create(c.Request.Context(), u); err != nil {
			if errors.Is(err, user.ErrAlreadyExist) {
				httpx.Fail(c, http.StatusBadRequest, "User already exists with this email")
				return
			}
			log.Printf("[auth] create: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		token, err := tokens.Sign(auth.Actor{ID: u.ID, Type: "user"})
		if err != nil {
			log.Printf("[auth] sign token: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.Created(c, "User registered successfully", gin.H{"token": token, "user": u})
	}
}

func userLoginHandler(users user.Repository, tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		u, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				httpx.Fail(c, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Printf("[auth] login lookup: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !user.CheckPassword(u.PasswordHash, req.Password) {
			httpx.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		token, err := tokens.Sign(auth.Actor{ID: u.ID, Type: "user"})
		if err != nil {
			log.Printf("[auth] sign token: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Login successful", gin.H{"token": token, "user": u})
	}
}

func userProfileHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetByID(c.Request.Context(), auth.UserID(c))
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "User not found")
				return
			}
			log.Printf("[auth] profile: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Profile retrieved successfully", gin.H{"user": u})
	}
}
