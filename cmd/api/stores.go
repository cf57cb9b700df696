package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/bazaar-api/internal/auth"
	"github.com/MikeMC777/bazaar-api/internal/httpx"
	"github.com/MikeMC777/bazaar-api/internal/order"
	"github.com/MikeMC777/bazaar-api/internal/seller"
	"github.com/MikeMC777/bazaar-api/internal/store"
)

func createStoreHandler(stores store.Repository, sellers seller.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req store.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := store.ValidateCreate(&req); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}
		sellerID := auth.SellerID(c)
		if _, err := sellers.GetByID(c.Request.Context(), sellerID); err != nil {
			if errors.Is(err, seller.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Seller not found")
				return
			}
			log.Printf("[stores] seller lookup: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		switch _, err := stores.GetByName(c.Request.Context(), req.Name); {
		case err == nil:
			httpx.Fail(c, http.StatusBadRequest, "Store name already exists")
			return
		case !errors.Is(err, store.ErrNotFound):
			log.Printf("[stores] name lookup: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		s := &store.Store{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Category:    req.Category,
			Description: req.Description,
			Banner:      req.Banner,
			Logo:        req.Logo,
			SellerID:    sellerID,
			ContactInfo: req.ContactInfo,
			SocialLinks: req.SocialLinks,
		}
		if err := stores.Create(c.Request.Context(), s); err != nil {
			if errors.Is(err, store.ErrNameExists) {
				httpx.Fail(c, http.StatusBadRequest, "Store name already exists")
				return
			}
			log.Printf("[stores] create: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.Created(c, "Store created successfully", gin.H{"store": s})
	}
}

func listStoresHandler(stores store.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := stores.List(c.Request.Context(), store.Query{
			Category: c.Query("category"),
			Q:        c.Query("search"),
		})
		if err != nil {
			log.Printf("[stores] list: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Stores retrieved successfully", gin.H{"stores": out})
	}
}

func getStoreHandler(stores store.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !order.ValidID(id) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid store ID format")
			return
		}
		s, err := stores.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Store not found")
				return
			}
			log.Printf("[stores] get %s: %v", id, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Store retrieved successfully", gin.H{"store": s})
	}
}

func myStoresHandler(stores store.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := stores.ListBySeller(c.Request.Context(), auth.SellerID(c))
		if err != nil {
			log.Printf("[stores] list by seller: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Seller stores retrieved successfully", gin.H{"count": len(out), "stores": out})
	}
}

// ownedStore loads the store and enforces store.seller_id == requester.
func ownedStore(c *gin.Context, stores store.Repository) (*store.Store, bool) {
	id := c.Param("id")
	if !order.ValidID(id) {
		httpx.Fail(c, http.StatusBadRequest, "Invalid store ID format")
		return nil, false
	}
	s, err := stores.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Store not found")
			return nil, false
		}
		log.Printf("[stores] get %s: %v", id, err)
		httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	if s.SellerID != auth.SellerID(c) {
		httpx.Fail(c, http.StatusForbidden, "Not authorized to modify this store")
		return nil, false
	}
	return s, true
}

func updateStoreHandler(stores store.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := ownedStore(c, stores)
		if !ok {
			return
		}
		var req store.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := store.ValidateUpdate(&req); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}
		if err := stores.Update(c.Request.Context(), s.ID, &req); err != nil {
			log.Printf("[stores] update %s: %v", s.ID, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		updated, err := stores.GetByID(c.Request.Context(), s.ID)
		if err != nil {
			updated = s
		}
		httpx.OK(c, "Store updated successfully", gin.H{"store": updated})
	}
}

func deleteStoreHandler(stores store.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := ownedStore(c, stores)
		if !ok {
			return
		}
		if _, err := stores.Delete(c.Request.Context(), s.ID); err != nil {
			log.Printf("[stores] delete %s: %v", s.ID, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Store deleted successfully", nil)
	}
}
