package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/bazaar-api/internal/auth"
	"github.com/MikeMC777/bazaar-api/internal/cache"
	"github.com/MikeMC777/bazaar-api/internal/httpx"
	"github.com/MikeMC777/bazaar-api/internal/order"
	"github.com/MikeMC777/bazaar-api/internal/product"
	"github.com/MikeMC777/bazaar-api/internal/store"
)

func productPagination(page, limit int, total int64) gin.H {
	return gin.H{
		"current_page":      page,
		"total_pages":       httpx.PageCount(total, limit),
		"total_products":    total,
		"products_per_page": limit,
	}
}

func createProductHandler(products product.Repository, stores store.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := product.ValidateCreate(&req); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}
		if _, err := stores.GetByID(c.Request.Context(), req.StoreID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Store not found")
				return
			}
			log.Printf("[products] store lookup: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		p := &product.Product{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			SalePrice:   req.SalePrice,
			Category:    req.Category,
			Images:      req.Images,
			Quantity:    req.Quantity,
			StoreID:     req.StoreID,
			SaleEndsAt:  req.SaleEndsAt,
		}
		if p.Images == nil {
			p.Images = []string{}
		}
		if err := products.Create(c.Request.Context(), p); err != nil {
			log.Printf("[products] create: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.Created(c, "Product created successfully", gin.H{"product": p})
	}
}

func listProductsHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c, 30)
		if errs := order.ValidatePagination(page, limit); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}
		q := product.Query{
			Category: c.Query("category"),
			StoreID:  c.Query("store_id"),
			Q:        c.Query("search"),
			Page:     page,
			Limit:    limit,
		}
		out, total, err := products.List(c.Request.Context(), q)
		if err != nil {
			log.Printf("[products] list: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Products retrieved successfully", gin.H{
			"products":   out,
			"pagination": productPagination(page, limit, total),
		})
	}
}

func listProductsByStoreHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")
		if !order.ValidID(storeID) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid store ID format")
			return
		}
		page, limit := pageParams(c, 10)
		q := product.Query{
			Category: c.Query("category"),
			StoreID:  storeID,
			Q:        c.Query("search"),
			Page:     page,
			Limit:    limit,
		}
		out, total, err := products.List(c.Request.Context(), q)
		if err != nil {
			log.Printf("[products] list by store %s: %v", storeID, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Store products retrieved successfully", gin.H{
			"products":   out,
			"pagination": productPagination(page, limit, total),
		})
	}
}

func myProductsHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c, 10)
		q := product.Query{
			Category: c.Query("category"),
			Q:        c.Query("search"),
			Page:     page,
			Limit:    limit,
		}
		out, total, err := products.ListBySeller(c.Request.Context(), auth.SellerID(c), q)
		if err != nil {
			log.Printf("[products] list by seller: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Seller products retrieved successfully", gin.H{
			"products":   out,
			"pagination": productPagination(page, limit, total),
		})
	}
}

func getProductHandler(products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !order.ValidID(id) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid product ID format")
			return
		}
		p, err := products.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Product not found")
				return
			}
			log.Printf("[products] get %s: %v", id, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Product retrieved successfully", gin.H{"product": p})
	}
}

// ownedProduct loads the product and enforces store.seller_id == requester.
func ownedProduct(c *gin.Context, products product.Repository) (*product.Product, bool) {
	id := c.Param("id")
	if !order.ValidID(id) {
		httpx.Fail(c, http.StatusBadRequest, "Invalid product ID format")
		return nil, false
	}
	p, err := products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			httpx.Fail(c, http.StatusNotFound, "Product not found")
			return nil, false
		}
		log.Printf("[products] get %s: %v", id, err)
		httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	if p.StoreSellerID != auth.SellerID(c) {
		httpx.Fail(c, http.StatusForbidden, "Not authorized to modify this product")
		return nil, false
	}
	return p, true
}

func updateProductHandler(products product.Repository, cch *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ownedProduct(c, products)
		if !ok {
			return
		}
		var req product.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := product.ValidateUpdate(&req); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}
		if err := products.Update(c.Request.Context(), p.ID, &req); err != nil {
			log.Printf("[products] update %s: %v", p.ID, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		cch.InvalidateProduct(c.Request.Context(), p.ID)

		updated, err := products.GetByID(c.Request.Context(), p.ID)
		if err != nil {
			updated = p
		}
		httpx.OK(c, "Product updated successfully", gin.H{"product": updated})
	}
}

func deleteProductHandler(products product.Repository, cch *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ownedProduct(c, products)
		if !ok {
			return
		}
		if _, err := products.Delete(c.Request.Context(), p.ID); err != nil {
			log.Printf("[products] delete %s: %v", p.ID, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		cch.InvalidateProduct(c.Request.Context(), p.ID)
		httpx.OK(c, "Product deleted successfully", nil)
	}
}
