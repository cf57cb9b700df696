package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/bazaar-api/internal/auth"
	"github.com/MikeMC777/bazaar-api/internal/httpx"
	"github.com/MikeMC777/bazaar-api/internal/order"
)

// pageParams reads ?page and ?limit. Non-numeric or absent values fall
// back to the defaults; out-of-range numbers are left for
// ValidatePagination to reject.
func pageParams(c *gin.Context, defLimit int) (page, limit int) {
	if page, _ = strconv.Atoi(c.DefaultQuery("page", "1")); page == 0 {
		page = 1
	}
	if limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defLimit))); limit == 0 {
		limit = defLimit
	}
	return page, limit
}

// createOrderHandler runs the full creation pipeline: validate, price the
// cart against the catalog, freeze the snapshot, persist, respond hydrated.
func createOrderHandler(repo order.Repository, cat order.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		order.Sanitize(&req)
		if errs := order.ValidateCreate(&req); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}

		items, itemsPrice, err := order.PriceCart(c.Request.Context(), req.Products, cat, auth.SellerID(c))
		if err != nil {
			var nf *order.ProductNotFoundError
			switch {
			case errors.Is(err, order.ErrEmptyCart):
				httpx.Fail(c, http.StatusBadRequest, "Products are required")
			case errors.As(err, &nf):
				httpx.Fail(c, http.StatusNotFound, nf.Error())
			case errors.Is(err, order.ErrPriceOverrideForbidden):
				httpx.Fail(c, http.StatusForbidden, "Not authorized to override the catalog price")
			default:
				log.Printf("[orders] price cart: %v", err)
				httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		shipping, tax, total := order.Totals(itemsPrice)

		o := &order.Order{
			ID:              uuid.NewString(),
			UserID:          req.UserID,
			Items:           items,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   order.PaymentPending,
			OrderStatus:     order.StatusPending,
			ItemsPrice:      itemsPrice.StringFixed(2),
			ShippingPrice:   shipping.StringFixed(2),
			TaxPrice:        tax.StringFixed(2),
			TotalPrice:      total.StringFixed(2),
			Notes:           req.Notes,
		}
		if o.PaymentMethod == "" {
			o.PaymentMethod = order.MethodCashOnDelivery
		}
		if o.ShippingAddress.Country == "" {
			o.ShippingAddress.Country = "Pakistan"
		}
		for i := range o.Items {
			o.Items[i].ID = uuid.NewString()
			o.Items[i].OrderID = o.ID
		}

		if err := repo.Create(c.Request.Context(), o); err != nil {
			log.Printf("[orders] create: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		saved, err := repo.GetByID(c.Request.Context(), o.ID)
		if err != nil {
			// Persisted but the hydrating read failed; return the snapshot.
			saved = o
		}
		httpx.Created(c, "Order created successfully", gin.H{"data": saved})
	}
}

func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c, 10)
		f := order.Filter{
			Status:        order.Status(c.Query("status")),
			PaymentStatus: order.PaymentStatus(c.Query("paymentStatus")),
			UserID:        c.Query("user_id"),
		}
		errs := append(order.ValidateFilter(f), order.ValidatePagination(page, limit)...)
		if len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}

		orders, total, err := repo.List(c.Request.Context(), f, page, limit)
		if err != nil {
			log.Printf("[orders] list: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Orders retrieved successfully", gin.H{
			"data": orders,
			"pagination": httpx.Pagination{
				CurrentPage: page,
				TotalPages:  httpx.PageCount(total, limit),
				TotalOrders: total,
				Limit:       limit,
			},
		})
	}
}

func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !order.ValidID(id) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid order ID")
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Order not found")
				return
			}
			log.Printf("[orders] get %s: %v", id, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Order retrieved successfully", gin.H{"data": o})
	}
}

func listOrdersByUserHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if !order.ValidID(userID) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid user ID")
			return
		}
		page, limit := pageParams(c, 10)
		if errs := order.ValidatePagination(page, limit); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}
		orders, total, err := repo.ListByUser(c.Request.Context(), userID, page, limit)
		if err != nil {
			log.Printf("[orders] list by user %s: %v", userID, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "User orders retrieved successfully", gin.H{
			"data": orders,
			"pagination": httpx.Pagination{
				CurrentPage: page,
				TotalPages:  httpx.PageCount(total, limit),
				TotalOrders: total,
				Limit:       limit,
			},
		})
	}
}

func listOrdersByStoreHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")
		if !order.ValidID(storeID) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid store ID")
			return
		}
		page, limit := pageParams(c, 10)
		if errs := order.ValidatePagination(page, limit); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}
		orders, total, err := repo.ListByStore(c.Request.Context(), storeID, page, limit)
		if err != nil {
			log.Printf("[orders] list by store %s: %v", storeID, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Store orders retrieved successfully", gin.H{
			"data": orders,
			"pagination": httpx.Pagination{
				CurrentPage: page,
				TotalPages:  httpx.PageCount(total, limit),
				TotalOrders: total,
				Limit:       limit,
			},
		})
	}
}

func updateOrderStatusHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !order.ValidID(id) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid order ID")
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := order.ValidateStatusUpdate(&req); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}

		o, err := repo.UpdateStatus(c.Request.Context(), id, req.OrderStatus, req.TrackingNumber)
		if err != nil {
			var it *order.InvalidTransitionError
			switch {
			case errors.Is(err, order.ErrNotFound):
				httpx.Fail(c, http.StatusNotFound, "Order not found")
			case errors.As(err, &it):
				httpx.Fail(c, http.StatusConflict, it.Error())
			default:
				log.Printf("[orders] update status %s: %v", id, err)
				httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		httpx.OK(c, "Order updated successfully", gin.H{"data": o})
	}
}

func updatePaymentStatusHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !order.ValidID(id) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid order ID")
			return
		}
		var req order.UpdatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := order.ValidatePaymentUpdate(&req); len(errs) > 0 {
			httpx.FailErrors(c, "Validation failed", errs)
			return
		}

		o, err := repo.UpdatePayment(c.Request.Context(), id, req.PaymentStatus)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, "Order not found")
				return
			}
			log.Printf("[orders] update payment %s: %v", id, err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Payment status updated successfully", gin.H{"data": o})
	}
}

// cancelOrderHandler soft-cancels; the order record always survives.
func cancelOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !order.ValidID(id) {
			httpx.Fail(c, http.StatusBadRequest, "Invalid order ID")
			return
		}
		o, err := repo.Cancel(c.Request.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, order.ErrNotFound):
				httpx.Fail(c, http.StatusNotFound, "Order not found")
			case errors.Is(err, order.ErrCancelConflict):
				httpx.Fail(c, http.StatusConflict, "Cannot cancel shipped or delivered orders")
			default:
				log.Printf("[orders] cancel %s: %v", id, err)
				httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		httpx.OK(c, "Order cancelled successfully", gin.H{"data": o})
	}
}

func orderStatsHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := repo.Stats(c.Request.Context())
		if err != nil {
			log.Printf("[orders] stats: %v", err)
			httpx.Fail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		httpx.OK(c, "Order statistics retrieved successfully", gin.H{"data": st})
	}
}
