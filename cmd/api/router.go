package main

import (
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/bazaar-api/internal/auth"
	"github.com/MikeMC777/bazaar-api/internal/cache"
	"github.com/MikeMC777/bazaar-api/internal/httpx"
	"github.com/MikeMC777/bazaar-api/internal/order"
	"github.com/MikeMC777/bazaar-api/internal/product"
	"github.com/MikeMC777/bazaar-api/internal/seller"
	"github.com/MikeMC777/bazaar-api/internal/store"
	"github.com/MikeMC777/bazaar-api/internal/user"
)

type deps struct {
	orders   order.Repository
	products product.Repository
	catalog  order.Catalog
	cache    *cache.Client
	stores   store.Repository
	sellers  seller.Repository
	users    user.Repository
	tokens   *auth.Tokens
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/api/health", func(c *gin.Context) {
		httpx.OK(c, "Server is running", nil)
	})

	ord := r.Group("/api/orders")
	{
		ord.POST("", auth.OptionalSeller(d.tokens), createOrderHandler(d.orders, d.catalog))
		ord.GET("", listOrdersHandler(d.orders))
		ord.GET("/stats", orderStatsHandler(d.orders))
		ord.GET("/user/:userId", listOrdersByUserHandler(d.orders))
		ord.GET("/store/:storeId", listOrdersByStoreHandler(d.orders))
		ord.GET("/:id", getOrderHandler(d.orders))
		ord.PUT("/:id/status", updateOrderStatusHandler(d.orders))
		ord.PUT("/:id/payment", updatePaymentStatusHandler(d.orders))
		ord.DELETE("/:id", cancelOrderHandler(d.orders))
	}

	prod := r.Group("/api/products")
	{
		prod.GET("", listProductsHandler(d.products))
		prod.POST("", createProductHandler(d.products, d.stores))
		prod.GET("/store/:storeId", listProductsByStoreHandler(d.products))
		prod.GET("/seller/my-products", auth.RequireSeller(d.tokens), myProductsHandler(d.products))
		prod.GET("/:id", getProductHandler(d.products))
		prod.PUT("/:id", auth.RequireSeller(d.tokens), updateProductHandler(d.products, d.cache))
		prod.DELETE("/:id", auth.RequireSeller(d.tokens), deleteProductHandler(d.products, d.cache))
	}

	st := r.Group("/api/stores")
	{
		st.GET("", listStoresHandler(d.stores))
		st.POST("", auth.RequireSeller(d.tokens), createStoreHandler(d.stores, d.sellers))
		st.GET("/seller/my-stores", auth.RequireSeller(d.tokens), myStoresHandler(d.stores))
		st.GET("/:id", getStoreHandler(d.stores))
		st.PUT("/:id", auth.RequireSeller(d.tokens), updateStoreHandler(d.stores))
		st.DELETE("/:id", auth.RequireSeller(d.tokens), deleteStoreHandler(d.stores))
	}

	sl := r.Group("/api/seller")
	{
		sl.POST("/signup", sellerSignupHandler(d.sellers, d.tokens))
		sl.POST("/login", sellerLoginHandler(d.sellers, d.tokens))
		sl.GET("/profile", auth.RequireSeller(d.tokens), sellerProfileHandler(d.sellers))
		sl.PUT("/profile", auth.RequireSeller(d.tokens), updateSellerProfileHandler(d.sellers))
	}

	au := r.Group("/api/auth")
	{
		au.POST("/signup", userSignupHandler(d.users, d.tokens))
		au.POST("/login", userLoginHandler(d.users, d.tokens))
		au.GET("/profile", auth.RequireUser(d.tokens), userProfileHandler(d.users))
	}

	return r
}
