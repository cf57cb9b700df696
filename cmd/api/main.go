package main

import (
	"context"
	"log"
	"time"

	"github.com/MikeMC777/bazaar-api/internal/auth"
	"github.com/MikeMC777/bazaar-api/internal/cache"
	"github.com/MikeMC777/bazaar-api/internal/config"
	"github.com/MikeMC777/bazaar-api/internal/db"
	"github.com/MikeMC777/bazaar-api/internal/order"
	"github.com/MikeMC777/bazaar-api/internal/product"
	"github.com/MikeMC777/bazaar-api/internal/seller"
	"github.com/MikeMC777/bazaar-api/internal/store"
	"github.com/MikeMC777/bazaar-api/internal/user"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] connect: %v", err)
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("[db] migrate: %v", err)
	}

	cch := cache.New(ctx, cfg.RedisAddr, cfg.RedisPass)
	defer func() { _ = cch.Close() }()

	products := product.NewPGRepo(pool)
	d := deps{
		orders:   order.NewPGRepo(pool),
		products: products,
		catalog:  &cache.Catalog{Next: products, Cache: cch},
		cache:    cch,
		stores:   store.NewPGRepo(pool),
		sellers:  seller.NewPGRepo(pool),
		users:    user.NewPGRepo(pool),
		tokens:   auth.NewTokens(cfg.JWTSecret, 24*time.Hour),
	}

	r := newRouter(d)
	log.Printf("api listening on %s", cfg.APIAddr)
	log.Fatal(r.Run(cfg.APIAddr))
}
