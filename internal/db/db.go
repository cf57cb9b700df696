// Package db owns the PostgreSQL pool and the schema bootstrap.
package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Printf("[db] connected")
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sellers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stores (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		banner TEXT,
		logo TEXT,
		seller_id UUID NOT NULL REFERENCES sellers(id),
		contact_phone TEXT,
		contact_email TEXT,
		social_website TEXT,
		social_facebook TEXT,
		social_instagram TEXT,
		social_twitter TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stores_seller ON stores(seller_id)`,
	`CREATE INDEX IF NOT EXISTS idx_stores_category ON stores(category)`,
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		sale_price NUMERIC(12,2) CHECK (sale_price >= 0),
		category TEXT NOT NULL,
		images TEXT[] NOT NULL DEFAULT '{}',
		quantity INT NOT NULL DEFAULT 1 CHECK (quantity >= 0),
		store_id UUID NOT NULL REFERENCES stores(id),
		sale_ends_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_store ON products(store_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id UUID,
		shipping JSONB NOT NULL,
		payment_method TEXT NOT NULL DEFAULT 'Cash on Delivery',
		payment_status TEXT NOT NULL DEFAULT 'Pending',
		order_status TEXT NOT NULL DEFAULT 'Pending',
		items_price NUMERIC(12,2) NOT NULL CHECK (items_price >= 0),
		shipping_price NUMERIC(12,2) NOT NULL CHECK (shipping_price >= 0),
		tax_price NUMERIC(12,2) NOT NULL CHECK (tax_price >= 0),
		total_price NUMERIC(12,2) NOT NULL CHECK (total_price >= 0),
		tracking_number TEXT,
		delivered_at TIMESTAMPTZ,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(order_status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id),
		product_id UUID NOT NULL,
		store_id UUID NOT NULL,
		quantity INT NOT NULL CHECK (quantity >= 1),
		unit_price NUMERIC(12,2) NOT NULL CHECK (unit_price >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_store ON order_items(store_id)`,
}

// Migrate applies the schema. Statements are idempotent so the binary can
// run them on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Printf("[db] schema up to date")
	return nil
}
