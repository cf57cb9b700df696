package product

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/bazaar-api/internal/order"
)

var ErrNotFound = errors.New("product not found")

type Query struct {
	Category string
	StoreID  string
	Q        string
	Page     int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q Query) ([]Product, int64, error)
	ListBySeller(ctx context.Context, sellerID string, q Query) ([]Product, int64, error)
	Update(ctx context.Context, id string, req *UpdateRequest) error
	Delete(ctx context.Context, id string) (bool, error)
	GetProduct(ctx context.Context, id string) (*order.CatalogProduct, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const cols = `
	p.id, p.name, p.description, p.price::text, COALESCE(p.sale_price::text,''),
	p.category, p.images, p.quantity, p.store_id, p.sale_ends_at,
	p.created_at, p.updated_at, s.seller_id`

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, description, price, sale_price, category, images,
		                      quantity, store_id, sale_ends_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NULLIF($5,'')::numeric,$6,$7,$8,$9,$10,NOW(),NOW())
	`, p.ID, p.Name, p.Description, p.Price, p.SalePrice, p.Category, p.Images,
		p.Quantity, p.StoreID, p.SaleEndsAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT `+cols+`
		FROM products p JOIN stores s ON s.id = p.store_id
		WHERE p.id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SalePrice,
		&p.Category, &p.Images, &p.Quantity, &p.StoreID, &p.SaleEndsAt,
		&p.CreatedAt, &p.UpdatedAt, &p.StoreSellerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) list(ctx context.Context, where string, args []any, page, limit int) ([]Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var total int64
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM products p JOIN stores s ON s.id = p.store_id `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	rows, err := r.db.Query(ctx, `
		SELECT `+cols+`
		FROM products p JOIN stores s ON s.id = p.store_id `+where+`
		ORDER BY p.created_at DESC
		LIMIT $`+strconv.Itoa(n+1)+` OFFSET $`+strconv.Itoa(n+2),
		append(args, limit, (page-1)*limit)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SalePrice,
			&p.Category, &p.Images, &p.Quantity, &p.StoreID, &p.SaleEndsAt,
			&p.CreatedAt, &p.UpdatedAt, &p.StoreSellerID); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, int64, error) {
	where := `WHERE ($1 = '' OR p.category = $1)
	            AND ($2 = '' OR p.store_id::text = $2)
	            AND ($3 = '' OR p.name ILIKE '%'||$3||'%' OR p.description ILIKE '%'||$3||'%')`
	return r.list(ctx, where, []any{q.Category, q.StoreID, strings.TrimSpace(q.Q)}, q.Page, q.Limit)
}

func (r *PGRepo) ListBySeller(ctx context.Context, sellerID string, q Query) ([]Product, int64, error) {
	where := `WHERE s.seller_id = $1
	            AND ($2 = '' OR p.category = $2)
	            AND ($3 = '' OR p.name ILIKE '%'||$3||'%' OR p.description ILIKE '%'||$3||'%')`
	return r.list(ctx, where, []any{sellerID, q.Category, strings.TrimSpace(q.Q)}, q.Page, q.Limit)
}

// Update applies the non-nil fields as one atomic field-set.
func (r *PGRepo) Update(ctx context.Context, id string, req *UpdateRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Price != nil {
		add("price", *req.Price)
	}
	if req.SalePrice != nil {
		if *req.SalePrice == "" {
			set = append(set, "sale_price = NULL")
		} else {
			add("sale_price", *req.SalePrice)
		}
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Images != nil {
		add("images", *req.Images)
	}
	if req.Quantity != nil {
		add("quantity", *req.Quantity)
	}
	if req.SaleEndsAt != nil {
		add("sale_ends_at", *req.SaleEndsAt)
	}

	tag, err := r.db.Exec(ctx, `UPDATE products SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// GetProduct is the narrow catalog lookup the order pricing pipeline
// consumes.
func (r *PGRepo) GetProduct(ctx context.Context, id string) (*order.CatalogProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cp order.CatalogProduct
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.price::text, COALESCE(p.sale_price::text,''), p.sale_ends_at, p.store_id, s.seller_id
		FROM products p JOIN stores s ON s.id = p.store_id
		WHERE p.id=$1
	`, id).Scan(&cp.ID, &cp.Price, &cp.SalePrice, &cp.SaleEndsAt, &cp.StoreID, &cp.SellerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &order.ProductNotFoundError{ProductID: id}
	}
	if err != nil {
		return nil, err
	}
	return &cp, nil
}
