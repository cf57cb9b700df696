package store

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code of a UNIQUE constraint hit.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var (
	ErrNotFound   = errors.New("store not found")
	ErrNameExists = errors.New("store name already exists")
)

type Query struct {
	Category string
	Q        string
}

type Repository interface {
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id string) (*Store, error)
	GetByName(ctx context.Context, name string) (*Store, error)
	List(ctx context.Context, q Query) ([]Store, error)
	ListBySeller(ctx context.Context, sellerID string) ([]Store, error)
	Update(ctx context.Context, id string, req *UpdateRequest) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const cols = `
	id, name, category, description, COALESCE(banner,''), COALESCE(logo,''), seller_id,
	COALESCE(contact_phone,''), COALESCE(contact_email,''),
	COALESCE(social_website,''), COALESCE(social_facebook,''),
	COALESCE(social_instagram,''), COALESCE(social_twitter,''),
	created_at, updated_at`

func scan(row interface{ Scan(...any) error }, s *Store) error {
	return row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Banner, &s.Logo, &s.SellerID,
		&s.ContactInfo.Phone, &s.ContactInfo.Email,
		&s.SocialLinks.Website, &s.SocialLinks.Facebook,
		&s.SocialLinks.Instagram, &s.SocialLinks.Twitter,
		&s.CreatedAt, &s.UpdatedAt)
}

func (r *PGRepo) Create(ctx context.Context, s *Store) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO stores (id, name, category, description, banner, logo, seller_id,
		                    contact_phone, contact_email,
		                    social_website, social_facebook, social_instagram, social_twitter,
		                    created_at, updated_at)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),NULLIF($6,''),$7,
		        NULLIF($8,''),NULLIF($9,''),
		        NULLIF($10,''),NULLIF($11,''),NULLIF($12,''),NULLIF($13,''),NOW(),NOW())
	`, s.ID, s.Name, s.Category, s.Description, s.Banner, s.Logo, s.SellerID,
		s.ContactInfo.Phone, s.ContactInfo.Email,
		s.SocialLinks.Website, s.SocialLinks.Facebook, s.SocialLinks.Instagram, s.SocialLinks.Twitter)
	if isUniqueViolation(err) {
		// name carries UNIQUE
		return ErrNameExists
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Store
	if err := scan(r.db.QueryRow(ctx, `SELECT `+cols+` FROM stores WHERE id=$1`, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepo) GetByName(ctx context.Context, name string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Store
	if err := scan(r.db.QueryRow(ctx, `SELECT `+cols+` FROM stores WHERE name=$1`, name), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepo) listWhere(ctx context.Context, where string, args ...any) ([]Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+cols+` FROM stores `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Store
	for rows.Next() {
		var s Store
		if err := scan(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Store, error) {
	where := `WHERE ($1 = '' OR category = $1)
	            AND ($2 = '' OR name ILIKE '%'||$2||'%' OR description ILIKE '%'||$2||'%')`
	return r.listWhere(ctx, where, q.Category, strings.TrimSpace(q.Q))
}

func (r *PGRepo) ListBySeller(ctx context.Context, sellerID string) ([]Store, error) {
	return r.listWhere(ctx, `WHERE seller_id = $1`, sellerID)
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
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Banner != nil {
		add("banner", *req.Banner)
	}
	if req.Logo != nil {
		add("logo", *req.Logo)
	}
	if req.ContactInfo != nil {
		add("contact_phone", req.ContactInfo.Phone)
		add("contact_email", req.ContactInfo.Email)
	}
	if req.SocialLinks != nil {
		add("social_website", req.SocialLinks.Website)
		add("social_facebook", req.SocialLinks.Facebook)
		add("social_instagram", req.SocialLinks.Instagram)
		add("social_twitter", req.SocialLinks.Twitter)
	}

	tag, err := r.db.Exec(ctx, `UPDATE stores SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
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

	cmd, err := r.db.Exec(ctx, `DELETE FROM stores WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
