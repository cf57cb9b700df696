package seller

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var (
	ErrNotFound     = errors.New("seller not found")
	ErrAlreadyExist = errors.New("seller already exists")
)

type Repository interface {
	Create(ctx context.Context, s *Seller) error
	GetByID(ctx context.Context, id string) (*Seller, error)
	GetByEmail(ctx context.Context, email string) (*Seller, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Seller, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, s *Seller) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO sellers (id, name, email, password_hash, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),NOW(),NOW())
	`, s.ID, s.Name, s.Email, s.PasswordHash, s.Phone)
	if isUniqueViolation(err) {
		// email carries UNIQUE
		return ErrAlreadyExist
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Seller
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, COALESCE(phone,''), created_at, updated_at
		FROM sellers WHERE id=$1
	`, id).Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Phone, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Seller
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, COALESCE(phone,''), created_at, updated_at
		FROM sellers WHERE email=$1
	`, email).Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Phone, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGRepo) Update(ctx context.Context, id string, req *UpdateRequest) (*Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		UPDATE sellers
		SET name  = COALESCE($2, name),
		    phone = COALESCE($3, phone),
		    updated_at = NOW()
		WHERE id = $1
	`, id, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
