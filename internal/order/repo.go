package order

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrCancelConflict means the order has already left the warehouse.
	ErrCancelConflict = errors.New("cannot cancel shipped or delivered orders")
)

// Filter is a conjunction over the optional list criteria.
type Filter struct {
	Status        Status
	PaymentStatus PaymentStatus
	UserID        string
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, f Filter, page, limit int) ([]Order, int64, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]Order, int64, error)
	ListByStore(ctx context.Context, storeID string, page, limit int) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id string, to Status, trackingNumber string) (*Order, error)
	UpdatePayment(ctx context.Context, id string, ps PaymentStatus) (*Order, error)
	Cancel(ctx context.Context, id string) (*Order, error)
	Stats(ctx context.Context) (*Stats, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderCols = `
	id, user_id::text, shipping, payment_method, payment_status, order_status,
	items_price::text, shipping_price::text, tax_price::text, total_price::text,
	COALESCE(tracking_number,''), delivered_at, COALESCE(notes,''), created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o        Order
		userID   *string
		shipping []byte
	)
	if err := row.Scan(&o.ID, &userID, &shipping, &o.PaymentMethod, &o.PaymentStatus, &o.OrderStatus,
		&o.ItemsPrice, &o.ShippingPrice, &o.TaxPrice, &o.TotalPrice,
		&o.TrackingNumber, &o.DeliveredAt, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if userID != nil {
		o.UserID = *userID
	}
	if err := json.Unmarshal(shipping, &o.ShippingAddress); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipping, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, user_id, shipping, payment_method, payment_status, order_status,
                        items_price, shipping_price, tax_price, total_price,
                        tracking_number, notes, created_at, updated_at)
    VALUES ($1, NULLIF($2,'')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11,''), NULLIF($12,''), NOW(), NOW())
  `, o.ID, o.UserID, shipping, o.PaymentMethod, o.PaymentStatus, o.OrderStatus,
		o.ItemsPrice, o.ShippingPrice, o.TaxPrice, o.TotalPrice, o.TrackingNumber, o.Notes); err != nil {
		return err
	}

	for _, it := range o.Items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, store_id, quantity, unit_price)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, it.ID, o.ID, it.ProductID, it.StoreID, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	orders := []Order{*o}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *PGRepo) list(ctx context.Context, where string, args []any, page, limit int) ([]Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders o `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	n := len(args)
	query := `SELECT ` + orderCols + ` FROM orders o ` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadItems(ctx, out); err != nil {
		return nil, 0, err
	}
	if err := r.hydrate(ctx, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PGRepo) List(ctx context.Context, f Filter, page, limit int) ([]Order, int64, error) {
	where := `WHERE ($1 = '' OR order_status = $1)
	            AND ($2 = '' OR payment_status = $2)
	            AND ($3 = '' OR user_id::text = $3)`
	return r.list(ctx, where, []any{string(f.Status), string(f.PaymentStatus), f.UserID}, page, limit)
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, page, limit int) ([]Order, int64, error) {
	return r.list(ctx, `WHERE user_id::text = $1`, []any{userID}, page, limit)
}

// ListByStore matches an order when ANY of its line items belongs to the
// store.
func (r *PGRepo) ListByStore(ctx context.Context, storeID string, page, limit int) ([]Order, int64, error) {
	where := `WHERE EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.store_id = $1)`
	return r.list(ctx, where, []any{storeID}, page, limit)
}

// UpdateStatus applies the transition check and the mutation as one
// conditional update, so a stale reader can never clobber a concurrent
// status change. Repeating the current status is a no-op that still
// succeeds; delivered_at is stamped only the first time Delivered is
// reached. Tracking number is kept when the payload omits it.
func (r *PGRepo) UpdateStatus(ctx context.Context, id string, to Status, trackingNumber string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	preds := make([]string, 0, 4)
	for _, s := range Predecessors(to) {
		preds = append(preds, string(s))
	}

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET order_status = $2,
        tracking_number = COALESCE(NULLIF($3,''), tracking_number),
        delivered_at = CASE WHEN $2 = 'Delivered' AND delivered_at IS NULL THEN NOW() ELSE delivered_at END,
        updated_at = NOW()
    WHERE id = $1 AND (order_status = $2 OR order_status = ANY($4))
  `, id, string(to), trackingNumber, preds)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		var current Status
		err := r.db.QueryRow(ctx, `SELECT order_status FROM orders WHERE id=$1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, &InvalidTransitionError{From: current, To: to}
	}
	return r.GetByID(ctx, id)
}

func (r *PGRepo) UpdatePayment(ctx context.Context, id string, ps PaymentStatus) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders SET payment_status = $2, updated_at = NOW() WHERE id = $1
  `, id, string(ps))
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Cancel soft-cancels in place; the record is never removed. The guard
// against Shipped/Delivered rides in the same update as the mutation.
func (r *PGRepo) Cancel(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET order_status = 'Cancelled', updated_at = NOW()
    WHERE id = $1 AND order_status NOT IN ('Shipped','Delivered')
  `, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		var current Status
		err := r.db.QueryRow(ctx, `SELECT order_status FROM orders WHERE id=$1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrCancelConflict
	}
	return r.GetByID(ctx, id)
}

func (r *PGRepo) Stats(ctx context.Context) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT order_status, COUNT(*), COALESCE(SUM(total_price),0)::text
    FROM orders GROUP BY order_status ORDER BY order_status
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	st := &Stats{}
	for rows.Next() {
		var s StatusStat
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalAmount); err != nil {
			return nil, err
		}
		st.OrdersByStatus = append(st.OrdersByStatus, s)
		st.TotalOrders += s.Count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx, `
    SELECT COALESCE(SUM(total_price),0)::text FROM orders WHERE payment_status = 'Paid'
  `).Scan(&st.TotalRevenue); err != nil {
		return nil, err
	}
	return st, nil
}

func (r *PGRepo) loadItems(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	byID := make(map[string]*Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		byID[orders[i].ID] = &orders[i]
	}
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, store_id, quantity, unit_price::text
    FROM order_items WHERE order_id = ANY($1)
  `, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.StoreID, &it.Quantity, &it.UnitPrice); err != nil {
			return err
		}
		o := byID[it.OrderID]
		o.Items = append(o.Items, it)
	}
	return rows.Err()
}

// hydrate expands the snapshot references with product, store and user
// summaries for the response. The persisted rows stay denormalized; this is
// a read-side join only, so a product deleted after the order keeps its
// snapshot price and simply loses its summary.
func (r *PGRepo) hydrate(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}
	productIDs := map[string]struct{}{}
	storeIDs := map[string]struct{}{}
	userIDs := map[string]struct{}{}
	for i := range orders {
		if orders[i].UserID != "" {
			userIDs[orders[i].UserID] = struct{}{}
		}
		for _, it := range orders[i].Items {
			productIDs[it.ProductID] = struct{}{}
			storeIDs[it.StoreID] = struct{}{}
		}
	}

	products := map[string]*ProductSummary{}
	rows, err := r.db.Query(ctx, `
    SELECT id, name, price::text, images FROM products WHERE id = ANY($1)
  `, keys(productIDs))
	if err != nil {
		return err
	}
	for rows.Next() {
		var p ProductSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Images); err != nil {
			rows.Close()
			return err
		}
		products[p.ID] = &p
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	stores := map[string]*StoreSummary{}
	rows, err = r.db.Query(ctx, `SELECT id, name FROM stores WHERE id = ANY($1)`, keys(storeIDs))
	if err != nil {
		return err
	}
	for rows.Next() {
		var s StoreSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			rows.Close()
			return err
		}
		stores[s.ID] = &s
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	users := map[string]*UserSummary{}
	if len(userIDs) > 0 {
		rows, err = r.db.Query(ctx, `SELECT id, name, email FROM users WHERE id = ANY($1)`, keys(userIDs))
		if err != nil {
			return err
		}
		for rows.Next() {
			var u UserSummary
			if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
				rows.Close()
				return err
			}
			users[u.ID] = &u
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
	}

	for i := range orders {
		o := &orders[i]
		o.User = users[o.UserID]
		for j := range o.Items {
			o.Items[j].Product = products[o.Items[j].ProductID]
			o.Items[j].Store = stores[o.Items[j].StoreID]
		}
	}
	return nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
