package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/domain/repository"
)

// pool is the subset of pgxpool.Pool the storage needs; pgxmock satisfies it
// in tests.
type pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

type restaurantRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type requestRepository struct {
	storage *Storage
}

// newPgxPool is swapped in tests to avoid a live database.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pgPool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pgPool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Requests() repository.RequestRepository {
	return &requestRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            staff_role TEXT NOT NULL DEFAULT '',
            restaurant_ref BIGINT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            id SERIAL PRIMARY KEY,
            owner_id BIGINT UNIQUE NOT NULL REFERENCES accounts(id),
            name TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES accounts(id),
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            status TEXT NOT NULL,
            items JSONB NOT NULL DEFAULT '[]',
            total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            address TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS status_change_requests (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            requested_by BIGINT NOT NULL REFERENCES accounts(id),
            from_status TEXT NOT NULL,
            to_status TEXT NOT NULL,
            decision TEXT NOT NULL DEFAULT 'PENDING',
            reviewed_by BIGINT,
            reviewed_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_requests_pending ON status_change_requests(restaurant_id) WHERE decision = 'PENDING'`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- AccountRepository implementation ---

func (r *accountRepository) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	const query = `INSERT INTO accounts (login, password_hash, role, staff_role, restaurant_ref)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *account
	err := r.storage.pool.QueryRow(ctx, query,
		account.Login, account.PasswordHash, account.Role, account.StaffRole, account.RestaurantRef,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *accountRepository) GetByLogin(ctx context.Context, login string) (*model.Account, error) {
	const query = `SELECT id, login, password_hash, role, staff_role, restaurant_ref, created_at
                   FROM accounts WHERE login=$1`
	return scanAccount(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `SELECT id, login, password_hash, role, staff_role, restaurant_ref, created_at
                   FROM accounts WHERE id=$1`
	return scanAccount(r.storage.pool.QueryRow(ctx, query, id))
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Login, &a.PasswordHash, &a.Role, &a.StaffRole, &a.RestaurantRef, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- RestaurantRepository implementation ---

func (r *restaurantRepository) Create(ctx context.Context, ownerID int64, name, address string) (*model.Restaurant, error) {
	const query = `INSERT INTO restaurants (owner_id, name, address) VALUES ($1, $2, $3)
                   RETURNING id, created_at`
	restaurant := model.Restaurant{OwnerID: ownerID, Name: name, Address: address}
	err := r.storage.pool.QueryRow(ctx, query, ownerID, name, address).Scan(&restaurant.ID, &restaurant.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	const query = `SELECT id, owner_id, name, address, created_at FROM restaurants WHERE id=$1`
	return scanRestaurant(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *restaurantRepository) GetByOwner(ctx context.Context, ownerID int64) (*model.Restaurant, error) {
	const query = `SELECT id, owner_id, name, address, created_at FROM restaurants WHERE owner_id=$1`
	return scanRestaurant(r.storage.pool.QueryRow(ctx, query, ownerID))
}

func scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := row.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Address, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	const query = `INSERT INTO orders (customer_id, restaurant_id, status, items, total_amount, address, payment_method)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	created := *order
	err = r.storage.pool.QueryRow(ctx, query,
		order.CustomerID, order.RestaurantID, order.Status, items,
		order.TotalAmount, order.Address, order.PaymentMethod,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const orderColumns = `id, customer_id, restaurant_id, status, items, total_amount, address, payment_method, created_at, updated_at`

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, customerID)
}

func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, restaurantID)
}

func (r *orderRepository) list(ctx context.Context, query string, arg any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus performs the conditional status write: the row must still hold
// the status observed by the caller and must not be CANCELLED at write time.
// A missed condition means a concurrent transition or a terminal order and is
// reported as ErrInvalidState.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status=$3 AND status <> 'CANCELLED'`
	tag, err := r.storage.pool.Exec(ctx, query, to, orderID, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrInvalidState
	}
	return nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Status, &items,
		&o.TotalAmount, &o.Address, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return &o, nil
}

// --- RequestRepository implementation ---

func (r *requestRepository) Create(ctx context.Context, request *model.StatusChangeRequest) (*model.StatusChangeRequest, error) {
	const query = `INSERT INTO status_change_requests (order_id, restaurant_id, requested_by, from_status, to_status, decision)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	created := *request
	err := r.storage.pool.QueryRow(ctx, query,
		request.OrderID, request.RestaurantID, request.RequestedBy,
		request.FromStatus, request.ToStatus, request.Decision,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const requestColumns = `id, order_id, restaurant_id, requested_by, from_status, to_status, decision, reviewed_by, reviewed_at, created_at`

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*model.StatusChangeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM status_change_requests WHERE id=$1`
	request, err := scanRequest(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return request, nil
}

func (r *requestRepository) ListPendingByRestaurant(ctx context.Context, restaurantID int64) ([]model.StatusChangeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM status_change_requests
              WHERE restaurant_id=$1 AND decision='PENDING' ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusChangeRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *request)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Decide stamps the review outcome. The write is conditioned on the request
// still being PENDING; a decided request is immutable, so a second decision
// attempt reports ErrInvalidState.
func (r *requestRepository) Decide(ctx context.Context, requestID int64, decision model.RequestDecision, reviewerID int64, reviewedAt time.Time) error {
	const query = `UPDATE status_change_requests SET decision=$1, reviewed_by=$2, reviewed_at=$3
                   WHERE id=$4 AND decision='PENDING'`
	tag, err := r.storage.pool.Exec(ctx, query, decision, reviewerID, reviewedAt, requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrInvalidState
	}
	return nil
}

func scanRequest(row pgx.Row) (*model.StatusChangeRequest, error) {
	var req model.StatusChangeRequest
	err := row.Scan(&req.ID, &req.OrderID, &req.RestaurantID, &req.RequestedBy,
		&req.FromStatus, &req.ToStatus, &req.Decision, &req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
