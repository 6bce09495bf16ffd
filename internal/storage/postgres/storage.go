package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
	"github.com/semagency/orderbot/internal/domain/model"
)

// Pool is the subset of pgxpool.Pool used by the storage. Declared as an
// interface so tests can substitute a pgxmock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage is the order ledger backed by PostgreSQL. Rows are only ever
// inserted or updated in place, never deleted.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
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

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL,
            service TEXT NOT NULL,
            details TEXT NOT NULL,
            colors TEXT,
            complexity TEXT,
            promo_code TEXT,
            promo_discount DOUBLE PRECISION NOT NULL DEFAULT 0,
            referral_discount DOUBLE PRECISION NOT NULL DEFAULT 0,
            total_price BIGINT NOT NULL,
            upfront_price BIGINT NOT NULL,
            created_at BIGINT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            payment_status TEXT NOT NULL DEFAULT 'pending'
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, user_id, service, details, colors, complexity, promo_code,
promo_discount, referral_discount, total_price, upfront_price, created_at, status, payment_status`

// Create inserts an order row and returns it with assigned id and timestamp.
func (s *Storage) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders
        (user_id, service, details, colors, complexity, promo_code, promo_discount,
         referral_discount, total_price, upfront_price, created_at, status, payment_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`

	created := *order
	created.CreatedAt = time.Now().Unix()
	created.Status = model.OrderStatusPending
	created.PaymentStatus = model.PaymentStatusPending

	err := s.pool.QueryRow(ctx, query,
		created.UserID, created.Service, created.Details, created.Colors,
		created.Complexity, created.PromoCode, created.PromoDiscount,
		created.ReferralDiscount, created.TotalPrice, created.UpfrontPrice,
		created.CreatedAt, created.Status, created.PaymentStatus,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID fetches a single order row.
func (s *Storage) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.Service, &o.Details, &o.Colors, &o.Complexity,
		&o.PromoCode, &o.PromoDiscount, &o.ReferralDiscount, &o.TotalPrice,
		&o.UpfrontPrice, &o.CreatedAt, &o.Status, &o.PaymentStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// ListByUser returns all orders of a user, newest first.
func (s *Storage) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	return s.listOrders(ctx, query, userID)
}

// ListPending returns all orders awaiting admin triage, oldest first.
func (s *Storage) ListPending(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status='pending' ORDER BY created_at ASC, id ASC`
	return s.listOrders(ctx, query)
}

func (s *Storage) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Service, &o.Details, &o.Colors, &o.Complexity,
			&o.PromoCode, &o.PromoDiscount, &o.ReferralDiscount, &o.TotalPrice,
			&o.UpfrontPrice, &o.CreatedAt, &o.Status, &o.PaymentStatus,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus sets the approval status of an order.
func (s *Storage) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := s.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// UpdatePaymentStatus sets the payment status of an order.
func (s *Storage) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	const query = `UPDATE orders SET payment_status=$1 WHERE id=$2`
	tag, err := s.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// MarkPaid flips the payment to paid and the order to in_progress in one
// transaction so a crash cannot leave the two axes split.
func (s *Storage) MarkPaid(ctx context.Context, id int64) error {
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE orders SET payment_status='paid' WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `UPDATE orders SET status='in_progress' WHERE id=$1`, id); err != nil {
			return err
		}
		return nil
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Error("rollback failed", slog.String("error", rbErr.Error()))
			}
			return
		}
		err = tx.Commit(ctx)
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
