package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"go.uber.org/fx/fxtest"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
	"github.com/semagency/orderbot/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectationsMet(t *testing.T, mock pgxmockv3.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// anyInsertArgs matches the 13 insert arguments without constraining their
// values; pgxmock/v3 requires the argument count to line up even when no
// WithArgs expectation is set.
func anyInsertArgs() []any {
	args := make([]any, 13)
	for i := range args {
		args[i] = pgxmockv3.AnyArg()
	}
	return args
}

func orderRows() *pgxmockv3.Rows {
	return pgxmockv3.NewRows([]string{
		"id", "user_id", "service", "details", "colors", "complexity", "promo_code",
		"promo_discount", "referral_discount", "total_price", "upfront_price",
		"created_at", "status", "payment_status",
	})
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_user ON orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_status ON orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("INSERT INTO orders").WithArgs(anyInsertArgs()...).WillReturnRows(
		pgxmockv3.NewRows([]string{"id"}).AddRow(int64(10)))

	order, err := storage.Create(context.Background(), &model.Order{
		UserID:     7,
		Service:    "web",
		Details:    "landing page",
		TotalPrice: 100000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 10 {
		t.Fatalf("expected assigned id 10, got %d", order.ID)
	}
	if order.Status != model.OrderStatusPending || order.PaymentStatus != model.PaymentStatusPending {
		t.Fatalf("expected pending/pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	if order.CreatedAt == 0 {
		t.Fatal("expected created_at to be stamped")
	}
	expectationsMet(t, mock)
}

func TestCreatePropagatesError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("INSERT INTO orders").WithArgs(anyInsertArgs()...).WillReturnError(errors.New("insert failed"))

	if _, err := storage.Create(context.Background(), &model.Order{UserID: 1, Service: "web"}); err == nil {
		t.Fatal("expected insert error to be returned")
	}
	expectationsMet(t, mock)
}

func TestGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("(?s)SELECT.+FROM orders WHERE id=").WithArgs(int64(5)).WillReturnRows(
		orderRows().AddRow(
			int64(5), int64(7), "web", "landing page", nil, nil, nil,
			0.0, 0.05, int64(95000), int64(23750),
			int64(1700000000), model.OrderStatusPending, model.PaymentStatusPending,
		))

	order, err := storage.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 5 || order.UserID != 7 || order.TotalPrice != 95000 {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Colors != nil {
		t.Fatal("expected nil colors")
	}
	expectationsMet(t, mock)
}

func TestGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("(?s)SELECT.+FROM orders WHERE id=").WithArgs(int64(99)).WillReturnError(pgx.ErrNoRows)

	if _, err := storage.GetByID(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestListByUser(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("(?s)SELECT.+FROM orders WHERE user_id=").WithArgs(int64(7)).WillReturnRows(
		orderRows().
			AddRow(int64(2), int64(7), "design", "logo", nil, nil, nil, 0.0, 0.0,
				int64(150000), int64(37500), int64(1700000100), model.OrderStatusPending, model.PaymentStatusPending).
			AddRow(int64(1), int64(7), "web", "site", nil, nil, nil, 0.0, 0.0,
				int64(100000), int64(25000), int64(1700000000), model.OrderStatusInProgress, model.PaymentStatusPaid))

	orders, err := storage.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected two orders, got %d", len(orders))
	}
	if orders[0].ID != 2 || orders[1].ID != 1 {
		t.Fatalf("unexpected order ids %d, %d", orders[0].ID, orders[1].ID)
	}
	expectationsMet(t, mock)
}

func TestListByUserEmpty(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("(?s)SELECT.+FROM orders WHERE user_id=").WithArgs(int64(8)).WillReturnRows(orderRows())

	orders, err := storage.ListByUser(context.Background(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
	expectationsMet(t, mock)
}

func TestListPending(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("(?s)SELECT.+FROM orders WHERE status='pending'").WillReturnRows(
		orderRows().AddRow(int64(3), int64(9), "content", "bot setup", nil, nil, nil, 0.0, 0.0,
			int64(100000), int64(25000), int64(1700000000), model.OrderStatusPending, model.PaymentStatusPending))

	orders, err := storage.ListPending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 3 {
		t.Fatalf("unexpected pending orders %+v", orders)
	}
	expectationsMet(t, mock)
}

func TestUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("UPDATE orders SET status=").WithArgs(model.OrderStatusApproved, int64(3)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.UpdateStatus(context.Background(), 3, model.OrderStatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestUpdateStatusNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("UPDATE orders SET status=").WithArgs(model.OrderStatusApproved, int64(99)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.UpdateStatus(context.Background(), 99, model.OrderStatusApproved); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestUpdatePaymentStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("UPDATE orders SET payment_status=").WithArgs(model.PaymentStatusProcessing, int64(3)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.UpdatePaymentStatus(context.Background(), 3, model.PaymentStatusProcessing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestMarkPaidCommitsBothUpdates(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET payment_status='paid'").WithArgs(int64(3)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE orders SET status='in_progress'").WithArgs(int64(3)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := storage.MarkPaid(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestMarkPaidRollsBackOnMissingOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET payment_status='paid'").WithArgs(int64(99)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	if err := storage.MarkPaid(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRegisterLifecycle(t *testing.T) {
	storage, mock := newMockStorage(t)

	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, storage)

	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	mock.ExpectClose()
	if err := lc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	expectationsMet(t, mock)
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectPing()

	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}
