package repository

import (
	"context"

	"github.com/semagency/orderbot/internal/domain/model"
)

// OrderRepository describes persistence operations with the order ledger.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListPending(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error
	MarkPaid(ctx context.Context, id int64) error
}
