package app

import (
	"context"

	"github.com/semagency/orderbot/internal/domain/model"
	"github.com/semagency/orderbot/internal/pricing"
	"github.com/semagency/orderbot/internal/usecase"
)

// IntakeFacade aggregates the application operations used by the transports.
type IntakeFacade struct {
	orders *usecase.OrderUseCase
	calc   *pricing.Calculator
}

// NewIntakeFacade constructs IntakeFacade.
func NewIntakeFacade(orders *usecase.OrderUseCase, calc *pricing.Calculator) *IntakeFacade {
	return &IntakeFacade{orders: orders, calc: calc}
}

func (f *IntakeFacade) SubmitOrder(ctx context.Context, draft usecase.Draft) (*model.Order, error) {
	return f.orders.Submit(ctx, draft)
}

func (f *IntakeFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *IntakeFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *IntakeFacade) PendingOrders(ctx context.Context, actorID int64) ([]model.Order, error) {
	return f.orders.ListPending(ctx, actorID)
}

func (f *IntakeFacade) InitiatePayment(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.InitiatePayment(ctx, orderID)
}

func (f *IntakeFacade) ConfirmPayment(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	return f.orders.ConfirmPayment(ctx, orderID, actorID)
}

func (f *IntakeFacade) RejectPayment(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	return f.orders.RejectPayment(ctx, orderID, actorID)
}

func (f *IntakeFacade) ApproveOrder(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	return f.orders.Approve(ctx, orderID, actorID)
}

func (f *IntakeFacade) RejectOrder(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	return f.orders.Reject(ctx, orderID, actorID)
}

func (f *IntakeFacade) CancelOrder(ctx context.Context, orderID int64) error {
	return f.orders.Cancel(ctx, orderID)
}

// PromoDiscount validates a promo code against the configured table.
func (f *IntakeFacade) PromoDiscount(code string) (float64, error) {
	return f.calc.PromoDiscount(code)
}
