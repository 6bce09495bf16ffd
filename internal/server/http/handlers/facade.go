package handlers

import (
	"context"

	"github.com/semagency/orderbot/internal/domain/model"
)

// OpsFacade describes the order ledger operations exposed on the ops API.
type OpsFacade interface {
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	PendingOrders(ctx context.Context, actorID int64) ([]model.Order, error)
}

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
