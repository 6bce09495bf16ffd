package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
	"github.com/semagency/orderbot/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	Next   int64
	Err    error
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[int64]*model.Order),
		Next:   1,
	}
}

// Create persists the order unless the stub has an explicit error.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	stored.CreatedAt = time.Now().Unix()
	stored.Status = model.OrderStatusPending
	stored.PaymentStatus = model.PaymentStatusPending
	s.Next++
	s.Orders[stored.ID] = &stored
	result := stored
	return &result, nil
}

// GetByID fetches an order by id or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		result := *order
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns the user's orders, newest first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var orders []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

// ListPending returns unapproved orders, oldest first.
func (s *OrderRepositoryStub) ListPending(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var orders []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPending {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// UpdateStatus changes the approval status of a stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	return nil
}

// UpdatePaymentStatus changes the payment status of a stored order.
func (s *OrderRepositoryStub) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.PaymentStatus = status
	return nil
}

// MarkPaid records a confirmed payment and moves the order into work.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.PaymentStatus = model.PaymentStatusPaid
	order.Status = model.OrderStatusInProgress
	return nil
}
