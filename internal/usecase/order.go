package usecase

import (
	"context"
	"fmt"

	"github.com/semagency/orderbot/internal/domain/model"
	"github.com/semagency/orderbot/internal/domain/repository"
	"github.com/semagency/orderbot/internal/pricing"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
)

// Draft carries the answers collected from one conversation, ready for pricing.
type Draft struct {
	UserID         int64
	Service        model.Service
	TargetPlatform string
	Details        string
	Colors         string
	Complexity     model.Complexity
	PromoCode      string
	PromoDiscount  float64
}

// OrderUseCase drives the order ledger: submission with pricing, status and
// payment transitions, and the admin-only triage views.
type OrderUseCase struct {
	orders  repository.OrderRepository
	calc    *pricing.Calculator
	adminID int64
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, calc *pricing.Calculator, adminID int64) *OrderUseCase {
	return &OrderUseCase{orders: orders, calc: calc, adminID: adminID}
}

// Submit prices the draft and persists a new pending order. The total is
// computed once here and never recomputed, even if discount tables change.
func (u *OrderUseCase) Submit(ctx context.Context, draft Draft) (*model.Order, error) {
	if draft.UserID == 0 || draft.Service == "" {
		return nil, domainErrors.ErrValidation
	}

	basePrice := u.calc.BasePrice(draft.Service, draft.Complexity)
	referral := pricing.ReferralDiscount(draft.UserID)
	total := pricing.Total(basePrice, draft.PromoDiscount, referral)
	upfront := u.calc.Deposit(total)

	serviceLine := string(draft.Service)
	if draft.Service == model.ServiceTarget && draft.TargetPlatform != "" {
		serviceLine = fmt.Sprintf("%s (%s)", draft.Service, draft.TargetPlatform)
	}

	order := &model.Order{
		UserID:           draft.UserID,
		Service:          serviceLine,
		Details:          draft.Details,
		PromoDiscount:    draft.PromoDiscount,
		ReferralDiscount: referral,
		TotalPrice:       total,
		UpfrontPrice:     upfront,
	}
	if draft.Colors != "" {
		colors := draft.Colors
		order.Colors = &colors
	}
	if draft.Complexity != "" {
		complexity := string(draft.Complexity)
		order.Complexity = &complexity
	}
	if draft.PromoCode != "" {
		code := draft.PromoCode
		order.PromoCode = &code
	}

	return u.orders.Create(ctx, order)
}

// Get returns a single order by id.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListPending returns unapproved orders oldest first. Admin only.
func (u *OrderUseCase) ListPending(ctx context.Context, actorID int64) ([]model.Order, error) {
	if err := u.authorize(actorID); err != nil {
		return nil, err
	}
	return u.orders.ListPending(ctx)
}

// InitiatePayment moves the payment handshake to processing.
func (u *OrderUseCase) InitiatePayment(ctx context.Context, orderID int64) (*model.Order, error) {
	if err := u.orders.UpdatePaymentStatus(ctx, orderID, model.PaymentStatusProcessing); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// ConfirmPayment records a verified payment and starts the work. Admin only.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	if err := u.authorize(actorID); err != nil {
		return nil, err
	}
	if err := u.orders.MarkPaid(ctx, orderID); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// RejectPayment marks the submitted payment as rejected. Admin only. The
// approval status is left untouched.
func (u *OrderUseCase) RejectPayment(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	if err := u.authorize(actorID); err != nil {
		return nil, err
	}
	if err := u.orders.UpdatePaymentStatus(ctx, orderID, model.PaymentStatusRejected); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// Approve accepts a pending order. Admin only.
func (u *OrderUseCase) Approve(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	return u.setStatus(ctx, orderID, actorID, model.OrderStatusApproved)
}

// Reject declines a pending order. Admin only.
func (u *OrderUseCase) Reject(ctx context.Context, orderID, actorID int64) (*model.Order, error) {
	return u.setStatus(ctx, orderID, actorID, model.OrderStatusRejected)
}

func (u *OrderUseCase) setStatus(ctx context.Context, orderID, actorID int64, status model.OrderStatus) (*model.Order, error) {
	if err := u.authorize(actorID); err != nil {
		return nil, err
	}
	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// Cancel marks an order cancelled. Cancelling twice is a no-op, not an error.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID int64) error {
	return u.orders.UpdateStatus(ctx, orderID, model.OrderStatusCancelled)
}

func (u *OrderUseCase) authorize(actorID int64) error {
	if actorID != u.adminID {
		return domainErrors.ErrUnauthorized
	}
	return nil
}
