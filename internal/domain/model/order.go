package model

// Service identifies the kind of work a customer orders.
type Service string

const (
	ServiceDesign  Service = "design"
	ServiceContent Service = "content"
	ServiceWeb     Service = "web"
	ServiceTarget  Service = "target"
)

// Complexity grades a design order and selects its base price tier.
type Complexity string

const (
	ComplexityMinimal Complexity = "minimal"
	ComplexityMedium  Complexity = "medium"
	ComplexityHigh    Complexity = "high"
)

// OrderStatus describes the approval lifecycle driven by admin and customer.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusRejected   OrderStatus = "rejected"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus describes the manual payment handshake. It is an independent
// axis from OrderStatus: an approved order may still have payment pending.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusRejected   PaymentStatus = "rejected"
)

// Order is one persisted customer request. Prices are fixed at creation;
// ID, UserID and CreatedAt never change afterwards.
type Order struct {
	ID               int64
	UserID           int64
	Service          string // service tag, optionally suffixed with the target platform
	Details          string
	Colors           *string
	Complexity       *string
	PromoCode        *string
	PromoDiscount    float64
	ReferralDiscount float64
	TotalPrice       int64
	UpfrontPrice     int64
	CreatedAt        int64 // unix seconds
	Status           OrderStatus
	PaymentStatus    PaymentStatus
}
