package dto

// OrderResponse is the JSON shape of one order on the ops API.
type OrderResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Service       string  `json:"service"`
	Details       string  `json:"details"`
	Colors        *string `json:"colors,omitempty"`
	Complexity    *string `json:"complexity,omitempty"`
	PromoCode     *string `json:"promo_code,omitempty"`
	TotalPrice    int64   `json:"total_price"`
	UpfrontPrice  int64   `json:"upfront_price"`
	CreatedAt     int64   `json:"created_at"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
}

// HealthResponse reports storage reachability.
type HealthResponse struct {
	Status string `json:"status"`
}
