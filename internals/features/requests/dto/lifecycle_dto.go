package dto

/* =============== LIFECYCLE REQUESTS =============== */

// POST /service-requests/:id/pay
type PayRequestRequest struct {
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=credit_card debit_card cash paypal bank_transfer"`
	PaymentAmount *float64 `json:"payment_amount" validate:"omitempty,gte=0"`
}

// POST /service-requests/:id/review
type ReviewRequestRequest struct {
	ReviewRating  int     `json:"review_rating"  validate:"required,min=1,max=5"`
	ReviewComment *string `json:"review_comment" validate:"omitempty"`
}
