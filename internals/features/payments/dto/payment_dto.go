package dto

import (
	"time"

	"learnsmate_backend/internals/features/payments/model"
)

type CreatePaymentRequest struct {
	LectureCode        int64   `json:"lecture_code" validate:"required,gt=0"`
	CouponIssuanceCode *string `json:"coupon_issuance_code" validate:"omitempty,max=64"`
}

// MidtransNotification is the HTTP notification body Midtrans posts after a
// transaction changes state. Unlisted fields are kept in the raw payload.
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id" validate:"required"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
}

type PaymentResponse struct {
	PaymentCode        string     `json:"payment_code"`
	PaymentPrice       int        `json:"payment_price"`
	PaymentStatus      string     `json:"payment_status"`
	PaymentToken       string     `json:"payment_token,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
	LectureCode        int64      `json:"lecture_code"`
	StudentCode        int64      `json:"student_code"`
	CouponIssuanceCode *string    `json:"coupon_issuance_code,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func ToPaymentResponse(m *model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentCode:        m.PaymentCode,
		PaymentPrice:       m.PaymentPrice,
		PaymentStatus:      m.PaymentStatus,
		PaymentToken:       m.PaymentToken,
		PaidAt:             m.PaidAt,
		LectureCode:        m.LectureCode,
		StudentCode:        m.StudentCode,
		CouponIssuanceCode: m.CouponIssuanceCode,
		CreatedAt:          m.CreatedAt,
	}
}

func ToPaymentResponses(rows []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToPaymentResponse(&rows[i]))
	}
	return out
}
