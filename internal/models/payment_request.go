package models

import "time"

// PaymentRequest records an STK push initiation. Payments are deliberately
// decoupled from appointments: no appointment field changes on any outcome.
type PaymentRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:40;uniqueIndex;not null" json:"reference"`

	PhoneNumber      string  `gorm:"size:20;not null" json:"phone_number"`
	Amount           float64 `gorm:"not null" json:"amount"`
	AccountReference string  `gorm:"size:100" json:"account_reference"`
	TransactionDesc  string  `gorm:"size:100" json:"transaction_desc"`

	MerchantRequestID string `gorm:"size:60" json:"merchant_request_id"`
	CheckoutRequestID string `gorm:"size:60;index" json:"checkout_request_id"`

	// initiated -> accepted -> completed | failed
	Status     string `gorm:"size:20;default:'initiated'" json:"status"`
	ResultCode *int   `json:"result_code"`
	ResultDesc string `gorm:"size:255" json:"result_desc"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
