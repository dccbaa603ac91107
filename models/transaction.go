package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending                 TransactionStatus = "pending"
	TransactionStatusSucceeded               TransactionStatus = "succeeded"
	TransactionStatusFailed                  TransactionStatus = "failed"
	TransactionStatusPendingReleaseToStudent TransactionStatus = "pending_release_to_student"
	TransactionStatusPayoutSucceeded         TransactionStatus = "payout_to_student_succeeded"
)

// Transaction stores the gross amount only. Commission and net payout
// are derived at read time from the configured rate.
type Transaction struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	GigID     uint              `gorm:"not null;index" json:"gig_id"`
	ClientID  uint              `gorm:"not null" json:"client_id"`
	StudentID uint              `gorm:"not null" json:"student_id"`
	Amount    decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency  string            `gorm:"size:3;not null" json:"currency"`
	Status    TransactionStatus `gorm:"type:transaction_status;default:'pending';not null" json:"status"`

	ExternalPaymentReference string     `gorm:"size:64;not null;uniqueIndex" json:"external_payment_reference"`
	PaidAt                   time.Time  `json:"paid_at"`
	PayoutProcessedAt        *time.Time `json:"payout_processed_at,omitempty"`

	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
}

type PaymentIntentStatus string

const (
	PaymentIntentStatusCreated   PaymentIntentStatus = "created"
	PaymentIntentStatusConfirmed PaymentIntentStatus = "confirmed"
	PaymentIntentStatusFailed    PaymentIntentStatus = "failed"
)

// PaymentIntent records who a checkout was opened for, so a gateway
// callback can be verified against the triple it was initiated with.
type PaymentIntent struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Reference   string              `gorm:"size:64;not null;uniqueIndex" json:"reference"`
	GigID       uint                `gorm:"not null;index" json:"gig_id"`
	ClientID    uint                `gorm:"not null" json:"client_id"`
	StudentID   uint                `gorm:"not null" json:"student_id"`
	AmountMinor int64               `gorm:"not null" json:"amount_minor"`
	Currency    string              `gorm:"size:3;not null" json:"currency"`
	Status      PaymentIntentStatus `gorm:"type:payment_intent_status;default:'created';not null" json:"status"`
	CreatedAt   time.Time           `gorm:"column:create_at;autoCreateTime" json:"created_at"`
}
