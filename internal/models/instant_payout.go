package models

import "time"

// PayoutAccountID identifica una cuenta de payout
type PayoutAccountID int64

// Estados de un instant payout
const (
	InstantPayoutStatusSubmitted = "submitted"
)

// Razones de inelegibilidad
const (
	EligibilityReasonAccountNotExist    = "payout_account_not_exist"
	EligibilityReasonDailyLimitExceeded = "daily_limit_exceeded"
)

// InstantPayoutCreate representa el body para crear un instant payout
type InstantPayoutCreate struct {
	PayoutAccountID PayoutAccountID `json:"payout_account_id" binding:"required"`
	Amount          int64           `json:"amount" binding:"required"`
	Currency        string          `json:"currency" binding:"required"`
	Card            string          `json:"card" binding:"required"`
}

// InstantPayout es el recurso externo de un instant payout
type InstantPayout struct {
	PayoutAccountID PayoutAccountID `json:"payout_account_id"`
	PayoutID        string          `json:"payout_id"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
	Card            string          `json:"card"`
	Status          string          `json:"status"`
	Fee             int64           `json:"fee"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PaymentEligibility es el recurso externo del chequeo de elegibilidad
type PaymentEligibility struct {
	PayoutAccountID PayoutAccountID `json:"payout_account_id"`
	Eligible        bool            `json:"eligible"`
	Reason          *string         `json:"reason,omitempty"`
	Balance         *int64          `json:"balance,omitempty"`
	Currency        *string         `json:"currency,omitempty"`
	Fee             *int64          `json:"fee,omitempty"`
}

// CreateAndSubmitInstantPayoutRequest es el request interno hacia el procesador
type CreateAndSubmitInstantPayoutRequest struct {
	PayoutAccountID PayoutAccountID
	Amount          int64
	Currency        string
	Card            string
}

// CreateAndSubmitInstantPayoutResponse es la respuesta interna del procesador
type CreateAndSubmitInstantPayoutResponse struct {
	PayoutAccountID PayoutAccountID
	PayoutID        string
	Amount          int64
	Currency        string
	Card            string
	Status          string
	Fee             int64
	CreatedAt       time.Time
}

// EligibilityCheckRequest es el request interno del chequeo de elegibilidad
type EligibilityCheckRequest struct {
	PayoutAccountID PayoutAccountID
	CreatedAfter    time.Time
}

// EligibilityCheckResponse es la respuesta interna del chequeo de elegibilidad
type EligibilityCheckResponse struct {
	PayoutAccountID PayoutAccountID
	Eligible        bool
	Reason          *string
	Balance         *int64
	Currency        *string
	Fee             *int64
}
