package models

import "time"

// PgpCustomer representa el cliente de un payer en un payment gateway (pgp)
type PgpCustomer struct {
	ID                   string    `json:"id"`
	LegacyID             int64     `json:"legacy_id"`
	PgpCode              string    `json:"pgp_code"`
	PgpResourceID        string    `json:"pgp_resource_id"`
	PayerID              string    `json:"payer_id"`
	Currency             *string   `json:"currency,omitempty"`
	DefaultPaymentMethod *string   `json:"default_payment_method,omitempty"`
	LegacyDefaultCard    *string   `json:"legacy_default_card,omitempty"`
	LegacyDefaultSource  *string   `json:"legacy_default_source,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// InsertPgpCustomerInput contiene los campos de escritura de un nuevo pgp customer
type InsertPgpCustomerInput struct {
	ID                   string
	PgpCode              string
	PgpResourceID        string
	PayerID              string
	AccountBalance       int64
	Currency             *string
	DefaultPaymentMethod *string
	LegacyDefaultCard    *string
	LegacyDefaultSource  *string
}

// CreatePgpCustomerRequest representa el request para registrar un pgp customer
type CreatePgpCustomerRequest struct {
	ID                   string  `json:"id,omitempty"`
	PgpCode              string  `json:"pgp_code" binding:"required"`
	PgpResourceID        string  `json:"pgp_resource_id" binding:"required"`
	PayerID              string  `json:"payer_id" binding:"required"`
	AccountBalance       int64   `json:"account_balance"`
	Currency             *string `json:"currency,omitempty"`
	DefaultPaymentMethod *string `json:"default_payment_method,omitempty"`
	LegacyDefaultCard    *string `json:"legacy_default_card,omitempty"`
	LegacyDefaultSource  *string `json:"legacy_default_source,omitempty"`
}

// UpdateDefaultPaymentMethodRequest representa el request para cambiar el método de pago por defecto
type UpdateDefaultPaymentMethodRequest struct {
	DefaultPaymentMethodID string `json:"default_payment_method_id" binding:"required"`
}
