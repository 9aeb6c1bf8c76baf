package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hypernova-labs/payment-service/internal/config"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrPgpCustomerNotFound indica que no existe el pgp customer a actualizar
var ErrPgpCustomerNotFound = errors.New("pgp customer not found")

// PgpCustomerRepository define el acceso a datos de pgp customers
type PgpCustomerRepository interface {
	InsertPgpCustomer(ctx context.Context, in models.InsertPgpCustomerInput) (*models.PgpCustomer, error)
	UpdatePgpCustomerDefaultPaymentMethod(ctx context.Context, pgpCustomerID, defaultPaymentMethodID string) (*models.PgpCustomer, error)
	// GetPgpCustomerByPayerIDAndPgpCode retorna (nil, nil) cuando no hay fila
	GetPgpCustomerByPayerIDAndPgpCode(ctx context.Context, payerID, pgpCode string) (*models.PgpCustomer, error)
}

// NewPgpCustomerRepository elige la implementación según PAYMENT_DB_MODE
func NewPgpCustomerRepository(cfg *config.Config, db *DB, logger *logrus.Logger) PgpCustomerRepository {
	if cfg.UsesPaymentDB() && db != nil {
		return NewPostgresPgpCustomerRepository(db, logger)
	}
	if cfg.UsesPaymentDB() {
		logger.Warn("Payment DB mode is postgres but no connection is available, using mock pgp customer repository")
	}
	return NewMockPgpCustomerRepository(logger)
}

// PostgresPgpCustomerRepository maneja pgp_customers en PostgreSQL
type PostgresPgpCustomerRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewPostgresPgpCustomerRepository crea una nueva instancia del repositorio
func NewPostgresPgpCustomerRepository(db *DB, logger *logrus.Logger) *PostgresPgpCustomerRepository {
	return &PostgresPgpCustomerRepository{
		db:     db,
		logger: logger,
	}
}

// InsertPgpCustomer inserta un pgp customer y lo reconstruye desde la fila retornada
func (r *PostgresPgpCustomerRepository) InsertPgpCustomer(ctx context.Context, in models.InsertPgpCustomerInput) (*models.PgpCustomer, error) {
	query, args := buildInsertPgpCustomer(in)

	row, cancel := r.db.queryRow(ctx, query, args...)
	defer cancel()

	var record pgpCustomerRow
	if err := row.Scan(record.scanTargets()...); err != nil {
		return nil, fmt.Errorf("error inserting pgp customer: %w", err)
	}

	return toPgpCustomer(record), nil
}

// UpdatePgpCustomerDefaultPaymentMethod actualiza el método de pago por defecto
// y la fuente legacy con el mismo valor
func (r *PostgresPgpCustomerRepository) UpdatePgpCustomerDefaultPaymentMethod(ctx context.Context, pgpCustomerID, defaultPaymentMethodID string) (*models.PgpCustomer, error) {
	query := `
		UPDATE ` + pgpCustomersTable + `
		SET default_payment_method = $1, legacy_default_source = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + pgpCustomerColumns

	row, cancel := r.db.queryRow(ctx, query, defaultPaymentMethodID, pgpCustomerID)
	defer cancel()

	var record pgpCustomerRow
	if err := row.Scan(record.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrPgpCustomerNotFound, pgpCustomerID)
		}
		return nil, fmt.Errorf("error updating pgp customer default payment method: %w", err)
	}

	return toPgpCustomer(record), nil
}

// GetPgpCustomerByPayerIDAndPgpCode busca como máximo un pgp customer por payer y gateway
func (r *PostgresPgpCustomerRepository) GetPgpCustomerByPayerIDAndPgpCode(ctx context.Context, payerID, pgpCode string) (*models.PgpCustomer, error) {
	query := `
		SELECT ` + pgpCustomerColumns + `
		FROM ` + pgpCustomersTable + `
		WHERE payer_id = $1 AND pgp_code = $2
		LIMIT 1`

	row, cancel := r.db.queryRow(ctx, query, payerID, pgpCode)
	defer cancel()

	var record pgpCustomerRow
	if err := row.Scan(record.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying pgp customer: %w", err)
	}

	return toPgpCustomer(record), nil
}

// mockLegacyID es el legacy id fijo de los pgp customers sintéticos
const mockLegacyID int64 = 123

// MockPgpCustomerRepository retorna pgp customers sintéticos sin tocar storage.
// Se usa mientras las credenciales de la payment db no estén disponibles.
type MockPgpCustomerRepository struct {
	logger *logrus.Logger
	now    func() time.Time
}

// NewMockPgpCustomerRepository crea el repositorio mock
func NewMockPgpCustomerRepository(logger *logrus.Logger) *MockPgpCustomerRepository {
	return &MockPgpCustomerRepository{
		logger: logger,
		now:    time.Now,
	}
}

// InsertPgpCustomer retorna un pgp customer con los mismos datos de entrada
func (r *MockPgpCustomerRepository) InsertPgpCustomer(ctx context.Context, in models.InsertPgpCustomerInput) (*models.PgpCustomer, error) {
	r.logger.WithFields(logrus.Fields{
		"pgp_customer_id": in.ID,
		"payer_id":        in.PayerID,
		"pgp_code":        in.PgpCode,
	}).Debug("Mock insert of pgp customer")

	return r.mockPgpCustomer(mockPgpCustomerInput{
		ID:                   in.ID,
		PgpCode:              in.PgpCode,
		PgpResourceID:        in.PgpResourceID,
		PayerID:              in.PayerID,
		Currency:             in.Currency,
		DefaultPaymentMethod: in.DefaultPaymentMethod,
		LegacyDefaultCard:    in.LegacyDefaultCard,
		LegacyDefaultSource:  in.LegacyDefaultSource,
	}), nil
}

// UpdatePgpCustomerDefaultPaymentMethod retorna un pgp customer fijo con el id y método sustituidos
func (r *MockPgpCustomerRepository) UpdatePgpCustomerDefaultPaymentMethod(ctx context.Context, pgpCustomerID, defaultPaymentMethodID string) (*models.PgpCustomer, error) {
	return r.mockPgpCustomer(mockPgpCustomerInput{
		ID:                   pgpCustomerID,
		PgpCode:              "stripe",
		PgpResourceID:        "mock_cus_abc",
		PayerID:              "mock_payer_id",
		Currency:             stringPtr("US"),
		DefaultPaymentMethod: stringPtr(defaultPaymentMethodID),
		LegacyDefaultSource:  stringPtr(defaultPaymentMethodID),
	}), nil
}

// GetPgpCustomerByPayerIDAndPgpCode siempre retorna un pgp customer sintético, nunca nil
func (r *MockPgpCustomerRepository) GetPgpCustomerByPayerIDAndPgpCode(ctx context.Context, payerID, pgpCode string) (*models.PgpCustomer, error) {
	return r.mockPgpCustomer(mockPgpCustomerInput{
		ID:                   "mock_pgcu_abc",
		PgpCode:              pgpCode,
		PgpResourceID:        "mock_cus_abc",
		PayerID:              payerID,
		Currency:             stringPtr("US"),
		DefaultPaymentMethod: stringPtr("mock_default_payment_method"),
		LegacyDefaultCard:    stringPtr("mock_legacy_default_card"),
		LegacyDefaultSource:  stringPtr("mock_legacy_default_source"),
	}), nil
}

type mockPgpCustomerInput struct {
	ID                   string
	PgpCode              string
	PgpResourceID        string
	PayerID              string
	Currency             *string
	DefaultPaymentMethod *string
	LegacyDefaultCard    *string
	LegacyDefaultSource  *string
}

func (r *MockPgpCustomerRepository) mockPgpCustomer(in mockPgpCustomerInput) *models.PgpCustomer {
	now := r.now()
	return &models.PgpCustomer{
		ID:                   in.ID,
		LegacyID:             mockLegacyID,
		PgpCode:              in.PgpCode,
		PgpResourceID:        in.PgpResourceID,
		PayerID:              in.PayerID,
		Currency:             in.Currency,
		DefaultPaymentMethod: in.DefaultPaymentMethod,
		LegacyDefaultCard:    in.LegacyDefaultCard,
		LegacyDefaultSource:  in.LegacyDefaultSource,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func stringPtr(s string) *string {
	return &s
}
