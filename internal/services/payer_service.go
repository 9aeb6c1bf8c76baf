package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hypernova-labs/payment-service/internal/database"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrPgpCustomerNotFound indica que el payer no tiene cliente en el gateway pedido
var ErrPgpCustomerNotFound = database.ErrPgpCustomerNotFound

// PayerService maneja los pgp customers de los payers
type PayerService struct {
	pgpCustomerRepo database.PgpCustomerRepository
	logger          *logrus.Logger
}

// NewPayerService crea una nueva instancia del servicio
func NewPayerService(pgpCustomerRepo database.PgpCustomerRepository, logger *logrus.Logger) *PayerService {
	return &PayerService{
		pgpCustomerRepo: pgpCustomerRepo,
		logger:          logger,
	}
}

// CreatePgpCustomer registra un pgp customer para un payer
func (s *PayerService) CreatePgpCustomer(ctx context.Context, req *models.CreatePgpCustomerRequest) (*models.PgpCustomer, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	customer, err := s.pgpCustomerRepo.InsertPgpCustomer(ctx, models.InsertPgpCustomerInput{
		ID:                   id,
		PgpCode:              req.PgpCode,
		PgpResourceID:        req.PgpResourceID,
		PayerID:              req.PayerID,
		AccountBalance:       req.AccountBalance,
		Currency:             req.Currency,
		DefaultPaymentMethod: req.DefaultPaymentMethod,
		LegacyDefaultCard:    req.LegacyDefaultCard,
		LegacyDefaultSource:  req.LegacyDefaultSource,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating pgp customer: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"pgp_customer_id": customer.ID,
		"payer_id":        customer.PayerID,
		"pgp_code":        customer.PgpCode,
	}).Info("Pgp customer created successfully")

	return customer, nil
}

// GetPgpCustomer obtiene el pgp customer de un payer en un gateway
func (s *PayerService) GetPgpCustomer(ctx context.Context, payerID, pgpCode string) (*models.PgpCustomer, error) {
	customer, err := s.pgpCustomerRepo.GetPgpCustomerByPayerIDAndPgpCode(ctx, payerID, pgpCode)
	if err != nil {
		return nil, fmt.Errorf("error getting pgp customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: payer %s, pgp %s", ErrPgpCustomerNotFound, payerID, pgpCode)
	}

	return customer, nil
}

// UpdateDefaultPaymentMethod cambia el método de pago por defecto de un pgp customer
func (s *PayerService) UpdateDefaultPaymentMethod(ctx context.Context, pgpCustomerID, paymentMethodID string) (*models.PgpCustomer, error) {
	customer, err := s.pgpCustomerRepo.UpdatePgpCustomerDefaultPaymentMethod(ctx, pgpCustomerID, paymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("error updating default payment method: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"pgp_customer_id":        pgpCustomerID,
		"default_payment_method": paymentMethodID,
	}).Info("Pgp customer default payment method updated")

	return customer, nil
}
