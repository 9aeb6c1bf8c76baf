package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/payment-service/internal/config"
	"github.com/hypernova-labs/payment-service/internal/database"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

// InstantPayoutProcessors es la capa de negocio que consume el router de instant payouts
type InstantPayoutProcessors interface {
	CreateAndSubmitInstantPayout(ctx context.Context, req *models.CreateAndSubmitInstantPayoutRequest) (*models.CreateAndSubmitInstantPayoutResponse, error)
	CheckInstantPayoutEligibility(ctx context.Context, req *models.EligibilityCheckRequest) (*models.EligibilityCheckResponse, error)
}

// PayoutEventPublisher publica eventos de payouts enviados
type PayoutEventPublisher interface {
	PublishInstantPayoutSubmitted(ctx context.Context, payout *models.CreateAndSubmitInstantPayoutResponse) error
}

// InstantPayoutProcessor es la implementación por defecto de InstantPayoutProcessors
type InstantPayoutProcessor struct {
	ledger     database.PayoutLedger
	publisher  PayoutEventPublisher
	cfg        config.InstantPayoutConfig
	currencies map[string]struct{}
	logger     *logrus.Logger
	now        func() time.Time
}

// NewInstantPayoutProcessor crea una nueva instancia del procesador. publisher puede ser nil.
func NewInstantPayoutProcessor(ledger database.PayoutLedger, publisher PayoutEventPublisher, cfg config.InstantPayoutConfig, logger *logrus.Logger) *InstantPayoutProcessor {
	currencies := make(map[string]struct{}, len(cfg.SupportedCurrencies))
	for _, c := range cfg.SupportedCurrencies {
		currencies[strings.ToLower(c)] = struct{}{}
	}

	return &InstantPayoutProcessor{
		ledger:     ledger,
		publisher:  publisher,
		cfg:        cfg,
		currencies: currencies,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateAndSubmitInstantPayout valida, registra y publica un instant payout
func (p *InstantPayoutProcessor) CreateAndSubmitInstantPayout(ctx context.Context, req *models.CreateAndSubmitInstantPayoutRequest) (*models.CreateAndSubmitInstantPayoutResponse, error) {
	if req.Amount <= 0 {
		return nil, models.NewBadRequestError(models.ErrorCodeInvalidValue, fmt.Errorf("amount must be positive, got %d", req.Amount))
	}

	currency := strings.ToLower(req.Currency)
	if _, ok := p.currencies[currency]; !ok {
		return nil, models.NewBadRequestError(models.ErrorCodeInvalidValue, fmt.Errorf("unsupported currency %q", req.Currency))
	}

	if req.PayoutAccountID <= 0 {
		return nil, models.NewBadRequestError(models.ErrorCodePayoutNotEligible, fmt.Errorf("payout account %d: %s", req.PayoutAccountID, models.EligibilityReasonAccountNotExist))
	}

	now := p.now()
	payout := &models.CreateAndSubmitInstantPayoutResponse{
		PayoutAccountID: req.PayoutAccountID,
		PayoutID:        uuid.NewString(),
		Amount:          req.Amount,
		Currency:        currency,
		Card:            req.Card,
		Status:          models.InstantPayoutStatusSubmitted,
		Fee:             p.cfg.FeeAmount,
		CreatedAt:       now,
	}

	// El límite diario se verifica y se consume en la misma operación del ledger
	reserved, err := p.ledger.ReserveInstantPayout(ctx, payout.PayoutAccountID, payout.PayoutID, payout.CreatedAt, startOfDay(now), p.cfg.DailyLimit)
	if err != nil {
		return nil, fmt.Errorf("error recording instant payout: %w", err)
	}
	if !reserved {
		return nil, models.NewBadRequestError(models.ErrorCodePayoutNotEligible, fmt.Errorf("payout account %d: %s", req.PayoutAccountID, models.EligibilityReasonDailyLimitExceeded))
	}

	if p.publisher != nil {
		if err := p.publisher.PublishInstantPayoutSubmitted(ctx, payout); err != nil {
			p.logger.WithError(err).WithField("payout_id", payout.PayoutID).Warn("Error publishing instant payout event")
		}
	}

	p.logger.WithFields(logrus.Fields{
		"payout_account_id": payout.PayoutAccountID,
		"payout_id":         payout.PayoutID,
		"amount":            payout.Amount,
		"currency":          payout.Currency,
	}).Info("Instant payout submitted")

	return payout, nil
}

// CheckInstantPayoutEligibility aplica las reglas de elegibilidad de la cuenta
func (p *InstantPayoutProcessor) CheckInstantPayoutEligibility(ctx context.Context, req *models.EligibilityCheckRequest) (*models.EligibilityCheckResponse, error) {
	resp := &models.EligibilityCheckResponse{PayoutAccountID: req.PayoutAccountID}

	if req.PayoutAccountID <= 0 {
		resp.Reason = stringPtr(models.EligibilityReasonAccountNotExist)
		return resp, nil
	}

	count, err := p.ledger.CountInstantPayoutsSince(ctx, req.PayoutAccountID, req.CreatedAfter)
	if err != nil {
		return nil, fmt.Errorf("error counting instant payouts: %w", err)
	}
	if count >= p.cfg.DailyLimit {
		resp.Reason = stringPtr(models.EligibilityReasonDailyLimitExceeded)
		return resp, nil
	}

	fee := p.cfg.FeeAmount
	resp.Eligible = true
	resp.Fee = &fee
	if len(p.cfg.SupportedCurrencies) > 0 {
		resp.Currency = stringPtr(p.cfg.SupportedCurrencies[0])
	}
	return resp, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func stringPtr(s string) *string {
	return &s
}
