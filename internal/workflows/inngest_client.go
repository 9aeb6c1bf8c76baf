package workflows

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hypernova-labs/payment-service/internal/config"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/inngest/inngestgo"
	"github.com/sirupsen/logrus"
)

// InngestClient maneja el envío de eventos y el registro de workflows
type InngestClient struct {
	client inngestgo.Client
	logger *logrus.Logger
}

// NewInngestClient crea una nueva instancia del cliente
func NewInngestClient(cfg *config.Config, logger *logrus.Logger) (*InngestClient, error) {
	if cfg.Inngest.EventKey == "" {
		return nil, fmt.Errorf("INNGEST_EVENT_KEY not configured")
	}

	if cfg.Inngest.SigningKey == "" {
		return nil, fmt.Errorf("INNGEST_SIGNING_KEY not configured")
	}

	dev := cfg.Inngest.Dev
	client, err := inngestgo.NewClient(inngestgo.ClientOpts{
		AppID:      cfg.Inngest.AppID,
		EventKey:   &cfg.Inngest.EventKey,
		SigningKey: &cfg.Inngest.SigningKey,
		Dev:        &dev,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Inngest client: %w", err)
	}

	return &InngestClient{
		client: client,
		logger: logger,
	}, nil
}

// RegisterWorkflows registra los workflows de payouts con Inngest
func (c *InngestClient) RegisterWorkflows(workflow *InstantPayoutWorkflow) error {
	_, err := inngestgo.CreateFunction(
		c.client,
		inngestgo.FunctionOpts{
			ID:   "instant-payout-submitted",
			Name: "Instant payout submitted",
		},
		inngestgo.EventTrigger(InstantPayoutSubmittedEventName, nil),
		workflow.HandleSubmitted,
	)
	if err != nil {
		return fmt.Errorf("error registering instant payout workflow: %w", err)
	}

	c.logger.Info("Instant payout workflow registered with Inngest")
	return nil
}

// Handler retorna el handler HTTP que sirve las funciones registradas
func (c *InngestClient) Handler() http.Handler {
	return c.client.Serve()
}

// PublishInstantPayoutSubmitted envía el evento de instant payout enviado
func (c *InngestClient) PublishInstantPayoutSubmitted(ctx context.Context, payout *models.CreateAndSubmitInstantPayoutResponse) error {
	data := InstantPayoutSubmittedData{
		PayoutAccountID: int64(payout.PayoutAccountID),
		PayoutID:        payout.PayoutID,
		Amount:          payout.Amount,
		Currency:        payout.Currency,
		Fee:             payout.Fee,
		SubmittedAt:     payout.CreatedAt.UTC().Format(time.RFC3339),
	}

	id, err := c.client.Send(ctx, inngestgo.Event{
		Name: InstantPayoutSubmittedEventName,
		Data: data.toMap(),
	})
	if err != nil {
		return fmt.Errorf("error sending %s event: %w", InstantPayoutSubmittedEventName, err)
	}

	c.logger.WithFields(logrus.Fields{
		"event_id":  id,
		"payout_id": payout.PayoutID,
	}).Debug("Instant payout event sent")
	return nil
}
