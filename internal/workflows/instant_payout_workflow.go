package workflows

import (
	"context"

	"github.com/inngest/inngestgo"
	"github.com/sirupsen/logrus"
)

// InstantPayoutSubmittedEventName es el evento emitido al enviar un instant payout
const InstantPayoutSubmittedEventName = "payout/instant_payout.submitted"

// InstantPayoutSubmittedData es el payload del evento
type InstantPayoutSubmittedData struct {
	PayoutAccountID int64  `json:"payout_account_id"`
	PayoutID        string `json:"payout_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Fee             int64  `json:"fee"`
	SubmittedAt     string `json:"submitted_at"`
}

func (d InstantPayoutSubmittedData) toMap() map[string]any {
	return map[string]any{
		"payout_account_id": d.PayoutAccountID,
		"payout_id":         d.PayoutID,
		"amount":            d.Amount,
		"currency":          d.Currency,
		"fee":               d.Fee,
		"submitted_at":      d.SubmittedAt,
	}
}

// InstantPayoutWorkflow procesa los instant payouts enviados
type InstantPayoutWorkflow struct {
	logger *logrus.Logger
}

// NewInstantPayoutWorkflow crea una nueva instancia del workflow
func NewInstantPayoutWorkflow(logger *logrus.Logger) *InstantPayoutWorkflow {
	return &InstantPayoutWorkflow{logger: logger}
}

// InstantPayoutWorkflowOutput representa el output del workflow
type InstantPayoutWorkflowOutput struct {
	PayoutID string `json:"payout_id"`
	Status   string `json:"status"`
}

// HandleSubmitted confirma la recepción del payout enviado
func (w *InstantPayoutWorkflow) HandleSubmitted(ctx context.Context, input inngestgo.Input[InstantPayoutSubmittedData]) (any, error) {
	return w.acknowledge(input.Event.Data), nil
}

func (w *InstantPayoutWorkflow) acknowledge(data InstantPayoutSubmittedData) *InstantPayoutWorkflowOutput {
	w.logger.WithFields(logrus.Fields{
		"payout_account_id": data.PayoutAccountID,
		"payout_id":         data.PayoutID,
		"amount":            data.Amount,
		"currency":          data.Currency,
	}).Info("Instant payout submission acknowledged")

	return &InstantPayoutWorkflowOutput{
		PayoutID: data.PayoutID,
		Status:   "acknowledged",
	}
}
