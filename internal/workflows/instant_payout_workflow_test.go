package workflows

import (
	"context"
	"io"
	"testing"

	"github.com/inngest/inngestgo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestHandleSubmittedAcknowledgesPayout(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	workflow := NewInstantPayoutWorkflow(logger)

	out, err := workflow.HandleSubmitted(context.Background(), inngestgo.Input[InstantPayoutSubmittedData]{
		Event: inngestgo.GenericEvent[InstantPayoutSubmittedData]{
			Name: InstantPayoutSubmittedEventName,
			Data: InstantPayoutSubmittedData{PayoutAccountID: 7, PayoutID: "po_1", Amount: 1000, Currency: "usd"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, &InstantPayoutWorkflowOutput{PayoutID: "po_1", Status: "acknowledged"}, out)
}

func TestSubmittedDataToMap(t *testing.T) {
	data := InstantPayoutSubmittedData{PayoutAccountID: 7, PayoutID: "po_1", Amount: 1000, Currency: "usd", Fee: 199, SubmittedAt: "2024-05-10T00:00:00Z"}

	require.Equal(t, map[string]any{
		"payout_account_id": int64(7),
		"payout_id":         "po_1",
		"amount":            int64(1000),
		"currency":          "usd",
		"fee":               int64(199),
		"submitted_at":      "2024-05-10T00:00:00Z",
	}, data.toMap())
}
