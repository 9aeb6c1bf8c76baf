package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/payment-service/internal/config"
	"github.com/hypernova-labs/payment-service/internal/database"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/hypernova-labs/payment-service/internal/services"
	"github.com/stretchr/testify/require"
)

const instantPayoutsPath = "/payout/api/v1/instant_payouts"

func TestSubmitInstantPayoutReshapesProcessorResponse(t *testing.T) {
	processors := &stubProcessors{
		submitResp: &models.CreateAndSubmitInstantPayoutResponse{
			PayoutAccountID: 42,
			PayoutID:        "po_123",
			Amount:          1500,
			Currency:        "usd",
			Card:            "card_abc",
			Status:          models.InstantPayoutStatusSubmitted,
			Fee:             199,
			CreatedAt:       fixedCreatedAt,
		},
	}
	router := newTestRouter(processors, database.NewMockPgpCustomerRepository(testLogger()))

	rec := doRequest(router, http.MethodPost, instantPayoutsPath+"/",
		`{"payout_account_id":42,"amount":1500,"currency":"usd","card":"card_abc"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, &models.CreateAndSubmitInstantPayoutRequest{
		PayoutAccountID: 42, Amount: 1500, Currency: "usd", Card: "card_abc",
	}, processors.submitReq)

	var payout models.InstantPayout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payout))
	require.Equal(t, models.InstantPayout{
		PayoutAccountID: 42,
		PayoutID:        "po_123",
		Amount:          1500,
		Currency:        "usd",
		Card:            "card_abc",
		Status:          models.InstantPayoutStatusSubmitted,
		Fee:             199,
		CreatedAt:       fixedCreatedAt,
	}, payout)
}

func TestSubmitInstantPayoutRejectsMissingFields(t *testing.T) {
	processors := &stubProcessors{}
	router := newTestRouter(processors, database.NewMockPgpCustomerRepository(testLogger()))

	rec := doRequest(router, http.MethodPost, instantPayoutsPath+"/", `{"payout_account_id":42,"amount":1500}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, processors.submitReq)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, string(models.ErrorCodeInvalidRequest), resp.Error.Code)
}

func TestSubmitInstantPayoutProcessorErrors(t *testing.T) {
	t.Run("bad request from processor", func(t *testing.T) {
		processors := &stubProcessors{submitErr: models.NewBadRequestError(models.ErrorCodePayoutNotEligible, nil)}
		router := newTestRouter(processors, database.NewMockPgpCustomerRepository(testLogger()))

		rec := doRequest(router, http.MethodPost, instantPayoutsPath+"/",
			`{"payout_account_id":1,"amount":10,"currency":"usd","card":"card_1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, string(models.ErrorCodePayoutNotEligible), resp.Error.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		processors := &stubProcessors{submitErr: errProcessorDown}
		router := newTestRouter(processors, database.NewMockPgpCustomerRepository(testLogger()))

		rec := doRequest(router, http.MethodPost, instantPayoutsPath+"/",
			`{"payout_account_id":1,"amount":10,"currency":"usd","card":"card_1"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, string(models.ErrorCodeInternal), resp.Error.Code)
	})
}

func TestCheckInstantPayoutEligibility(t *testing.T) {
	fee := int64(199)
	currency := "usd"
	processors := &stubProcessors{
		eligibility: &models.EligibilityCheckResponse{PayoutAccountID: 42, Eligible: true, Fee: &fee, Currency: &currency},
	}
	router := newTestRouter(processors, database.NewMockPgpCustomerRepository(testLogger()))

	rec := doRequest(router, http.MethodGet, instantPayoutsPath+"/42/eligibility?local_start_of_day=1715299200", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, models.PayoutAccountID(42), processors.eligibilityReq.PayoutAccountID)
	require.True(t, processors.eligibilityReq.CreatedAfter.Equal(time.Unix(1715299200, 0)))

	var eligibility models.PaymentEligibility
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eligibility))
	require.Equal(t, models.PaymentEligibility{PayoutAccountID: 42, Eligible: true, Fee: &fee, Currency: &currency}, eligibility)
}

func TestCheckInstantPayoutEligibilityOutOfRangeTimestamp(t *testing.T) {
	for _, value := range []string{"253402300800", "-62135596801", "99999999999999999999"} {
		t.Run(value, func(t *testing.T) {
			processors := &stubProcessors{}
			router := newTestRouter(processors, database.NewMockPgpCustomerRepository(testLogger()))

			rec := doRequest(router, http.MethodGet, instantPayoutsPath+"/42/eligibility?local_start_of_day="+value, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Nil(t, processors.eligibilityReq)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, "INVALID_VALUE_ERROR", resp.Error.Code)
			require.Equal(t, models.PaymentErrorMessages[models.ErrorCodeInvalidValue], resp.Error.Message)
		})
	}
}

func TestCheckInstantPayoutEligibilityOutOfRangeTimestampKeepsCause(t *testing.T) {
	logger := testLogger()
	api := NewAPI(&stubProcessors{}, services.NewPayerService(database.NewMockPgpCustomerRepository(logger), logger), logger)

	var handlerErrors []error
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			handlerErrors = append(handlerErrors, e.Err)
		}
	})
	router.Use(api.ErrorHandler())
	api.RegisterRoutes(router)

	rec := doRequest(router, http.MethodGet, instantPayoutsPath+"/42/eligibility?local_start_of_day=253402300800", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, handlerErrors, 1)

	err := handlerErrors[0]
	var badRequest *models.BadRequestError
	require.ErrorAs(t, err, &badRequest)
	require.Equal(t, models.ErrorCodeInvalidValue, badRequest.Code)
	require.Equal(t, models.PaymentErrorMessages[models.ErrorCodeInvalidValue], badRequest.Message)
	require.ErrorIs(t, err, ErrTimestampOutOfRange)
}

func TestCheckInstantPayoutEligibilityInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "non numeric account", path: instantPayoutsPath + "/abc/eligibility?local_start_of_day=0"},
		{name: "missing start of day", path: instantPayoutsPath + "/42/eligibility"},
		{name: "non numeric start of day", path: instantPayoutsPath + "/42/eligibility?local_start_of_day=today"},
		{name: "fractional start of day", path: instantPayoutsPath + "/42/eligibility?local_start_of_day=1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processors := &stubProcessors{}
			router := newTestRouter(processors, database.NewMockPgpCustomerRepository(testLogger()))

			rec := doRequest(router, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Nil(t, processors.eligibilityReq)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, string(models.ErrorCodeInvalidRequest), resp.Error.Code)
		})
	}
}

func TestInstantPayoutFlowWithDefaultProcessor(t *testing.T) {
	logger := testLogger()
	processor := services.NewInstantPayoutProcessor(database.NewMemoryPayoutLedger(48 * time.Hour), nil, config.InstantPayoutConfig{
		DailyLimit:          1,
		FeeAmount:           150,
		SupportedCurrencies: []string{"usd"},
	}, logger)
	router := newTestRouter(processor, database.NewMockPgpCustomerRepository(logger))

	rec := doRequest(router, http.MethodPost, instantPayoutsPath+"/",
		`{"payout_account_id":9,"amount":700,"currency":"usd","card":"card_9"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payout models.InstantPayout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payout))
	require.NotEmpty(t, payout.PayoutID)
	require.Equal(t, int64(150), payout.Fee)

	rec = doRequest(router, http.MethodGet, instantPayoutsPath+"/9/eligibility?local_start_of_day=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var eligibility models.PaymentEligibility
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eligibility))
	require.False(t, eligibility.Eligible)
	require.Equal(t, models.EligibilityReasonDailyLimitExceeded, *eligibility.Reason)
}
