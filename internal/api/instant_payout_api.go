package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/payment-service/internal/models"
)

// SubmitInstantPayout crea y envía un instant payout
func (api *API) SubmitInstantPayout(c *gin.Context) {
	var body models.InstantPayoutCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		api.logger.WithError(err).Error("Error binding instant payout request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	internalRequest := &models.CreateAndSubmitInstantPayoutRequest{
		PayoutAccountID: body.PayoutAccountID,
		Amount:          body.Amount,
		Currency:        body.Currency,
		Card:            body.Card,
	}

	internalResponse, err := api.instantPayoutProcessors.CreateAndSubmitInstantPayout(c.Request.Context(), internalRequest)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toInstantPayout(internalResponse))
}

// CheckInstantPayoutEligibility verifica si la cuenta puede hacer un instant payout
func (api *API) CheckInstantPayoutEligibility(c *gin.Context) {
	payoutAccountID, err := strconv.ParseInt(c.Param("payout_account_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid payout account ID", []models.ErrorDetail{
			{Field: "payout_account_id", Issue: "Must be an integer"},
		}))
		return
	}

	rawStartOfDay, ok := c.GetQuery("local_start_of_day")
	if !ok || rawStartOfDay == "" {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Missing query parameter", []models.ErrorDetail{
			{Field: "local_start_of_day", Issue: "Required"},
		}))
		return
	}

	createdAfter, err := parseTimestampParam(rawStartOfDay)
	if err != nil {
		if errors.Is(err, ErrTimestampOutOfRange) {
			_ = c.Error(models.NewBadRequestError(models.ErrorCodeInvalidValue, err))
			return
		}
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid query parameter", []models.ErrorDetail{
			{Field: "local_start_of_day", Issue: "Must be an integer timestamp"},
		}))
		return
	}

	internalRequest := &models.EligibilityCheckRequest{
		PayoutAccountID: models.PayoutAccountID(payoutAccountID),
		CreatedAfter:    createdAfter,
	}

	internalResponse, err := api.instantPayoutProcessors.CheckInstantPayoutEligibility(c.Request.Context(), internalRequest)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toPaymentEligibility(internalResponse))
}

func toInstantPayout(r *models.CreateAndSubmitInstantPayoutResponse) models.InstantPayout {
	return models.InstantPayout{
		PayoutAccountID: r.PayoutAccountID,
		PayoutID:        r.PayoutID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Card:            r.Card,
		Status:          r.Status,
		Fee:             r.Fee,
		CreatedAt:       r.CreatedAt,
	}
}

func toPaymentEligibility(r *models.EligibilityCheckResponse) models.PaymentEligibility {
	return models.PaymentEligibility{
		PayoutAccountID: r.PayoutAccountID,
		Eligible:        r.Eligible,
		Reason:          r.Reason,
		Balance:         r.Balance,
		Currency:        r.Currency,
		Fee:             r.Fee,
	}
}
