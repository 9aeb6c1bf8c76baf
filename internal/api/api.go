package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/hypernova-labs/payment-service/internal/services"
	"github.com/sirupsen/logrus"
)

// API maneja todos los endpoints de la API
type API struct {
	instantPayoutProcessors services.InstantPayoutProcessors
	payerService            *services.PayerService
	logger                  *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	instantPayoutProcessors services.InstantPayoutProcessors,
	payerService *services.PayerService,
	logger *logrus.Logger,
) *API {
	return &API{
		instantPayoutProcessors: instantPayoutProcessors,
		payerService:            payerService,
		logger:                  logger,
	}
}

// RegisterRoutes monta los grupos payout y payin sobre el router
func (api *API) RegisterRoutes(router gin.IRouter) {
	// Payout: instant payouts
	instantPayouts := router.Group("/payout/api/v1/instant_payouts")
	{
		instantPayouts.POST("/", api.SubmitInstantPayout)
		instantPayouts.GET("/:payout_account_id/eligibility", api.CheckInstantPayoutEligibility)
	}

	// Payin: pgp customers de los payers
	payin := router.Group("/payin/api/v1")
	{
		payin.POST("/pgp_customers", api.CreatePgpCustomer)
		payin.GET("/payers/:payer_id/pgp_customers/:pgp_code", api.GetPgpCustomer)
		payin.PATCH("/pgp_customers/:id/default_payment_method", api.UpdateDefaultPaymentMethod)
	}
}

// ErrorHandler renderiza los errores que los handlers dejan en el contexto
func (api *API) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var badRequest *models.BadRequestError
		if errors.As(err, &badRequest) {
			api.logger.WithError(err).WithField("path", c.FullPath()).Warn("Bad request")
			c.JSON(http.StatusBadRequest, badRequest.Response())
			return
		}

		api.logger.WithError(err).WithField("path", c.FullPath()).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, models.NewInternalError(models.PaymentErrorMessages[models.ErrorCodeInternal]))
	}
}
