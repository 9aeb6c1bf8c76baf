package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/hypernova-labs/payment-service/internal/services"
)

// CreatePgpCustomer registra un pgp customer
func (api *API) CreatePgpCustomer(c *gin.Context) {
	var req models.CreatePgpCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create pgp customer request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	customer, err := api.payerService.CreatePgpCustomer(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetPgpCustomer obtiene el pgp customer de un payer
func (api *API) GetPgpCustomer(c *gin.Context) {
	customer, err := api.payerService.GetPgpCustomer(c.Request.Context(), c.Param("payer_id"), c.Param("pgp_code"))
	if err != nil {
		if errors.Is(err, services.ErrPgpCustomerNotFound) {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Pgp customer not found"))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateDefaultPaymentMethod cambia el método de pago por defecto
func (api *API) UpdateDefaultPaymentMethod(c *gin.Context) {
	var req models.UpdateDefaultPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	customer, err := api.payerService.UpdateDefaultPaymentMethod(c.Request.Context(), c.Param("id"), req.DefaultPaymentMethodID)
	if err != nil {
		if errors.Is(err, services.ErrPgpCustomerNotFound) {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Pgp customer not found"))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, customer)
}
