package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/payment-service/internal/database"
	"github.com/hypernova-labs/payment-service/internal/models"
	"github.com/hypernova-labs/payment-service/internal/services"
	"github.com/sirupsen/logrus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// stubProcessors registra las llamadas y retorna respuestas fijas
type stubProcessors struct {
	submitReq      *models.CreateAndSubmitInstantPayoutRequest
	submitResp     *models.CreateAndSubmitInstantPayoutResponse
	submitErr      error
	eligibilityReq *models.EligibilityCheckRequest
	eligibility    *models.EligibilityCheckResponse
	eligibilityErr error
}

func (s *stubProcessors) CreateAndSubmitInstantPayout(ctx context.Context, req *models.CreateAndSubmitInstantPayoutRequest) (*models.CreateAndSubmitInstantPayoutResponse, error) {
	s.submitReq = req
	return s.submitResp, s.submitErr
}

func (s *stubProcessors) CheckInstantPayoutEligibility(ctx context.Context, req *models.EligibilityCheckRequest) (*models.EligibilityCheckResponse, error) {
	s.eligibilityReq = req
	return s.eligibility, s.eligibilityErr
}

func newTestRouter(processors services.InstantPayoutProcessors, repo database.PgpCustomerRepository) *gin.Engine {
	logger := testLogger()
	api := NewAPI(processors, services.NewPayerService(repo, logger), logger)

	router := gin.New()
	router.Use(api.ErrorHandler())
	api.RegisterRoutes(router)
	return router
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var errProcessorDown = errors.New("processor down")

var fixedCreatedAt = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
