package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growai/fincoach/internal/models"
	"github.com/growai/fincoach/internal/service"
)

func testHandler() *Handler {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := service.NewService(nil, nil, nil, nil, nil, log, nil)
	return NewHandler(svc, log)
}

func TestEstimateTaxHandler(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/tax", strings.NewReader(`{"income":1000000}`))
	rec := httptest.NewRecorder()
	h.EstimateTax(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var estimate models.TaxEstimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &estimate))
	assert.Equal(t, 60000, estimate.TotalTax)
	assert.Equal(t, 15000, estimate.QuarterlyTax)
}

func TestEstimateTaxHandlerFreelancer(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/tax", strings.NewReader(`{"income":600000,"category":"freelancer"}`))
	rec := httptest.NewRecorder()
	h.EstimateTax(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var estimate models.TaxEstimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &estimate))
	assert.Equal(t, 15750, estimate.TotalTax)
}

func TestEstimateTaxHandlerInvalidIncome(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/tax", strings.NewReader(`{"income":-5}`))
	rec := httptest.NewRecorder()
	h.EstimateTax(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateTaxHandlerBadBody(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/tax", strings.NewReader(`{income`))
	rec := httptest.NewRecorder()
	h.EstimateTax(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
