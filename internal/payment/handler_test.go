package payment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(svc Service, withScope bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if withScope {
		router.Use(func(c *gin.Context) {
			c.Set("active_gym_id", 3)
		})
	}

	h := NewHandler(svc)
	router.POST("/payments", h.Record)
	router.PUT("/payments/:paymentID", h.Update)
	router.DELETE("/payments/:paymentID", h.Delete)
	return router
}

func TestRecordPaymentHandler(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Record", mock.Anything, mock.Anything, 1, 20.0, "cash", "", mock.Anything).
		Return(&Payment{ID: 11, ClientID: 1, Amount: 20},
			&LedgerState{TotalPaid: 20, BalanceDue: 30, PlanAmount: 50}, nil)

	router := setupRouter(NewService(repo, nil), true)

	body, _ := json.Marshal(RecordPaymentRequest{ClientID: 1, Amount: 20, Mode: "cash"})
	req := httptest.NewRequest("POST", "/payments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	assert.Contains(t, w.Body.String(), `"plan_amount":50`)

	var resp RecordPaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20.0, resp.TotalPaid)
	assert.Equal(t, 30.0, resp.BalanceDue)
	assert.Equal(t, 50.0, resp.PlanAmount)
	assert.False(t, resp.Overpayment)
}

func TestRecordPaymentHandler_NoActiveGym(t *testing.T) {
	router := setupRouter(NewService(new(MockRepository), nil), false)

	body, _ := json.Marshal(RecordPaymentRequest{ClientID: 1, Amount: 20})
	req := httptest.NewRequest("POST", "/payments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "no_active_gym")
}

func TestRecordPaymentHandler_InvalidAmount(t *testing.T) {
	router := setupRouter(NewService(new(MockRepository), nil), true)

	body, _ := json.Marshal(map[string]interface{}{"client_id": 1, "amount": -5})
	req := httptest.NewRequest("POST", "/payments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePaymentHandler_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Update", mock.Anything, mock.Anything, 99, 25.0, "", "", mock.Anything).
		Return(nil, ErrPaymentNotFound)

	router := setupRouter(NewService(repo, nil), true)

	body, _ := json.Marshal(UpdatePaymentRequest{Amount: 25})
	req := httptest.NewRequest("PUT", "/payments/99", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
