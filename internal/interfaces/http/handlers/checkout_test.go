package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrder_EmptyCartRejected(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/checkout/confirm", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmOrder_ClearsCartAndRecordsOrder(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1","quantity":1}`)

	w := doRequest(t, router, http.MethodGet, "/api/v1/checkout/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := parseBody(t, w)["data"].(map[string]interface{})
	assert.InDelta(t, 24.99, summary["subtotal"].(float64), 1e-9)
	assert.InDelta(t, 1.9992, summary["tax"].(float64), 1e-9)
	assert.InDelta(t, 26.9892, summary["total"].(float64), 1e-9)

	w = doRequest(t, router, http.MethodPost, "/api/v1/checkout/confirm", "")
	require.Equal(t, http.StatusOK, w.Code)
	confirmed := parseBody(t, w)["data"].(map[string]interface{})
	orderNumber := confirmed["order_number"].(string)
	assert.NotEmpty(t, orderNumber)

	// Cart is empty afterwards.
	w = doRequest(t, router, http.MethodGet, "/api/v1/cart/count", "")
	count := parseBody(t, w)["data"].(map[string]interface{})
	assert.Zero(t, count["count"].(float64))

	// The finalized order survives the clear.
	w = doRequest(t, router, http.MethodGet, "/api/v1/checkout/orders/last", "")
	require.Equal(t, http.StatusOK, w.Code)
	last := parseBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, orderNumber, last["order_number"])
}

func TestGetLastOrder_NoneConfirmed(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/checkout/orders/last", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
