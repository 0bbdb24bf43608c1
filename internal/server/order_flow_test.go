package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestOrderLifecycle(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", gin.H{
		"name":    "Asha Traders",
		"phone":   "9876543210",
		"address": "12 Gandhi Road, Jaipur",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	customerID := decodeData(t, w)["id"].(string)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/products", gin.H{
		"sku":        "POT-CLAY-01",
		"name":       "Clay Pot",
		"category":   "Pottery",
		"base_price": 50000,
		"gst_rate":   18,
		"stock":      10,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	productID := decodeData(t, w)["id"].(string)

	// 2 x Rs 500 @ 18% + Rs 100 shipping - Rs 50 discount = Rs 1230
	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id":   customerID,
		"lines":         []gin.H{{"product_id": productID, "quantity": 2}},
		"shipping_cost": 10000,
		"discount":      5000,
		"initial_payment": gin.H{
			"amount": 23000,
			"method": "UPI",
			"note":   "advance",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decodeData(t, w)
	orderID := order["id"].(string)
	assert.Equal(t, float64(123000), order["grand_total"])
	assert.Equal(t, "partially-paid", order["payment_status"])

	// overpayment is a conflict, not a silent acceptance
	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/orders/%s/payments", orderID), gin.H{
		"amount": 999999,
		"method": "Cash",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/orders/%s/mark-paid", orderID), gin.H{
		"method": "Cash",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ledger := decodeData(t, w)
	assert.Equal(t, "paid", ledger["status"])
	assert.Equal(t, float64(0), ledger["balance"])

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/orders/%s/invoice?template=tax", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, "TAX INVOICE")
	assert.Contains(t, html, "Asha Traders")
	assert.Contains(t, html, "Clay Pot")
	assert.Contains(t, html, `class="watermark"`)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/exports/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
}

func TestOrderValidationFailures(t *testing.T) {
	engine, _ := newTestServer(t)

	// unknown template id
	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders/1/invoice?template=fancy", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// order without lines
	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": "123",
		"lines":       []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown order id
	w = doJSON(t, engine, http.MethodGet, "/api/v1/orders/999999999/payments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndSettings(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/settings/company", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "CraftShop", data["company_name"])
}
