package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/galactic-greens/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() models.OrderRequest {
	line := models.CartLine{ProductID: 2, Name: "Grinder", UnitPrice: decimal.NewFromInt(2000), Quantity: 2}
	return models.OrderRequest{
		Reference: "ref-1",
		Cart:      []models.OrderLine{models.NewOrderLine(line)},
		Total:     decimal.NewFromInt(4000),
		Phone:     "0712",
	}
}

func TestNotify_SendsJSONAndDecodesSuccess(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Order email sent successfully!"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	resp, err := c.Notify(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Order email sent successfully!", resp.Message)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// amounts travel as JSON numbers
	assert.Equal(t, float64(4000), got["total"])
	cart, ok := got["cart"].([]interface{})
	require.True(t, ok)
	require.Len(t, cart, 1)
	line := cart[0].(map[string]interface{})
	assert.Equal(t, "Grinder", line["product"])
	assert.Equal(t, float64(2), line["qty"])
	assert.Equal(t, float64(4000), line["total"])
	assert.Equal(t, "0712", got["phone"])
	_, hasNotes := got["notes"]
	assert.False(t, hasNotes)
}

func TestNotify_ReturnsRejectionBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Invalid login"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, time.Second).Notify(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid login", resp.Error)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestNotify_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Notify(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed response (status 502)")
}

func TestNotify_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Notify(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send order")
}

func TestNotify_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewClientWithHTTP(srv.URL, &http.Client{Timeout: 50 * time.Millisecond})
	_, err := c.Notify(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send order")
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Equal(t, DefaultTimeout, c.client.Timeout)
}
