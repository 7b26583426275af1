package shiprocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hungerbites/backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCachedAcrossRequests(t *testing.T) {
	logins := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			logins++
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
		case "/orders/create/adhoc":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(ShipmentResponse{OrderID: 1, ShipmentID: 42, Status: "NEW"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "ops@example.com", "secret")

	for i := 0; i < 3; i++ {
		resp, err := client.CreateShipment(&ShipmentRequest{OrderID: "1"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ShipmentID)
	}

	assert.Equal(t, 1, logins)
}

func TestExpiredTokenTriggersSingleRetry(t *testing.T) {
	logins := 0
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			logins++
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-fresh"})
		case "/orders/create/adhoc":
			calls++
			// First attempt carries a stale token and gets rejected
			if r.Header.Get("Authorization") != "Bearer tok-fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(ShipmentResponse{ShipmentID: 7})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "ops@example.com", "secret")
	client.token.Store(&cachedToken{value: "tok-stale", expires: time.Now().Add(time.Hour)})

	resp, err := client.CreateShipment(&ShipmentRequest{OrderID: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ShipmentID)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, logins)
}

func TestPersistentUnauthorizedSurfacesAsUnavailable(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
		default:
			calls++
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "ops@example.com", "secret")

	_, err := client.CreateShipment(&ShipmentRequest{OrderID: "1"})
	assert.ErrorIs(t, err, utils.ErrShippingUnavailable)
	assert.Equal(t, 2, calls)
}

func TestGenerateAWBParsesAssignment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
		case "/courier/assign/awb":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"response": map[string]interface{}{
					"data": map[string]string{
						"awb_code":     "AWB123456",
						"courier_name": "Delhivery",
					},
				},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "ops@example.com", "secret")

	awb, err := client.GenerateAWB("42")
	require.NoError(t, err)
	assert.Equal(t, "AWB123456", awb.AwbCode)
	assert.Equal(t, "Delhivery", awb.CourierName)
}

func TestGenerateAWBEmptyAssignmentFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
		case "/courier/assign/awb":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"response": map[string]interface{}{"data": map[string]string{}},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "ops@example.com", "secret")

	_, err := client.GenerateAWB("42")
	assert.Error(t, err)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": ""})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "ops@example.com", "secret")

	_, err := client.Login()
	assert.Error(t, err)
}
