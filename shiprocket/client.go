// Package shiprocket talks to the Shiprocket logistics aggregator. All
// outbound calls carry the client timeout and reuse a cached bearer token;
// a 401 triggers exactly one re-login and retry.
package shiprocket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/hungerbites/backend/utils"
)

// Shiprocket tokens are valid for 10 days; we refresh well before that so a
// token never expires mid-flight.
const tokenValidity = 8 * time.Hour

const requestTimeout = 12 * time.Second

type cachedToken struct {
	value   string
	expires time.Time
}

// Client is a Shiprocket API client with a process-wide token cache.
// Concurrent requests racing to refresh an expired token may both log in;
// that is harmless and cheaper than serializing the hot path behind a lock.
type Client struct {
	baseURL  string
	email    string
	password string
	http     *http.Client
	token    atomic.Pointer[cachedToken]
}

// NewClient creates a Shiprocket client for the given credentials.
func NewClient(baseURL, email, password string) *Client {
	return &Client{
		baseURL:  baseURL,
		email:    email,
		password: password,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// Login authenticates against the aggregator and returns a fresh token.
func (c *Client) Login() (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})

	resp, err := c.http.Post(c.baseURL+"/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("shiprocket login failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("shiprocket login returned %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("shiprocket login response malformed: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("shiprocket login returned an empty token")
	}

	c.token.Store(&cachedToken{value: out.Token, expires: time.Now().Add(tokenValidity)})
	return out.Token, nil
}

// getToken returns the cached token when still valid, logging in otherwise.
func (c *Client) getToken() (string, error) {
	if t := c.token.Load(); t != nil && time.Now().Before(t.expires) {
		return t.value, nil
	}
	return c.Login()
}

// invalidate drops the cached token so the next call performs a fresh login.
func (c *Client) invalidate() {
	c.token.Store(nil)
}

// do performs an authenticated request. On a 401 the cached token is
// invalidated and the request retried once with a fresh token; a second
// consecutive 401 surfaces as ErrShippingUnavailable.
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	retried := false
	for {
		token, err := c.getToken()
		if err != nil {
			return err
		}

		var reader io.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("failed to encode shiprocket request: %w", err)
			}
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequest(method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("shiprocket request failed: %w", err)
		}

		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			c.invalidate()
			if retried {
				return utils.ErrShippingUnavailable
			}
			retried = true
			continue
		}

		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			respBody, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("shiprocket %s %s returned %d: %s", method, path, resp.StatusCode, respBody)
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("shiprocket response malformed: %w", err)
			}
		}
		return nil
	}
}

// ShipmentItem is one order line forwarded to the aggregator.
type ShipmentItem struct {
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Units int     `json:"units"`
	Price float64 `json:"selling_price"`
}

// ShipmentRequest books a shipment for an order.
type ShipmentRequest struct {
	OrderID        string         `json:"order_id"`
	OrderDate      string         `json:"order_date"`
	BillingName    string         `json:"billing_customer_name"`
	BillingPhone   string         `json:"billing_phone"`
	BillingLine1   string         `json:"billing_address"`
	BillingCity    string         `json:"billing_city"`
	BillingState   string         `json:"billing_state"`
	BillingPin     string         `json:"billing_pincode"`
	BillingCountry string         `json:"billing_country"`
	PaymentMethod  string         `json:"payment_method"` // "COD" or "Prepaid"
	SubTotal       float64        `json:"sub_total"`
	Items          []ShipmentItem `json:"order_items"`
}

// ShipmentResponse carries the aggregator identifiers for a booked shipment.
type ShipmentResponse struct {
	OrderID    int64  `json:"order_id"`
	ShipmentID int64  `json:"shipment_id"`
	Status     string `json:"status"`
}

// CreateShipment books a shipment with the aggregator and returns its ids.
func (c *Client) CreateShipment(req *ShipmentRequest) (*ShipmentResponse, error) {
	var out ShipmentResponse
	if err := c.do(http.MethodPost, "/orders/create/adhoc", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AWB is the waybill assignment returned by the aggregator.
type AWB struct {
	AwbCode     string `json:"awb_code"`
	CourierName string `json:"courier_name"`
}

// GenerateAWB asks the aggregator to assign a courier and waybill to a
// shipment.
func (c *Client) GenerateAWB(shipmentID string) (*AWB, error) {
	var out struct {
		Response struct {
			Data AWB `json:"data"`
		} `json:"response"`
	}
	body := map[string]string{"shipment_id": shipmentID}
	if err := c.do(http.MethodPost, "/courier/assign/awb", body, &out); err != nil {
		return nil, err
	}
	if out.Response.Data.AwbCode == "" {
		return nil, fmt.Errorf("shiprocket did not assign an AWB")
	}
	return &out.Response.Data, nil
}

// RequestPickup schedules a courier pickup for a shipment with an assigned AWB.
func (c *Client) RequestPickup(shipmentID string) error {
	body := map[string][]string{"shipment_id": {shipmentID}}
	return c.do(http.MethodPost, "/courier/generate/pickup", body, nil)
}
