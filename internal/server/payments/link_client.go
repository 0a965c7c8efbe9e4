package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// LinkClient implements Provider against the provider's REST API.
type LinkClient struct {
	baseURL        string
	secretKey      string
	publishableKey string
	http           *http.Client
}

func NewLinkClient(baseURL, secretKey, publishableKey string) *LinkClient {
	return &LinkClient{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		secretKey:      secretKey,
		publishableKey: publishableKey,
		http:           &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *LinkClient) CreatePaymentLink(ctx context.Context, linkReq LinkRequest) (string, error) {

	body, err := json.Marshal(linkReq)
	if err != nil {
		return "", fmt.Errorf("request encoding error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/paymentlinks/", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("request creation error: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("X-IntaSend-Public-API-Key", c.publishableKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment link request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("payment provider status %d", resp.StatusCode)
	}

	var parsed struct {
		InvoiceURL string `json:"invoice_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("response decoding error: %w", err)
	}

	if parsed.InvoiceURL == "" {
		return "", errors.New("payment provider returned no invoice url")
	}

	return parsed.InvoiceURL, nil
}
