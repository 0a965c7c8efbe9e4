package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"moodflow/internal/client/models"
)

// HTTPClient implements Client over net/http. The session credential is a
// cookie issued by /api/login, kept in the client's jar, so no explicit token
// plumbing is needed.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a client for the given base URL
// (e.g. "http://127.0.0.1:8080").
func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar init error: %w", err)
	}
	return &HTTPClient{baseURL: baseURL, http: &http.Client{Jar: jar}}, nil
}

// do performs one request and decodes a successful JSON response into out
// (when out is non-nil). Failures are classified per the error taxonomy:
// transport → ErrUnavailable, 401 → ErrUnauthorized, 402 → ErrPaymentRequired,
// other 4xx with an {"error"} body → *ValidationError, everything else →
// ErrServerFault.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("request encoding error: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("request creation error: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: response decoding: %v", ErrServerFault, err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized

	case resp.StatusCode == http.StatusPaymentRequired:
		return ErrPaymentRequired

	case resp.StatusCode < 500:
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			return fmt.Errorf("%w: status %d", ErrServerFault, resp.StatusCode)
		}
		return &ValidationError{Message: e.Error}

	default:
		return fmt.Errorf("%w: status %d", ErrServerFault, resp.StatusCode)
	}
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	req := map[string]string{"username": username, "password": password}
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	req := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/register", req, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := c.do(ctx, http.MethodGet, "/api/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, text string) (*models.JournalEntry, error) {
	req := map[string]string{"text": text}
	var e models.JournalEntry
	if err := c.do(ctx, http.MethodPost, "/api/entry", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) CreatePaymentLink(ctx context.Context, entryID int64) (string, error) {
	req := map[string]int64{"entry_id": entryID}
	var resp struct {
		PaymentURL string `json:"payment_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/create-payment-link", req, &resp); err != nil {
		return "", err
	}
	return resp.PaymentURL, nil
}

func (c *HTTPClient) GenerateInsight(ctx context.Context, entryID int64) (string, error) {
	req := map[string]int64{"entry_id": entryID}
	var resp struct {
		Insight string `json:"insight"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/generate-insight", req, &resp); err != nil {
		return "", err
	}
	return resp.Insight, nil
}
