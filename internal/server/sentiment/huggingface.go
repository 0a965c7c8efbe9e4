package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// HuggingFaceClient calls a hosted text-classification model. The inference
// API cold-starts models, so transient 5xx responses are retried with
// backoff before giving up.
type HuggingFaceClient struct {
	apiURL string
	apiKey string
	http   *http.Client
}

func NewHuggingFaceClient(apiURL, apiKey string) *HuggingFaceClient {
	return &HuggingFaceClient{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *HuggingFaceClient) Analyze(ctx context.Context, text string) (string, float64, error) {

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", 0, fmt.Errorf("request encoding error: %w", err)
	}

	var results [][]classification

	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		// model cold starts answer 503 until loaded
		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("inference api status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("inference api status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&results)
	})
	if err != nil {
		return "", 0, err
	}

	if len(results) == 0 || len(results[0]) == 0 {
		return "", 0, errors.New("inference api returned no classifications")
	}

	best := results[0][0]
	for _, c := range results[0][1:] {
		if c.Score > best.Score {
			best = c
		}
	}

	return best.Label, best.Score, nil
}
