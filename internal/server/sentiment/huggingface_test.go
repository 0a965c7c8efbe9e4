package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyze_PicksHighestScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "had a lovely day", req["inputs"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[[
			{"label": "negative", "score": 0.01},
			{"label": "positive", "score": 0.95},
			{"label": "neutral", "score": 0.04}
		]]`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "test-key")

	label, score, err := client.Analyze(context.Background(), "had a lovely day")
	require.NoError(t, err)
	require.Equal(t, "positive", label)
	require.InDelta(t, 0.95, score, 1e-9)
}

func TestAnalyze_RetriesColdStart(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[[{"label": "neutral", "score": 0.6}]]`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "test-key")

	label, score, err := client.Analyze(context.Background(), "hmm")
	require.NoError(t, err)
	require.Equal(t, "neutral", label)
	require.InDelta(t, 0.6, score, 1e-9)
	require.Equal(t, int32(2), calls.Load())
}

func TestAnalyze_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "test-key")

	_, _, err := client.Analyze(context.Background(), "hmm")
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestAnalyze_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "test-key")

	_, _, err := client.Analyze(context.Background(), "hmm")
	require.Error(t, err)
}
