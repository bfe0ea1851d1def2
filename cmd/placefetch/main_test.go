package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundry-hub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFetchAllPages(t *testing.T) {
	// Serve two full-ish pages, then an empty one to end pagination
	pages := map[string]int{"0": 20, "20": 5, "40": 0}
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start")
		requests = append(requests, start)

		count := pages[start]
		results := make([]map[string]string, count)
		for i := range results {
			results[i] = map[string]string{"title": fmt.Sprintf("Laundry %s-%d", start, i)}
		}

		json.NewEncoder(w).Encode(map[string]any{"local_results": results})
	}))
	defer server.Close()

	config := utils.FetchConfig{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		Query:    "laundry",
		Domain:   "google.com.np",
		Language: "en",
		Country:  "np",
		Location: "Kathmandu, Nepal",
	}

	client := &http.Client{Timeout: 5 * time.Second}
	results, err := fetchAllPages(client, config, zap.NewNop())

	assert.NoError(t, err)
	assert.Len(t, results, 25)
	assert.Equal(t, []string{"0", "20", "40"}, requests)
}

func TestFetchPage_PassesParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "google_local", q.Get("engine"))
		assert.Equal(t, "laundry", q.Get("q"))
		assert.Equal(t, "20", q.Get("start"))

		json.NewEncoder(w).Encode(map[string]any{"local_results": []any{}})
	}))
	defer server.Close()

	config := utils.FetchConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Query:   "laundry",
	}

	client := &http.Client{Timeout: 5 * time.Second}
	page, err := fetchPage(client, config, 20)

	assert.NoError(t, err)
	assert.Empty(t, page.LocalResults)
}

func TestFetchPage_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	_, err := fetchPage(client, utils.FetchConfig{BaseURL: server.URL}, 0)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
