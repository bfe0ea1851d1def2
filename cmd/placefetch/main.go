// placefetch pulls every page of local search results for a query from a
// SerpAPI-style endpoint and writes them to a single JSON file. It is an
// offline batch tool and shares no runtime with the API server.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"laundry-hub/pkg/utils"

	"go.uber.org/zap"
)

// the API returns 20 results per page
const pageSize = 20

type searchPage struct {
	LocalResults []json.RawMessage `json:"local_results"`
}

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if config.Fetch.APIKey == "" {
		logger.Fatal("SERP_API_KEY is required")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	results, err := fetchAllPages(client, config.Fetch, logger)
	if err != nil {
		logger.Fatal("Fetch failed", zap.Error(err))
	}

	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		logger.Fatal("Failed to encode results", zap.Error(err))
	}

	if err := os.WriteFile(config.Fetch.OutputFile, data, 0644); err != nil {
		logger.Fatal("Failed to write output file",
			zap.Error(err),
			zap.String("file", config.Fetch.OutputFile),
		)
	}

	logger.Info("Saved all results",
		zap.Int("count", len(results)),
		zap.String("file", config.Fetch.OutputFile),
	)
}

// fetchAllPages walks the paginated endpoint from offset 0 in steps of
// pageSize until a page comes back empty, accumulating every result.
func fetchAllPages(client *http.Client, config utils.FetchConfig, logger *zap.Logger) ([]json.RawMessage, error) {
	var allResults []json.RawMessage

	for start := 0; ; start += pageSize {
		page, err := fetchPage(client, config, start)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", start, err)
		}

		// An empty page marks the end of pagination
		if len(page.LocalResults) == 0 {
			break
		}

		allResults = append(allResults, page.LocalResults...)

		logger.Info("Fetched results so far",
			zap.Int("count", len(allResults)),
			zap.Int("offset", start),
		)
	}

	return allResults, nil
}

func fetchPage(client *http.Client, config utils.FetchConfig, start int) (*searchPage, error) {
	params := url.Values{}
	params.Set("api_key", config.APIKey)
	params.Set("engine", "google_local")
	params.Set("google_domain", config.Domain)
	params.Set("q", config.Query)
	params.Set("hl", config.Language)
	params.Set("gl", config.Country)
	params.Set("location", config.Location)
	params.Set("start", strconv.Itoa(start))

	resp, err := client.Get(config.BaseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var page searchPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &page, nil
}
