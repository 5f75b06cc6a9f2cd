package testevents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/arcstar/pkg/logger"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// getJSON fetches url and decodes a 200 response into v.
func (c *HTTPClient) getJSON(ctx context.Context, url string, v any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s: status %d: %s", url, resp.StatusCode, bytes.TrimSpace(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// submitLanes posts every lane's stream with a pool of workers. A lane is
// owned by one worker so its events arrive in timestamp order.
func submitLanes(ctx context.Context, config *Config, lanes [][]Event, stats *Stats) error {
	log := logger.Get()
	log.Info(ctx, "submitting events",
		logger.Int("lanes", len(lanes)),
		logger.Int("workers", config.Workers),
		logger.Int("batchSize", config.BatchSize))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/events"

	var (
		accepted      int64
		failed        int64
		batchesFailed int64
	)

	laneChan := make(chan int, len(lanes))
	for lane := range lanes {
		laneChan <- lane
	}
	close(laneChan)

	var wg sync.WaitGroup
	for range max(1, min(config.Workers, len(lanes))) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lane := range laneChan {
				events := lanes[lane]
				for start := 0; start < len(events); start += config.BatchSize {
					if ctx.Err() != nil {
						return
					}
					batch := events[start:min(start+config.BatchSize, len(events))]
					n, err := submitBatch(ctx, client, url, batch)
					atomic.AddInt64(&accepted, int64(n))
					if err != nil {
						atomic.AddInt64(&failed, int64(len(batch)-n))
						atomic.AddInt64(&batchesFailed, 1)
						if config.Verbose {
							log.Warn(ctx, "batch failed", logger.Int("lane", lane), logger.Int("offset", start), logger.Error(err))
						}
					}
				}
				log.Debug(ctx, "lane submitted", logger.Int("lane", lane), logger.Int("events", len(events)))
			}
		}()
	}
	wg.Wait()

	stats.EventsAccepted = int(atomic.LoadInt64(&accepted))
	stats.EventsFailed = int(atomic.LoadInt64(&failed))
	stats.BatchesFailed = int(atomic.LoadInt64(&batchesFailed))

	log.Info(ctx, "event submission completed",
		logger.Int("accepted", stats.EventsAccepted),
		logger.Int("failed", stats.EventsFailed),
		logger.Int("batchesFailed", stats.BatchesFailed))
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("submission interrupted: %w", err)
	}
	return nil
}

// submitBatch posts one batch and returns how many events were accepted.
// A failed batch counts as rejected even though the service may have
// queued a prefix of it.
func submitBatch(ctx context.Context, client *HTTPClient, url string, batch []Event) (int, error) {
	resp, err := client.Post(ctx, url, batch)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != StatusAccepted {
		return 0, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	var ack AckResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		return len(batch), nil //nolint:nilerr // 202 means every event was queued
	}
	return ack.Accepted, nil
}

// fetchCorners returns the most recent corners.
func fetchCorners(ctx context.Context, config *Config) ([]Corner, error) {
	client := newHTTPClient(config.Timeout)
	var corners []Corner
	url := config.BaseURL + "/corners?limit=" + strconv.Itoa(config.CornerLimit)
	if err := client.getJSON(ctx, url, &corners); err != nil {
		return nil, err
	}
	return corners, nil
}

// processedCount reads the processed counter from /stats.
func processedCount(ctx context.Context, client *HTTPClient, baseURL string) (int, error) {
	var stats map[string]any
	if err := client.getJSON(ctx, baseURL+"/stats", &stats); err != nil {
		return 0, err
	}
	processed, _ := stats["processed"].(float64)
	return int(processed), nil
}
