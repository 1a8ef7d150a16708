package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/draftpipe/draftpipe/core"
)

// CollectorOptions configure the HTTP collector client.
type CollectorOptions struct {
	APIKey     string
	HTTPClient *http.Client
}

// Collector posts run records to a remote trace collector over HTTP: one POST
// per run start, one PATCH per run end. Requests carry a short timeout via
// the configured client so a slow backend cannot stall a pipeline stage for
// long.
type Collector struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewCollector creates a collector client for the given base endpoint
// (for example "https://traces.example.com/api/v1").
func NewCollector(endpoint string, optFns ...func(o *CollectorOptions)) *Collector {
	opts := CollectorOptions{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Collector{endpoint: endpoint, apiKey: opts.APIKey, client: opts.HTTPClient}
}

// StartRun implements core.Telemetry.
func (c *Collector) StartRun(ctx context.Context, run core.RunStart) error {
	return c.send(ctx, http.MethodPost, c.endpoint+"/runs", run)
}

// EndRun implements core.Telemetry.
func (c *Collector) EndRun(ctx context.Context, run core.RunEnd) error {
	return c.send(ctx, http.MethodPatch, c.endpoint+"/runs/"+run.ID, run)
}

func (c *Collector) send(ctx context.Context, method, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build collector request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("collector request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("collector returned status %d", resp.StatusCode)
	}
	return nil
}
