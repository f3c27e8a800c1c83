package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"listing-manager/core/metrics"

	"go.uber.org/zap"
)

const maxResponseBodySize = 1 << 20 // 1MB

// Delivery is the structured result of one outbound call. Failures are
// captured here and logged, never raised to the triggering caller.
type Delivery struct {
	OK         bool   `json:"ok"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
	Err        error  `json:"-"`
}

// Notifier emits record-change events to an external automation endpoint.
//
// Notify performs one bounded-timeout POST. Go schedules the same call on a
// background goroutine without awaiting it; Drain waits for every pending
// background notification, which keeps tests deterministic.
type Notifier struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
	wg     sync.WaitGroup
}

// New creates a Notifier. Timeouts are applied per call via context, not as
// a global client timeout.
func New(cfg Config, logger *zap.Logger) *Notifier {
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	return &Notifier{
		cfg:    cfg,
		client: &http.Client{},
		logger: logger,
	}
}

func (n *Notifier) timeout() time.Duration {
	return time.Duration(n.cfg.TimeoutSeconds) * time.Second
}

// Notify POSTs the payload to {base}/{event} and reports the outcome.
// A 2xx response is a success; everything else, including transport failure
// and timeout, is a reported but non-fatal failure.
func (n *Notifier) Notify(ctx context.Context, event string, payload any) Delivery {
	url := strings.TrimRight(n.cfg.BaseURL, "/") + "/" + event
	delivery := n.post(ctx, url, payload, false)

	result := "ok"
	if !delivery.OK {
		result = "failed"
	}
	metrics.NotifyResults.WithLabelValues(event, result).Inc()

	if delivery.OK {
		n.logger.Info("Webhook delivered",
			zap.String("event", event),
			zap.Int("status", delivery.StatusCode),
		)
	} else {
		n.logger.Warn("Webhook delivery failed",
			zap.String("event", event),
			zap.String("url", url),
			zap.Int("status", delivery.StatusCode),
			zap.Error(delivery.Err),
		)
	}
	return delivery
}

// Go schedules Notify on a background goroutine. The caller is never blocked
// on, or affected by, the delivery outcome.
func (n *Notifier) Go(event string, payload any) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.Notify(context.Background(), event, payload)
	}()
}

// Drain blocks until every notification scheduled via Go has terminated.
func (n *Notifier) Drain() {
	n.wg.Wait()
}

// TriggerWorkflow starts a workflow through the automation platform's REST
// API. The API key, when configured, is sent as a Bearer token.
func (n *Notifier) TriggerWorkflow(ctx context.Context, workflowID string, payload map[string]any) Delivery {
	url := fmt.Sprintf("%s/workflows/%s/executions", strings.TrimRight(n.cfg.APIURL, "/"), workflowID)
	body := map[string]any{"workflowData": payload}
	if payload == nil {
		body["workflowData"] = map[string]any{}
	}
	return n.post(ctx, url, body, true)
}

// ListWorkflows fetches the workflows known to the automation platform.
func (n *Notifier) ListWorkflows(ctx context.Context) Delivery {
	url := strings.TrimRight(n.cfg.APIURL, "/") + "/workflows"

	ctx, cancel := context.WithTimeout(ctx, n.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Delivery{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	n.authorize(req)

	return n.do(req)
}

func (n *Notifier) post(ctx context.Context, url string, payload any, authorized bool) Delivery {
	ctx, cancel := context.WithTimeout(ctx, n.timeout())
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return Delivery{Err: fmt.Errorf("failed to encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Delivery{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		n.authorize(req)
	}

	return n.do(req)
}

func (n *Notifier) authorize(req *http.Request) {
	if n.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)
	}
}

func (n *Notifier) do(req *http.Request) Delivery {
	resp, err := n.client.Do(req)
	if err != nil {
		return Delivery{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return Delivery{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return Delivery{
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
