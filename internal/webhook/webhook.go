// Package webhook delivers signed order lifecycle events to a
// configured endpoint, with retries and a delivery log.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Event types emitted by the order API.
const (
	EventOrderCreated       = "order.created"
	EventInstallmentPaid    = "order.installment_paid"
	EventFulfillmentUpdated = "order.fulfillment_updated"
)

// Event is one outbound notification.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

// Delivery records one delivery attempt.
type Delivery struct {
	EventID    string    `json:"event_id"`
	URL        string    `json:"url"`
	StatusCode int       `json:"status_code"`
	Error      string    `json:"error,omitempty"`
	Attempt    int       `json:"attempt"`
	Timestamp  time.Time `json:"timestamp"`
}

// Config configures the dispatcher.
type Config struct {
	URL         string
	Secret      string
	Logger      *slog.Logger
	MaxRetries  int
	RetryDelay  time.Duration
	AutoDeliver bool // deliver asynchronously as events are queued
}

// Dispatcher signs and delivers events. Without a URL it degrades to a
// no-op queue, so callers can emit unconditionally.
type Dispatcher struct {
	mu          sync.RWMutex
	url         string
	secret      string
	logger      *slog.Logger
	queue       []Event
	deliveries  []Delivery
	maxRetries  int
	retryDelay  time.Duration
	client      *http.Client
	counter     int
	autoDeliver bool
}

// NewDispatcher creates a Dispatcher from cfg, applying defaults.
func NewDispatcher(cfg Config) *Dispatcher {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Dispatcher{
		url:         cfg.URL,
		secret:      cfg.Secret,
		logger:      cfg.Logger,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay,
		client:      &http.Client{Timeout: 30 * time.Second},
		autoDeliver: cfg.AutoDeliver,
	}
}

// Enqueue queues an event built from v, which must marshal to a JSON
// object. Delivery happens asynchronously when AutoDeliver is set,
// otherwise on the next Flush.
func (d *Dispatcher) Enqueue(eventType string, v any) Event {
	payload := toMap(v)

	d.mu.Lock()
	d.counter++
	evt := Event{
		ID:        fmt.Sprintf("evt_%06d", d.counter),
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	d.queue = append(d.queue, evt)
	autoDeliver := d.autoDeliver
	d.mu.Unlock()

	if autoDeliver {
		go d.deliver(evt)
	}
	return evt
}

// Flush delivers all queued events synchronously and clears the queue.
func (d *Dispatcher) Flush() error {
	d.mu.RLock()
	events := make([]Event, len(d.queue))
	copy(events, d.queue)
	d.mu.RUnlock()

	var lastErr error
	for _, evt := range events {
		if err := d.deliver(evt); err != nil {
			lastErr = err
		}
	}

	d.mu.Lock()
	d.queue = d.queue[:0]
	d.mu.Unlock()
	return lastErr
}

// Deliveries returns all delivery records.
func (d *Dispatcher) Deliveries() []Delivery {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Delivery, len(d.deliveries))
	copy(out, d.deliveries)
	return out
}

// QueuedEvents returns all queued but undelivered events.
func (d *Dispatcher) QueuedEvents() []Event {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Event, len(d.queue))
	copy(out, d.queue)
	return out
}

// Reset clears events, deliveries, and the ID counter.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = d.queue[:0]
	d.deliveries = d.deliveries[:0]
	d.counter = 0
}

func (d *Dispatcher) deliver(evt Event) error {
	d.mu.RLock()
	url := d.url
	secret := d.secret
	d.mu.RUnlock()

	if url == "" {
		d.logger.Debug("no webhook URL configured, skipping delivery", "event_id", evt.ID)
		return nil
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if secret != "" {
			req.Header.Set(SignatureHeader, Sign(payload, secret, time.Now().Unix()))
		}

		resp, err := d.client.Do(req)
		delivery := Delivery{
			EventID:   evt.ID,
			URL:       url,
			Attempt:   attempt,
			Timestamp: time.Now(),
		}

		if err != nil {
			delivery.Error = err.Error()
			lastErr = err
		} else {
			io.ReadAll(resp.Body)
			resp.Body.Close()
			delivery.StatusCode = resp.StatusCode
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				d.mu.Lock()
				d.deliveries = append(d.deliveries, delivery)
				d.mu.Unlock()
				return nil
			}
			lastErr = fmt.Errorf("webhook delivery failed: status %d", resp.StatusCode)
		}

		d.mu.Lock()
		d.deliveries = append(d.deliveries, delivery)
		d.mu.Unlock()

		if attempt < d.maxRetries {
			time.Sleep(d.retryDelay)
		}
	}
	return lastErr
}

func toMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{}
	}
	return m
}
