package server

import (
	"fmt"
	"testing"
)

func TestRequestLogRingBuffer(t *testing.T) {
	rl := NewRequestLog(10)

	for i := 0; i < 15; i++ {
		rl.Add(RequestLogEntry{Method: "GET", Path: fmt.Sprintf("/v1/orders/%d", i)})
	}

	entries := rl.Entries()
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	// Oldest entries evicted; first surviving entry is request 5.
	if entries[0].Path != "/v1/orders/5" {
		t.Errorf("expected /v1/orders/5 first, got %s", entries[0].Path)
	}
	if entries[9].Path != "/v1/orders/14" {
		t.Errorf("expected /v1/orders/14 last, got %s", entries[9].Path)
	}
}

func TestRequestLogClear(t *testing.T) {
	rl := NewRequestLog(10)
	rl.Add(RequestLogEntry{Method: "GET", Path: "/v1/catalog"})
	rl.Clear()
	if len(rl.Entries()) != 0 {
		t.Errorf("expected empty log after clear, got %d entries", len(rl.Entries()))
	}
}

func TestRequestLogEntriesReturnsCopy(t *testing.T) {
	rl := NewRequestLog(10)
	rl.Add(RequestLogEntry{Method: "GET", Path: "/v1/catalog"})

	entries := rl.Entries()
	entries[0].Path = "/mutated"

	if rl.Entries()[0].Path != "/v1/catalog" {
		t.Error("Entries() should return a copy")
	}
}
