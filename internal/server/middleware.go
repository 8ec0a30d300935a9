package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// RequestLogEntry records one handled request.
type RequestLogEntry struct {
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Duration  string    `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}

// RequestLog is a fixed-size ring buffer of recent requests, exposed
// through the admin API.
type RequestLog struct {
	mu      sync.RWMutex
	entries []RequestLogEntry
	max     int
}

// NewRequestLog creates a RequestLog holding up to max entries.
func NewRequestLog(max int) *RequestLog {
	return &RequestLog{max: max}
}

// Add appends an entry, evicting the oldest when full.
func (rl *RequestLog) Add(e RequestLogEntry) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = append(rl.entries, e)
	if len(rl.entries) > rl.max {
		rl.entries = rl.entries[len(rl.entries)-rl.max:]
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (rl *RequestLog) Entries() []RequestLogEntry {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	out := make([]RequestLogEntry, len(rl.entries))
	copy(out, rl.entries)
	return out
}

// Clear removes all recorded entries.
func (rl *RequestLog) Clear() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = nil
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogRequests records every request in the ring buffer and logs it at
// debug level.
func LogRequests(logger *slog.Logger, rl *RequestLog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			rl.Add(RequestLogEntry{
				Method:    r.Method,
				Path:      r.URL.Path,
				Status:    rec.status,
				Duration:  elapsed.String(),
				Timestamp: start,
			})
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", elapsed,
			)
		})
	}
}

// CORS allows browser clients from any origin; the API carries no
// credentials.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
