package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]string{"id": "ord_000001"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["id"] != "ord_000001" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestJSONNilBody(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusNoContent, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, "order not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	errObj := body["error"]
	if errObj["message"] != "order not found" {
		t.Errorf("unexpected message: %v", errObj["message"])
	}
	if errObj["code"] != float64(404) {
		t.Errorf("unexpected code: %v", errObj["code"])
	}
}

func TestServerMiddlewareStack(t *testing.T) {
	srv := New(&Config{Port: 0})
	srv.Router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS header, got %q", origin)
	}
	entries := srv.RequestLog.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log entry, got %d", len(entries))
	}
	if entries[0].Method != "GET" || entries[0].Path != "/ping" || entries[0].Status != 200 {
		t.Errorf("unexpected log entry: %+v", entries[0])
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := New(&Config{Port: 0})
	srv.Router.Post("/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusCreated, nil)
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/orders", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
}
