package race

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPReporter(t *testing.T) {
	var got progressUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
	}))
	defer server.Close()

	reporter := NewHTTPReporter(server.URL)
	if err := reporter.ReportProgress(context.Background(), "room-7", 42); err != nil {
		t.Fatalf("ReportProgress() failed: %v", err)
	}
	if got.Room != "room-7" || got.WordsCompleted != 42 {
		t.Errorf("payload = %+v", got)
	}
}

func TestHTTPReporterNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "room closed", http.StatusConflict)
	}))
	defer server.Close()

	reporter := NewHTTPReporter(server.URL)
	if err := reporter.ReportProgress(context.Background(), "room-7", 1); err == nil {
		t.Error("ReportProgress() succeeded on 409, want error")
	}
}

func TestNopReporter(t *testing.T) {
	if err := (NopReporter{}).ReportProgress(context.Background(), "room", 3); err != nil {
		t.Errorf("NopReporter returned %v", err)
	}
}
