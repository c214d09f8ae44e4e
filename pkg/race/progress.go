// Package race reports word-completion progress to the room subsystem.
package race

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ProgressReporter receives the completed-word count for a room as the racer
// advances. Implementations must not block the input path; callers fire
// updates asynchronously and apply the local update optimistically.
type ProgressReporter interface {
	ReportProgress(ctx context.Context, room string, wordsCompleted int) error
}

// HTTPReporter posts progress updates as JSON to a fixed endpoint.
type HTTPReporter struct {
	client   *http.Client
	endpoint string
}

func NewHTTPReporter(endpoint string) *HTTPReporter {
	return &HTTPReporter{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: endpoint,
	}
}

type progressUpdate struct {
	Room           string `json:"room"`
	WordsCompleted int    `json:"wordsCompleted"`
}

func (r *HTTPReporter) ReportProgress(ctx context.Context, room string, wordsCompleted int) error {
	payload, err := json.Marshal(progressUpdate{Room: room, WordsCompleted: wordsCompleted})
	if err != nil {
		return fmt.Errorf("failed to marshal progress update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build progress request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post progress update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("progress update rejected with status %d", resp.StatusCode)
	}
	return nil
}

// NopReporter discards progress updates. Used for local practice races.
type NopReporter struct{}

func (NopReporter) ReportProgress(context.Context, string, int) error { return nil }
