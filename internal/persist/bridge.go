// Package persist implements the save path: serialize the current snapshot
// and write it out through the local helper process, falling back to the
// system clipboard when the helper is unreachable.
package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/atotto/clipboard"

	"github.com/avendel/folio/internal/literal"
	"github.com/avendel/folio/internal/models"
)

// Result says where a save landed.
type Result string

// Save outcomes. A clipboard save means the helper was unreachable and the
// owner has to either start it and retry, or paste the clipboard content
// into the data file by hand.
const (
	SavedToFile      Result = "file"
	SavedToClipboard Result = "clipboard"
)

// Clipboard is the system clipboard write capability. Tests inject fakes.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through the host clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// saveRequest is the helper's request body.
type saveRequest struct {
	Content string `json:"content"`
}

// Bridge owns serialization and transport. Transport failures are absorbed
// here and turned into the clipboard fallback; only a failed clipboard write
// surfaces as an error.
type Bridge struct {
	endpoint string
	client   *http.Client
	clip     Clipboard
}

// NewBridge creates a bridge posting to the given helper endpoint. A nil
// clip selects the system clipboard.
func NewBridge(endpoint string, clip Clipboard) *Bridge {
	if clip == nil {
		clip = SystemClipboard{}
	}
	return &Bridge{
		endpoint: endpoint,
		// The helper is local; a hung request should not stall the editor.
		client: &http.Client{Timeout: 5 * time.Second},
		clip:   clip,
	}
}

// Save serializes d and persists it. The returned Result distinguishes a
// real file write from the clipboard fallback.
func (b *Bridge) Save(ctx context.Context, d *models.PortfolioData) (Result, error) {
	text := string(literal.Marshal(d))

	err := b.post(ctx, text)
	if err == nil {
		return SavedToFile, nil
	}
	slog.Debug("persist: helper unreachable, falling back to clipboard",
		slog.String("endpoint", b.endpoint),
		slog.String("error", err.Error()))

	if err := b.clip.WriteAll(text); err != nil {
		return "", fmt.Errorf("persist: clipboard fallback: %w", err)
	}
	return SavedToClipboard, nil
}

func (b *Bridge) post(ctx context.Context, text string) error {
	body, err := json.Marshal(saveRequest{Content: text})
	if err != nil {
		return fmt.Errorf("persist: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("persist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("persist: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("persist: helper returned status %d", resp.StatusCode)
	}
	return nil
}
