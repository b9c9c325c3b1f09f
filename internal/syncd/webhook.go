package syncd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/section308/heartboard/pkg/types"
)

// Webhook pushes newly claimed records to a configured endpoint. The
// receiving end appends a sheet row; the response is never inspected,
// and every failure is logged and swallowed so a dead endpoint can
// never block a visitor.
type Webhook struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewWebhook returns a notifier for the given endpoint. An empty URL
// yields a no-op notifier.
func NewWebhook(url string, log zerolog.Logger) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Notify fire-and-forgets the record's JSON to the endpoint.
func (w *Webhook) Notify(ctx context.Context, p types.Participant) {
	if w.url == "" {
		return
	}

	body, err := json.Marshal(p)
	if err != nil {
		w.log.Warn().Err(err).Msg("webhook marshal failed")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		w.log.Warn().Err(err).Msg("webhook request failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.Warn().Err(err).Str("name", p.Name).Msg("webhook push failed")
		return
	}
	// Drain and close; the response body carries nothing we use.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	w.log.Debug().Str("name", p.Name).Int("status", resp.StatusCode).Msg("webhook pushed")
}
