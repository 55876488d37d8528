package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EngineCaller forwards raw Messenger event payloads to the downstream game
// engine. A single best-effort attempt per payload; retrying is the webhook
// sender's job, not ours.
type EngineCaller interface {
	ForwardEvents(ctx context.Context, events []byte) error
}

type engineCaller struct {
	client  *http.Client
	baseURL string
}

func NewEngineCaller(baseURL string, timeout time.Duration) *engineCaller {
	return &engineCaller{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *engineCaller) ForwardEvents(ctx context.Context, events []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/webhook", bytes.NewReader(events))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("engine responded with status %d", resp.StatusCode)
	}

	return nil
}
