package vpic

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config) *Client {
	cfg.applyDefaults()

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        cfg.Logger,
	}
}

// Fetch issues a single GET to the registry and returns the raw body.
// JSON validity is checked by Extract.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrRequestFailed, "could not build request for %s: %s", c.cfg.URL, err.Error())
	}

	c.log.Debug("fetching manufacturers", "url", c.cfg.URL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("manufacturer registry unreachable", "url", c.cfg.URL, "error", err)
		return nil, errors.Wrap(ErrRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("unexpected status", "url", c.cfg.URL, "status", resp.StatusCode)
		return nil, errors.Wrapf(ErrUnexpectedStatus, "status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrRequestFailed, "could not read response body: %s", err.Error())
	}

	c.log.Debug("manufacturers fetched", "bytes", len(body))

	return body, nil
}
