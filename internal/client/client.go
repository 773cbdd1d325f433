// Package client holds the HTTP adapters for the external product and recipe
// APIs. Calls are bounded-retried with jittered exponential backoff on
// transport failures and 5xx responses; a negative lookup ("not found") is a
// terminal outcome and never retried.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mpaterson/souschef/internal/errs"
)

const (
	defaultTimeout       = 15 * time.Second
	defaultMaxRetries    = 2
	defaultRetryInterval = 250 * time.Millisecond
)

// apiClient is the piece shared by the concrete adapters: an HTTP client and
// the retry policy for GET-and-decode calls.
type apiClient struct {
	http          *http.Client
	maxRetries    uint64
	retryInterval time.Duration
}

func newAPIClient() apiClient {
	return apiClient{
		http:          &http.Client{Timeout: defaultTimeout},
		maxRetries:    defaultMaxRetries,
		retryInterval: defaultRetryInterval,
	}
}

// getJSON issues a GET and decodes the JSON body into out. Transport errors
// and 5xx responses are retried; 404, other 4xx and decode failures are
// permanent. Errors unwrap to errs.ErrNotFound or errs.ErrUpstream so
// callers can map them without string matching.
func (c *apiClient) getJSON(ctx context.Context, url string, out any) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %v", errs.ErrUpstream, err))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrUpstream, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(errs.ErrNotFound)
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: status %d", errs.ErrUpstream, resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("%w: status %d: %s", errs.ErrUpstream, resp.StatusCode, body))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: decode: %v", errs.ErrUpstream, err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx))
	if err != nil && !errors.Is(err, errs.ErrNotFound) && !errors.Is(err, errs.ErrUpstream) {
		return fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}
	return err
}
