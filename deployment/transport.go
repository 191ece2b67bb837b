package deployment

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ClientOptions tunes the HTTP layer of the deployment client
type ClientOptions struct {
	// Token is sent as a bearer token on every request.
	Token string

	Timeout      time.Duration
	RetryMax     int
	RetryBackoff time.Duration
	MaxIdleConns int
	IdleConnTTL  time.Duration

	// RequestsPerSecond limits outgoing calls. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
}

// httpClient provides a tuned HTTP client for agent engine requests
type httpClient struct {
	client  *http.Client
	limiter *rate.Limiter
	opts    ClientOptions
}

func newHTTPClient(opts ClientOptions) *httpClient {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.RetryMax == 0 {
		opts.RetryMax = 3
	}
	if opts.RetryBackoff == 0 {
		opts.RetryBackoff = time.Second
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.IdleConnTTL == 0 {
		opts.IdleConnTTL = 90 * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConns,
		IdleConnTimeout:     opts.IdleConnTTL,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &httpClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		limiter: limiter,
		opts:    opts,
	}
}

// do performs a request with retry on transient failures. The body, when
// present, must be replayable across attempts.
func (c *httpClient) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.opts.RetryMax; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.opts.RetryBackoff * time.Duration(attempt)):
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		var reader *bytes.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		var req *http.Request
		var err error
		if reader != nil {
			req, err = http.NewRequestWithContext(ctx, method, url, reader)
		} else {
			req, err = http.NewRequestWithContext(ctx, method, url, nil)
		}
		if err != nil {
			return nil, err
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "ai-debate-team-deploy/1.0")
		if c.opts.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.opts.Token)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Retryable status codes
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("agent engine returned status %d", resp.StatusCode)
			continue
		}

		return resp, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("request failed after retries")
	}
	return nil, lastErr
}
