package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
)

const userAgent = "100m-dashboard/1.0"

// restClient is the shared GET-and-decode plumbing for all providers:
// per-provider rate limit, circuit breaker and request timeout.
type restClient struct {
	name    string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func newRESTClient(name string, cfg config.ProviderConfig) *restClient {
	rps := cfg.RPS
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	settings := gobreaker.Settings{
		Name:     name,
		Interval: time.Minute,
		Timeout:  2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &restClient{
		name:    name,
		http:    &http.Client{Timeout: cfg.Timeout()},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// getJSON performs a rate-limited GET behind the circuit breaker and
// decodes the body into out.
func (c *restClient) getJSON(ctx context.Context, endpoint string, params url.Values, headers map[string]string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limiter: %w", c.name, err)
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		reqURL := endpoint
		if len(params) > 0 {
			reqURL = endpoint + "?" + params.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}
	return nil
}
