package slack

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// cookieTransport wraps an http.RoundTripper to add cookie headers
type cookieTransport struct {
	transport http.RoundTripper
	cookie    string
	logger    *zap.Logger
}

func (t *cookieTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.logger.Debug("Slack API request", zap.String("path", req.URL.Path))
	req.Header.Set("Cookie", "d="+t.cookie)
	return t.transport.RoundTrip(req)
}

// newCookieTransport creates a transport with cookie authentication
func newCookieTransport(cookie string, logger *zap.Logger) *cookieTransport {
	return &cookieTransport{
		transport: http.DefaultTransport,
		cookie:    cookie,
		logger:    logger,
	}
}

// withRetry runs fn until it returns something other than a rate limit
// error, sleeping for the Retry-After duration Slack reports in between
func withRetry(ctx context.Context, logger *zap.Logger, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}

		var rateLimitErr *slack.RateLimitedError
		if !errors.As(err, &rateLimitErr) {
			return err
		}

		logger.Debug("Rate limited by Slack, waiting", zap.Duration("retry_after", rateLimitErr.RetryAfter))
		select {
		case <-time.After(rateLimitErr.RetryAfter):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
