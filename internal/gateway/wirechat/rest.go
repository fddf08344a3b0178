package wirechat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/gateway"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

const maxResponseBytes = 1 << 20

func newHTTPClient(opts Options, logger *zerolog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.RetryMax
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = opts.RequestTimeout
	client.Logger = leveledLogger{log: logger}
	client.CheckRetry = checkRetry
	// Keep the last response after retries so its error body can be read.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

type methodKey struct{}

// checkRetry keeps the default policy for GET. Other methods are retried
// only when the connection was never established, since the server may
// already have applied a request whose response got lost.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	method, _ := ctx.Value(methodKey{}).(string)
	if method == "" || method == http.MethodGet || method == http.MethodHead {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	var opErr *net.OpError
	if err != nil && errors.As(err, &opErr) && opErr.Op == "dial" {
		return true, nil
	}
	return false, nil
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	endpoint := c.baseURL.JoinPath(path)
	return c.doURL(ctx, method, endpoint.String(), token, payload, out)
}

func (c *Client) doURL(ctx context.Context, method, endpoint, token string, payload []byte, out any) error {
	var reqBody any
	if payload != nil {
		reqBody = payload
	}
	ctx = context.WithValue(ctx, methodKey{}, method)
	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("url", endpoint).Msg("request failed")
		return gateway.Wrap(gateway.ErrCodeTransport, err.Error(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return gateway.Wrap(gateway.ErrCodeTransport, "read response", err)
	}

	c.log.Debug().Str("method", method).Str("url", endpoint).Int("status", resp.StatusCode).Msg("http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return gateway.Wrap(gateway.ErrCodeServer, "unexpected response from server", err)
	}
	return nil
}

func errorFromResponse(status int, body []byte) *gateway.Error {
	var er proto.ErrorResponse
	// Non-JSON bodies leave the message empty.
	_ = json.Unmarshal(body, &er)

	return gateway.NewError(codeForStatus(status), er.Error)
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return gateway.ErrCodeUnauthorized
	case status == http.StatusNotFound:
		return gateway.ErrCodeNotFound
	case status == http.StatusConflict:
		return gateway.ErrCodeConflict
	case status >= 500:
		return gateway.ErrCodeServer
	default:
		return gateway.ErrCodeBadRequest
	}
}

// leveledLogger adapts zerolog to retryablehttp.LeveledLogger.
type leveledLogger struct {
	log *zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Trace().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}
