package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-frontend/internal/platform/httpclient"
)

// maxResponseBodySize caps a successful response body.
const maxResponseBodySize = 10 << 20 // 10 MB

var errTrailingData = errors.New("unexpected data after JSON value")

// Requester centralizes the HTTP request lifecycle for ACL clients: request
// creation, JSON marshaling, execution via httpclient.Client, response body
// cleanup, status validation, and error translation into the three domain
// error kinds.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to url. reqBody, when non-nil, is marshaled as JSON.
// Any 2xx status is success. respBody, when non-nil, receives the decoded
// body; otherwise the body is drained and ignored.
//
// op names the operation in returned errors, e.g. "todo.list".
func (r *Requester) Do(ctx context.Context, op, method, url string, reqBody, respBody any) error {
	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("%s: marshaling request body: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("%s: creating %s request: %w", op, method, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, op, respBody)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request and translates the outcome. It ensures
// resp.Body is always closed.
func (r *Requester) execute(req *http.Request, op string, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	// httpclient returns both resp and err for a final 5xx; the status is
	// what the caller needs to see.
	if resp != nil && !isSuccess(resp.StatusCode) {
		translated := TranslateHTTPError(op, resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("operation", op),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translated),
		)
		return translated
	}

	if err != nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("operation", op),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return translateTransportError(op, err)
	}

	limited := io.LimitReader(resp.Body, maxResponseBodySize)
	if respBody == nil {
		_, _ = io.Copy(io.Discard, limited)
		return nil
	}

	if err := decodeJSON(limited, respBody); err != nil {
		r.logger.ErrorContext(ctx, "undecodable response",
			slog.String("operation", op),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return translateDecodeError(op, err)
	}

	return nil
}

// decodeJSON decodes exactly one JSON value from r into v. Anything after
// that value other than whitespace is an error.
func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
