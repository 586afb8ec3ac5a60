// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP. Requests carry a
// UUID id and go through a retryable HTTP client, so transient transport
// failures are retried before an error reaches the caller.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// Standard JSON-RPC 2.0 error codes the callers branch on.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
)

// ProviderError is the error object of a JSON-RPC response. It matches
// ErrProviderReturnedError with errors.Is.
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// IsMethodNotFound reports whether err is a provider error for an unsupported method.
func IsMethodNotFound(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr) && providerErr.Code == CodeMethodNotFound
}

type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *ProviderError  `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the response's error object, or nil.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch sends method with params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

// Fetch implements Client.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// Call is Fetch followed by decoding the result into out.
func Call(ctx context.Context, c Client, out any, method string, params ...any) error {
	data, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}

	return nil
}

// NewClient returns a Client posting to providerEndpoint through httpClient.
func NewClient(httpClient *retryablehttp.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
