package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fivetwenty-io/saasapi/internal/http"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// Call is one invocation of an endpoint.
type Call struct {
	Endpoint api.Endpoint
	Params   api.PathParams
	Query    *api.Query
	Body     interface{}
	Stream   io.Reader
	Headers  map[string]string
}

// Fetch sends call and decodes the JSON response into T. Endpoints marked
// empty return a zero T without reading the body.
func Fetch[T any](ctx context.Context, c *Client, call Call) (*T, error) {
	resp, err := c.send(ctx, call)
	if err != nil {
		return nil, err
	}

	var result T

	if call.Endpoint.Response == api.ResponseEmpty {
		return &result, nil
	}

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call.Endpoint.Name, newDecodeError(resp.StatusCode, resp.Body, err))
	}

	return &result, nil
}

// FetchText sends call and returns the body verbatim.
func FetchText(ctx context.Context, c *Client, call Call) (string, error) {
	resp, err := c.send(ctx, call)
	if err != nil {
		return "", err
	}

	return string(resp.Body), nil
}

// Exec sends call and discards the body.
func Exec(ctx context.Context, c *Client, call Call) error {
	_, err := c.send(ctx, call)

	return err
}

func (c *Client) send(ctx context.Context, call Call) (*http.Response, error) {
	path, err := call.Endpoint.Expand(call.Params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call.Endpoint.Name, err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:    call.Endpoint.Method,
		Path:      path,
		Query:     call.Query.Values(),
		Body:      call.Body,
		Stream:    call.Stream,
		Headers:   call.Headers,
		ErrorMode: call.Endpoint.ErrorMode,
		Name:      call.Endpoint.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call.Endpoint.Name, err)
	}

	return resp, nil
}

// newDecodeError locates a JSON failure in body.
func newDecodeError(status int, body []byte, err error) *api.DecodeError {
	decodeErr := &api.DecodeError{
		StatusCode: status,
		Body:       string(body),
		Offset:     -1,
		Err:        err,
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &syntaxErr):
		decodeErr.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		decodeErr.Offset = typeErr.Offset
	default:
		return decodeErr
	}

	decodeErr.Line, decodeErr.Column = lineColumn(body, decodeErr.Offset)

	return decodeErr
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(body []byte, offset int64) (int, int) {
	if offset > int64(len(body)) {
		offset = int64(len(body))
	}

	if offset < 0 {
		offset = 0
	}

	prefix := body[:offset]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	column := len(prefix) - bytes.LastIndexByte(prefix, '\n') - 1

	if column < 1 {
		column = 1
	}

	return line, column
}
