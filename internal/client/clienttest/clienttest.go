// Package clienttest runs table-driven endpoint tests against an httptest
// server.
package clienttest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// Operation describes one endpoint call and the request the server expects.
type Operation struct {
	Name           string
	ExpectedMethod string
	ExpectedPath   string
	// ExpectedQuery is compared with the raw query string exactly.
	ExpectedQuery string
	// ExpectedBody is compared as JSON when non-empty.
	ExpectedBody string
	// ExpectedHeaders must all be present on the request.
	ExpectedHeaders map[string]string
	StatusCode      int
	// Response is written raw when it is a string, JSON-encoded otherwise.
	Response   interface{}
	WantErr    bool
	ErrMessage string
	// Call issues the request against a client pointed at baseURL. t is the
	// operation's own subtest.
	Call func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error)
	// Check inspects a successful result.
	Check func(t *testing.T, result interface{})
}

// Options returns client options suited to tests: the server's base URL, fast
// retries and no tracing.
func Options(baseURL string) []api.Option {
	return []api.Option{
		api.WithBaseURL(baseURL),
		api.WithRetryConfig(1, time.Millisecond, 2*time.Millisecond),
		api.WithTracing(false),
	}
}

// RunOperations runs each operation as a parallel subtest with its own server.
func RunOperations(t *testing.T, operations []Operation) {
	t.Helper()

	for _, operation := range operations {
		t.Run(operation.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assertRequest(t, operation, request)
				writeResponse(writer, operation)
			}))
			defer server.Close()

			result, err := operation.Call(t, context.Background(), server.URL)

			if operation.WantErr {
				require.Error(t, err)

				if operation.ErrMessage != "" {
					assert.Contains(t, err.Error(), operation.ErrMessage)
				}

				return
			}

			require.NoError(t, err)

			if operation.Check != nil {
				operation.Check(t, result)
			}
		})
	}
}

func assertRequest(t *testing.T, operation Operation, request *http.Request) {
	t.Helper()

	if operation.ExpectedMethod != "" {
		assert.Equal(t, operation.ExpectedMethod, request.Method)
	}

	if operation.ExpectedPath != "" {
		assert.Equal(t, operation.ExpectedPath, request.URL.Path)
	}

	assert.Equal(t, operation.ExpectedQuery, request.URL.RawQuery)

	for key, value := range operation.ExpectedHeaders {
		assert.Equal(t, value, request.Header.Get(key), "header %s", key)
	}

	if operation.ExpectedBody != "" {
		body, err := io.ReadAll(request.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, operation.ExpectedBody, string(body))
	}
}

func writeResponse(writer http.ResponseWriter, operation Operation) {
	status := operation.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	switch body := operation.Response.(type) {
	case nil:
		writer.WriteHeader(status)
	case string:
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, body)
	default:
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_ = json.NewEncoder(writer).Encode(body)
	}
}
