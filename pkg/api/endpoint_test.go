package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

func TestEndpoint_Builders(t *testing.T) {
	t.Parallel()

	endpoint := api.Delete("members.anonymize", "user/{email}").Text().Unexpected()

	assert.Equal(t, http.MethodDelete, endpoint.Method)
	assert.Equal(t, api.ResponseText, endpoint.Response)
	assert.Equal(t, api.ErrorModeUnexpected, endpoint.ErrorMode)

	plain := api.Post("segments.add_members", "segments/{id}").Empty()
	assert.Equal(t, http.MethodPost, plain.Method)
	assert.Equal(t, api.ResponseEmpty, plain.Response)
	assert.Equal(t, api.ErrorModeServer, plain.ErrorMode)

	assert.Equal(t, http.MethodGet, api.Get("a", "a").Method)
	assert.Equal(t, http.MethodPut, api.Put("a", "a").Method)
	assert.Equal(t, http.MethodPatch, api.Patch("a", "a").Method)
}

func TestEndpoint_Expand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		params   api.PathParams
		expected string
		wantErr  bool
	}{
		{name: "no placeholders", path: "segments", expected: "segments"},
		{name: "single", path: "/widgets/{id}", params: api.PathParams{"id": "42"}, expected: "/widgets/42"},
		{
			name:     "multiple",
			path:     "2010-04-01/Accounts/{account_sid}/Messages/{sid}.json",
			params:   api.PathParams{"account_sid": "AC1", "sid": "SM2"},
			expected: "2010-04-01/Accounts/AC1/Messages/SM2.json",
		},
		{name: "value kept raw", path: "user/{email}", params: api.PathParams{"email": "a+b@x.io"}, expected: "user/a+b@x.io"},
		{name: "value containing braces", path: "a/{x}/{y}", params: api.PathParams{"x": "{y}", "y": "z"}, expected: "a/{y}/z"},
		{name: "missing parameter", path: "segments/{id}/status", params: api.PathParams{"other": "1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := api.Get(tt.name, tt.path).Expand(tt.params)
			if tt.wantErr {
				require.ErrorIs(t, err, api.ErrMissingPathParam)
				assert.Contains(t, err.Error(), tt.path)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEndpoint_Placeholders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"account_sid", "sid"}, api.Get("m", "Accounts/{account_sid}/Messages/{sid}.json").Placeholders())
	assert.Nil(t, api.Get("s", "segments").Placeholders())
}
