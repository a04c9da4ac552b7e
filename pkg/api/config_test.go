package api_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := api.NewConfig("commonroom", "https://api.commonroom.io/community/v1")

	assert.Equal(t, "commonroom", cfg.Name)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 60*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 3, cfg.RetryMax)
	assert.Equal(t, api.RetryTransient, cfg.RetryPolicy)
	assert.True(t, cfg.Tracing)
	assert.False(t, cfg.Debug)
	assert.NotNil(t, cfg.Logger)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	logger := api.NewZapLogger(nil)

	cfg := api.NewConfig("twilio", "https://api.twilio.com",
		api.WithBaseURL("http://127.0.0.1:8080"),
		api.WithUserAgent("tests/1.0"),
		api.WithHeader("X-Test", "1"),
		api.WithTimeout(5*time.Second),
		api.WithConnectTimeout(2*time.Second),
		api.WithRetryConfig(1, time.Millisecond, 10*time.Millisecond),
		api.WithRetryPolicy(api.RetryConnectionOnly),
		api.WithLogger(logger),
		api.WithDebug(true),
		api.WithRateLimit(10, 5),
		api.WithMetrics(registry),
		api.WithTracing(false),
	)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	assert.Equal(t, "tests/1.0", cfg.UserAgent)
	assert.Equal(t, map[string]string{"X-Test": "1"}, cfg.Headers)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 1, cfg.RetryMax)
	assert.Equal(t, time.Millisecond, cfg.RetryWaitMin)
	assert.Equal(t, 10*time.Millisecond, cfg.RetryWaitMax)
	assert.Equal(t, api.RetryConnectionOnly, cfg.RetryPolicy)
	assert.Same(t, logger, cfg.Logger)
	assert.True(t, cfg.Debug)
	assert.InDelta(t, 10.0, cfg.RateLimit, 0)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Same(t, registry, cfg.MetricsRegisterer)
	assert.False(t, cfg.Tracing)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []api.Option
	}{
		{name: "empty base URL", opts: []api.Option{api.WithBaseURL("")}},
		{name: "relative base URL", opts: []api.Option{api.WithBaseURL("not a url")}},
		{name: "negative timeout", opts: []api.Option{api.WithTimeout(-time.Second)}},
		{name: "zero timeout", opts: []api.Option{api.WithTimeout(0)}},
		{name: "zero connect timeout", opts: []api.Option{api.WithConnectTimeout(0)}},
		{name: "too many retries", opts: []api.Option{api.WithRetryConfig(50, time.Second, time.Minute)}},
		{name: "wait max below min", opts: []api.Option{api.WithRetryConfig(3, time.Minute, time.Second)}},
		{name: "unknown retry policy", opts: []api.Option{api.WithRetryPolicy(api.RetryPolicy(9))}},
		{name: "negative rate", opts: []api.Option{api.WithRateLimit(-1, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := api.NewConfig("vendor", "https://example.com", tt.opts...).Validate()
			require.ErrorIs(t, err, api.ErrInvalidConfig)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		var cfg *api.Config
		require.ErrorIs(t, cfg.Validate(), api.ErrConfigRequired)
	})
}

func TestRetryPolicy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "transient", api.RetryTransient.String())
	assert.Equal(t, "connection-only", api.RetryConnectionOnly.String())
	assert.Equal(t, "none", api.RetryNone.String())
	assert.Equal(t, "RetryPolicy(7)", api.RetryPolicy(7).String())
}
