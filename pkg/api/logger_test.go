package api_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	logger := api.NewZapLogger(zap.New(core))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET"})
	logger.Info("info", nil)
	logger.Warn("warn", nil)
	logger.Error("error", map[string]interface{}{"status": 500})

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, int64(500), entries[3].ContextMap()["status"])
}

func TestHCLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := api.NewHCLogger(hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Debug,
	}))

	logger.Warn("retrying", map[string]interface{}{"attempt": 2})

	assert.Contains(t, buf.String(), "retrying")
	assert.Contains(t, buf.String(), "attempt=2")
}

func TestNilAdaptersAreSafe(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		api.NewZapLogger(nil).Info("x", nil)
		api.NewHCLogger(nil).Info("x", nil)
		api.NopLogger{}.Error("x", nil)
	})
}
