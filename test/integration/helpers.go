//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zaptest"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// TestConfig controls how the live vendor tests run.
type TestConfig struct {
	EnvFile string
	Verbose bool
}

// LoadTestConfig loads credentials from INTEGRATION_ENV_FILE (default
// ".env") into the environment, leaving variables that are already set.
func LoadTestConfig(t *testing.T) *TestConfig {
	t.Helper()

	config := &TestConfig{
		EnvFile: os.Getenv("INTEGRATION_ENV_FILE"),
		Verbose: os.Getenv("INTEGRATION_VERBOSE") == "true",
	}

	if config.EnvFile == "" {
		config.EnvFile = ".env"
	}

	_ = godotenv.Load(config.EnvFile)

	return config
}

// SkipUnlessSet skips the test when any of the named variables is empty.
func SkipUnlessSet(t *testing.T, names ...string) {
	t.Helper()

	for _, name := range names {
		if os.Getenv(name) == "" {
			t.Skipf("%s not set, skipping integration test", name)
		}
	}
}

// Options returns client options that log through the test.
func (config *TestConfig) Options(t *testing.T) []api.Option {
	t.Helper()

	return []api.Option{
		api.WithLogger(api.NewZapLogger(zaptest.NewLogger(t))),
		api.WithDebug(config.Verbose),
	}
}
