package commonroom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/saasapi/pkg/api"
	"github.com/fivetwenty-io/saasapi/pkg/vendors/commonroom"
)

//nolint:paralleltest // t.Setenv cannot be combined with t.Parallel
func TestNewFromEnv(t *testing.T) {
	t.Run("reads the token", func(t *testing.T) {
		t.Setenv(commonroom.EnvAPIToken, "from-env")

		c, err := commonroom.NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, commonroom.DefaultBaseURL, c.BaseURL())

		c.SetBaseURL("https://staging.commonroom.io/community/v1/")
		assert.Equal(t, "https://staging.commonroom.io/community/v1", c.BaseURL())
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(commonroom.EnvAPIToken, "")

		_, err := commonroom.NewFromEnv()
		require.ErrorIs(t, err, api.ErrMissingEnv)
		assert.Contains(t, err.Error(), commonroom.EnvAPIToken)
	})
}
