package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/saasapi/internal/config"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

//nolint:paralleltest // t.Setenv cannot be combined with t.Parallel
func TestEnv_Require(t *testing.T) {
	t.Setenv("SAASAPI_TEST_TOKEN", "abc")
	t.Setenv("SAASAPI_TEST_BLANK", "   ")

	env := config.NewEnv()

	value, err := env.Require("SAASAPI_TEST_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	_, err = env.Require("SAASAPI_TEST_BLANK")
	require.ErrorIs(t, err, api.ErrMissingEnv)
	assert.Contains(t, err.Error(), "SAASAPI_TEST_BLANK")

	_, err = env.Require("SAASAPI_TEST_UNSET_VARIABLE")
	require.ErrorIs(t, err, api.ErrMissingEnv)
	assert.Contains(t, err.Error(), "SAASAPI_TEST_UNSET_VARIABLE")
}

//nolint:paralleltest // t.Setenv cannot be combined with t.Parallel
func TestEnv_RequireAll(t *testing.T) {
	t.Setenv("SAASAPI_TEST_ID", "id")
	t.Setenv("SAASAPI_TEST_SECRET", "secret")

	env := config.NewEnv()

	values, err := env.RequireAll("SAASAPI_TEST_ID", "SAASAPI_TEST_SECRET")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"SAASAPI_TEST_ID": "id", "SAASAPI_TEST_SECRET": "secret"}, values)

	_, err = env.RequireAll("SAASAPI_TEST_ID", "SAASAPI_TEST_MISSING_A", "SAASAPI_TEST_MISSING_B")
	require.ErrorIs(t, err, api.ErrMissingEnv)
	assert.Contains(t, err.Error(), "SAASAPI_TEST_MISSING_A, SAASAPI_TEST_MISSING_B")
}

//nolint:paralleltest // t.Setenv cannot be combined with t.Parallel
func TestEnv_Optional(t *testing.T) {
	t.Setenv("SAASAPI_TEST_HOST", "https://override.example.com")

	env := config.NewEnv()

	assert.Equal(t, "https://override.example.com", env.Optional("SAASAPI_TEST_HOST", "https://default"))
	assert.Equal(t, "https://default", env.Optional("SAASAPI_TEST_OTHER_HOST", "https://default"))
}
