package rippling_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/saasapi/internal/client/clienttest"
	"github.com/fivetwenty-io/saasapi/pkg/api"
	"github.com/fivetwenty-io/saasapi/pkg/vendors/rippling"
)

func newClient(t *testing.T, baseURL string) *rippling.Client {
	t.Helper()

	c, err := rippling.New("rp-token", clienttest.Options(baseURL)...)
	require.NoError(t, err)

	return c
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRippling(t *testing.T) {
	t.Parallel()

	clienttest.RunOperations(t, []clienttest.Operation{
		{
			Name:            "Workers.List",
			ExpectedMethod:  http.MethodGet,
			ExpectedPath:    "/workers",
			ExpectedQuery:   "expand=user&order_by=created_at",
			ExpectedHeaders: map[string]string{"Authorization": "Bearer rp-token"},
			Response:        `{"results":[{"id":"w1","title":"Engineer","teams_id":["t1"]}],"next_link":"https://rest.ripplingapis.com/workers?cursor=abc"}`,
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return newClient(t, baseURL).Workers().List(ctx, rippling.ListWorkersOptions{
					Expand:  api.Ptr("user"),
					OrderBy: api.Ptr("created_at"),
				})
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				page := result.(*api.Page[rippling.Worker])
				require.Len(t, page.Results, 1)
				assert.Equal(t, []string{"t1"}, page.Results[0].TeamsID)
				assert.True(t, page.HasMore())
			},
		},
		{
			Name:          "Workers.Get",
			ExpectedPath:  "/workers/w1",
			ExpectedQuery: "expand=department",
			Response:      rippling.Worker{ID: "w1", DepartmentID: api.Ptr("d1")},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return newClient(t, baseURL).Workers().Get(ctx, "w1", api.Ptr("department"))
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()
				assert.Equal(t, "d1", *result.(*rippling.Worker).DepartmentID)
			},
		},
		{
			Name:         "Workers.Get without expand",
			ExpectedPath: "/workers/w2",
			Response:     rippling.Worker{ID: "w2"},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return newClient(t, baseURL).Workers().Get(ctx, "w2", nil)
			},
		},
		{
			Name:           "Departments.Create",
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/departments",
			ExpectedBody:   `{"name":"Platform"}`,
			StatusCode:     http.StatusCreated,
			Response:       rippling.Department{ID: "d9", Name: "Platform"},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return newClient(t, baseURL).Departments().Create(ctx, &rippling.CreateDepartmentRequest{Name: "Platform"})
			},
		},
		{
			Name:           "Departments.Update",
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/departments/d9",
			ExpectedBody:   `{"parent_id":"d1"}`,
			Response:       rippling.Department{ID: "d9", ParentID: api.Ptr("d1")},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return newClient(t, baseURL).Departments().Update(ctx, "d9", &rippling.UpdateDepartmentRequest{ParentID: api.Ptr("d1")})
			},
		},
		{
			Name:         "Teams.List",
			ExpectedPath: "/teams",
			Response:     api.Page[rippling.Team]{Results: []rippling.Team{{ID: "t1", Name: "Core"}}},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return newClient(t, baseURL).Teams().List(ctx, nil)
			},
		},
		{
			Name:           "Teams.Delete",
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/teams/t1",
			StatusCode:     http.StatusNoContent,
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return nil, newClient(t, baseURL).Teams().Delete(ctx, "t1")
			},
		},
	})
}

func TestWorkers_ListAll(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		page := api.Page[rippling.Worker]{}

		if request.URL.Query().Get("cursor") == "" {
			assert.Equal(t, "status eq 'ACTIVE'", request.URL.Query().Get("filter"))

			page.Results = []rippling.Worker{{ID: "w1"}}
			page.NextLink = server.URL + "/workers?cursor=2"
		} else {
			page.Results = []rippling.Worker{{ID: "w2"}}
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(page)
	}))
	defer server.Close()

	workers, err := newClient(t, server.URL).Workers().ListAll(context.Background(), rippling.ListWorkersOptions{
		Filter: api.Ptr("status eq 'ACTIVE'"),
	})
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "w2", workers[1].ID)
}

//nolint:paralleltest // t.Setenv cannot be combined with t.Parallel
func TestNewFromEnv(t *testing.T) {
	t.Run("default host", func(t *testing.T) {
		t.Setenv(rippling.EnvAPIToken, "rp-token")
		t.Setenv(rippling.EnvHost, "")

		c, err := rippling.NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, rippling.DefaultBaseURL, c.BaseURL())
	})

	t.Run("host override", func(t *testing.T) {
		t.Setenv(rippling.EnvAPIToken, "rp-token")
		t.Setenv(rippling.EnvHost, "https://rest.sandbox.ripplingapis.com")

		c, err := rippling.NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "https://rest.sandbox.ripplingapis.com", c.BaseURL())
	})

	t.Run("explicit option wins over host", func(t *testing.T) {
		t.Setenv(rippling.EnvAPIToken, "rp-token")
		t.Setenv(rippling.EnvHost, "https://rest.sandbox.ripplingapis.com")

		c, err := rippling.NewFromEnv(api.WithBaseURL("https://proxy.internal.example.com"))
		require.NoError(t, err)
		assert.Equal(t, "https://proxy.internal.example.com", c.BaseURL())
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(rippling.EnvAPIToken, "")

		_, err := rippling.NewFromEnv()
		require.ErrorIs(t, err, api.ErrMissingEnv)
	})
}
