package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/internal/client/clienttest"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

type widgetCreate struct {
	Name string `json:"name"`
}

type widgetUpdate struct {
	Name *string `json:"name,omitempty"`
}

func widgets(core *client.Client) *client.Resource[widget, widgetCreate, widgetUpdate] {
	return client.NewResource[widget, widgetCreate, widgetUpdate](core, "widgets", "/widgets/")
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResource(t *testing.T) {
	t.Parallel()

	clienttest.RunOperations(t, []clienttest.Operation{
		{
			Name:           "Get",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/widgets/w1",
			ExpectedQuery:  "expand=owner",
			Response:       widget{ID: "w1", Name: "sprocket"},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return widgets(newCore(t, baseURL)).Get(ctx, "w1", api.NewQuery().Set("expand", "owner"))
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()
				assert.Equal(t, "sprocket", result.(*widget).Name)
			},
		},
		{
			Name:           "List",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/widgets",
			Response:       api.Page[widget]{Results: []widget{{ID: "w1"}, {ID: "w2"}}},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return widgets(newCore(t, baseURL)).List(ctx, nil)
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				page := result.(*api.Page[widget])
				assert.Len(t, page.Results, 2)
				assert.False(t, page.HasMore())
			},
		},
		{
			Name:           "Create",
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/widgets",
			ExpectedBody:   `{"name":"gear"}`,
			StatusCode:     http.StatusCreated,
			Response:       widget{ID: "w3", Name: "gear"},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return widgets(newCore(t, baseURL)).Create(ctx, &widgetCreate{Name: "gear"})
			},
		},
		{
			Name:           "Update",
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/widgets/w3",
			ExpectedBody:   `{"name":"cog"}`,
			Response:       widget{ID: "w3", Name: "cog"},
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return widgets(newCore(t, baseURL)).Update(ctx, "w3", &widgetUpdate{Name: api.Ptr("cog")})
			},
		},
		{
			Name:           "Delete",
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/widgets/w3",
			StatusCode:     http.StatusNoContent,
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return nil, widgets(newCore(t, baseURL)).Delete(ctx, "w3")
			},
		},
		{
			Name:       "Get not found",
			StatusCode: http.StatusNotFound,
			Response:   `{"message":"no such widget"}`,
			WantErr:    true,
			ErrMessage: "widgets.get: server error: 404",
			Call: func(t *testing.T, ctx context.Context, baseURL string) (interface{}, error) {
				return widgets(newCore(t, baseURL)).Get(ctx, "missing", nil)
			},
		},
	})
}

func TestResource_ListAll(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)
		writer.Header().Set("Content-Type", "application/json")

		page := api.Page[widget]{}

		switch request.URL.Query().Get("cursor") {
		case "":
			assert.Equal(t, "10", request.URL.Query().Get("limit"))

			page.Results = []widget{{ID: "w1"}, {ID: "w2"}}
			page.NextLink = server.URL + "/widgets?cursor=b&limit=10"
		case "b":
			page.Results = []widget{{ID: "w3"}}
		default:
			t.Errorf("unexpected cursor %q", request.URL.Query().Get("cursor"))
		}

		_ = json.NewEncoder(writer).Encode(page)
	}))
	defer server.Close()

	all, err := widgets(newCore(t, server.URL)).ListAll(context.Background(), api.NewQuery().Set("limit", "10"))
	require.NoError(t, err)

	ids := make([]string, 0, len(all))
	for _, item := range all {
		ids = append(ids, item.ID)
	}

	assert.Equal(t, []string{"w1", "w2", "w3"}, ids)
	assert.Equal(t, int32(2), requests.Load())
}

func TestListAll_StopsOnRepeatedNextLink(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		n := requests.Add(1)
		if n > 5 {
			t.Errorf("paging did not stop, request %d", n)
		}

		writer.Header().Set("Content-Type", "application/json")

		page := api.Page[widget]{
			Results:  []widget{{ID: request.URL.Query().Get("cursor")}},
			NextLink: server.URL + "/widgets?cursor=loop",
		}

		_ = json.NewEncoder(writer).Encode(page)
	}))
	defer server.Close()

	all, err := client.ListAll[widget](context.Background(), newCore(t, server.URL), client.Call{
		Endpoint: api.Get("widgets.list", "widgets"),
	})
	require.NoError(t, err)

	assert.Len(t, all, 2)
	assert.Equal(t, int32(2), requests.Load())
}
