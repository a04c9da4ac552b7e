package rippling

import (
	"context"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

var (
	listWorkers = api.Get("rippling.workers.list", "workers")
	getWorker   = api.Get("rippling.workers.get", "workers/{id}")
)

type Workers struct {
	client *client.Client
}

// List returns the first page of workers.
func (w *Workers) List(ctx context.Context, opts ListWorkersOptions) (*api.Page[Worker], error) {
	return client.Fetch[api.Page[Worker]](ctx, w.client, listCall(opts))
}

// ListAll walks every page of workers.
func (w *Workers) ListAll(ctx context.Context, opts ListWorkersOptions) ([]Worker, error) {
	return client.ListAll[Worker](ctx, w.client, listCall(opts))
}

func listCall(opts ListWorkersOptions) client.Call {
	return client.Call{
		Endpoint: listWorkers,
		Query: api.NewQuery().
			OptString("expand", opts.Expand).
			OptString("filter", opts.Filter).
			OptString("order_by", opts.OrderBy),
	}
}

// Get returns one worker. expand names related objects to inline, for
// example "user,department".
func (w *Workers) Get(ctx context.Context, id string, expand *string) (*Worker, error) {
	return client.Fetch[Worker](ctx, w.client, client.Call{
		Endpoint: getWorker,
		Params:   api.PathParams{"id": id},
		Query:    api.NewQuery().OptString("expand", expand),
	})
}
