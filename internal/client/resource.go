package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/saasapi/pkg/api"
)

// Resource provides generic CRUD for vendors whose resources share one shape:
// GET/POST on the collection, GET/PATCH/DELETE on collection/{id}. T is the
// resource, C its create request and U its update request.
type Resource[T, C, U any] struct {
	client *Client

	get    api.Endpoint
	list   api.Endpoint
	create api.Endpoint
	update api.Endpoint
	delete api.Endpoint
}

// NewResource creates a resource client for the collection at path. name
// prefixes endpoint names in traces and errors.
func NewResource[T, C, U any](client *Client, name, path string) *Resource[T, C, U] {
	path = strings.Trim(path, "/")
	item := path + "/{id}"

	return &Resource[T, C, U]{
		client: client,
		get:    api.Get(name+".get", item),
		list:   api.Get(name+".list", path),
		create: api.Post(name+".create", path),
		update: api.Patch(name+".update", item),
		delete: api.Delete(name+".delete", item).Empty(),
	}
}

// Get retrieves one resource.
func (r *Resource[T, C, U]) Get(ctx context.Context, id string, query *api.Query) (*T, error) {
	return Fetch[T](ctx, r.client, Call{
		Endpoint: r.get,
		Params:   api.PathParams{"id": id},
		Query:    query,
	})
}

// List retrieves one page of resources.
func (r *Resource[T, C, U]) List(ctx context.Context, query *api.Query) (*api.Page[T], error) {
	return Fetch[api.Page[T]](ctx, r.client, Call{
		Endpoint: r.list,
		Query:    query,
	})
}

// ListAll follows next links until the last page.
func (r *Resource[T, C, U]) ListAll(ctx context.Context, query *api.Query) ([]T, error) {
	return ListAll[T](ctx, r.client, Call{Endpoint: r.list, Query: query})
}

// ListAll fetches first and then every page its next links point to. Paging
// stops at the last page or at a next link already followed, so a server that
// repeats a cursor cannot keep the loop running.
func ListAll[T any](ctx context.Context, c *Client, first Call) ([]T, error) {
	page, err := Fetch[api.Page[T]](ctx, c, first)
	if err != nil {
		return nil, err
	}

	all := page.Results
	followed := map[string]struct{}{}

	for page.HasMore() {
		if _, seen := followed[page.NextLink]; seen {
			break
		}

		followed[page.NextLink] = struct{}{}

		next := first.Endpoint
		next.Path = page.NextLink

		page, err = Fetch[api.Page[T]](ctx, c, Call{Endpoint: next})
		if err != nil {
			return nil, err
		}

		all = append(all, page.Results...)
	}

	return all, nil
}

// Create creates a resource.
func (r *Resource[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	return Fetch[T](ctx, r.client, Call{
		Endpoint: r.create,
		Body:     request,
	})
}

// Update modifies a resource.
func (r *Resource[T, C, U]) Update(ctx context.Context, id string, request *U) (*T, error) {
	return Fetch[T](ctx, r.client, Call{
		Endpoint: r.update,
		Params:   api.PathParams{"id": id},
		Body:     request,
	})
}

// Delete removes a resource.
func (r *Resource[T, C, U]) Delete(ctx context.Context, id string) error {
	return Exec(ctx, r.client, Call{
		Endpoint: r.delete,
		Params:   api.PathParams{"id": id},
	})
}
