package commonroom

import (
	"context"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

var (
	createActivity    = api.Post("commonroom.activities.create", "activities").Empty().Unexpected()
	listActivityTypes = api.Get("commonroom.activities.types", "activityTypes").Unexpected()
)

// Activities groups the activity endpoints. Failures surface as
// *api.UnexpectedResponseError.
type Activities struct {
	client *client.Client
}

// Create records an activity against existing members.
func (a *Activities) Create(ctx context.Context, request *CreateActivityRequest) error {
	return client.Exec(ctx, a.client, client.Call{
		Endpoint: createActivity,
		Body:     request,
	})
}

// Types lists the activity types the community accepts.
func (a *Activities) Types(ctx context.Context) ([]ActivityType, error) {
	result, err := client.Fetch[[]ActivityType](ctx, a.client, client.Call{Endpoint: listActivityTypes})
	if err != nil {
		return nil, err
	}

	return *result, nil
}
