package commonroom

import (
	"context"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

var apiTokenStatus = api.Get("commonroom.beta.api_token_status", "api-token-status")

type Beta struct {
	client *client.Client
}

// APITokenStatus reports which community the current token belongs to.
func (b *Beta) APITokenStatus(ctx context.Context) (*APIToken, error) {
	return client.Fetch[APIToken](ctx, b.client, client.Call{Endpoint: apiTokenStatus})
}
