package twilio

import (
	"context"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

var (
	listMessages  = api.Get("twilio.messages.list", "2010-04-01/Accounts/{account_sid}/Messages.json")
	fetchMessage  = api.Get("twilio.messages.fetch", "2010-04-01/Accounts/{account_sid}/Messages/{sid}.json")
	deleteMessage = api.Delete("twilio.messages.delete", "2010-04-01/Accounts/{account_sid}/Messages/{sid}.json").Empty()
)

// Messages groups the message endpoints of one account.
type Messages struct {
	client     *client.Client
	accountSID string
}

// List returns one page of messages. The page's NextPageURI can be passed
// to ListPage to continue.
func (m *Messages) List(ctx context.Context, opts ListMessagesOptions) (*MessagePage, error) {
	query := api.NewQuery().
		OptString("To", opts.To).
		OptString("From", opts.From).
		OptInt("PageSize", opts.PageSize)

	return client.Fetch[MessagePage](ctx, m.client, client.Call{
		Endpoint: listMessages,
		Params:   api.PathParams{"account_sid": m.accountSID},
		Query:    query,
	})
}

// ListPage fetches the page at a next_page_uri returned by List.
func (m *Messages) ListPage(ctx context.Context, pageURI string) (*MessagePage, error) {
	next := listMessages
	next.Path = pageURI

	return client.Fetch[MessagePage](ctx, m.client, client.Call{Endpoint: next})
}

// Fetch returns a single message.
func (m *Messages) Fetch(ctx context.Context, sid string) (*Message, error) {
	return client.Fetch[Message](ctx, m.client, client.Call{
		Endpoint: fetchMessage,
		Params:   api.PathParams{"account_sid": m.accountSID, "sid": sid},
	})
}

// Delete removes a message from the account's logs.
func (m *Messages) Delete(ctx context.Context, sid string) error {
	return client.Exec(ctx, m.client, client.Call{
		Endpoint: deleteMessage,
		Params:   api.PathParams{"account_sid": m.accountSID, "sid": sid},
	})
}
