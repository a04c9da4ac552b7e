package commonroom

import (
	"context"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

var (
	getMemberByEmail   = api.Get("commonroom.members.get_by_email", "user/{email}").Unexpected()
	anonymizeMember    = api.Delete("commonroom.members.anonymize", "user/{email}").Text().Unexpected()
	getMembersBySocial = api.Get("commonroom.members.get_by_socials", "members").Unexpected()
	addTagsToMember    = api.Post("commonroom.members.add_tags", "members/tags").Empty().Unexpected()
)

// Members groups the community member endpoints. Failures surface as
// *api.UnexpectedResponseError.
type Members struct {
	client *client.Client
}

// GetByEmail returns the members registered under an email address.
func (m *Members) GetByEmail(ctx context.Context, email string) ([]CommunityMember, error) {
	result, err := client.Fetch[[]CommunityMember](ctx, m.client, client.Call{
		Endpoint: getMemberByEmail,
		Params:   api.PathParams{"email": email},
	})
	if err != nil {
		return nil, err
	}

	return *result, nil
}

// Anonymize queues removal of the member's personal data. The API replies
// with a plain-text acknowledgement.
func (m *Members) Anonymize(ctx context.Context, email string) (string, error) {
	return client.FetchText(ctx, m.client, client.Call{
		Endpoint: anonymizeMember,
		Params:   api.PathParams{"email": email},
	})
}

// GetBySocials looks members up by any of their handles.
func (m *Members) GetBySocials(ctx context.Context, filter SocialsFilter) ([]MemberProfile, error) {
	query := api.NewQuery().
		OptString("email", filter.Email).
		OptString("github", filter.GitHub).
		OptString("linkedin", filter.LinkedIn).
		OptString("twitter", filter.Twitter)

	result, err := client.Fetch[[]MemberProfile](ctx, m.client, client.Call{
		Endpoint: getMembersBySocial,
		Query:    query,
	})
	if err != nil {
		return nil, err
	}

	return *result, nil
}

// AddTags tags a member.
func (m *Members) AddTags(ctx context.Context, request *AddTagsToMemberRequest) error {
	return client.Exec(ctx, m.client, client.Call{
		Endpoint: addTagsToMember,
		Body:     request,
	})
}
