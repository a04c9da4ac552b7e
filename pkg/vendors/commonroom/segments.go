package commonroom

import (
	"context"

	"github.com/fivetwenty-io/saasapi/internal/client"
	"github.com/fivetwenty-io/saasapi/pkg/api"
)

var (
	listSegments        = api.Get("commonroom.segments.list", "segments")
	listSegmentStatus   = api.Get("commonroom.segments.statuses", "segments/{id}/status")
	addMembersToSegment = api.Post("commonroom.segments.add_members", "segments/{id}").Empty()
	addNoteToSegment    = api.Post("commonroom.segments.add_note", "segments/note").Empty()
)

// Segments groups the segment endpoints.
type Segments struct {
	client *client.Client
}

// List returns every segment in the community.
func (s *Segments) List(ctx context.Context) ([]Segment, error) {
	result, err := client.Fetch[[]Segment](ctx, s.client, client.Call{Endpoint: listSegments})
	if err != nil {
		return nil, err
	}

	return *result, nil
}

// Statuses returns the statuses available on a segment.
func (s *Segments) Statuses(ctx context.Context, segmentID string) ([]SegmentStatus, error) {
	result, err := client.Fetch[[]SegmentStatus](ctx, s.client, client.Call{
		Endpoint: listSegmentStatus,
		Params:   api.PathParams{"id": segmentID},
	})
	if err != nil {
		return nil, err
	}

	return *result, nil
}

// AddMembers adds existing members to a segment.
func (s *Segments) AddMembers(ctx context.Context, segmentID string, request *AddMembersToSegmentRequest) error {
	return client.Exec(ctx, s.client, client.Call{
		Endpoint: addMembersToSegment,
		Params:   api.PathParams{"id": segmentID},
		Body:     request,
	})
}

// AddNote attaches a note to a segment.
func (s *Segments) AddNote(ctx context.Context, request *AddNoteToSegmentRequest) error {
	return client.Exec(ctx, s.client, client.Call{
		Endpoint: addNoteToSegment,
		Body:     request,
	})
}
