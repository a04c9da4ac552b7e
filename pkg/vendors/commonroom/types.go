package commonroom

// Segment is a named group of community members.
type Segment struct {
	ID   *float64 `json:"id,omitempty"`
	Name *string  `json:"name,omitempty"`
}

// SegmentStatus is a workflow status members of a segment can hold.
type SegmentStatus struct {
	ID   *float64 `json:"id,omitempty"`
	Name *string  `json:"name,omitempty"`
}

// AddMembersToSegmentRequest identifies the members to add by one social
// handle.
type AddMembersToSegmentRequest struct {
	SocialType string   `json:"socialType"`
	Value      string   `json:"value"`
	StatusID   *float64 `json:"statusId,omitempty"`
}

// AddNoteToSegmentRequest attaches a note to a segment.
type AddNoteToSegmentRequest struct {
	SegmentID *float64 `json:"segmentId,omitempty"`
	Note      *string  `json:"note,omitempty"`
}

// CreateActivityRequest records an activity against members whose socials
// match.
type CreateActivityRequest struct {
	Source       string  `json:"source"`
	SocialType   string  `json:"socialType"`
	Value        string  `json:"value"`
	ActivityType string  `json:"activityType"`
	ActivityBody string  `json:"activityBody"`
	OccurredAt   *string `json:"occurredAt,omitempty"`
	Tags         *string `json:"tags,omitempty"`
}

type ActivityType struct {
	ID          *string `json:"id,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// CommunityMember is the minimal member record returned by email lookups.
type CommunityMember struct {
	ID *int64 `json:"id,omitempty"`
}

type Location struct {
	City    *string `json:"city,omitempty"`
	Region  *string `json:"region,omitempty"`
	Country *string `json:"country,omitempty"`
}

// MemberProfile is a member as returned by a socials lookup.
type MemberProfile struct {
	FullName            *string   `json:"fullName,omitempty"`
	ActivitiesCount     *float64  `json:"activitiesCount,omitempty"`
	Avatar              *string   `json:"avatar,omitempty"`
	Bio                 *string   `json:"bio,omitempty"`
	Organization        *string   `json:"organization,omitempty"`
	Title               *string   `json:"title,omitempty"`
	FirstSeen           *string   `json:"firstSeen,omitempty"`
	LastActive          *string   `json:"lastActive,omitempty"`
	Location            *Location `json:"location,omitempty"`
	MemberTags          []string  `json:"memberTags,omitempty"`
	Segments            []Segment `json:"segments,omitempty"`
	URL                 *string   `json:"url,omitempty"`
	Twitter             *string   `json:"twitter,omitempty"`
	GitHub              *string   `json:"github,omitempty"`
	LinkedIn            *string   `json:"linkedin,omitempty"`
	CommonRoomMemberURL *string   `json:"commonRoomMemberUrl,omitempty"`
}

// SocialsFilter selects members by any of their handles. Nil fields are left
// out of the query.
type SocialsFilter struct {
	Email    *string
	GitHub   *string
	LinkedIn *string
	Twitter  *string
}

type AddTagsToMemberRequest struct {
	SocialType *string `json:"socialType,omitempty"`
	Value      *string `json:"value,omitempty"`
	Tags       *string `json:"tags,omitempty"`
}

// APIToken describes the token the client authenticates with.
type APIToken struct {
	JTI           *string `json:"jti,omitempty"`
	CommunityName *string `json:"communityName,omitempty"`
	CommunityID   *string `json:"communityId,omitempty"`
}
