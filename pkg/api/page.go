package api

// Page is one page of a cursor-paginated list. NextLink is an absolute URL,
// empty on the last page.
type Page[T any] struct {
	Results  []T    `json:"results"`
	NextLink string `json:"next_link,omitempty"`
}

// HasMore reports whether another page follows.
func (p *Page[T]) HasMore() bool {
	return p != nil && p.NextLink != ""
}
