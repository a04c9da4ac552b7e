package api

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query collects query parameters for a request. Optional setters take
// pointers and skip nil values, so unset parameters never reach the wire.
type Query struct {
	values url.Values
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Set adds a required parameter.
func (q *Query) Set(key, value string) *Query {
	q.values.Set(key, value)

	return q
}

// Add appends a value for a repeatable parameter.
func (q *Query) Add(key, value string) *Query {
	q.values.Add(key, value)

	return q
}

// OptString sets key when value is non-nil.
func (q *Query) OptString(key string, value *string) *Query {
	if value != nil {
		q.values.Set(key, *value)
	}

	return q
}

// OptInt sets key when value is non-nil.
func (q *Query) OptInt(key string, value *int) *Query {
	if value != nil {
		q.values.Set(key, strconv.Itoa(*value))
	}

	return q
}

// OptBool sets key when value is non-nil.
func (q *Query) OptBool(key string, value *bool) *Query {
	if value != nil {
		q.values.Set(key, strconv.FormatBool(*value))
	}

	return q
}

// OptTime sets key in RFC 3339 form when value is non-nil.
func (q *Query) OptTime(key string, value *time.Time) *Query {
	if value != nil {
		q.values.Set(key, value.Format(time.RFC3339))
	}

	return q
}

// List sets key to the comma-joined values when the slice is non-empty.
func (q *Query) List(key string, values []string) *Query {
	if len(values) > 0 {
		q.values.Set(key, strings.Join(values, ","))
	}

	return q
}

// Values returns the collected parameters. A nil query yields nil.
func (q *Query) Values() url.Values {
	if q == nil || len(q.values) == 0 {
		return nil
	}

	return q.values
}

// Encode returns the URL-encoded form of the query.
func (q *Query) Encode() string {
	return q.Values().Encode()
}

// Ptr returns a pointer to v, for filling optional parameters inline.
func Ptr[T any](v T) *T {
	return &v
}
