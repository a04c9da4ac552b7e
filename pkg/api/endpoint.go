package api

import (
	"fmt"
	"net/http"
	"strings"
)

// ResponseKind describes what a successful response carries.
type ResponseKind int

const (
	// ResponseJSON bodies are decoded into the declared result type.
	ResponseJSON ResponseKind = iota
	// ResponseText bodies are returned verbatim as a string.
	ResponseText
	// ResponseEmpty bodies are ignored; success is reported without parsing.
	ResponseEmpty
)

// ErrorMode selects how a non-2xx response is surfaced.
type ErrorMode int

const (
	// ErrorModeServer captures status and raw body in a *ServerError.
	ErrorModeServer ErrorMode = iota
	// ErrorModeUnexpected keeps only the response handle in an
	// *UnexpectedResponseError.
	ErrorModeUnexpected
)

// Endpoint describes one vendor REST operation. Vendor catalogs are tables of
// these.
type Endpoint struct {
	Name      string
	Method    string
	Path      string
	Response  ResponseKind
	ErrorMode ErrorMode
}

// PathParams maps placeholder names in an endpoint path to caller values.
type PathParams map[string]string

// Get builds a GET endpoint.
func Get(name, path string) Endpoint {
	return Endpoint{Name: name, Method: http.MethodGet, Path: path}
}

// Post builds a POST endpoint.
func Post(name, path string) Endpoint {
	return Endpoint{Name: name, Method: http.MethodPost, Path: path}
}

// Put builds a PUT endpoint.
func Put(name, path string) Endpoint {
	return Endpoint{Name: name, Method: http.MethodPut, Path: path}
}

// Patch builds a PATCH endpoint.
func Patch(name, path string) Endpoint {
	return Endpoint{Name: name, Method: http.MethodPatch, Path: path}
}

// Delete builds a DELETE endpoint.
func Delete(name, path string) Endpoint {
	return Endpoint{Name: name, Method: http.MethodDelete, Path: path}
}

// Empty marks the endpoint as returning no body on success.
func (e Endpoint) Empty() Endpoint {
	e.Response = ResponseEmpty

	return e
}

// Text marks the endpoint as returning a plain-text body.
func (e Endpoint) Text() Endpoint {
	e.Response = ResponseText

	return e
}

// Unexpected switches the endpoint to ErrorModeUnexpected.
func (e Endpoint) Unexpected() Endpoint {
	e.ErrorMode = ErrorModeUnexpected

	return e
}

// Expand substitutes every {name} placeholder in the path. Values are
// inserted as given; escaping is left to the transport.
func (e Endpoint) Expand(params PathParams) (string, error) {
	var builder strings.Builder

	rest := e.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			break
		}

		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			break
		}

		name := rest[start+1 : start+end]

		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w %q in %s", ErrMissingPathParam, name, e.Path)
		}

		builder.WriteString(rest[:start])
		builder.WriteString(value)
		rest = rest[start+end+1:]
	}

	builder.WriteString(rest)

	return builder.String(), nil
}

// Placeholders lists the {name} segments of the path in order.
func (e Endpoint) Placeholders() []string {
	var names []string

	rest := e.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}

		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}

		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}
