package http

import (
	"context"
	"strconv"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/ext"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/fivetwenty-io/saasapi/internal/constants"
)

// Span tags specific to vendor calls.
const (
	TagVendor   = "saas.vendor"
	TagAttempts = "saas.attempts"
	TagOutcome  = "saas.outcome"
	TagEndpoint = "saas.endpoint"
)

// callSpan wraps the span of one pipeline call. A nil span is a no-op.
type callSpan struct {
	span ddtrace.Span
}

func (c *Client) startSpan(ctx context.Context, req *Request, target string) (*callSpan, context.Context) {
	if !c.tracing {
		return &callSpan{}, ctx
	}

	resource := req.Method + " " + req.Path
	if req.Name != "" {
		resource = req.Name
	}

	span, ctx := tracer.StartSpanFromContext(ctx, constants.SpanOperationName,
		tracer.SpanType(ext.SpanTypeHTTP),
		tracer.ResourceName(resource),
		tracer.Tag(ext.SpanKind, ext.SpanKindClient),
		tracer.Tag(ext.HTTPMethod, req.Method),
		tracer.Tag(ext.HTTPURL, redactURL(target)),
		tracer.Tag(TagVendor, c.vendor),
	)

	if req.Name != "" {
		span.SetTag(TagEndpoint, req.Name)
	}

	return &callSpan{span: span}, ctx
}

func (s *callSpan) finish(status, attempts int, outcome string, err error) {
	if s.span == nil {
		return
	}

	if status > 0 {
		s.span.SetTag(ext.HTTPCode, strconv.Itoa(status))
	}

	s.span.SetTag(TagAttempts, attempts)
	s.span.SetTag(TagOutcome, outcome)
	s.span.Finish(tracer.WithError(err))
}
