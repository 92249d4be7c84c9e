package course

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"coursedeck/internal/jsonutil"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	tracerName   = "coursedeck/course"
	maxErrorBody = 200
)

// Client talks to the course REST service.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	tracer  trace.Tracer
	timeout time.Duration // 0 = no timeout
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying fasthttp client (tests dial an in-memory listener).
func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracerProvider sets the provider used for request spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client for the service rooted at baseURL (e.g. http://localhost:5000/api).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{Name: "coursedeck"},
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the full course collection in server order.
func (c *Client) List(ctx context.Context) ([]Course, error) {
	ctx, span := c.tracer.Start(ctx, "course.list")
	defer span.End()

	code, body, err := c.do(ctx, fasthttp.MethodGet, c.baseURL+"/courses", "")
	span.SetAttributes(attribute.Int("http.status_code", code))
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("list courses: %w", err))
	}
	if code < 200 || code > 299 {
		return nil, failSpan(span, &StatusError{Op: "list", Code: code, Body: errorBody(body)})
	}
	courses, err := jsonutil.DecodeArray[Course](body, "decode courses")
	if err != nil {
		return nil, failSpan(span, err)
	}
	span.SetAttributes(attribute.Int("course.count", len(courses)))
	return courses, nil
}

// Delete removes the course with id, authenticating with the bearer token.
// A 401 answer yields an error matching ErrUnauthorized.
func (c *Client) Delete(ctx context.Context, id, token string) error {
	ctx, span := c.tracer.Start(ctx, "course.delete",
		trace.WithAttributes(attribute.String("course.id", id)))
	defer span.End()

	endpoint := c.baseURL + "/courses/" + url.PathEscape(id)
	code, body, err := c.do(ctx, fasthttp.MethodDelete, endpoint, token)
	span.SetAttributes(attribute.Int("http.status_code", code))
	if err != nil {
		return failSpan(span, fmt.Errorf("delete course %s: %w", id, err))
	}
	if code < 200 || code > 299 {
		return failSpan(span, &StatusError{Op: "delete", Code: code, Body: errorBody(body)})
	}
	return nil
}

// do performs one request and returns the status code and decoded body.
func (c *Client) do(ctx context.Context, method, uri, token string) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	var err error
	deadline, hasDeadline := ctx.Deadline()
	switch {
	case hasDeadline:
		err = c.http.DoDeadline(req, resp, deadline)
	case c.timeout > 0:
		err = c.http.DoTimeout(req, resp, c.timeout)
	default:
		err = c.http.Do(req, resp)
	}
	if err != nil {
		return 0, nil, err
	}

	var body []byte
	if bytes.EqualFold(resp.Header.Peek("Content-Encoding"), []byte("gzip")) {
		body, err = resp.BodyGunzip()
		if err != nil {
			return resp.StatusCode(), nil, fmt.Errorf("gunzip body: %w", err)
		}
	} else {
		// resp is released on return; keep our own copy.
		body = append([]byte(nil), resp.Body()...)
	}
	return resp.StatusCode(), body, nil
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func errorBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody]
	}
	return s
}
