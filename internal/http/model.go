package http

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultUserAgent = "Unknown User-Agent"

	ContentTypeText   = "text/plain"
	ContentTypeBinary = "application/octet-stream"
)

// Field is a single header line, kept in the order it appeared on the wire.
type Field struct {
	Name  string
	Value string
}

type Request struct {
	Method string
	Path   string
	Proto  string // may be empty, informational only
	Header []Field
	Body   []byte
}

// lookup returns the value of the first header called name. names are
// compared case sensitively.
func (r *Request) lookup(name string) (string, bool) {
	for _, f := range r.Header {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// UserAgent returns the value of the User-Agent header, or
// [DefaultUserAgent] if the request carries none.
func (r *Request) UserAgent() string {
	if v, ok := r.lookup("User-Agent"); ok {
		return v
	}
	return DefaultUserAgent
}

// ContentLength never fails: a missing or malformed Content-Length is 0, a
// value too large for an int is clamped to [math.MaxInt].
func (r *Request) ContentLength() int {
	v, ok := r.lookup("Content-Length")
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, strconv.IntSize-1)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return int(n)
}

// Response is built fresh by a handler and consumed right away by the
// writer. Content-Type and Content-Length are emitted when ContentType is set
// or Body is not empty, Content-Length always being len(Body).
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r *Response) Status() string {
	return strconv.Itoa(r.StatusCode) + " " + StatusText(r.StatusCode)
}

// NewResponse returns a response with no body and no body headers.
func NewResponse(code int) *Response {
	return &Response{StatusCode: code}
}

func NewContentResponse(code int, contentType string, body []byte) *Response {
	return &Response{StatusCode: code, ContentType: contentType, Body: body}
}
