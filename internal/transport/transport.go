package transport

import (
	"io"

	"github.com/frankli0324/go-httpd/internal/http"
)

// Transport reads one request off a connection and writes one response back.
type Transport interface {
	ReadRequest(r io.Reader) (*http.Request, error)
	WriteResponse(w io.Writer, resp *http.Response) error
}

var _ Transport = (*HTTP1)(nil)

// HTTP1 is the single-shot HTTP/1.1 transport. a zero value reads requests
// of up to [DefaultBufferSize] bytes.
type HTTP1 struct {
	BufferSize int
}

// ReadRequest reads one chunk off r and parses it. besides the [ErrConnClosed]
// and [ErrRead] errors of [HTTP1.ReadChunk] it returns [ErrMalformedRequest]
// for a request line that holds less than two tokens.
func (t *HTTP1) ReadRequest(r io.Reader) (*http.Request, error) {
	buf, err := t.ReadChunk(r)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}
