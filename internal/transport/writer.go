package transport

import (
	"io"
	"strconv"

	"golang.org/x/net/http/httpguts"

	"github.com/frankli0324/go-httpd/internal/http"
)

// WriteResponse serializes resp and hands it to w in a single Write, e.g.:
//
//	HTTP/1.1 200 OK\r\n
//	Content-Type: text/plain\r\n
//	Content-Length: 3\r\n
//	\r\n
//	abc
//
// a body without a content type goes out as [http.ContentTypeBinary]. a
// failed or short write is reported as [ErrWrite] and never retried.
func (t *HTTP1) WriteResponse(w io.Writer, resp *http.Response) error {
	contentType := resp.ContentType
	if contentType == "" && len(resp.Body) > 0 {
		contentType = http.ContentTypeBinary
	}
	if contentType != "" && !httpguts.ValidHeaderFieldValue(contentType) {
		return ErrInvalidHeader.Wrap(quotedValue(contentType))
	}

	msg := make([]byte, 0, 64+len(resp.Body))
	msg = append(msg, "HTTP/1.1 "...)
	msg = append(msg, resp.Status()...)
	msg = append(msg, "\r\n"...)
	if contentType != "" {
		msg = append(msg, "Content-Type: "...)
		msg = append(msg, contentType...)
		msg = append(msg, "\r\nContent-Length: "...)
		msg = strconv.AppendInt(msg, int64(len(resp.Body)), 10)
		msg = append(msg, "\r\n"...)
	}
	msg = append(msg, "\r\n"...)
	msg = append(msg, resp.Body...)

	n, err := w.Write(msg)
	if err == nil && n != len(msg) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return ErrWrite.Wrap(err)
	}
	return nil
}

type quotedValue string

func (s quotedValue) Error() string {
	return strconv.Quote(string(s))
}
