package transport

import (
	"bytes"
	"strings"

	"github.com/frankli0324/go-httpd/internal/http"
)

var headerTerminator = []byte("\r\n\r\n")

// Parse splits a raw request buffer into request line, header lines and body.
//
// only the request line is mandatory: it must hold at least a method and a
// target, otherwise [ErrMalformedRequest] is returned and nothing else is
// looked at. header lines are taken best-effort.
//
// the body is located on the raw bytes, right after the first empty line, so
// binary payloads are never touched by the text decoding. a buffer without an
// empty line gets the whole buffer as its body.
func Parse(buf []byte) (*http.Request, error) {
	lines := splitLines(Decode(buf))

	fields := strings.Fields(lines[0])
	if len(fields) < 2 {
		return nil, ErrMalformedRequest
	}
	req := &http.Request{Method: fields[0], Path: fields[1]}
	if len(fields) > 2 {
		req.Proto = fields[2]
	}

	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		if f, ok := parseField(line); ok {
			req.Header = append(req.Header, f)
		}
	}

	body := 0
	if i := bytes.Index(buf, headerTerminator); i >= 0 {
		body = i + len(headerTerminator)
	}
	req.Body = buf[body:]
	return req, nil
}

// splitLines always returns at least one element
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// parseField splits "Name: value" at the first colon, dropping exactly one
// space after it. lines without a colon are not header lines.
func parseField(line string) (http.Field, bool) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return http.Field{}, false
	}
	return http.Field{Name: name, Value: strings.TrimPrefix(value, " ")}, true
}
