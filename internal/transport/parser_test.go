package transport_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/frankli0324/go-httpd/internal/http"
	"github.com/frankli0324/go-httpd/internal/transport"
)

type tCase struct {
	data []byte
	req  *http.Request
}

var reqShouldBe = map[string]tCase{
	"BasicRequest": {
		data: []byte("GET / HTTP/1.1\r\nHost: localhost:4221\r\n\r\n"),
		req: &http.Request{
			Method: "GET", Path: "/", Proto: "HTTP/1.1",
			Header: []http.Field{{Name: "Host", Value: "localhost:4221"}},
			Body:   []byte{},
		},
	},
	"HeadersKeepOrder": {
		data: []byte("GET /user-agent HTTP/1.1\r\nUser-Agent: foo/1.2\r\nAccept: */*\r\n\r\n"),
		req: &http.Request{
			Method: "GET", Path: "/user-agent", Proto: "HTTP/1.1",
			Header: []http.Field{
				{Name: "User-Agent", Value: "foo/1.2"},
				{Name: "Accept", Value: "*/*"},
			},
			Body: []byte{},
		},
	},
	"OnlyOneSpaceDropped": {
		data: []byte("GET / HTTP/1.1\r\nX-Padded:   v\r\nX-Tight:v\r\n\r\n"),
		req: &http.Request{
			Method: "GET", Path: "/", Proto: "HTTP/1.1",
			Header: []http.Field{
				{Name: "X-Padded", Value: "  v"},
				{Name: "X-Tight", Value: "v"},
			},
			Body: []byte{},
		},
	},
	"BodyAfterEmptyLine": {
		data: []byte("POST /files/a HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello"),
		req: &http.Request{
			Method: "POST", Path: "/files/a", Proto: "HTTP/1.1",
			Header: []http.Field{{Name: "Content-Length", Value: "5"}},
			Body:   []byte("hello"),
		},
	},
	"BodyLinesAreNotHeaders": {
		data: []byte("POST /files/a HTTP/1.1\r\n\r\nUser-Agent: in body"),
		req: &http.Request{
			Method: "POST", Path: "/files/a", Proto: "HTTP/1.1",
			Body: []byte("User-Agent: in body"),
		},
	},
	"NoProto": {
		data: []byte("GET /echo/abc\r\n\r\n"),
		req:  &http.Request{Method: "GET", Path: "/echo/abc", Body: []byte{}},
	},
	"ExtraTokensIgnored": {
		data: []byte("GET  /  HTTP/1.1 trailing junk\r\n\r\n"),
		req:  &http.Request{Method: "GET", Path: "/", Proto: "HTTP/1.1", Body: []byte{}},
	},
	"BareLineFeeds": {
		data: []byte("GET /echo/x HTTP/1.1\nUser-Agent: lf\n\n"),
		req: &http.Request{
			Method: "GET", Path: "/echo/x", Proto: "HTTP/1.1",
			Header: []http.Field{{Name: "User-Agent", Value: "lf"}},
			// no CRLFCRLF, the body starts at the beginning of the buffer
			Body: []byte("GET /echo/x HTTP/1.1\nUser-Agent: lf\n\n"),
		},
	},
	"NoEmptyLine": {
		data: []byte("GET /echo/x HTTP/1.1\r\nHost: h"),
		req: &http.Request{
			Method: "GET", Path: "/echo/x", Proto: "HTTP/1.1",
			Header: []http.Field{{Name: "Host", Value: "h"}},
			Body:   []byte("GET /echo/x HTTP/1.1\r\nHost: h"),
		},
	},
	"ColonlessLinesSkipped": {
		data: []byte("GET / HTTP/1.1\r\ngarbage\r\nHost: h\r\n\r\n"),
		req: &http.Request{
			Method: "GET", Path: "/", Proto: "HTTP/1.1",
			Header: []http.Field{{Name: "Host", Value: "h"}},
			Body:   []byte{},
		},
	},
}

func TestParse(t *testing.T) {
	for name, cas := range reqShouldBe {
		tCase := cas
		t.Run(name, func(t *testing.T) {
			req, err := transport.Parse(tCase.data)
			if err != nil {
				t.Fatal(err)
			}
			expectRequest(t, tCase.req, req)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for name, data := range map[string]string{
		"Empty":       "",
		"Blank":       "   \r\n\r\n",
		"OneToken":    "GET\r\nHost: h\r\n\r\n",
		"OnlyNewline": "\r\n",
	} {
		in := data
		t.Run(name, func(t *testing.T) {
			req, err := transport.Parse([]byte(in))
			if !errors.Is(err, transport.ErrMalformedRequest) {
				t.Errorf("got %v, want ErrMalformedRequest", err)
			}
			if req != nil {
				t.Errorf("got request %+v on malformed input", req)
			}
		})
	}
}

func TestParseBinaryBody(t *testing.T) {
	payload := []byte{0x00, 0xff, 0xfe, '\r', '\n', 0x80, 0xc3, 0x28, 'z'}
	data := append([]byte("POST /files/bin HTTP/1.1\r\nContent-Length: 9\r\n\r\n"), payload...)

	req, err := transport.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(req.Body, payload) {
		t.Errorf("body got %v, want %v", req.Body, payload)
	}
	if req.ContentLength() != len(payload) {
		t.Errorf("content length got %d", req.ContentLength())
	}
}

func TestParseLossyHeader(t *testing.T) {
	data := []byte("GET /user-agent HTTP/1.1\r\nUser-Agent: a\xffb\r\n\r\n")
	req, err := transport.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if ua := req.UserAgent(); ua != "a\uFFFDb" {
		t.Errorf("got %q", ua)
	}
}

func expectRequest(t *testing.T, want, got *http.Request) {
	t.Helper()
	if got.Method != want.Method || got.Path != want.Path || got.Proto != want.Proto {
		t.Errorf("request line got %q %q %q, want %q %q %q",
			got.Method, got.Path, got.Proto, want.Method, want.Path, want.Proto)
	}
	if len(got.Header) != len(want.Header) {
		t.Fatalf("headers got %v, want %v", got.Header, want.Header)
	}
	for i := range want.Header {
		if got.Header[i] != want.Header[i] {
			t.Errorf("header %d got %v, want %v", i, got.Header[i], want.Header[i])
		}
	}
	if !bytes.Equal(got.Body, want.Body) {
		t.Errorf("body got %q, want %q", got.Body, want.Body)
	}
}
