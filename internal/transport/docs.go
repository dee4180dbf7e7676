// package transport contains the wire side of the server: reading the raw
// request bytes off a connection, tokenizing them into an [http.Request] and
// serializing an [http.Response] back.
//
// message syntax loosely follows HTTP/1.1 (RFC9112), restricted to what a
// one-request-per-connection server needs:
//
//	no keep-alive, the connection is closed after the response
//	no chunked transfer coding, bodies are length delimited
//	the whole request has to arrive in a single read of BufferSize bytes
//
// header names are compared verbatim, no further validation is done on the
// request side.

package transport
