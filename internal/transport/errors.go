package transport

type wrapErr struct {
	msg string
	error
}

func (e wrapErr) Error() string {
	if e.error == nil {
		return e.msg
	}
	return e.msg + ": " + e.error.Error()
}

func (e wrapErr) Wrap(err error) error {
	return wrapErr{e.msg, err}
}

func (e wrapErr) Unwrap() error {
	return e.error
}

func (e wrapErr) Is(err error) bool {
	if err, ok := err.(wrapErr); ok {
		return e.msg == err.msg
	}
	return false
}

var (
	// ErrConnClosed means the peer closed the connection before sending
	// anything, there is nobody left to respond to.
	ErrConnClosed       = wrapErr{"connection closed by peer", nil}
	ErrRead             = wrapErr{"read request", nil}
	ErrWrite            = wrapErr{"write response", nil}
	ErrMalformedRequest = wrapErr{"malformed request line", nil}
	ErrInvalidHeader    = wrapErr{"invalid response header value", nil}
)
