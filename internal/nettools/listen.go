package nettools

import (
	"context"
	"net"
	"syscall"

	"golang.org/x/net/netutil"
)

type Options struct {
	// MaxConns > 0 caps the number of simultaneously accepted connections,
	// further clients wait in the kernel backlog.
	MaxConns int
	// ReusePort sets SO_REUSEPORT so that several processes can serve the
	// same address. only honoured on darwin and linux.
	ReusePort bool
}

func (o Options) control(network, address string, c syscall.RawConn) error {
	if !o.ReusePort {
		return nil
	}
	var serr error
	// the action does not run when Control fails
	if err := c.Control(func(fd uintptr) {
		serr = setReusePort(fd)
	}); err != nil {
		return err
	}
	return serr
}

// Listen binds a TCP listener on addr.
func Listen(ctx context.Context, addr string, opts Options) (net.Listener, error) {
	lc := net.ListenConfig{Control: opts.control}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	if opts.MaxConns > 0 {
		ln = netutil.LimitListener(ln, opts.MaxConns)
	}
	return ln, nil
}
