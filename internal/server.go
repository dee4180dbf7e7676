package internal

import (
	"context"
	"errors"
	"net"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/frankli0324/go-httpd/internal/fs"
	"github.com/frankli0324/go-httpd/internal/handlers"
	"github.com/frankli0324/go-httpd/internal/http"
	"github.com/frankli0324/go-httpd/internal/nettools"
	"github.com/frankli0324/go-httpd/internal/router"
	"github.com/frankli0324/go-httpd/internal/transport"
)

type Handler = func(req *http.Request) *http.Response
type Middleware func(next Handler) Handler

type Option func(*Server)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithFS replaces the serving directory with another file collaborator.
func WithFS(files fs.FS) Option {
	return func(s *Server) { s.files = files }
}

type Server struct {
	cfg Config
	log zerolog.Logger

	files     fs.FS
	handlers  *handlers.Handlers
	router    *router.Router
	transport *transport.HTTP1

	middlewares []Middleware
	handler     Handler
	rejected    Handler // answers malformed requests
}

func NewServer(cfg Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:       cfg,
		log:       zerolog.New(os.Stderr).With().Timestamp().Logger(),
		transport: &transport.HTTP1{BufferSize: cfg.BufferSize},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.files == nil {
		s.files = fs.Dir(cfg.Directory)
	}
	s.handlers = handlers.New(s.files, s.log)
	s.router = router.New(s.handlers)
	s.Use(logRequests(s.log))
	return s, nil
}

func (s *Server) Config() Config {
	return s.cfg
}

// Use appends mw to the end of the chain. The last "Use"d mw executes first.
// Malformed requests go through the chain too, as a Request with an empty
// Method and Path. It must not be called once the server is serving.
func (s *Server) Use(mws ...Middleware) {
	s.middlewares = append(s.middlewares, mws...)
	s.handler = s.chain(s.router.Handle)
	s.rejected = s.chain(func(req *http.Request) *http.Response {
		return s.handlers.BadRequest(req, "")
	})
}

func (s *Server) chain(next Handler) Handler {
	for i := 0; i < len(s.middlewares); i++ {
		next = s.middlewares[i](next)
	}
	return next
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := nettools.Listen(ctx, s.cfg.Addr, nettools.Options{
		MaxConns:  s.cfg.MaxConns,
		ReusePort: s.cfg.ReusePort,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("addr", ln.Addr().String()).Str("directory", s.cfg.Directory).Msg("listening")
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln and runs each on its own goroutine. accept
// errors never stop the loop, only a cancelled ctx or a closed listener do.
// Serve closes ln and waits for running connections before it returns.
// once ctx is cancelled connections still waiting for their request are
// dropped, responses already being written are finished.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		ln.Close()
	}()

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else if delay *= 2; delay > time.Second {
				delay = time.Second
			}
			s.log.Error().Err(err).Dur("retry_in", delay).Msg("accept failed")
			time.Sleep(delay)
			continue
		}
		delay = 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.serveConn(ctx, conn)
		}()
	}
}

// ServeConn runs the whole pipeline for a single connection and closes it.
// nothing that happens here can affect other connections.
func (s *Server) ServeConn(conn net.Conn) {
	s.serveConn(context.Background(), conn)
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	log := s.log.With().Str("remote", conn.RemoteAddr().String()).Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("connection handler panicked")
		}
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("close failed")
		}
	}()
	log.Debug().Msg("accepted connection")

	if s.cfg.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// wakes up a read blocked on an idle peer
			conn.SetReadDeadline(time.Unix(1, 0))
		case <-done:
		}
	}()

	var resp *http.Response
	req, err := s.transport.ReadRequest(conn)
	switch {
	case errors.Is(err, transport.ErrConnClosed):
		log.Debug().Msg("connection closed before request")
		return
	case errors.Is(err, transport.ErrMalformedRequest):
		log.Debug().Msg("malformed request line")
		resp = s.rejected(&http.Request{})
	case err != nil && ctx.Err() != nil:
		log.Debug().Msg("shutting down, request dropped")
		return
	case err != nil:
		log.Error().Err(err).Msg("read failed")
		return
	default:
		resp = s.handler(req)
	}

	if err := s.transport.WriteResponse(conn, resp); err != nil {
		log.Error().Err(err).Msg("write failed")
	}
}

func logRequests(log zerolog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(req *http.Request) *http.Response {
			resp := next(req)
			log.Debug().
				Str("method", req.Method).
				Str("path", req.Path).
				Int("status", resp.StatusCode).
				Int("size", len(resp.Body)).
				Msg("request served")
			return resp
		}
	}
}
