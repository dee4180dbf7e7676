package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpd "github.com/frankli0324/go-httpd"
)

func main() {
	cfg := httpd.DefaultConfig()
	flag.StringVar(&cfg.Directory, "directory", cfg.Directory, "directory served by the /files/ routes")
	flag.StringVar(&cfg.Addr, "listen", cfg.Addr, "address to listen on")
	flag.IntVar(&cfg.BufferSize, "buffer-size", cfg.BufferSize, "size of the single read a request has to fit in")
	flag.IntVar(&cfg.MaxConns, "max-conns", cfg.MaxConns, "maximum number of simultaneous connections, 0 for no limit")
	flag.BoolVar(&cfg.ReusePort, "reuse-port", cfg.ReusePort, "set SO_REUSEPORT on the listening socket")
	flag.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "time a client has to send its request, 0 to wait forever")
	level := flag.String("log-level", "info", "one of trace, debug, info, warn, error")
	pretty := flag.Bool("log-pretty", false, "human readable logs instead of JSON")
	flag.Parse()

	log := newLogger(*level, *pretty)

	srv, err := httpd.NewServer(cfg, httpd.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// a second signal kills the process
		<-ctx.Done()
		stop()
	}()
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("bye")
}

func newLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
