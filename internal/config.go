package internal

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/frankli0324/go-httpd/internal/transport"
)

const DefaultAddr = "127.0.0.1:4221"

// Config is set once at startup and only read afterwards.
type Config struct {
	Addr      string // address to listen on
	Directory string // serving directory of the /files/ routes

	BufferSize int // size of the single read a request must fit in
	MaxConns   int // 0 means no limit
	ReusePort  bool

	// ReadTimeout bounds how long a connection may take to send its request.
	// 0 means a peer can hold its worker forever.
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr:       DefaultAddr,
		Directory:  ".",
		BufferSize: transport.DefaultBufferSize,
	}
}

func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Addr, err)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", c.BufferSize)
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("max conns must not be negative, got %d", c.MaxConns)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("read timeout must not be negative, got %s", c.ReadTimeout)
	}
	st, err := os.Stat(c.Directory)
	if err != nil {
		return fmt.Errorf("serving directory: %w", err)
	}
	if !st.IsDir() {
		return errors.New("serving directory " + c.Directory + " is not a directory")
	}
	return nil
}
