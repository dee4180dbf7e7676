package httpd

import (
	"github.com/frankli0324/go-httpd/internal"
	"github.com/frankli0324/go-httpd/internal/fs"
	"github.com/frankli0324/go-httpd/internal/http"
)

type Server = internal.Server
type Config = internal.Config
type Option = internal.Option

type Request = http.Request
type Response = http.Response
type Field = http.Field

type Handler = internal.Handler
type Middleware = internal.Middleware

type FS = fs.FS
type Dir = fs.Dir

const DefaultAddr = internal.DefaultAddr

var (
	NewServer     = internal.NewServer
	DefaultConfig = internal.DefaultConfig
	WithLogger    = internal.WithLogger
	WithFS        = internal.WithFS
)
