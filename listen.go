package httpd

import (
	"github.com/frankli0324/go-httpd/internal/nettools"
)

// ListenOptions tune the listening socket created by [Server.ListenAndServe]
// or [Listen].
type ListenOptions = nettools.Options

// Listen binds a TCP listener suitable for [Server.Serve].
var Listen = nettools.Listen
