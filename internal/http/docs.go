// package http contains the request and response types that flow through
// the server pipeline. the package name is meant to be same with the top
// level naming so that IDEs and code editors could pick them up
//
// the package also contains some value aliases from standard library to
// avoid annoying imports
package http

import (
	"net/http"
)

const (
	MethodGet  = http.MethodGet
	MethodPost = http.MethodPost

	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusBadRequest          = http.StatusBadRequest
	StatusNotFound            = http.StatusNotFound
	StatusMethodNotAllowed    = http.StatusMethodNotAllowed
	StatusInternalServerError = http.StatusInternalServerError
)

var StatusText = http.StatusText
