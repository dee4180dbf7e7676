package handlers

import (
	"github.com/rs/zerolog"

	"github.com/frankli0324/go-httpd/internal/fs"
	"github.com/frankli0324/go-httpd/internal/http"
)

// Handler builds the response to req. arg is what the matched route
// captured from the path, e.g. the file name after "/files/".
type Handler = func(req *http.Request, arg string) *http.Response

// Handlers holds the collaborators of the route handlers. it is never
// mutated once built, so a single value serves every connection.
type Handlers struct {
	FS  fs.FS
	Log zerolog.Logger
}

func New(files fs.FS, log zerolog.Logger) *Handlers {
	return &Handlers{FS: files, Log: log}
}

func (h *Handlers) Echo(_ *http.Request, text string) *http.Response {
	return http.NewContentResponse(http.StatusOK, http.ContentTypeText, []byte(text))
}

func (h *Handlers) UserAgent(req *http.Request, _ string) *http.Response {
	return http.NewContentResponse(http.StatusOK, http.ContentTypeText, []byte(req.UserAgent()))
}

func (h *Handlers) Root(*http.Request, string) *http.Response {
	return http.NewResponse(http.StatusOK)
}

func (h *Handlers) GetFile(_ *http.Request, name string) *http.Response {
	if !h.FS.Exists(name) {
		return h.NotFound(nil, name)
	}
	data, err := h.FS.Read(name)
	if err != nil {
		h.Log.Debug().Err(err).Str("file", name).Msg("file not readable")
		return h.NotFound(nil, name)
	}
	return http.NewContentResponse(http.StatusOK, http.ContentTypeBinary, data)
}

// PostFile stores the request body under name. the body is cut to
// Content-Length, the rest of the read buffer is not part of it.
func (h *Handlers) PostFile(req *http.Request, name string) *http.Response {
	body := req.Body
	if n := req.ContentLength(); n < len(body) {
		body = body[:n]
	}
	if err := h.FS.Write(name, body); err != nil {
		h.Log.Error().Err(err).Str("file", name).Msg("failed to write file")
		return http.NewResponse(http.StatusInternalServerError)
	}
	return http.NewResponse(http.StatusCreated)
}

func (h *Handlers) NotFound(*http.Request, string) *http.Response {
	return http.NewResponse(http.StatusNotFound)
}

func (h *Handlers) BadRequest(*http.Request, string) *http.Response {
	return http.NewResponse(http.StatusBadRequest)
}

func (h *Handlers) MethodNotAllowed(*http.Request, string) *http.Response {
	return http.NewResponse(http.StatusMethodNotAllowed)
}
