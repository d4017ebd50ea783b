package http

import (
	"net/http"

	"github.com/corvide/z85kit/di"
	"github.com/corvide/z85kit/errors"
	"github.com/corvide/z85kit/log"
)

type (
	Option         func(*Http)
	Handler        = http.Handler
	HandlerFunc    = http.HandlerFunc
	Middleware     = func(Handler) Handler
	Request        = http.Request
	ResponseWriter = http.ResponseWriter
	Response       = http.Response
	ContextKey     uint8

	Config struct {
		Address string         `yaml:"address,omitempty"`
		Prefix  string         `yaml:"prefix,omitempty"`
		Metrics *MetricsConfig `yaml:"metrics,omitempty"`
		Trace   *TraceConfig   `yaml:"trace,omitempty"`
	}
	Http struct {
		Config  *Config
		Address string
		Handler Handler
	}
)

const (
	MethodGet     = http.MethodGet
	MethodHead    = http.MethodHead
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodPatch   = http.MethodPatch
	MethodDelete  = http.MethodDelete
	MethodConnect = http.MethodConnect
	MethodOptions = http.MethodOptions
	MethodTrace   = http.MethodTrace

	StatusOK                  = http.StatusOK
	StatusBadRequest          = http.StatusBadRequest
	StatusNotFound            = http.StatusNotFound
	StatusMethodNotAllowed    = http.StatusMethodNotAllowed
	StatusUnprocessableEntity = http.StatusUnprocessableEntity
	StatusInternalServerError = http.StatusInternalServerError

	HeaderRequestId     = "x-request-id"
	HeaderAuthorization = "authorization"
	HeaderContentType   = "content-type"

	ContentTypeJson        = "application/json"
	ContentTypeText        = "text/plain; charset=utf-8"
	ContentTypeHtml        = "text/html; charset=utf-8"
	ContentTypeOctetStream = "application/octet-stream"

	AuthTokenTypeBearer = "bearer"
)

func (c *Config) Default() {
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Trace == nil {
		c.Trace = &TraceConfig{}
	}

	//

	if c.Metrics.Enable {
		c.Metrics.Default()

		c.Trace.Default()
		c.Trace.SkipPaths[c.Metrics.Path] = struct{}{}
	}
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address should not be empty")
	}
	return nil
}

//

func WithAddress(addr string) Option {
	return func(h *Http) { h.Address = addr }
}

func WithHandler(handler Handler) Option {
	return func(h *Http) { h.Handler = handler }
}

func WithProvide(cont *di.Container) Option {
	return func(h *Http) {
		di.MustProvide(cont, func() *Http { return h })
	}
}

func WithInvoke(cont *di.Container, f di.Function) Option {
	return func(h *Http) { di.MustInvoke(cont, f) }
}

//

// Compose wraps a Handler with middlewares, the first middleware
// becoming the outermost.
func Compose(h Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func (h *Http) ListenAndServe() error {
	if h.Address == "" {
		return errors.New("no address was defined for http server to listen on (use WithAddress Option)")
	}
	if h.Handler == nil {
		return errors.New("no handler assigned to the server (use WithHandler Option)")
	}
	log.Info().Str("address", h.Address).Msg("starting http server")
	return http.ListenAndServe(h.Address, h.Handler)
}

func New(c *Config, options ...Option) *Http {
	h := &Http{
		Config:  c,
		Address: c.Address,
	}
	for _, option := range options {
		option(h)
	}

	return h
}
