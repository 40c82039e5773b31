package pipeline

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// HandlerFunc handles a request. A returned error is answered by the
// error stage of the pipeline; the handler must not have written anything
// in that case.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Route binds a handler to a ServeMux pattern, e.g. "GET /user/{id}".
type Route struct {
	Pattern string
	Handler HandlerFunc
}

type RouteResult struct {
	fx.Out

	Route *Route `group:"routes"`
}

// AsRoute provides a route to the pipeline's route group.
func AsRoute(pattern string, handler HandlerFunc) RouteResult {
	return RouteResult{
		Route: &Route{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

type Params struct {
	fx.In

	Config Config

	// Public is the asset root. Defaults to Config.PublicDir on disk.
	Public fs.FS `optional:"true"`

	Routes []*Route `group:"routes"`

	// Access receives access log lines. Defaults to stdout.
	Access io.Writer `optional:"true"`

	Log *zap.Logger
}

// Pipeline is the http.Handler passing every request through the access
// logger, panic recovery, JSON body parser, static asset server and
// routes, in that order. Routes match with or without one trailing
// slash. Requests no route matches get a 404; errors from any stage are
// answered by a single error handler.
type Pipeline struct {
	config  Config
	public  fs.FS
	handler http.Handler
	access  *zap.Logger
	log     *zap.Logger
}

var _ http.Handler = (*Pipeline)(nil)

func New(params Params) *Pipeline {
	config := params.Config.withDefaults()

	public := params.Public
	if public == nil {
		public = NewPublicFS(config)
	}

	var access io.Writer = os.Stdout
	if params.Access != nil {
		access = params.Access
	}

	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	p := &Pipeline{
		config: config,
		public: public,
		access: NewAccessLogger(access),
		log:    log,
	}

	mux := http.NewServeMux()
	for _, route := range params.Routes {
		mux.Handle(route.Pattern, p.adapt(route.Handler))
	}

	// matches whatever no route does, including known paths with
	// unregistered methods
	mux.HandleFunc("/", notFound)

	p.handler = chain(mux,
		p.logRequests,
		p.recoverPanics,
		p.parseBody,
		p.serveStatic,
		trimTrailingSlash,
	)

	return p
}

func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.handler.ServeHTTP(w, r)
}

// chain wraps h so that the first stage runs first.
func chain(h http.Handler, stages ...func(http.Handler) http.Handler) http.Handler {
	for i := len(stages) - 1; i >= 0; i-- {
		h = stages[i](h)
	}

	return h
}

// trimTrailingSlash drops one trailing slash before routing, so that
// "/user/42/" matches "GET /user/{id}".
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) < 2 || !strings.HasSuffix(r.URL.Path, "/") {
			next.ServeHTTP(w, r)
			return
		}

		r2 := new(http.Request)
		*r2 = *r
		r2.URL = new(url.URL)
		*r2.URL = *r.URL
		r2.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
		r2.URL.RawPath = strings.TrimSuffix(r.URL.RawPath, "/")

		next.ServeHTTP(w, r2)
	})
}

func (p *Pipeline) adapt(handler HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			p.fail(w, r, err)
		}
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = JSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
}

// fail is the terminal error stage.
func (p *Pipeline) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := ErrorStatus(err)

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Cause != nil {
		fields = append(fields, zap.NamedError("cause", httpErr.Cause))
	}

	p.log.Error("request failed", fields...)

	if status >= http.StatusInternalServerError {
		report(r, err)
	}

	if err := JSON(w, status, errorResponse{Error: ErrorMessage(err)}); err != nil {
		p.log.Debug("failed to write error response", zap.Error(err))
	}
}

func report(r *http.Request, err error) {
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.CaptureException(err)
}
