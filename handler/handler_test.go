package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/greeter/handler"
	"github.com/lambda-feedback/greeter/handler/schema"
	"github.com/lambda-feedback/greeter/internal/pipeline"
)

var indexHTML = []byte("<!DOCTYPE html><title>Greeter</title>")

func setupPipeline(t *testing.T, public fstest.MapFS) http.Handler {
	t.Helper()

	log := zaptest.NewLogger(t)

	userSchema, err := schema.NewUserRequestSchema()
	require.NoError(t, err)

	users := handler.NewUserHandler(handler.UserHandlerParams{
		Schema: userSchema,
		Log:    log,
	})

	index := handler.NewIndexHandler(handler.IndexHandlerParams{
		Public: public,
	})

	routes := []*pipeline.Route{
		handler.NewIndexRoute(index).Route,
		handler.NewGreetRoute(users).Route,
		handler.NewProfileRoute(users).Route,
	}

	return pipeline.New(pipeline.Params{
		Public: public,
		Routes: routes,
		Access: io.Discard,
		Log:    log,
	})
}

func setupDefaultPipeline(t *testing.T) http.Handler {
	return setupPipeline(t, fstest.MapFS{
		"index.html": &fstest.MapFile{Data: indexHTML},
	})
}

func postJSON(h http.Handler, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(http.MethodPost, "/user", reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestGreet_Success(t *testing.T) {
	h := setupDefaultPipeline(t)

	w := postJSON(h, `{"name": "Ana", "email": "a@x.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "Hello, Ana!"}`, w.Body.String())
}

func TestGreet_EmailIsNotValidated(t *testing.T) {
	h := setupDefaultPipeline(t)

	w := postJSON(h, `{"name": "Ana", "email": "not an email"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello, Ana!"}`, w.Body.String())
}

func TestGreet_NonStringName(t *testing.T) {
	h := setupDefaultPipeline(t)

	tests := map[string]string{
		`42`:           "Hello, 42!",
		`1.5`:          "Hello, 1.5!",
		`true`:         "Hello, true!",
		`["a", "b"]`:   "Hello, a,b!",
		`{"first": 1}`: "Hello, [object Object]!",
	}

	for name, message := range tests {
		t.Run(name, func(t *testing.T) {
			w := postJSON(h, `{"name": `+name+`, "email": "a@x.com"}`)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"message": "`+message+`"}`, w.Body.String())
		})
	}
}

func TestGreet_MissingFields(t *testing.T) {
	h := setupDefaultPipeline(t)

	bodies := []string{
		``,
		`{}`,
		`[]`,
		`{"name": "", "email": "a@x.com"}`,
		`{"name": "Ana", "email": ""}`,
		`{"name": "Ana"}`,
		`{"email": "a@x.com"}`,
		`{"name": null, "email": "a@x.com"}`,
		`{"name": 0, "email": "a@x.com"}`,
		`{"name": -0, "email": "a@x.com"}`,
		`{"name": "Ana", "email": -0.0}`,
		`{"name": 0e3, "email": "a@x.com"}`,
		`{"name": false, "email": "a@x.com"}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			w := postJSON(h, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "Missing required fields: name and email"}`, w.Body.String())
		})
	}
}

func TestGreet_TrailingSlash(t *testing.T) {
	h := setupDefaultPipeline(t)

	req := httptest.NewRequest(http.MethodPost, "/user/", strings.NewReader(`{"name": "Ana", "email": "a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello, Ana!"}`, w.Body.String())
}

func TestGreet_BodyWithoutJSONContentType(t *testing.T) {
	h := setupDefaultPipeline(t)

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"name": "Ana", "email": "a@x.com"}`))
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Missing required fields: name and email"}`, w.Body.String())
}

func TestGreet_MalformedBody(t *testing.T) {
	h := setupDefaultPipeline(t)

	w := postJSON(h, `{"name": "Ana",`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "malformed JSON body")
}

func TestProfile(t *testing.T) {
	h := setupDefaultPipeline(t)

	tests := map[string]string{
		"/user/42":        "User 42 profile",
		"/user/abc":       "User abc profile",
		"/user/007":       "User 007 profile",
		"/user/Ana%20Lee": "User Ana Lee profile",
		"/user/42/":       "User 42 profile",
	}

	for target, body := range tests {
		t.Run(target, func(t *testing.T) {
			w := get(h, target)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, body, w.Body.String())
		})
	}
}

func TestProfile_IsIdempotent(t *testing.T) {
	h := setupDefaultPipeline(t)

	first := get(h, "/user/42")
	for i := 0; i < 3; i++ {
		w := get(h, "/user/42")
		assert.Equal(t, first.Code, w.Code)
		assert.Equal(t, first.Body.Bytes(), w.Body.Bytes())
	}
}

func TestIndex(t *testing.T) {
	h := setupDefaultPipeline(t)

	w := get(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, indexHTML, w.Body.Bytes())
}

func TestIndex_Missing(t *testing.T) {
	h := setupPipeline(t, fstest.MapFS{})

	w := get(h, "/")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "index.html not found"}`, w.Body.String())
}

func TestUnknownRoutes(t *testing.T) {
	h := setupDefaultPipeline(t)

	for _, tt := range []struct{ method, target string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/user"},
		{http.MethodGet, "/user/42/settings"},
		{http.MethodGet, "/user/42//"},
		{http.MethodGet, "/USER/42"},
		{http.MethodPost, "/User"},
		{http.MethodPut, "/user/42"},
		{http.MethodDelete, "/"},
	} {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, `{"error":"Not found"}`, w.Body.String())
		})
	}
}
