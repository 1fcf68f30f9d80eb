package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(HTTP)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func serve(h http.Handler, path string) {
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

func TestHTTPLabelsMatchedPattern(t *testing.T) {
	h := newRouter()
	matched := httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/{id}", "204")
	before := testutil.ToFloat64(matched)

	serve(h, "/items/1")
	serve(h, "/items/2")

	assert.Equal(t, before+2, testutil.ToFloat64(matched))
}

func TestHTTPUnmatchedPathsShareOneLabel(t *testing.T) {
	h := newRouter()
	unmatched := httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	before := testutil.ToFloat64(unmatched)

	serve(h, "/random/a")
	serve(h, "/random/b")

	assert.Equal(t, before+2, testutil.ToFloat64(unmatched))
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/random/a", "404")))
}
