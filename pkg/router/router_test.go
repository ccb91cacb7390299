package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/singitronic/storefront/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedRouteAndParam(t *testing.T) {
	r := router.New()
	r.Get("/categories/{id}", "categories.get", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(router.Param(req, "id"))) //nolint:errcheck
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/categories/abc-123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Body.String())

	path, ok := r.Path("categories.get")
	require.True(t, ok)
	assert.Equal(t, "/categories/{id}", path)
}

func TestGroupPrefix(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/products", "products.list", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/products", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestURLBuilder(t *testing.T) {
	r := router.New()
	r.Get("/api/wishlist/{userId}/{productId}", "wishlist.get", func(http.ResponseWriter, *http.Request) {})

	url, err := r.URL("wishlist.get", map[string]string{"userId": "u1", "productId": "p1"})
	require.NoError(t, err)
	assert.Equal(t, "/api/wishlist/u1/p1", url)

	_, err = r.URL("wishlist.get", map[string]string{"userId": "u1"})
	assert.Error(t, err, "missing parameter")

	_, err = r.URL("no.such.route", nil)
	assert.Error(t, err)
}

func TestRoutesRegistrationOrder(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", func(http.ResponseWriter, *http.Request) {})
	r.Post("/b", "b", func(http.ResponseWriter, *http.Request) {})

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, http.MethodPost, infos[1].Method)
}

func TestMiddlewareOrder(t *testing.T) {
	var trace []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				trace = append(trace, tag)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	g := r.Group("/api", mw("group"))
	g.Get("/x", "x", func(http.ResponseWriter, *http.Request) {}, mw("route"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/x", nil))
	assert.Equal(t, []string{"group", "route"}, trace)
}
