package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/test/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroupMethods(t *testing.T) {
	tests := []struct {
		method     string
		register   func(g *DomainGroup, fn gin.HandlerFunc)
		wantStatus int
	}{
		{"GET", func(g *DomainGroup, fn gin.HandlerFunc) { g.GET("/items/:id", fn) }, http.StatusOK},
		{"POST", func(g *DomainGroup, fn gin.HandlerFunc) { g.POST("/items/:id", fn) }, http.StatusOK},
		{"PATCH", func(g *DomainGroup, fn gin.HandlerFunc) { g.PATCH("/items/:id", fn) }, http.StatusOK},
		{"DELETE", func(g *DomainGroup, fn gin.HandlerFunc) { g.DELETE("/items/:id", fn) }, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			engine := gin.New()
			g := NewDomainGroup("test", "/test")
			tt.register(g, func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			api := engine.Group("/api/v1")
			g.RegisterRoutes(api)

			req := httptest.NewRequest(tt.method, "/api/v1/test/items/123", nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	ledger := NewDomainGroup("ledger", "/bills")
	ledger.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "bills")
	})

	partner := NewDomainGroup("partner", "/customers")
	partner.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "customers")
	})

	r.Register(ledger).Register(partner)
	r.Setup()

	req1 := httptest.NewRequest("GET", "/api/v1/bills", nil)
	w1 := httptest.NewRecorder()
	engine.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "bills", w1.Body.String())

	req2 := httptest.NewRequest("GET", "/api/v1/customers", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "customers", w2.Body.String())
}

func TestChainedMethodCalls(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("test", "/test")
	g.GET("/a", func(c *gin.Context) { c.String(http.StatusOK, "a") }).
		POST("/b", func(c *gin.Context) { c.String(http.StatusOK, "b") }).
		PATCH("/c", func(c *gin.Context) { c.String(http.StatusOK, "c") })

	r.Register(g).Setup()

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/test/a"},
		{"POST", "/api/v1/test/b"},
		{"PATCH", "/api/v1/test/c"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Route %s %s should work", tt.method, tt.path)
	}
}
