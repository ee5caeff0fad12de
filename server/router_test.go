package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"popular-videos/domain/model"
	httpHandler "popular-videos/interfaces/http"
	"popular-videos/interfaces/middleware"
	"popular-videos/interfaces/web"
	"popular-videos/server"
)

type staticSource []model.VideoSummary

func (s staticSource) GetPopularVideos(ctx context.Context) ([]model.VideoSummary, error) {
	return s, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	source := staticSource{{ID: "a", Title: "A", ViewCount: 1}}
	return server.InitiateRouter(
		httpHandler.NewPopularHandler(source),
		httpHandler.NewPageHandler(web.NewPresenter(source)),
		httpHandler.NewHealthHandler(),
		[]string{"http://localhost:3000"},
	)
}

func TestInitiateRouter_Routes(t *testing.T) {
	router := newRouter()

	for _, path := range []string{"/", "/popular", "/popular/view", "/healthz", "/api/youtube/popular"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestInitiateRouter_CORS(t *testing.T) {
	router := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/youtube/popular", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/youtube/popular", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInitiateRouter_UnknownRoute(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
