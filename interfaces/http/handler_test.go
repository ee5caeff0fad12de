package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"popular-videos/domain/apperror"
	"popular-videos/domain/dto"
	"popular-videos/domain/model"
	httpHandler "popular-videos/interfaces/http"
	"popular-videos/interfaces/web"
)

type MockPopularUseCase struct {
	mock.Mock
}

func (m *MockPopularUseCase) GetPopularVideos(ctx context.Context) ([]model.VideoSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoSummary), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

var published = time.Date(2024, 6, 14, 8, 0, 0, 0, time.UTC)

func serve(t *testing.T, method, path string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	register(r)
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	return w
}

func TestPopularHandler_Success(t *testing.T) {
	uc := new(MockPopularUseCase)
	uc.On("GetPopularVideos", mock.Anything).Return([]model.VideoSummary{
		{ID: "a", Title: "A", ChannelName: "Chan", PublishedAt: published, ViewCount: 10, LikeCount: 2, CommentCount: 1,
			Thumbnail: model.Thumbnail{URL: "https://i.ytimg.com/a.jpg", Width: 320, Height: 180}},
	}, nil)
	h := httpHandler.NewPopularHandler(uc)

	w := serve(t, http.MethodGet, "/api/youtube/popular", func(r *gin.Engine) {
		r.GET("/api/youtube/popular", h.GetPopularVideos)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"videos":[{
		"id":"a","title":"A","channelName":"Chan","publishedAt":"2024-06-14T08:00:00Z",
		"thumbnail":{"url":"https://i.ytimg.com/a.jpg","width":320,"height":180},
		"viewCount":10,"likeCount":2,"commentCount":1}]}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestPopularHandler_EmptyListIsArray(t *testing.T) {
	uc := new(MockPopularUseCase)
	uc.On("GetPopularVideos", mock.Anything).Return([]model.VideoSummary{}, nil)
	h := httpHandler.NewPopularHandler(uc)

	w := serve(t, http.MethodGet, "/p", func(r *gin.Engine) { r.GET("/p", h.GetPopularVideos) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"videos":[]}`, w.Body.String())
}

func TestPopularHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not configured",
			err:  apperror.NotConfigured("op"),
			want: `{"error":"YouTube API key not configured"}`,
		},
		{
			name: "upstream with details",
			err:  apperror.Upstream("op", errors.New("403"), apperror.MessageSearchFailed, json.RawMessage(`{"error":{"code":403}}`)),
			want: `{"error":"Failed to fetch from YouTube API","details":{"error":{"code":403}}}`,
		},
		{
			name: "parse",
			err:  apperror.Parse("op", errors.New("bad json")),
			want: `{"error":"Failed to parse YouTube API response"}`,
		},
		{
			name: "untyped",
			err:  errors.New("driver exploded"),
			want: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockPopularUseCase)
			uc.On("GetPopularVideos", mock.Anything).Return(nil, tt.err)
			h := httpHandler.NewPopularHandler(uc)

			w := serve(t, http.MethodGet, "/p", func(r *gin.Engine) { r.GET("/p", h.GetPopularVideos) })

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestPageHandler(t *testing.T) {
	uc := new(MockPopularUseCase)
	uc.On("GetPopularVideos", mock.Anything).Return([]model.VideoSummary{
		{ID: "a", Title: "Rendered title", ChannelName: "Chan", PublishedAt: published, ViewCount: 2_000_000},
	}, nil)
	h := httpHandler.NewPageHandler(web.NewPresenter(uc))
	register := func(r *gin.Engine) {
		r.GET("/", h.Index)
		r.GET("/popular", h.Popular)
		r.GET("/popular/view", h.PopularView)
	}

	t.Run("index is the loading shell", func(t *testing.T) {
		w := serve(t, http.MethodGet, "/", register)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Loading popular videos...")
		assert.NotContains(t, w.Body.String(), "Rendered title")
	})

	t.Run("popular renders the list", func(t *testing.T) {
		w := serve(t, http.MethodGet, "/popular", register)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, w.Body.String(), "Rendered title")
		assert.Contains(t, w.Body.String(), "2.0M views")
	})

	t.Run("view is a fragment", func(t *testing.T) {
		w := serve(t, http.MethodGet, "/popular/view", register)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, w.Body.String(), "Rendered title")
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})
}

func TestPageHandler_Failed(t *testing.T) {
	uc := new(MockPopularUseCase)
	uc.On("GetPopularVideos", mock.Anything).Return(nil, apperror.NotConfigured("op"))
	h := httpHandler.NewPageHandler(web.NewPresenter(uc))

	w := serve(t, http.MethodGet, "/popular/view", func(r *gin.Engine) { r.GET("/popular/view", h.PopularView) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "YouTube API key not configured")
	assert.Contains(t, w.Body.String(), "Try Again")
}

func TestHealthHandler(t *testing.T) {
	h := httpHandler.NewHealthHandler()

	w := serve(t, http.MethodGet, "/healthz", func(r *gin.Engine) { r.GET("/healthz", h.Healthz) })

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}
