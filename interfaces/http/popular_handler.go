package http

import (
	"net/http"

	"popular-videos/domain/apperror"
	"popular-videos/domain/dto"
	"popular-videos/infrastructure/logger"
	"popular-videos/interfaces/middleware"
	"popular-videos/usecase"

	"github.com/gin-gonic/gin"
)

// IPopularHandler defines the JSON API of the ranked list
type IPopularHandler interface {
	GetPopularVideos(ctx *gin.Context)
}

// PopularHandler implements IPopularHandler
type PopularHandler struct {
	popularUseCase usecase.IPopularVideosUseCase
}

// NewPopularHandler creates a new popular videos handler instance
func NewPopularHandler(popularUseCase usecase.IPopularVideosUseCase) IPopularHandler {
	return &PopularHandler{popularUseCase: popularUseCase}
}

// GetPopularVideos handles GET /api/youtube/popular
func (h *PopularHandler) GetPopularVideos(ctx *gin.Context) {
	videos, err := h.popularUseCase.GetPopularVideos(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PopularVideosResponse{Videos: videos})
}

// respondError answers every failure kind with 500 and the caller-facing message.
func respondError(ctx *gin.Context, err error) {
	if apperror.KindOf(err) == apperror.KindInternal {
		logger.GetLogger().
			WithField("request_id", middleware.GetRequestID(ctx)).
			WithField("error", err.Error()).
			Error("popular videos request failed")
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   apperror.MessageOf(err),
		Details: apperror.DetailsOf(err),
	})
}
