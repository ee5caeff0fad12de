package http

import (
	"net/http"

	"popular-videos/interfaces/web"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// IPageHandler defines the HTML pages
type IPageHandler interface {
	Index(ctx *gin.Context)
	Popular(ctx *gin.Context)
	PopularView(ctx *gin.Context)
}

// PageHandler implements IPageHandler on top of the presenter
type PageHandler struct {
	presenter *web.Presenter
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(presenter *web.Presenter) IPageHandler {
	return &PageHandler{presenter: presenter}
}

// Index handles GET /. It serves the shell in the Loading state; the page script loads the list.
func (h *PageHandler) Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, htmlContentType, []byte(h.presenter.Page(web.Loading{})))
}

// Popular handles GET /popular with the list rendered on the server
func (h *PageHandler) Popular(ctx *gin.Context) {
	state := h.presenter.Load(ctx.Request.Context())
	ctx.Data(statusOf(state), htmlContentType, []byte(h.presenter.Page(state)))
}

// PopularView handles GET /popular/view, the content area only
func (h *PageHandler) PopularView(ctx *gin.Context) {
	state := h.presenter.Load(ctx.Request.Context())
	ctx.Header("Cache-Control", "no-store")
	ctx.Data(statusOf(state), htmlContentType, []byte(h.presenter.Fragment(state)))
}

func statusOf(state web.State) int {
	if _, failed := state.(web.Failed); failed {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
