package web

import (
	"context"
	"time"

	"popular-videos/domain/apperror"
	"popular-videos/domain/model"
	"popular-videos/infrastructure/utils"
)

// VideoSource produces the ranked list shown by the page
type VideoSource interface {
	GetPopularVideos(ctx context.Context) ([]model.VideoSummary, error)
}

// Presenter turns one fetch of the video source into a page state and renders it
type Presenter struct {
	source VideoSource
	now    func() time.Time
}

// NewPresenter creates a new presenter over source
func NewPresenter(source VideoSource) *Presenter {
	return &Presenter{source: source, now: utils.GetCurrentTime}
}

// WithClock replaces the time used for relative publish dates (fluent)
func (p *Presenter) WithClock(now func() time.Time) *Presenter {
	if now != nil {
		p.now = now
	}
	return p
}

// Load fetches the list once. Errors become Failed with their caller-facing message.
func (p *Presenter) Load(ctx context.Context) State {
	videos, err := p.source.GetPopularVideos(ctx)
	if err != nil {
		return Failed{Reason: apperror.MessageOf(err)}
	}
	if videos == nil {
		videos = []model.VideoSummary{}
	}
	return Loaded{Videos: videos}
}

// Fragment renders state as the content area only.
func (p *Presenter) Fragment(state State) string {
	return Render(state, p.now())
}

// Page renders state as a complete HTML document.
func (p *Presenter) Page(state State) string {
	return RenderPage(state, p.now())
}
