package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"popular-videos/domain/apperror"
	"popular-videos/domain/model"
	"popular-videos/domain/repository"
	"popular-videos/infrastructure/logger"
	"popular-videos/infrastructure/utils"
)

const opPopular = "usecase.GetPopularVideos"

// IPopularVideosUseCase defines the ranking of recent videos
type IPopularVideosUseCase interface {
	// GetPopularVideos returns the most viewed videos of the window, highest view count first.
	GetPopularVideos(ctx context.Context) ([]model.VideoSummary, error)
}

// PopularVideosUseCase implements IPopularVideosUseCase on top of the YouTube repository
type PopularVideosUseCase struct {
	youtubeRepo      repository.IYouTube
	window           time.Duration
	searchMaxResults int64
	topN             int
	now              func() time.Time
}

// NewPopularVideosUseCase creates a new use case. A nil repository means no API key is
// configured; every call then fails with a configuration error.
func NewPopularVideosUseCase(youtubeRepo repository.IYouTube, window time.Duration, searchMaxResults int64, topN int) *PopularVideosUseCase {
	return &PopularVideosUseCase{
		youtubeRepo:      youtubeRepo,
		window:           window,
		searchMaxResults: searchMaxResults,
		topN:             topN,
		now:              utils.GetCurrentTime,
	}
}

// WithClock replaces the time source (fluent)
func (u *PopularVideosUseCase) WithClock(now func() time.Time) *PopularVideosUseCase {
	if now != nil {
		u.now = now
	}
	return u
}

// GetPopularVideos searches the window, fetches details for every hit in one batch,
// and ranks the merged records by view count.
func (u *PopularVideosUseCase) GetPopularVideos(ctx context.Context) ([]model.VideoSummary, error) {
	if u.youtubeRepo == nil {
		return nil, apperror.NotConfigured(opPopular)
	}

	cutoff := u.now().Add(-u.window).UTC()
	hits, err := u.youtubeRepo.SearchPopular(ctx, cutoff, u.searchMaxResults)
	if err != nil {
		return nil, u.fail(err)
	}

	bySearchID := make(map[string]model.SearchHit, len(hits))
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		if hit.ID == "" {
			continue
		}
		if _, dup := bySearchID[hit.ID]; dup {
			continue
		}
		bySearchID[hit.ID] = hit
		ids = append(ids, hit.ID)
	}
	if len(ids) == 0 {
		return []model.VideoSummary{}, nil
	}

	details, err := u.youtubeRepo.ListVideoDetails(ctx, ids)
	if err != nil {
		return nil, u.fail(err)
	}

	videos := make([]model.VideoSummary, 0, len(details))
	seen := make(map[string]struct{}, len(details))
	for _, detail := range details {
		hit, ok := bySearchID[detail.ID]
		if !ok {
			continue
		}
		if _, dup := seen[detail.ID]; dup {
			continue
		}
		seen[detail.ID] = struct{}{}
		videos = append(videos, model.NewVideoSummary(hit, detail))
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].ViewCount > videos[j].ViewCount
	})
	if u.topN > 0 && len(videos) > u.topN {
		videos = videos[:u.topN]
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"hits":     len(ids),
		"details":  len(details),
		"returned": len(videos),
	}).Info("popular videos ranked")
	return videos, nil
}

// fail passes typed errors through and wraps anything else as internal.
func (u *PopularVideosUseCase) fail(err error) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(opPopular, err)
	}

	entry := logger.GetLogger().WithField("kind", appErr.Kind).WithError(err)
	if appErr.Kind == apperror.KindInternal {
		entry.Error("popular videos failed")
	} else {
		entry.Warn("popular videos failed")
	}
	return appErr
}
