package repository

import (
	"context"
	"time"

	"popular-videos/domain/model"
)

// IYouTube defines the upstream operations needed to rank recent videos
type IYouTube interface {
	// SearchPopular runs search.list for videos published after the cutoff, ordered by view count.
	SearchPopular(ctx context.Context, publishedAfter time.Time, maxResults int64) ([]model.SearchHit, error)
	// ListVideoDetails runs a single videos.list call for the given ids (snippet + statistics).
	ListVideoDetails(ctx context.Context, videoIDs []string) ([]model.VideoDetail, error)
}
