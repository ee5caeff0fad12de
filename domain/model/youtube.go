package model

import (
	"net/url"
	"time"
)

const watchBaseURL = "https://youtube.com/watch?v="

// Thumbnail represents the medium-size video thumbnail
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int64  `json:"width"`
	Height int64  `json:"height"`
}

// VideoSnippet holds the descriptive part of a video as returned by YouTube
type VideoSnippet struct {
	Title       string
	ChannelName string
	PublishedAt time.Time
	Thumbnail   Thumbnail
}

// SearchHit is one item of a search.list response
type SearchHit struct {
	ID      string
	Snippet *VideoSnippet
}

// VideoStatistics holds the counters of a video
type VideoStatistics struct {
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

// VideoDetail is one item of a videos.list response
type VideoDetail struct {
	ID         string
	Snippet    *VideoSnippet
	Statistics VideoStatistics
}

// VideoSummary is the merged, display-ready record for one video
type VideoSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ChannelName  string    `json:"channelName"`
	PublishedAt  time.Time `json:"publishedAt"`
	Thumbnail    Thumbnail `json:"thumbnail"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
}

// NewVideoSummary merges a details record with the search hit it was requested for.
// Snippet data is taken from the details record, falling back to the search hit.
func NewVideoSummary(hit SearchHit, detail VideoDetail) VideoSummary {
	snippet := detail.Snippet
	if snippet == nil {
		snippet = hit.Snippet
	}

	summary := VideoSummary{
		ID:           detail.ID,
		ViewCount:    detail.Statistics.ViewCount,
		LikeCount:    detail.Statistics.LikeCount,
		CommentCount: detail.Statistics.CommentCount,
	}
	if snippet != nil {
		summary.Title = snippet.Title
		summary.ChannelName = snippet.ChannelName
		summary.PublishedAt = snippet.PublishedAt
		summary.Thumbnail = snippet.Thumbnail
	}
	return summary
}

// WatchURL returns the public page of the video
func (v VideoSummary) WatchURL() string {
	return watchBaseURL + url.QueryEscape(v.ID)
}
