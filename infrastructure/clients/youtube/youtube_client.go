package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"popular-videos/domain/apperror"
	"popular-videos/domain/model"
	"popular-videos/infrastructure/logger"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	opSearch  = "youtube.SearchPopular"
	opDetails = "youtube.ListVideoDetails"
)

// Client represents YouTube Data API client in API-key (read-only) mode
type Client struct {
	service *youtube.Service
}

// Config represents YouTube API configuration
type Config struct {
	APIKey string `json:"api_key"`
	// BaseURL overrides the API root, e.g. for a local fake or a proxy.
	BaseURL string `json:"base_url"`
	// HTTPClient supplies the base transport; the API key is always added on top of it.
	HTTPClient *http.Client `json:"-"`
}

// NewYouTubeClient creates a new YouTube API client
func NewYouTubeClient(ctx context.Context, config *Config) (*Client, error) {
	if config == nil || config.APIKey == "" {
		return nil, errors.New("youtube client requires an API key")
	}

	base := http.DefaultTransport
	if config.HTTPClient != nil && config.HTTPClient.Transport != nil {
		base = config.HTTPClient.Transport
	}
	httpClient := &http.Client{Transport: &transport.APIKey{Key: config.APIKey, Transport: base}}
	if config.HTTPClient != nil {
		httpClient.Timeout = config.HTTPClient.Timeout
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(config.BaseURL))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &Client{service: service}, nil
}

// SearchPopular lists videos published after the cutoff, most viewed first
func (c *Client) SearchPopular(ctx context.Context, publishedAfter time.Time, maxResults int64) ([]model.SearchHit, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Order("viewCount").
		PublishedAfter(publishedAfter.UTC().Format(time.RFC3339)).
		Type("video").
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, classify(opSearch, apperror.MessageSearchFailed, err)
	}

	hits := make([]model.SearchHit, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		hit := model.SearchHit{ID: item.Id.VideoId}
		if item.Snippet != nil {
			snippet, err := convertSnippet(item.Snippet.Title, item.Snippet.ChannelTitle, item.Snippet.PublishedAt, item.Snippet.Thumbnails)
			if err != nil {
				return nil, apperror.Parse(opSearch, fmt.Errorf("search item %s: %w", hit.ID, err))
			}
			hit.Snippet = snippet
		}
		hits = append(hits, hit)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"publishedAfter": publishedAfter.UTC().Format(time.RFC3339),
		"items":          len(response.Items),
		"hits":           len(hits),
	}).Debug("YouTube search completed")
	return hits, nil
}

// ListVideoDetails fetches snippet and statistics for all ids in one request
func (c *Client) ListVideoDetails(ctx context.Context, videoIDs []string) ([]model.VideoDetail, error) {
	call := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, classify(opDetails, apperror.MessageDetailsFailed, err)
	}

	details := make([]model.VideoDetail, 0, len(response.Items))
	for _, video := range response.Items {
		if video == nil {
			continue
		}
		detail, err := convertToVideoDetail(video)
		if err != nil {
			return nil, apperror.Parse(opDetails, err)
		}
		details = append(details, detail)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"requested": len(videoIDs),
		"returned":  len(details),
	}).Debug("YouTube video details completed")
	return details, nil
}

// convertToVideoDetail converts YouTube API video to our model
func convertToVideoDetail(video *youtube.Video) (model.VideoDetail, error) {
	if video.Id == "" {
		return model.VideoDetail{}, errors.New("video item without id")
	}
	if video.Statistics == nil {
		return model.VideoDetail{}, fmt.Errorf("video %s has no statistics", video.Id)
	}

	detail := model.VideoDetail{ID: video.Id}
	counters := []struct {
		name string
		in   uint64
		out  *int64
	}{
		{"viewCount", video.Statistics.ViewCount, &detail.Statistics.ViewCount},
		{"likeCount", video.Statistics.LikeCount, &detail.Statistics.LikeCount},
		{"commentCount", video.Statistics.CommentCount, &detail.Statistics.CommentCount},
	}
	for _, c := range counters {
		if c.in > math.MaxInt64 {
			return model.VideoDetail{}, fmt.Errorf("video %s: %s overflows int64", video.Id, c.name)
		}
		*c.out = int64(c.in)
	}

	if video.Snippet != nil {
		snippet, err := convertSnippet(video.Snippet.Title, video.Snippet.ChannelTitle, video.Snippet.PublishedAt, video.Snippet.Thumbnails)
		if err != nil {
			return model.VideoDetail{}, fmt.Errorf("video %s: %w", video.Id, err)
		}
		detail.Snippet = snippet
	}
	return detail, nil
}

func convertSnippet(title, channelTitle, publishedAt string, thumbnails *youtube.ThumbnailDetails) (*model.VideoSnippet, error) {
	published, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid publishedAt %q: %w", publishedAt, err)
	}

	snippet := &model.VideoSnippet{
		Title:       title,
		ChannelName: channelTitle,
		PublishedAt: published,
	}
	if thumbnails != nil && thumbnails.Medium != nil {
		snippet.Thumbnail = model.Thumbnail{
			URL:    thumbnails.Medium.Url,
			Width:  thumbnails.Medium.Width,
			Height: thumbnails.Medium.Height,
		}
	}
	return snippet, nil
}

// classify maps a failed call onto the error kinds surfaced to callers:
// HTTP status errors are upstream failures, transport and context errors are internal,
// everything else comes from decoding the payload.
func classify(op, message string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return apperror.Upstream(op, err, message, upstreamDetails(gerr))
	}
	var uerr *url.Error
	if errors.As(err, &uerr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.Internal(op, err)
	}
	return apperror.Parse(op, err)
}

func upstreamDetails(gerr *googleapi.Error) json.RawMessage {
	body := strings.TrimSpace(gerr.Body)
	if body != "" && json.Valid([]byte(body)) {
		return json.RawMessage(body)
	}
	fallback := map[string]interface{}{"code": gerr.Code}
	if gerr.Message != "" {
		fallback["message"] = gerr.Message
	}
	if body != "" {
		fallback["body"] = body
	}
	raw, err := json.Marshal(fallback)
	if err != nil {
		return nil
	}
	return raw
}
