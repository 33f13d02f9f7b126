// Package youtube fetches video metadata, channel uploads and keyword signals from the
// YouTube Data API v3 and the public search-suggestion endpoint.
package youtube

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/jonathan/seo-auditor/internal/logging"
	"github.com/jonathan/seo-auditor/internal/types"
)

// DefaultSuggestURL is the public search-suggestion endpoint
const DefaultSuggestURL = "https://suggestqueries-clients6.youtube.com/complete/search"

// API limits
const (
	maxIDsPerRequest   = 50
	maxPlaylistPage    = 50
	maxUploadsPrealloc = 500
	defaultHTTPTimeout = 5 * time.Second
)

// Config configures a Source.
type Config struct {
	APIKey     string
	SuggestURL string // defaults to DefaultSuggestURL
	Language   string // hl parameter for suggestions, omitted when empty
	Region     string // gl parameter for suggestions and regionCode for search
	HTTPClient *http.Client
	Logger     *zap.Logger

	// ClientOptions are passed to the Data API service after the API key
	ClientOptions []option.ClientOption
}

// Source reads published video metadata. It implements keywords.Source.
type Source struct {
	service    *yt.Service
	httpClient *http.Client
	suggestURL string
	language   string
	region     string
	logger     *zap.Logger
}

// New creates a Source backed by the YouTube Data API.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.APIKey == "" {
		return nil, &types.InvalidArgumentError{Argument: "api key", Message: "YouTube API key is required (set YOUTUBE_API_KEY)"}
	}

	opts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, cfg.ClientOptions...)
	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	suggestURL := cfg.SuggestURL
	if suggestURL == "" {
		suggestURL = DefaultSuggestURL
	}

	return &Source{
		service:    service,
		httpClient: httpClient,
		suggestURL: suggestURL,
		language:   cfg.Language,
		region:     cfg.Region,
		logger:     logging.OrNop(cfg.Logger),
	}, nil
}

// Video returns the metadata record of one video.
func (s *Source) Video(ctx context.Context, videoID string) (*types.MetadataRecord, error) {
	records, err := s.Videos(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, notFound("videos.list", videoID)
	}
	return &records[0], nil
}

// Videos returns metadata records for the given IDs in request order.
// IDs the platform does not know are skipped.
func (s *Source) Videos(ctx context.Context, videoIDs []string) ([]types.MetadataRecord, error) {
	byID := make(map[string]types.MetadataRecord, len(videoIDs))

	for start := 0; start < len(videoIDs); start += maxIDsPerRequest {
		batch := videoIDs[start:min(start+maxIDsPerRequest, len(videoIDs))]

		resp, err := s.service.Videos.List([]string{"snippet"}).Id(batch...).Context(ctx).Do()
		if err != nil {
			return nil, sourceError("videos.list", batch[0], err)
		}
		for _, item := range resp.Items {
			byID[item.Id] = recordFromVideo(item)
		}
		s.logger.Debug("fetched video details", zap.Int("requested", len(batch)), zap.Int("found", len(resp.Items)))
	}

	records := make([]types.MetadataRecord, 0, len(byID))
	for _, id := range videoIDs {
		if rec, ok := byID[id]; ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// ChannelUploads returns the metadata of up to maxVideos most recent uploads of the
// channel with the given handle ("@name" or "name"), newest first.
func (s *Source) ChannelUploads(ctx context.Context, handle string, maxVideos int64) ([]types.MetadataRecord, error) {
	h, err := NormalizeHandle(handle)
	if err != nil {
		return nil, err
	}
	if maxVideos <= 0 {
		return nil, &types.InvalidArgumentError{Argument: "max videos", Message: "must be positive"}
	}

	channels, err := s.service.Channels.List([]string{"contentDetails"}).ForHandle(h).Context(ctx).Do()
	if err != nil {
		return nil, sourceError("channels.list", h, err)
	}
	if len(channels.Items) == 0 || channels.Items[0].ContentDetails == nil || channels.Items[0].ContentDetails.RelatedPlaylists == nil {
		return nil, notFound("channels.list", h)
	}
	uploads := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads

	ids := make([]string, 0, min(maxVideos, maxUploadsPrealloc))
	pageToken := ""
	for int64(len(ids)) < maxVideos {
		call := s.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(uploads).
			MaxResults(min(maxPlaylistPage, maxVideos-int64(len(ids)))).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, sourceError("playlistItems.list", uploads, err)
		}
		for _, item := range page.Items {
			if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
				ids = append(ids, item.ContentDetails.VideoId)
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" || len(page.Items) == 0 {
			break
		}
	}
	if int64(len(ids)) > maxVideos {
		ids = ids[:maxVideos]
	}

	s.logger.Info("listed channel uploads", zap.String("handle", h), zap.Int("videos", len(ids)))
	return s.Videos(ctx, ids)
}

// SearchResultCount returns how many videos a search for query returns, capped at maxResults.
// The count is the competition signal for keyword research.
func (s *Source) SearchResultCount(ctx context.Context, query string, maxResults int64) (int, error) {
	call := s.service.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx)
	if s.region != "" {
		call = call.RegionCode(s.region)
	}

	resp, err := call.Do()
	if err != nil {
		return 0, sourceError("search.list", query, err)
	}
	return len(resp.Items), nil
}

func recordFromVideo(v *yt.Video) types.MetadataRecord {
	rec := types.MetadataRecord{VideoID: v.Id}
	if v.Snippet == nil {
		return rec
	}

	rec.Title = v.Snippet.Title
	rec.Description = v.Snippet.Description
	rec.Tags = v.Snippet.Tags
	if url := bestThumbnail(v.Snippet.Thumbnails); url != "" {
		rec.ThumbnailRef = types.StringPtr(url)
	}
	return rec
}

// bestThumbnail returns the URL of the largest available thumbnail
func bestThumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*yt.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
