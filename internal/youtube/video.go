package youtube

import (
	"context"
	"fmt"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// GetVideo fetches one video and projects its basic info. The upstream
// signals "not found" as a plain error, so that case surfaces as an
// OperationError like any other failure.
func (s *Service) GetVideo(ctx context.Context, in VideoInput) (VideoOutput, error) {
	if in.VideoID == "" {
		return VideoOutput{}, fmt.Errorf("videoId is required")
	}
	incrVideoRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return VideoOutput{}, err
	}

	info, err := client.GetInfo(ctx, in.VideoID)
	if err != nil {
		return VideoOutput{}, opErr("get video", err)
	}

	basic := info.Payload().Get("basic_info")
	return VideoOutput{
		VideoID:     strOr(basic.Get("id").Str(), in.VideoID),
		Title:       basic.Get("title").Str(),
		Description: basic.Get("short_description").Str(),
		Author:      basic.Get("author").Str(),
		ChannelID:   basic.Get("channel_id").Str(),
		Duration:    basic.Get("duration").Int(),
		ViewCount:   basic.Get("view_count").Int(),
		LikeCount:   basic.Get("like_count").Int(),
		PublishedAt: basic.Get("start_timestamp").Str(),
		Thumbnails:  mapThumbnails(basic.Get("thumbnail")),
		IsLive:      basic.Get("is_live").Bool(),
		IsPrivate:   basic.Get("is_private").Bool(),
		IsUnlisted:  basic.Get("is_unlisted").Bool(),
		Category:    basic.Get("category").Str(),
		Keywords:    basic.Get("keywords").Strings(),
		EmbedURL:    basic.Get("embed", "iframe_url").Str(),
	}, nil
}

// GetTrendingVideos returns the trending feed truncated to maxResults.
// The region code is echoed back; the upstream feed is not region-scoped.
func (s *Service) GetTrendingVideos(ctx context.Context, in TrendingInput) (TrendingOutput, error) {
	region := strOr(in.RegionCode, defaultRegion)
	max := in.MaxResults
	if max <= 0 {
		max = defaultSearchResults
	}
	incrTrendingRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return TrendingOutput{}, err
	}

	trending, err := client.GetTrending(ctx)
	if err != nil {
		return TrendingOutput{}, opErr("get trending videos", err)
	}

	videos := truncateEntries(mapVideoEntries(trending.Get("videos")), max)
	return TrendingOutput{
		RegionCode:   region,
		TotalResults: len(videos),
		Videos:       videos,
	}, nil
}

// GetRelatedVideos probes the three payload locations related videos have
// historically lived in, in priority order. Absence of all three is an
// empty result, not an error.
func (s *Service) GetRelatedVideos(ctx context.Context, in RelatedInput) (RelatedOutput, error) {
	if in.VideoID == "" {
		return RelatedOutput{}, fmt.Errorf("videoId is required")
	}
	max := in.MaxResults
	if max <= 0 {
		max = defaultSearchResults
	}
	incrRelatedRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return RelatedOutput{}, err
	}

	info, err := client.GetInfo(ctx, in.VideoID)
	if err != nil {
		return RelatedOutput{}, opErr("get related videos", err)
	}

	related := info.Payload().FirstOf(
		payload.Path("related_videos"),
		payload.Path("watch_next_feed"),
		payload.Path("secondary_info", "results"),
	)

	videos := truncateEntries(mapVideoEntries(related), max)
	return RelatedOutput{
		VideoID:      in.VideoID,
		TotalResults: len(videos),
		Videos:       videos,
	}, nil
}
