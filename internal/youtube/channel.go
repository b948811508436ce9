package youtube

import (
	"context"
	"fmt"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// GetChannel fetches channel metadata. Subscriber and view counts are
// upstream display text; "N/A" stands in when the channel hides them.
func (s *Service) GetChannel(ctx context.Context, in ChannelInput) (ChannelOutput, error) {
	if in.ChannelID == "" {
		return ChannelOutput{}, fmt.Errorf("channelId is required")
	}
	incrChannelRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return ChannelOutput{}, err
	}

	channel, err := client.GetChannel(ctx, in.ChannelID)
	if err != nil {
		return ChannelOutput{}, opErr("get channel", err)
	}

	meta := channel.Payload().Get("metadata")
	return ChannelOutput{
		ChannelID:       strOr(meta.Get("external_id").Str(), in.ChannelID),
		Title:           meta.Get("title").Str(),
		Description:     meta.Get("description").Str(),
		SubscriberCount: strOr(meta.Get("subscriber_count").Str(), "N/A"),
		VideoCount:      meta.Get("video_count").Int(),
		ViewCount:       strOr(meta.Get("view_count").Str(), "N/A"),
		Thumbnails:      mapThumbnails(meta.Get("thumbnail")),
		Banners:         mapThumbnails(channel.Payload().Get("header", "banner")),
		IsVerified:      meta.Get("is_verified").Bool(),
		CustomURL:       meta.Get("vanity_channel_url").Str(),
	}, nil
}

// ListVideos returns a channel's uploads, mapped then truncated to
// MaxResults. Truncation is deliberately client-side: the videos-tab
// sub-call takes no page size, so the fetched page is trimmed after mapping.
func (s *Service) ListVideos(ctx context.Context, in ChannelVideosInput) (ChannelVideosOutput, error) {
	if in.ChannelID == "" {
		return ChannelVideosOutput{}, fmt.Errorf("channelId is required")
	}
	max := in.MaxResults
	if max <= 0 {
		max = defaultListResults
	}
	incrChannelRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return ChannelVideosOutput{}, err
	}

	channel, err := client.GetChannel(ctx, in.ChannelID)
	if err != nil {
		return ChannelVideosOutput{}, opErr("list channel videos", err)
	}

	videosTab, err := channel.GetVideos(ctx)
	if err != nil {
		return ChannelVideosOutput{}, opErr("list channel videos", err)
	}

	videos := truncateEntries(mapChannelVideos(videosTab.Get("videos")), max)
	return ChannelVideosOutput{
		ChannelID:    in.ChannelID,
		TotalResults: len(videos),
		Videos:       videos,
	}, nil
}

// mapChannelVideos projects uploads-tab hits. Channel listings carry no
// author fields — the channel is implied — so the entries stay narrower
// than search hits.
func mapChannelVideos(list payload.Value) []VideoEntry {
	items := list.List()
	out := make([]VideoEntry, 0, len(items))
	for _, item := range items {
		out = append(out, VideoEntry{
			VideoID: item.Get("id").Str(),
			Title: item.FirstOf(
				payload.Path("title", "text"),
				payload.Path("title"),
			).Str(),
			Description: item.Get("snippets", 0, "text").Str(),
			Duration:    item.Get("duration", "seconds").Int(),
			ViewCount:   strOr(item.Get("view_count", "text").Str(), "0"),
			PublishedAt: item.Get("published", "text").Str(),
			Thumbnails:  mapThumbnails(item.Get("thumbnails")),
		})
	}
	return out
}
