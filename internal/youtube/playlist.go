package youtube

import (
	"context"
	"fmt"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// GetPlaylist fetches playlist metadata. The view count has moved between
// two field names upstream, hence the fallback pair.
func (s *Service) GetPlaylist(ctx context.Context, in PlaylistInput) (PlaylistOutput, error) {
	if in.PlaylistID == "" {
		return PlaylistOutput{}, fmt.Errorf("playlistId is required")
	}
	incrPlaylistRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return PlaylistOutput{}, err
	}

	list, err := client.GetPlaylist(ctx, in.PlaylistID)
	if err != nil {
		return PlaylistOutput{}, opErr("get playlist", err)
	}

	info := list.Get("info")
	return PlaylistOutput{
		PlaylistID:  strOr(list.Get("id").Str(), in.PlaylistID),
		Title:       info.Get("title").Str(),
		Description: info.Get("description").Str(),
		Author:      info.Get("author", "name").Str(),
		ChannelID:   info.Get("author", "id").Str(),
		VideoCount:  info.Get("total_items").Int(),
		ViewCount: strOr(info.FirstOf(
			payload.Path("view_count"),
			payload.Path("views"),
		).Str(), "N/A"),
		LastUpdated: info.Get("last_updated").Str(),
		Thumbnails:  mapThumbnails(info.Get("thumbnails")),
		IsEditable:  info.Get("is_editable").Bool(),
		Privacy:     strOr(info.Get("privacy").Str(), "unknown"),
	}, nil
}

// GetPlaylistItems returns playlist entries mapped then truncated to
// MaxResults, with 1-based positions assigned over the truncated,
// order-preserved sequence.
func (s *Service) GetPlaylistItems(ctx context.Context, in PlaylistItemsInput) (PlaylistItemsOutput, error) {
	if in.PlaylistID == "" {
		return PlaylistItemsOutput{}, fmt.Errorf("playlistId is required")
	}
	max := in.MaxResults
	if max <= 0 {
		max = defaultListResults
	}
	incrPlaylistRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return PlaylistItemsOutput{}, err
	}

	list, err := client.GetPlaylist(ctx, in.PlaylistID)
	if err != nil {
		return PlaylistItemsOutput{}, opErr("get playlist items", err)
	}

	items := truncateEntries(list.Get("items").List(), max)
	videos := make([]PlaylistItem, 0, len(items))
	for i, item := range items {
		videos = append(videos, PlaylistItem{
			Position: i + 1,
			VideoID:  item.Get("id").Str(),
			Title: item.FirstOf(
				payload.Path("title", "text"),
				payload.Path("title"),
			).Str(),
			Author:     item.Get("author", "name").Str(),
			ChannelID:  item.Get("author", "id").Str(),
			Duration:   item.Get("duration", "seconds").Int(),
			Thumbnails: mapThumbnails(item.Get("thumbnails")),
		})
	}

	return PlaylistItemsOutput{
		PlaylistID:   in.PlaylistID,
		TotalResults: len(videos),
		Videos:       videos,
	}, nil
}
