package youtube

import (
	"context"
	"errors"
	"testing"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playlistJSON = `{
	"id": "PLbest01",
	"info": {
		"title": "Best of Rick Astley",
		"description": "Greatest hits",
		"author": {"name": "Rick Astley", "id": "UCuAXFkgsw1L7xaCfnd5JJOw"},
		"total_items": "25",
		"view_count": "10M",
		"last_updated": "2023-01-01",
		"thumbnails": [{"url": "https://example.com/playlist.jpg"}],
		"is_editable": false,
		"privacy": "public"
	},
	"items": [
		{"id": "v1", "title": {"text": "One"}, "author": {"name": "Rick Astley", "id": "UCr"}, "duration": {"seconds": 212}},
		{"id": "v2", "title": {"text": "Two"}},
		{"id": "v3", "title": {"text": "Three"}},
		{"id": "v4", "title": {"text": "Four"}},
		{"id": "v5", "title": {"text": "Five"}}
	]
}`

func playlistClient(t *testing.T, raw string) *fakeClient {
	t.Helper()
	return &fakeClient{t: t, getPlaylist: func(ctx context.Context, playlistID string) (payload.Value, error) {
		return mustPayload(t, raw), nil
	}}
}

func TestGetPlaylist(t *testing.T) {
	svc := newTestService(playlistClient(t, playlistJSON))

	out, err := svc.GetPlaylist(context.Background(), PlaylistInput{PlaylistID: "PLbest01"})
	require.NoError(t, err)

	assert.Equal(t, PlaylistOutput{
		PlaylistID:  "PLbest01",
		Title:       "Best of Rick Astley",
		Description: "Greatest hits",
		Author:      "Rick Astley",
		ChannelID:   "UCuAXFkgsw1L7xaCfnd5JJOw",
		VideoCount:  25,
		ViewCount:   "10M",
		LastUpdated: "2023-01-01",
		Thumbnails:  []Thumbnail{{URL: "https://example.com/playlist.jpg"}},
		IsEditable:  false,
		Privacy:     "public",
	}, out)
}

func TestGetPlaylistViewCountFallback(t *testing.T) {
	// Older payloads put the view count under "views".
	svc := newTestService(playlistClient(t, `{"info": {"views": "7M"}}`))

	out, err := svc.GetPlaylist(context.Background(), PlaylistInput{PlaylistID: "PLx"})
	require.NoError(t, err)
	assert.Equal(t, "7M", out.ViewCount)
	assert.Equal(t, "PLx", out.PlaylistID)
	assert.Equal(t, "unknown", out.Privacy)
}

func TestGetPlaylistViewCountDefault(t *testing.T) {
	svc := newTestService(playlistClient(t, `{"info": {}}`))

	out, err := svc.GetPlaylist(context.Background(), PlaylistInput{PlaylistID: "PLx"})
	require.NoError(t, err)
	assert.Equal(t, "N/A", out.ViewCount)
}

func TestGetPlaylistItemsTruncatesWithPositions(t *testing.T) {
	svc := newTestService(playlistClient(t, playlistJSON))

	out, err := svc.GetPlaylistItems(context.Background(), PlaylistItemsInput{PlaylistID: "PLbest01", MaxResults: 3})
	require.NoError(t, err)

	assert.Equal(t, "PLbest01", out.PlaylistID)
	assert.Equal(t, 3, out.TotalResults)
	require.Len(t, out.Videos, 3)
	for i, item := range out.Videos {
		assert.Equal(t, i+1, item.Position)
	}
	assert.Equal(t, "v1", out.Videos[0].VideoID)
	assert.Equal(t, "One", out.Videos[0].Title)
	assert.Equal(t, int64(212), out.Videos[0].Duration)
	assert.Equal(t, "v3", out.Videos[2].VideoID)
}

func TestGetPlaylistItemsShorterThanMax(t *testing.T) {
	svc := newTestService(playlistClient(t, playlistJSON))

	out, err := svc.GetPlaylistItems(context.Background(), PlaylistItemsInput{PlaylistID: "PLbest01", MaxResults: 50})
	require.NoError(t, err)
	assert.Equal(t, 5, out.TotalResults)
	assert.Equal(t, 5, out.Videos[4].Position)
}

func TestGetPlaylistItemsEmpty(t *testing.T) {
	svc := newTestService(playlistClient(t, `{"id": "PLempty", "info": {}, "items": []}`))

	out, err := svc.GetPlaylistItems(context.Background(), PlaylistItemsInput{PlaylistID: "PLempty"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalResults)
	assert.Empty(t, out.Videos)
}

func TestGetPlaylistError(t *testing.T) {
	client := &fakeClient{t: t, getPlaylist: func(ctx context.Context, playlistID string) (payload.Value, error) {
		return payload.Value{}, errors.New("playlist is private")
	}}
	svc := newTestService(client)

	_, err := svc.GetPlaylist(context.Background(), PlaylistInput{PlaylistID: "PLsecret"})
	require.Error(t, err)
	assert.Equal(t, "Failed to get playlist: playlist is private", err.Error())

	_, err = svc.GetPlaylistItems(context.Background(), PlaylistItemsInput{PlaylistID: "PLsecret"})
	require.Error(t, err)
	assert.Equal(t, "Failed to get playlist items: playlist is private", err.Error())
}
