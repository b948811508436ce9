package youtube

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelPageJSON = `{
	"metadata": {
		"external_id": "UCuAXFkgsw1L7xaCfnd5JJOw",
		"title": "Rick Astley",
		"description": "Official channel",
		"subscriber_count": "3.5M",
		"video_count": 150,
		"view_count": "1.5B",
		"thumbnail": [{"url": "https://example.com/avatar.jpg"}],
		"is_verified": true,
		"vanity_channel_url": "https://youtube.com/@RickAstley"
	},
	"header": {
		"banner": [{"url": "https://example.com/banner.jpg"}]
	}
}`

func channelClient(t *testing.T, pageJSON, videosJSON string) *fakeClient {
	t.Helper()
	return &fakeClient{t: t, getChannel: func(ctx context.Context, channelID string) (ChannelPage, error) {
		page := &fakeChannelPage{page: mustPayload(t, pageJSON)}
		if videosJSON != "" {
			page.videos = mustPayload(t, videosJSON)
		}
		return page, nil
	}}
}

func TestGetChannel(t *testing.T) {
	svc := newTestService(channelClient(t, channelPageJSON, ""))

	out, err := svc.GetChannel(context.Background(), ChannelInput{ChannelID: "UCuAXFkgsw1L7xaCfnd5JJOw"})
	require.NoError(t, err)

	assert.Equal(t, ChannelOutput{
		ChannelID:       "UCuAXFkgsw1L7xaCfnd5JJOw",
		Title:           "Rick Astley",
		Description:     "Official channel",
		SubscriberCount: "3.5M",
		VideoCount:      150,
		ViewCount:       "1.5B",
		Thumbnails:      []Thumbnail{{URL: "https://example.com/avatar.jpg"}},
		Banners:         []Thumbnail{{URL: "https://example.com/banner.jpg"}},
		IsVerified:      true,
		CustomURL:       "https://youtube.com/@RickAstley",
	}, out)
}

func TestGetChannelDefaults(t *testing.T) {
	svc := newTestService(channelClient(t, `{"metadata": {}}`, ""))

	out, err := svc.GetChannel(context.Background(), ChannelInput{ChannelID: "UCabc"})
	require.NoError(t, err)

	// Hidden counters surface as "N/A"; the requested ID is echoed back.
	assert.Equal(t, "UCabc", out.ChannelID)
	assert.Equal(t, "N/A", out.SubscriberCount)
	assert.Equal(t, "N/A", out.ViewCount)
	assert.False(t, out.IsVerified)
}

func TestGetChannelError(t *testing.T) {
	client := &fakeClient{t: t, getChannel: func(ctx context.Context, channelID string) (ChannelPage, error) {
		return nil, errors.New("channel does not exist")
	}}
	svc := newTestService(client)

	_, err := svc.GetChannel(context.Background(), ChannelInput{ChannelID: "UCgone"})
	require.Error(t, err)
	assert.Equal(t, "Failed to get channel: channel does not exist", err.Error())
}

func TestListVideosTruncatesAfterMapping(t *testing.T) {
	videosJSON := `{"videos": [
		{"id": "v1", "title": {"text": "First"}, "view_count": {"text": "10 views"}},
		{"id": "v2", "title": {"text": "Second"}},
		{"id": "v3", "title": {"text": "Third"}},
		{"id": "v4", "title": {"text": "Fourth"}}
	]}`
	svc := newTestService(channelClient(t, channelPageJSON, videosJSON))

	out, err := svc.ListVideos(context.Background(), ChannelVideosInput{ChannelID: "UCx", MaxResults: 2})
	require.NoError(t, err)

	assert.Equal(t, "UCx", out.ChannelID)
	assert.Equal(t, 2, out.TotalResults)
	require.Len(t, out.Videos, 2)
	assert.Equal(t, "v1", out.Videos[0].VideoID)
	assert.Equal(t, "First", out.Videos[0].Title)
	assert.Equal(t, "10 views", out.Videos[0].ViewCount)
	assert.Equal(t, "v2", out.Videos[1].VideoID)
	// Channel uploads carry no author fields; the channel is implied.
	assert.Empty(t, out.Videos[0].Author)
}

func TestListVideosSubCallError(t *testing.T) {
	client := &fakeClient{t: t, getChannel: func(ctx context.Context, channelID string) (ChannelPage, error) {
		return &fakeChannelPage{
			page: mustPayload(t, channelPageJSON),
			err:  errors.New("videos tab unavailable"),
		}, nil
	}}
	svc := newTestService(client)

	_, err := svc.ListVideos(context.Background(), ChannelVideosInput{ChannelID: "UCx"})
	require.Error(t, err)
	assert.Equal(t, "Failed to list channel videos: videos tab unavailable", err.Error())
}

func TestListVideosRequiresChannelID(t *testing.T) {
	svc := newTestService(&fakeClient{t: t})
	_, err := svc.ListVideos(context.Background(), ChannelVideosInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channelId is required")
}
