package innertube

import (
	"context"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
	"github.com/acehoss/youtube-mcp-server/internal/youtube"
)

// Search runs a search query. Only video results are requested; other result
// types (channels, playlists, shelves) are filtered out server-side.
func (c *Client) Search(ctx context.Context, query string, opts youtube.SearchOptions) (payload.Value, error) {
	body := map[string]any{"query": query}
	if opts.Type == "" || opts.Type == "video" {
		body["params"] = videoSearchParams
	}
	resp, err := c.post(ctx, "search", body)
	if err != nil {
		return payload.Value{}, err
	}
	return entryList(collectRenderers(resp, "videoRenderer")), nil
}

// GetChannel fetches a channel's about page.
func (c *Client) GetChannel(ctx context.Context, channelID string) (youtube.ChannelPage, error) {
	resp, err := c.post(ctx, "browse", map[string]any{"browseId": channelID})
	if err != nil {
		return nil, err
	}

	meta := resp.Get("metadata", "channelMetadataRenderer")
	if meta.IsNil() {
		return nil, errNotFound("channel", channelID)
	}

	page := map[string]any{
		"metadata": map[string]any{
			"external_id":        meta.Get("externalId").Str(),
			"title":              meta.Get("title").Str(),
			"description":        meta.Get("description").Str(),
			"subscriber_count":   subscriberCount(resp),
			"video_count":        videoCount(resp),
			"view_count":         "",
			"thumbnail":          meta.Get("avatar", "thumbnails").Raw(),
			"is_verified":        channelIsVerified(resp),
			"vanity_channel_url": meta.Get("vanityChannelUrl").Str(),
		},
		"header": map[string]any{
			"banner": channelBanner(resp),
		},
	}

	return &channelPage{
		client:    c,
		channelID: channelID,
		data:      payload.New(page),
	}, nil
}

// subscriberCount reads the subscriber counter from either header layout.
// Channels can hide it, in which case this is "".
func subscriberCount(resp payload.Value) string {
	if s := text(resp.Get("header", "c4TabbedHeaderRenderer", "subscriberCountText")); s != "" {
		return s
	}
	// Newer pageHeaderViewModel layout puts counters in a metadata row list.
	rows := resp.Get("header", "pageHeaderRenderer", "content", "pageHeaderViewModel",
		"metadata", "contentMetadataViewModel", "metadataRows").List()
	for _, row := range rows {
		for _, part := range row.Get("metadataParts").List() {
			if s := part.Get("text", "content").Str(); s != "" {
				return s
			}
		}
	}
	return ""
}

func videoCount(resp payload.Value) int64 {
	return payload.New(text(resp.Get("header", "c4TabbedHeaderRenderer", "videosCountText"))).Int()
}

func channelIsVerified(resp payload.Value) bool {
	for _, badge := range resp.Get("header", "c4TabbedHeaderRenderer", "badges").List() {
		if badge.Get("metadataBadgeRenderer", "style").Str() == "BADGE_STYLE_TYPE_VERIFIED" {
			return true
		}
	}
	return false
}

func channelBanner(resp payload.Value) any {
	return resp.FirstOf(
		payload.Path("header", "c4TabbedHeaderRenderer", "banner", "thumbnails"),
		payload.Path("header", "pageHeaderRenderer", "content", "pageHeaderViewModel",
			"banner", "imageBannerViewModel", "image", "sources"),
	).Raw()
}

// channelPage is one fetched channel plus a lazy accessor for its uploads.
type channelPage struct {
	client    *Client
	channelID string
	data      payload.Value
}

func (p *channelPage) Payload() payload.Value { return p.data }

// GetVideos fetches the channel's Videos tab and flattens its renderers.
func (p *channelPage) GetVideos(ctx context.Context) (payload.Value, error) {
	resp, err := p.client.post(ctx, "browse", map[string]any{
		"browseId": p.channelID,
		"params":   videosTabParams,
	})
	if err != nil {
		return payload.Value{}, err
	}
	return entryList(collectRenderers(resp, "videoRenderer", "gridVideoRenderer")), nil
}

// GetPlaylist fetches a playlist. Browse wants the "VL" prefix on playlist
// IDs; callers pass the bare ID.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (payload.Value, error) {
	resp, err := c.post(ctx, "browse", map[string]any{"browseId": "VL" + playlistID})
	if err != nil {
		return payload.Value{}, err
	}

	header := resp.Get("header", "playlistHeaderRenderer")
	if header.IsNil() {
		return payload.Value{}, errNotFound("playlist", playlistID)
	}

	items := make([]any, 0, 16)
	for _, r := range collectRenderers(resp, "playlistVideoRenderer") {
		if entry, ok := videoEntry(r); ok {
			items = append(items, entry)
		}
	}

	owner := header.Get("ownerText")
	return payload.New(map[string]any{
		"id": header.Get("playlistId").Str(),
		"info": map[string]any{
			"title":       text(header.Get("title")),
			"description": text(header.Get("descriptionText")),
			"author": map[string]any{
				"name": text(owner),
				"id":   owner.Get("runs", 0, "navigationEndpoint", "browseEndpoint", "browseId").Str(),
			},
			"total_items":  text(header.Get("numVideosText")),
			"view_count":   text(header.Get("viewCountText")),
			"last_updated": playlistLastUpdated(header),
			"thumbnails":   header.Get("playlistHeaderBanner", "heroPlaylistThumbnailRenderer", "thumbnail", "thumbnails").Raw(),
			"is_editable":  header.Get("isEditable").Bool(),
			"privacy":      playlistPrivacy(header),
		},
		"items": items,
	}), nil
}

// playlistLastUpdated digs the "Updated ..." byline out of the header.
func playlistLastUpdated(header payload.Value) string {
	for _, b := range header.Get("byline").List() {
		if s := text(b.Get("playlistBylineRenderer", "text")); s != "" {
			return s
		}
	}
	return ""
}

func playlistPrivacy(header payload.Value) string {
	switch header.Get("privacy").Str() {
	case "PUBLIC":
		return "public"
	case "UNLISTED":
		return "unlisted"
	case "PRIVATE":
		return "private"
	}
	return ""
}

// GetTrending fetches the trending feed.
func (c *Client) GetTrending(ctx context.Context) (payload.Value, error) {
	resp, err := c.post(ctx, "browse", map[string]any{"browseId": trendingBrowseID})
	if err != nil {
		return payload.Value{}, err
	}
	return entryList(collectRenderers(resp, "videoRenderer", "gridVideoRenderer")), nil
}
