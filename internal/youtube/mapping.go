package youtube

import "github.com/acehoss/youtube-mcp-server/internal/payload"

// mapVideoEntry projects one loose hit (search result, trending/related/
// channel feed item) into the narrow VideoEntry shape. Title arrives either
// as a text object or a bare string depending on upstream version.
func mapVideoEntry(v payload.Value) VideoEntry {
	return VideoEntry{
		VideoID: v.Get("id").Str(),
		Title: v.FirstOf(
			payload.Path("title", "text"),
			payload.Path("title"),
		).Str(),
		Description: v.Get("snippets", 0, "text").Str(),
		Author:      v.Get("author", "name").Str(),
		ChannelID:   v.Get("author", "id").Str(),
		Duration:    v.Get("duration", "seconds").Int(),
		ViewCount:   strOr(v.Get("view_count", "text").Str(), "0"),
		PublishedAt: v.Get("published", "text").Str(),
		Thumbnails:  mapThumbnails(v.Get("thumbnails")),
	}
}

func mapVideoEntries(list payload.Value) []VideoEntry {
	items := list.List()
	out := make([]VideoEntry, 0, len(items))
	for _, item := range items {
		out = append(out, mapVideoEntry(item))
	}
	return out
}

func mapThumbnails(v payload.Value) []Thumbnail {
	items := v.List()
	out := make([]Thumbnail, 0, len(items))
	for _, item := range items {
		out = append(out, Thumbnail{
			URL:    item.Get("url").Str(),
			Width:  item.Get("width").Int(),
			Height: item.Get("height").Int(),
		})
	}
	return out
}

func strOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// truncateEntries caps an already-mapped sequence. Listing operations
// truncate here, client side, rather than passing a page size upstream.
func truncateEntries[T any](items []T, max int) []T {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
