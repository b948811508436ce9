package innertube

import (
	"strings"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// Renderer trees move around between client versions, so everything here is
// best-effort: a hit that cannot be read yields a partial entry, and only
// entries without a video ID are dropped.

// text reads an Innertube text object, which is either
// {"simpleText": "..."} or {"runs": [{"text": "..."}, ...]}.
func text(v payload.Value) string {
	if s := v.Get("simpleText").Str(); s != "" {
		return s
	}
	runs := v.Get("runs").List()
	if len(runs) == 0 {
		return v.Str()
	}
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.Get("text").Str())
	}
	return sb.String()
}

// videoEntry converts one video renderer (videoRenderer,
// compactVideoRenderer, gridVideoRenderer) into the loose hit shape the
// service maps. Returns false when there is no video ID.
func videoEntry(r payload.Value) (map[string]any, bool) {
	id := r.Get("videoId").Str()
	if id == "" {
		return nil, false
	}

	title := text(r.FirstOf(
		payload.Path("title"),
		payload.Path("headline"),
	))

	snippet := text(r.FirstOf(
		payload.Path("detailedMetadataSnippets", 0, "snippetText"),
		payload.Path("descriptionSnippet"),
	))

	byline := r.FirstOf(
		payload.Path("ownerText"),
		payload.Path("longBylineText"),
		payload.Path("shortBylineText"),
	)

	entry := map[string]any{
		"id":    id,
		"title": map[string]any{"text": title},
		"author": map[string]any{
			"name": text(byline),
			"id":   byline.Get("runs", 0, "navigationEndpoint", "browseEndpoint", "browseId").Str(),
		},
		"duration":   map[string]any{"seconds": durationSeconds(r)},
		"view_count": map[string]any{"text": text(r.FirstOf(payload.Path("viewCountText"), payload.Path("shortViewCountText")))},
		"published":  map[string]any{"text": text(r.Get("publishedTimeText"))},
		"thumbnails": r.Get("thumbnail", "thumbnails").Raw(),
	}
	if snippet != "" {
		entry["snippets"] = []any{map[string]any{"text": snippet}}
	}
	return entry, true
}

// durationSeconds reads a renderer's length, preferring the raw seconds
// field over display text like "1:02:33".
func durationSeconds(r payload.Value) int64 {
	if secs := r.Get("lengthSeconds").Int(); secs > 0 {
		return secs
	}
	return parseDurationText(text(r.Get("lengthText")))
}

// parseDurationText converts "M:SS" / "H:MM:SS" display text to seconds.
// Unparseable input yields 0.
func parseDurationText(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var total int64
	for _, part := range strings.Split(s, ":") {
		n := payload.New(strings.TrimSpace(part)).Int()
		total = total*60 + n
	}
	return total
}

// collectRenderers walks the response tree and gathers every map stored
// under one of the given renderer keys. List order is preserved.
func collectRenderers(node payload.Value, keys ...string) []payload.Value {
	var out []payload.Value
	walkRenderers(node.Raw(), keys, &out)
	return out
}

func walkRenderers(node any, keys []string, out *[]payload.Value) {
	switch n := node.(type) {
	case map[string]any:
		for _, key := range keys {
			if r, ok := n[key].(map[string]any); ok {
				*out = append(*out, payload.New(r))
			}
		}
		for _, v := range n {
			walkRenderers(v, keys, out)
		}
	case []any:
		for _, v := range n {
			walkRenderers(v, keys, out)
		}
	}
}

// entryList maps renderers into the {"videos": [...]} payload the service
// consumes.
func entryList(renderers []payload.Value) payload.Value {
	videos := make([]any, 0, len(renderers))
	for _, r := range renderers {
		if entry, ok := videoEntry(r); ok {
			videos = append(videos, entry)
		}
	}
	return payload.New(map[string]any{"videos": videos})
}
