package innertube

import (
	"context"
	"fmt"
	"strings"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// fetchTranscript downloads a caption track in json3 format and flattens it
// to a bare segment list of {text, start_ms, duration} maps. json3 events
// without text spans are styling or window definitions and are skipped.
func (c *Client) fetchTranscript(ctx context.Context, baseURL string) (payload.Value, error) {
	raw, err := c.get(ctx, baseURL+"&fmt=json3")
	if err != nil {
		return payload.Value{}, fmt.Errorf("caption track fetch failed: %w", err)
	}

	track, err := payload.FromJSON(raw)
	if err != nil {
		return payload.Value{}, fmt.Errorf("caption track is not valid JSON: %w", err)
	}

	segments := make([]any, 0, 64)
	for _, event := range track.Get("events").List() {
		segs := event.Get("segs").List()
		if len(segs) == 0 {
			continue
		}
		var sb strings.Builder
		for _, seg := range segs {
			sb.WriteString(seg.Get("utf8").Str())
		}
		segments = append(segments, map[string]any{
			"text":     sb.String(),
			"start_ms": event.Get("tStartMs").Int(),
			"duration": event.Get("dDurationMs").Int(),
		})
	}
	return payload.New(segments), nil
}
