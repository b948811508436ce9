package youtube

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the service.
var metrics struct {
	VideoRequests      atomic.Int64
	SearchRequests     atomic.Int64
	TranscriptRequests atomic.Int64
	ChannelRequests    atomic.Int64
	PlaylistRequests   atomic.Int64
	TrendingRequests   atomic.Int64
	RelatedRequests    atomic.Int64
	InitFailures       atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"video_requests":      metrics.VideoRequests.Load(),
		"search_requests":     metrics.SearchRequests.Load(),
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"channel_requests":    metrics.ChannelRequests.Load(),
		"playlist_requests":   metrics.PlaylistRequests.Load(),
		"trending_requests":   metrics.TrendingRequests.Load(),
		"related_requests":    metrics.RelatedRequests.Load(),
		"init_failures":       metrics.InitFailures.Load(),
	}
}

// FormatMetrics returns counters as simple text for the HTTP metrics endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"video_requests", "search_requests", "transcript_requests",
		"channel_requests", "playlist_requests",
		"trending_requests", "related_requests",
		"init_failures",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func incrVideoRequests()      { metrics.VideoRequests.Add(1) }
func incrSearchRequests()     { metrics.SearchRequests.Add(1) }
func incrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func incrChannelRequests()    { metrics.ChannelRequests.Add(1) }
func incrPlaylistRequests()   { metrics.PlaylistRequests.Add(1) }
func incrTrendingRequests()   { metrics.TrendingRequests.Add(1) }
func incrRelatedRequests()    { metrics.RelatedRequests.Add(1) }
func incrInitFailures()       { metrics.InitFailures.Add(1) }
