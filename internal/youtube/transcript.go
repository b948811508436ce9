package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// GetTranscript fetches a video's transcript.
//
// Track selection: case-insensitive exact match on the requested language
// code, else the first caption track — so the resolved language in the
// output may differ from the request. A video with no caption tracks at all
// yields ErrNoTranscript (wrapped); everything else that goes wrong is a
// generic "get transcript" failure.
//
// The transcript body shape is not stable across upstream versions. Three
// shapes are tolerated, in order: segments nested under
// transcript.content.body, under a top-level content.body, or the payload
// itself already being a segment list. None matching means an empty
// transcript, which is valid output.
func (s *Service) GetTranscript(ctx context.Context, in TranscriptInput) (TranscriptOutput, error) {
	if in.VideoID == "" {
		return TranscriptOutput{}, fmt.Errorf("videoId is required")
	}
	language := strOr(in.Language, defaultLanguage)
	incrTranscriptRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return TranscriptOutput{}, err
	}

	info, err := client.GetInfo(ctx, in.VideoID)
	if err != nil {
		return TranscriptOutput{}, opErr("get transcript", err)
	}

	tracks := info.Payload().Get("captions", "caption_tracks").List()
	if len(tracks) == 0 {
		return TranscriptOutput{}, opErr("get transcript", ErrNoTranscript)
	}

	resolved := selectTrackLanguage(tracks, language)

	raw, err := info.GetTranscript(ctx)
	if err != nil {
		return TranscriptOutput{}, opErr("get transcript", err)
	}

	segments := make([]TranscriptSegment, 0)
	for _, seg := range extractSegments(raw) {
		segments = append(segments, normalizeSegment(seg))
	}

	return TranscriptOutput{
		VideoID:    in.VideoID,
		Language:   resolved,
		Transcript: segments,
	}, nil
}

// SearchTranscript returns the transcript segments containing query as a
// case-insensitive substring. No matches is a valid empty result.
func (s *Service) SearchTranscript(ctx context.Context, in SearchTranscriptInput) (SearchTranscriptOutput, error) {
	if in.Query == "" {
		return SearchTranscriptOutput{}, fmt.Errorf("query is required")
	}

	transcript, err := s.GetTranscript(ctx, TranscriptInput{VideoID: in.VideoID, Language: in.Language})
	if err != nil {
		return SearchTranscriptOutput{}, wrapDelegated("search transcript", err)
	}

	needle := strings.ToLower(in.Query)
	matches := make([]TranscriptSegment, 0)
	for _, seg := range transcript.Transcript {
		if strings.Contains(strings.ToLower(seg.Text), needle) {
			matches = append(matches, seg)
		}
	}

	return SearchTranscriptOutput{
		VideoID:      in.VideoID,
		Query:        in.Query,
		Matches:      matches,
		TotalMatches: len(matches),
	}, nil
}

// GetTimestampedTranscript returns the transcript with each segment's offset
// rendered as M:SS (seconds zero-padded, minutes not — "9:05" and "61:03"
// are both valid).
func (s *Service) GetTimestampedTranscript(ctx context.Context, in TranscriptInput) (TimestampedTranscriptOutput, error) {
	transcript, err := s.GetTranscript(ctx, in)
	if err != nil {
		return TimestampedTranscriptOutput{}, wrapDelegated("get timestamped transcript", err)
	}

	segments := make([]TimestampedSegment, 0, len(transcript.Transcript))
	for _, seg := range transcript.Transcript {
		segments = append(segments, TimestampedSegment{
			Timestamp:   formatTimestamp(seg.Offset),
			Text:        seg.Text,
			StartTimeMs: seg.Offset,
			DurationMs:  seg.Duration,
		})
	}

	return TimestampedTranscriptOutput{
		VideoID:    transcript.VideoID,
		Language:   transcript.Language,
		Transcript: segments,
	}, nil
}

// selectTrackLanguage picks the caption track matching the requested
// language code case-insensitively, falling back to the first track.
func selectTrackLanguage(tracks []payload.Value, language string) string {
	for _, track := range tracks {
		code := track.Get("language_code").Str()
		if strings.EqualFold(code, language) {
			return code
		}
	}
	return tracks[0].Get("language_code").Str()
}

// extractSegments probes the supported transcript body shapes in order;
// first shape yielding a list wins.
func extractSegments(raw payload.Value) []payload.Value {
	body := raw.FirstOf(
		payload.Path("transcript", "content", "body", "initial_segments"),
		payload.Path("content", "body", "initial_segments"),
	)
	if !body.IsNil() {
		return body.List()
	}
	if raw.IsList() {
		return raw.List()
	}
	return nil
}

// normalizeSegment flattens one raw segment. Text comes from snippet.text or
// a plain text field; offset from start_ms or offset; duration from an
// explicit duration field, else end_ms-start_ms when both are present, else
// zero.
func normalizeSegment(seg payload.Value) TranscriptSegment {
	offset := seg.FirstOf(
		payload.Path("start_ms"),
		payload.Path("offset"),
	).Int()

	duration := seg.Get("duration").Int()
	if seg.Get("duration").IsNil() {
		start := seg.Get("start_ms")
		end := seg.Get("end_ms")
		if !start.IsNil() && !end.IsNil() {
			duration = end.Int() - start.Int()
		}
	}
	if offset < 0 {
		offset = 0
	}
	if duration < 0 {
		duration = 0
	}

	return TranscriptSegment{
		Text: seg.FirstOf(
			payload.Path("snippet", "text"),
			payload.Path("text"),
		).Str(),
		Offset:   offset,
		Duration: duration,
	}
}

func formatTimestamp(offsetMs int64) string {
	totalSeconds := offsetMs / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// wrapDelegated tags a failure bubbling out of the delegated GetTranscript
// call with the outer operation's prefix. The inner error stays reachable
// through Unwrap, so ErrNoTranscript and InitializationError remain
// distinguishable with errors.Is / errors.As.
func wrapDelegated(op string, err error) error {
	return opErr(op, err)
}
