package youtube

import (
	"context"
	"fmt"
)

// SearchVideos runs a video-typed search. The hit list is mapped in full:
// the upstream call already returns one bounded page, so this layer does
// not truncate to MaxResults, and TotalResults is the full hit count.
// Zero hits is a valid empty result.
func (s *Service) SearchVideos(ctx context.Context, in SearchInput) (SearchOutput, error) {
	if in.Query == "" {
		return SearchOutput{}, fmt.Errorf("query is required")
	}
	incrSearchRequests()

	client, err := s.ensureReady(ctx)
	if err != nil {
		return SearchOutput{}, err
	}

	result, err := client.Search(ctx, in.Query, SearchOptions{Type: "video"})
	if err != nil {
		return SearchOutput{}, opErr("search videos", err)
	}

	videos := mapVideoEntries(result.Get("videos"))
	return SearchOutput{
		Query:        in.Query,
		TotalResults: len(videos),
		Videos:       videos,
	}, nil
}
