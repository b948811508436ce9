package youtube

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/acehoss/youtube-mcp-server/internal/payload"
)

// fakeClient scripts the underlying client per call. Nil funcs fail the
// test if reached.
type fakeClient struct {
	t           *testing.T
	getInfo     func(ctx context.Context, videoID string) (VideoInfo, error)
	search      func(ctx context.Context, query string, opts SearchOptions) (payload.Value, error)
	getChannel  func(ctx context.Context, channelID string) (ChannelPage, error)
	getPlaylist func(ctx context.Context, playlistID string) (payload.Value, error)
	getTrending func(ctx context.Context) (payload.Value, error)
}

func (f *fakeClient) GetInfo(ctx context.Context, videoID string) (VideoInfo, error) {
	if f.getInfo == nil {
		f.t.Fatal("unexpected GetInfo call")
	}
	return f.getInfo(ctx, videoID)
}

func (f *fakeClient) Search(ctx context.Context, query string, opts SearchOptions) (payload.Value, error) {
	if f.search == nil {
		f.t.Fatal("unexpected Search call")
	}
	return f.search(ctx, query, opts)
}

func (f *fakeClient) GetChannel(ctx context.Context, channelID string) (ChannelPage, error) {
	if f.getChannel == nil {
		f.t.Fatal("unexpected GetChannel call")
	}
	return f.getChannel(ctx, channelID)
}

func (f *fakeClient) GetPlaylist(ctx context.Context, playlistID string) (payload.Value, error) {
	if f.getPlaylist == nil {
		f.t.Fatal("unexpected GetPlaylist call")
	}
	return f.getPlaylist(ctx, playlistID)
}

func (f *fakeClient) GetTrending(ctx context.Context) (payload.Value, error) {
	if f.getTrending == nil {
		f.t.Fatal("unexpected GetTrending call")
	}
	return f.getTrending(ctx)
}

type fakeVideoInfo struct {
	info       payload.Value
	transcript payload.Value
	err        error
}

func (f *fakeVideoInfo) Payload() payload.Value { return f.info }

func (f *fakeVideoInfo) GetTranscript(ctx context.Context) (payload.Value, error) {
	if f.err != nil {
		return payload.Value{}, f.err
	}
	return f.transcript, nil
}

type fakeChannelPage struct {
	page   payload.Value
	videos payload.Value
	err    error
}

func (f *fakeChannelPage) Payload() payload.Value { return f.page }

func (f *fakeChannelPage) GetVideos(ctx context.Context) (payload.Value, error) {
	if f.err != nil {
		return payload.Value{}, f.err
	}
	return f.videos, nil
}

// newTestService wires a service whose factory always hands back client.
func newTestService(client Client) *Service {
	return NewService(func(ctx context.Context) (Client, error) {
		return client, nil
	})
}

// mustPayload decodes fixture JSON or fails the test.
func mustPayload(t *testing.T, raw string) payload.Value {
	t.Helper()
	v, err := payload.FromJSON([]byte(raw))
	if err != nil {
		t.Fatalf("bad fixture JSON: %v", err)
	}
	return v
}

// jsonString is a convenience for building fixtures from Go maps.
func jsonString(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(data)
}
