// youtube-mcp-server — YouTube data MCP server.
//
// Exposes read-only MCP tools over the unofficial Innertube API: video
// details, search, transcripts, channels, playlists, trending, and related
// videos. Runs as HTTP MCP server or stdio transport.
//
// No API key or quota is needed; the server speaks to youtube.com the way
// the web player does. The Innertube client is constructed lazily on the
// first tool call, so startup never blocks on YouTube being reachable.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/acehoss/youtube-mcp-server/internal/innertube"
	"github.com/acehoss/youtube-mcp-server/internal/youtube"
	"github.com/acehoss/youtube-mcp-server/internal/ytserver"
	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	slog.Info("starting youtube-mcp-server",
		slog.String("port", mcpPort),
	)

	svc := youtube.NewService(newInnertubeClient)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "youtube-mcp-server",
		Version: version,
	}, nil)

	ytserver.RegisterTools(server, svc)
	slog.Info("tools registered", slog.Int("count", 11))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "youtube-mcp-server",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      youtube.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func newInnertubeClient(_ context.Context) (youtube.Client, error) {
	c, err := innertube.New(innertube.Options{
		APIKey:        env.Str("YT_API_KEY", ""),
		ClientVersion: env.Str("YT_CLIENT_VERSION", ""),
		HL:            env.Str("YT_HL", "en"),
		GL:            env.Str("YT_GL", "US"),
		HTTPClient: &http.Client{
			Timeout: env.Duration("YT_HTTP_TIMEOUT", 15*time.Second),
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	})
	if err != nil {
		return nil, err
	}
	slog.Info("innertube client initialized",
		slog.String("hl", env.Str("YT_HL", "en")),
		slog.String("gl", env.Str("YT_GL", "US")),
	)
	return c, nil
}
