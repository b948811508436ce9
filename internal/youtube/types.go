package youtube

// --- Tool inputs ---

type VideoInput struct {
	VideoID string `json:"videoId" jsonschema:"YouTube video ID (e.g. dQw4w9WgXcQ)"`
}

type SearchInput struct {
	Query      string `json:"query" jsonschema:"Search query"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results (default: 20)"`
}

type TranscriptInput struct {
	VideoID  string `json:"videoId" jsonschema:"YouTube video ID"`
	Language string `json:"language,omitempty" jsonschema:"Preferred transcript language code (default: en)"`
}

type SearchTranscriptInput struct {
	VideoID  string `json:"videoId" jsonschema:"YouTube video ID"`
	Query    string `json:"query" jsonschema:"Text to find within the transcript"`
	Language string `json:"language,omitempty" jsonschema:"Preferred transcript language code (default: en)"`
}

type ChannelInput struct {
	ChannelID string `json:"channelId" jsonschema:"YouTube channel ID (UC...)"`
}

type ChannelVideosInput struct {
	ChannelID  string `json:"channelId" jsonschema:"YouTube channel ID (UC...)"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of videos (default: 50)"`
}

type PlaylistInput struct {
	PlaylistID string `json:"playlistId" jsonschema:"YouTube playlist ID (PL...)"`
}

type PlaylistItemsInput struct {
	PlaylistID string `json:"playlistId" jsonschema:"YouTube playlist ID (PL...)"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of items (default: 50)"`
}

type TrendingInput struct {
	RegionCode string `json:"regionCode,omitempty" jsonschema:"Two-letter region code (default: US)"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of videos (default: 20)"`
}

type RelatedInput struct {
	VideoID    string `json:"videoId" jsonschema:"YouTube video ID"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of videos (default: 20)"`
}

// --- Flat result shapes ---
// JSON field names mirror the wire contract of the protocol adapter
// (camelCase), not Go struct conventions.

// Thumbnail is one image variant of a video, channel, or playlist.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int64  `json:"width,omitempty"`
	Height int64  `json:"height,omitempty"`
}

// VideoOutput is the full flat projection of one video.
type VideoOutput struct {
	VideoID     string      `json:"videoId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Author      string      `json:"author"`
	ChannelID   string      `json:"channelId"`
	Duration    int64       `json:"duration"` // seconds
	ViewCount   int64       `json:"viewCount"`
	LikeCount   int64       `json:"likeCount"`
	PublishedAt string      `json:"publishedAt"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
	IsLive      bool        `json:"isLive"`
	IsPrivate   bool        `json:"isPrivate"`
	IsUnlisted  bool        `json:"isUnlisted"`
	Category    string      `json:"category"`
	Keywords    []string    `json:"keywords"`
	EmbedURL    string      `json:"embedHtml,omitempty"`
}

// VideoEntry is the narrower per-hit shape used by search, trending,
// related, and channel listings. Unlike VideoOutput it has no like count or
// live/private flags, and the view count is upstream display text.
type VideoEntry struct {
	VideoID     string      `json:"videoId"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Author      string      `json:"author,omitempty"`
	ChannelID   string      `json:"channelId,omitempty"`
	Duration    int64       `json:"duration"` // seconds
	ViewCount   string      `json:"viewCount"`
	PublishedAt string      `json:"publishedAt"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
}

type SearchOutput struct {
	Query        string       `json:"query"`
	TotalResults int          `json:"totalResults"`
	Videos       []VideoEntry `json:"videos"`
}

// TranscriptSegment is one timed caption unit. Offset and Duration are
// milliseconds, never negative.
type TranscriptSegment struct {
	Text     string `json:"text"`
	Offset   int64  `json:"offset"`
	Duration int64  `json:"duration"`
}

type TranscriptOutput struct {
	VideoID    string              `json:"videoId"`
	Language   string              `json:"language"` // resolved, may differ from requested
	Transcript []TranscriptSegment `json:"transcript"`
}

type SearchTranscriptOutput struct {
	VideoID      string              `json:"videoId"`
	Query        string              `json:"query"`
	Matches      []TranscriptSegment `json:"matches"`
	TotalMatches int                 `json:"totalMatches"`
}

// TimestampedSegment adds a human-readable M:SS timestamp to a segment.
type TimestampedSegment struct {
	Timestamp   string `json:"timestamp"`
	Text        string `json:"text"`
	StartTimeMs int64  `json:"startTimeMs"`
	DurationMs  int64  `json:"durationMs"`
}

type TimestampedTranscriptOutput struct {
	VideoID    string               `json:"videoId"`
	Language   string               `json:"language"`
	Transcript []TimestampedSegment `json:"timestampedTranscript"`
}

type ChannelOutput struct {
	ChannelID       string      `json:"channelId"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	SubscriberCount string      `json:"subscriberCount"`
	VideoCount      int64       `json:"videoCount"`
	ViewCount       string      `json:"viewCount"`
	Thumbnails      []Thumbnail `json:"thumbnails"`
	Banners         []Thumbnail `json:"banners"`
	IsVerified      bool        `json:"isVerified"`
	CustomURL       string      `json:"customUrl"`
}

type ChannelVideosOutput struct {
	ChannelID    string       `json:"channelId"`
	TotalResults int          `json:"totalResults"`
	Videos       []VideoEntry `json:"videos"`
}

type PlaylistOutput struct {
	PlaylistID  string      `json:"playlistId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Author      string      `json:"author"`
	ChannelID   string      `json:"channelId"`
	VideoCount  int64       `json:"videoCount"`
	ViewCount   string      `json:"viewCount"`
	LastUpdated string      `json:"lastUpdated"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
	IsEditable  bool        `json:"isEditable"`
	Privacy     string      `json:"privacy"`
}

// PlaylistItem carries a 1-based position reflecting source order.
type PlaylistItem struct {
	Position   int         `json:"position"`
	VideoID    string      `json:"videoId"`
	Title      string      `json:"title"`
	Author     string      `json:"author"`
	ChannelID  string      `json:"channelId"`
	Duration   int64       `json:"duration"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type PlaylistItemsOutput struct {
	PlaylistID   string         `json:"playlistId"`
	TotalResults int            `json:"totalResults"`
	Videos       []PlaylistItem `json:"videos"`
}

type TrendingOutput struct {
	RegionCode   string       `json:"regionCode"`
	TotalResults int          `json:"totalResults"`
	Videos       []VideoEntry `json:"videos"`
}

type RelatedOutput struct {
	VideoID      string       `json:"videoId"`
	TotalResults int          `json:"totalResults"`
	Videos       []VideoEntry `json:"videos"`
}
