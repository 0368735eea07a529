package domain

import (
	"strings"
	"time"
)

// PlayerStatus represents the current state of the media player
type PlayerStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlayerStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlayerStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlayerStatus = "Stopped"
)

// MediaMetadata contains information about the currently playing media
type MediaMetadata struct {
	// Title of the currently playing track
	Title string
	// Artist name
	Artist string
	// Album name
	Album string
	// ArtUrl is the URL or local path to the album artwork
	ArtUrl string
	// Status is the current playback status
	Status PlayerStatus
	// Length is the track duration, zero when the player does not report it
	Length time.Duration
	// Position is the playback offset at the time the event was produced
	Position time.Duration
}

// SourceKind tells how an ImageSource should be resolved
type SourceKind int

const (
	// SourceNone is the zero value: no image was supplied
	SourceNone SourceKind = iota
	// SourceURL is an http(s) URL
	SourceURL
	// SourceDataURI is an inline "data:" URI
	SourceDataURI
	// SourcePath is a filesystem path (a "file://" prefix is accepted)
	SourcePath
	// SourceBytes is an in-memory encoded image
	SourceBytes
)

// ImageSource references an encoded image. The zero value means "absent".
type ImageSource struct {
	kind SourceKind
	ref  string
	data []byte
}

// SourceFromString classifies s as an http(s) URL, a data URI or a filesystem path.
// An empty or blank string yields the absent source.
func SourceFromString(s string) ImageSource {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return ImageSource{}
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return ImageSource{kind: SourceURL, ref: s}
	case strings.HasPrefix(lower, "data:"):
		return ImageSource{kind: SourceDataURI, ref: s}
	case strings.HasPrefix(lower, "file://"):
		return ImageSource{kind: SourcePath, ref: s[len("file://"):]}
	default:
		return ImageSource{kind: SourcePath, ref: s}
	}
}

// SourceFromBytes wraps an encoded image held in memory. Empty data yields the absent source.
func SourceFromBytes(data []byte) ImageSource {
	if len(data) == 0 {
		return ImageSource{}
	}
	return ImageSource{kind: SourceBytes, data: data}
}

// Kind returns how the source is resolved
func (s ImageSource) Kind() SourceKind { return s.kind }

// Ref returns the URL, data URI or path; empty for byte sources
func (s ImageSource) Ref() string { return s.ref }

// Data returns the in-memory payload of a byte source
func (s ImageSource) Data() []byte { return s.data }

// IsZero reports whether no image was supplied
func (s ImageSource) IsZero() bool { return s.kind == SourceNone }

// String describes the source for logs without dumping payloads
func (s ImageSource) String() string {
	switch s.kind {
	case SourceURL, SourcePath:
		return s.ref
	case SourceDataURI:
		if i := strings.IndexByte(s.ref, ','); i > 0 {
			return s.ref[:i] + ",..."
		}
		return "data:..."
	case SourceBytes:
		return "<bytes>"
	default:
		return "<none>"
	}
}

// CardOptions is the input of a card render. Every field is optional:
// nil numbers and empty strings take the card defaults.
type CardOptions struct {
	// Progress in percent, clamped to [10,100]
	Progress *float64
	// Name is the track label, truncated to 18 characters
	Name string
	// Author is the artist label, truncated to 18 characters
	Author string
	// StartTime and EndTime are drawn verbatim
	StartTime string
	EndTime   string

	ProgressBarColor string
	ProgressColor    string
	BackgroundColor  string
	NameColor        string
	AuthorColor      string
	TimeColor        string

	// ImageDarkness in percent, clamped to [0,100]
	ImageDarkness *float64

	// ThumbnailImage is drawn on the right side; absent renders a placeholder icon
	ThumbnailImage ImageSource
	// BackgroundImage fills the left panels; absent renders flat panels
	BackgroundImage ImageSource
}

// Float returns a pointer to v, for the optional numeric fields of CardOptions
func Float(v float64) *float64 { return &v }
