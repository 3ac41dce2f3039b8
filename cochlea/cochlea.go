// Package cochlea holds the domain types shared across the service.
package cochlea

// MusicFeatures is the structured musical description of a mood, produced by
// the language model and consumed by the catalog query builder.
//
// Numeric fields are clamped to [0.0, 1.0] and nil slices are defaulted to
// empty before the value leaves the extractor.
type MusicFeatures struct {
	// Mood is a short list of mood words, e.g. ["melancholy", "wistful"].
	Mood []string `json:"mood"`
	// Energy is the perceived intensity and activity, 0.0 to 1.0.
	Energy float64 `json:"energy"`
	// Valence is the musical positiveness, 0.0 to 1.0.
	Valence float64 `json:"valence"`
	// TempoRange is [min_bpm, max_bpm]. Nil when the model returned a
	// malformed pair.
	TempoRange []int `json:"tempo_range"`
	// Genres are free-form genre names; they must pass genre normalization
	// before being sent to the catalog.
	Genres []string `json:"genres"`
	// Acousticness is acoustic vs electronic, 0.0 to 1.0.
	Acousticness float64 `json:"acousticness"`
	// Instrumentalness is vocals vs instrumental, 0.0 to 1.0.
	Instrumentalness float64 `json:"instrumentalness"`
	// VocalStyle is a free-text description of the vocals.
	VocalStyle string `json:"vocal_style"`
	// Keywords are free-form search terms for the fallback tier.
	Keywords []string `json:"keywords"`
}

// Track is one catalog result. Optional fields are nil when the provider
// omits them.
type Track struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Album      string  `json:"album"`
	AlbumArt   *string `json:"album_art"`
	PreviewURL *string `json:"preview_url"`
	SpotifyURL string  `json:"spotify_url"`
	DurationMs int     `json:"duration_ms"`
}

// Playlist is an ordered list of tracks. Empty is a valid playlist, not an
// error.
type Playlist []Track
