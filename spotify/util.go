package spotify

import (
	"strings"

	spot "github.com/zmb3/spotify/v2"

	"github.com/kswain/cochlea/cochlea"
)

// mapTrack converts a catalog track into the response shape. Both resolver
// tiers go through this one function so tracks look identical no matter
// which tier produced them.
func mapTrack(t spot.SimpleTrack) cochlea.Track {
	return cochlea.Track{
		ID:         string(t.ID),
		Title:      t.Name,
		Artist:     ConcatArtists(t.Artists),
		Album:      t.Album.Name,
		AlbumArt:   GetAlbumArt(t.Album),
		PreviewURL: optional(t.PreviewURL),
		SpotifyURL: t.ExternalURLs["spotify"],
		DurationMs: int(t.Duration),
	}
}

// ConcatArtists returns a comma-separated list of artist names.
func ConcatArtists(artists []spot.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// GetAlbumArt returns the first album image, or nil when the album has none.
func GetAlbumArt(a spot.SimpleAlbum) *string {
	if len(a.Images) == 0 {
		return nil
	}
	u := a.Images[0].URL
	return &u
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
