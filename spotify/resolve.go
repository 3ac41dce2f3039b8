package spotify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	spot "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"

	"github.com/kswain/cochlea/cochlea"
	"github.com/kswain/cochlea/genre"
)

const (
	playlistLimit = 20
	maxSeedGenres = 3
	maxKeywords   = 3

	defaultSeedGenre   = "pop"
	defaultSearchQuery = "music"

	// The recommendation endpoint treats an absent target as 0.5; a zero
	// value from the extractor gets the same treatment.
	defaultTarget = 0.5
)

// catalog is the slice of the Spotify API the resolver uses.
type catalog interface {
	GetRecommendations(ctx context.Context, seeds spot.Seeds, trackAttributes *spot.TrackAttributes, opts ...spot.RequestOption) (*spot.Recommendations, error)
	Search(ctx context.Context, query string, t spot.SearchType, opts ...spot.RequestOption) (*spot.SearchResult, error)
}

var _ catalog = (*spot.Client)(nil)

// Resolver turns a feature set into tracks using a two-tier strategy: a
// parameterized recommendation query first, a keyword search when it fails.
// A failed recommend tier is logged and never surfaced; only a failed search
// tier is returned to the caller.
type Resolver struct {
	client *SpotifyClient
	cat    catalog
	log    *zap.SugaredLogger
}

// NewResolver builds a Resolver on top of the shared catalog client.
func NewResolver(client *SpotifyClient, log *zap.SugaredLogger) *Resolver {
	return &Resolver{
		client: client,
		cat:    client.Client,
		log:    log,
	}
}

var ResolverOptions = NewResolver

// Configured reports whether catalog credentials are available.
func (r *Resolver) Configured() bool {
	return r.client.Configured()
}

// Resolve runs the two tiers in order and returns the first one's tracks.
func (r *Resolver) Resolve(ctx context.Context, features cochlea.MusicFeatures) (cochlea.Playlist, error) {
	tracks, err := r.recommend(ctx, features)
	if err == nil {
		return tracks, nil
	}
	r.log.Warnw("recommendation failed, falling back to search", "error", err)

	return r.search(ctx, features)
}

// recommend is the primary tier: numeric feature targets, tempo bounds and
// up to three normalized seed genres.
func (r *Resolver) recommend(ctx context.Context, f cochlea.MusicFeatures) (cochlea.Playlist, error) {
	attrs := spot.NewTrackAttributes().
		TargetEnergy(orDefault(f.Energy)).
		TargetValence(orDefault(f.Valence)).
		TargetAcousticness(orDefault(f.Acousticness)).
		TargetInstrumentalness(orDefault(f.Instrumentalness))
	if len(f.TempoRange) == 2 {
		attrs = attrs.MinTempo(float64(f.TempoRange[0])).MaxTempo(float64(f.TempoRange[1]))
	}

	seeds := genre.Seeds(f.Genres, maxSeedGenres)
	if len(seeds) == 0 {
		seeds = []string{defaultSeedGenre}
	}

	recs, err := r.cat.GetRecommendations(ctx, spot.Seeds{Genres: seeds}, attrs, spot.Limit(playlistLimit))
	if err != nil {
		return nil, fmt.Errorf("spotify: recommendations: %w", err)
	}

	tracks := make(cochlea.Playlist, 0, len(recs.Tracks))
	for _, t := range recs.Tracks {
		tracks = append(tracks, mapTrack(t))
	}
	return tracks, nil
}

// search is the fallback tier: a free-text query over keywords, mood and one
// normalized genre.
func (r *Resolver) search(ctx context.Context, f cochlea.MusicFeatures) (cochlea.Playlist, error) {
	results, err := r.cat.Search(ctx, searchQuery(f), spot.SearchTypeTrack, spot.Limit(playlistLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", cochlea.ErrCatalogSearch, providerMessage(err))
	}

	tracks := cochlea.Playlist{}
	if results.Tracks != nil {
		for _, t := range results.Tracks.Tracks {
			tracks = append(tracks, mapTrack(t.SimpleTrack))
		}
	}
	return tracks, nil
}

// searchQuery joins up to three keywords, the leading mood and one
// normalized genre with spaces.
func searchQuery(f cochlea.MusicFeatures) string {
	var terms []string
	for _, kw := range f.Keywords {
		if len(terms) == maxKeywords {
			break
		}
		if kw = strings.TrimSpace(kw); kw != "" {
			terms = append(terms, kw)
		}
	}
	if len(f.Mood) > 0 {
		if mood := strings.TrimSpace(f.Mood[0]); mood != "" {
			terms = append(terms, mood)
		}
	}
	if seeds := genre.Seeds(f.Genres, 1); len(seeds) > 0 {
		terms = append(terms, seeds[0])
	}

	if len(terms) == 0 {
		return defaultSearchQuery
	}
	return strings.Join(terms, " ")
}

func orDefault(v float64) float64 {
	if v == 0 {
		return defaultTarget
	}
	return v
}

// providerMessage pulls the catalog's own error message out of a zmb3 error
// when available.
func providerMessage(err error) string {
	var spotErr spot.Error
	if errors.As(err, &spotErr) && spotErr.Message != "" {
		return spotErr.Message
	}
	return err.Error()
}
