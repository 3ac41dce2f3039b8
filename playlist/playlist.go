// Package playlist sequences feature extraction and track resolution into
// the generate-playlist pipeline.
package playlist

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kswain/cochlea/cochlea"
)

// FeatureExtractor turns a prompt into structured musical features.
type FeatureExtractor interface {
	Extract(ctx context.Context, prompt string) (cochlea.MusicFeatures, error)
}

// TrackResolver turns features into tracks.
type TrackResolver interface {
	Configured() bool
	Resolve(ctx context.Context, features cochlea.MusicFeatures) (cochlea.Playlist, error)
}

// Result is the generate-playlist payload.
type Result struct {
	Features cochlea.MusicFeatures `json:"features"`
	Playlist cochlea.Playlist      `json:"playlist"`
	Message  string                `json:"message"`
}

const (
	msgNotConfigured = "features extracted but spotify is not configured"
	msgLookupFailed  = "features extracted but spotify lookup failed"
	msgNoTracks      = "no matching tracks found for your description"
)

// Service orchestrates the pipeline. Feature extraction is mandatory: if it
// fails, the whole operation fails. The catalog lookup is best effort and
// degrades to an empty playlist with a distinguishing message.
type Service struct {
	extractor FeatureExtractor
	resolver  TrackResolver
	log       *zap.SugaredLogger
}

// NewService constructs a Service.
func NewService(extractor FeatureExtractor, resolver TrackResolver, log *zap.SugaredLogger) *Service {
	return &Service{
		extractor: extractor,
		resolver:  resolver,
		log:       log,
	}
}

// Generate runs the pipeline for one prompt.
func (s *Service) Generate(ctx context.Context, prompt string) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return Result{}, cochlea.ErrEmptyPrompt
	}

	s.log.Infow("extracting features", "prompt", prompt)
	features, err := s.extractor.Extract(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("playlist: extract features: %w", err)
	}

	result := Result{
		Features: features,
		Playlist: cochlea.Playlist{},
	}

	if !s.resolver.Configured() {
		s.log.Info("spotify credentials not configured, skipping track resolution")
		result.Message = msgNotConfigured
		return result, nil
	}

	tracks, err := s.resolver.Resolve(ctx, features)
	if err != nil {
		s.log.Warnw("track resolution failed", "error", err)
		result.Message = msgLookupFailed
		return result, nil
	}

	result.Playlist = tracks
	if len(tracks) == 0 {
		result.Message = msgNoTracks
	} else {
		result.Message = fmt.Sprintf("generated %d tracks based on your description", len(tracks))
	}
	return result, nil
}
