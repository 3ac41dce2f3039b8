// Package groq extracts structured musical features from free-text mood
// descriptions using Groq's OpenAI-compatible chat completion API.
package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kswain/cochlea/cochlea"
	"github.com/kswain/cochlea/config"
)

const (
	baseURL = "https://api.groq.com/openai/v1"
	model   = "llama-3.3-70b-versatile"

	// Bounded output and moderate sampling: some variety in the extracted
	// moods, stable enough to keep the JSON schema intact.
	maxTokens   = 512
	temperature = 0.7
)

const systemPrompt = `You are a music analysis expert. When given a mood or description, you extract musical characteristics that can be used to find matching songs on Spotify.

Always respond with ONLY valid JSON in the exact format specified. Do not include any other text, explanation, or markdown formatting.

The features you extract should map to Spotify's audio features:
- energy: 0.0 to 1.0 (intensity and activity)
- valence: 0.0 to 1.0 (musical positiveness/happiness)
- tempo_range: [min_bpm, max_bpm]
- acousticness: 0.0 to 1.0 (acoustic vs electronic)
- instrumentalness: 0.0 to 1.0 (vocals vs instrumental)`

const userPromptFormat = `Analyze this mood/description and extract musical characteristics:

"%s"

Return JSON in this exact format:
{
  "mood": ["mood1", "mood2", "mood3"],
  "energy": 0.0,
  "valence": 0.0,
  "tempo_range": [60, 120],
  "genres": ["genre1", "genre2", "genre3", "genre4"],
  "acousticness": 0.0,
  "instrumentalness": 0.0,
  "vocal_style": "description of vocal style or instrumental",
  "keywords": ["keyword1", "keyword2", "keyword3", "keyword4"]
}`

// chatCompleter is the slice of the openai client the extractor uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client turns prompts into MusicFeatures.
type Client struct {
	chat  chatCompleter
	model string
}

// ProvideGroq builds the Groq-backed extractor.
func ProvideGroq(cfg config.Config, log *zap.SugaredLogger) *Client {
	c := openai.DefaultConfig(cfg.GroqKey)
	c.BaseURL = baseURL

	log.Infow("setting up groq client", "model", model)

	return &Client{
		chat:  openai.NewClientWithConfig(c),
		model: model,
	}
}

var Options = ProvideGroq

// Extract sends the prompt to the language model and parses its reply.
// A malformed or partially-correct reply is a hard failure wrapping
// cochlea.ErrResponseParse; there is no partial-feature fallback.
func (c *Client) Extract(ctx context.Context, prompt string) (cochlea.MusicFeatures, error) {
	if strings.TrimSpace(prompt) == "" {
		return cochlea.MusicFeatures{}, cochlea.ErrEmptyPrompt
	}

	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPromptFormat, prompt)},
		},
	})
	if err != nil {
		return cochlea.MusicFeatures{}, fmt.Errorf("groq: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return cochlea.MusicFeatures{}, fmt.Errorf("groq: empty completion: %w", cochlea.ErrResponseParse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var features cochlea.MusicFeatures
	if err := json.Unmarshal([]byte(content), &features); err != nil {
		return cochlea.MusicFeatures{}, fmt.Errorf("groq: %w: %v", cochlea.ErrResponseParse, err)
	}

	sanitize(&features)
	return features, nil
}

// sanitize closes the trust gap on model output: numeric fields are clamped
// to [0, 1], nil slices are defaulted to empty, inverted tempo bounds are
// swapped and malformed tempo pairs dropped.
func sanitize(f *cochlea.MusicFeatures) {
	f.Energy = clamp01(f.Energy)
	f.Valence = clamp01(f.Valence)
	f.Acousticness = clamp01(f.Acousticness)
	f.Instrumentalness = clamp01(f.Instrumentalness)

	if f.Mood == nil {
		f.Mood = []string{}
	}
	if f.Genres == nil {
		f.Genres = []string{}
	}
	if f.Keywords == nil {
		f.Keywords = []string{}
	}

	if len(f.TempoRange) != 2 {
		f.TempoRange = nil
	} else if f.TempoRange[0] > f.TempoRange[1] {
		f.TempoRange[0], f.TempoRange[1] = f.TempoRange[1], f.TempoRange[0]
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
