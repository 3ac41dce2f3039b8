package groq

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kswain/cochlea/cochlea"
)

type fakeChat struct {
	content string
	err     error
	calls   int
	req     openai.ChatCompletionRequest
}

func (f *fakeChat) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

const validFeatures = `{
  "mood": ["melancholy", "wistful"],
  "energy": 0.2,
  "valence": 0.3,
  "tempo_range": [60, 90],
  "genres": ["lo-fi", "chill"],
  "acousticness": 0.8,
  "instrumentalness": 0.6,
  "vocal_style": "soft and distant",
  "keywords": ["rainy", "afternoon"]
}`

func TestExtract(t *testing.T) {
	chat := &fakeChat{content: validFeatures}
	c := &Client{chat: chat, model: model}

	got, err := c.Extract(context.Background(), "melancholy rainy afternoon")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := cochlea.MusicFeatures{
		Mood:             []string{"melancholy", "wistful"},
		Energy:           0.2,
		Valence:          0.3,
		TempoRange:       []int{60, 90},
		Genres:           []string{"lo-fi", "chill"},
		Acousticness:     0.8,
		Instrumentalness: 0.6,
		VocalStyle:       "soft and distant",
		Keywords:         []string{"rainy", "afternoon"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("features = %+v; want %+v", got, want)
	}

	if chat.req.Model != model {
		t.Errorf("model = %q; want %q", chat.req.Model, model)
	}
	if len(chat.req.Messages) != 2 {
		t.Fatalf("messages = %d; want 2", len(chat.req.Messages))
	}
	if chat.req.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message role = %q; want system", chat.req.Messages[0].Role)
	}
	if !strings.Contains(chat.req.Messages[1].Content, `"melancholy rainy afternoon"`) {
		t.Error("user message does not embed the prompt")
	}
}

func TestExtractEmptyPrompt(t *testing.T) {
	chat := &fakeChat{content: validFeatures}
	c := &Client{chat: chat, model: model}

	_, err := c.Extract(context.Background(), "   ")
	if !errors.Is(err, cochlea.ErrEmptyPrompt) {
		t.Fatalf("err = %v; want ErrEmptyPrompt", err)
	}
	if chat.calls != 0 {
		t.Errorf("completion called %d times for an empty prompt", chat.calls)
	}
}

func TestExtractMalformedJSON(t *testing.T) {
	cases := []string{
		"the mood is sad, here you go: {",
		`{"mood": ["a"], "energy": }`,
		"",
	}

	for _, content := range cases {
		c := &Client{chat: &fakeChat{content: content}, model: model}
		_, err := c.Extract(context.Background(), "sad songs")
		if !errors.Is(err, cochlea.ErrResponseParse) {
			t.Errorf("content %q: err = %v; want ErrResponseParse", content, err)
		}
	}
}

func TestExtractCompletionError(t *testing.T) {
	c := &Client{chat: &fakeChat{err: fmt.Errorf("rate limited")}, model: model}

	_, err := c.Extract(context.Background(), "sad songs")
	if err == nil {
		t.Fatal("Extract succeeded on a failed completion")
	}
	if errors.Is(err, cochlea.ErrResponseParse) {
		t.Errorf("err = %v; a transport failure is not a parse failure", err)
	}
}

func TestExtractSanitizesModelOutput(t *testing.T) {
	content := `{
	  "energy": 1.7,
	  "valence": -0.3,
	  "acousticness": 0.5,
	  "instrumentalness": 2.0,
	  "tempo_range": [140, 90],
	  "vocal_style": "none"
	}`
	c := &Client{chat: &fakeChat{content: content}, model: model}

	got, err := c.Extract(context.Background(), "chaotic")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got.Energy != 1 || got.Valence != 0 || got.Instrumentalness != 1 {
		t.Errorf("numeric fields not clamped: %+v", got)
	}
	if got.Mood == nil || got.Genres == nil || got.Keywords == nil {
		t.Errorf("missing arrays not defaulted: %+v", got)
	}
	if want := []int{90, 140}; !reflect.DeepEqual(got.TempoRange, want) {
		t.Errorf("tempo_range = %v; want %v", got.TempoRange, want)
	}
}

func TestExtractDropsMalformedTempoRange(t *testing.T) {
	c := &Client{chat: &fakeChat{content: `{"tempo_range": [120]}`}, model: model}

	got, err := c.Extract(context.Background(), "fast")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.TempoRange != nil {
		t.Errorf("tempo_range = %v; want nil", got.TempoRange)
	}
}
