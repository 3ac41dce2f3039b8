package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kswain/cochlea/cochlea"
	"github.com/kswain/cochlea/playlist"
)

// Generator is the playlist pipeline behind the handler.
type Generator interface {
	Generate(ctx context.Context, prompt string) (playlist.Result, error)
}

// GenerateHandler is an http.Handler that runs the mood-to-playlist
// pipeline.
type GenerateHandler struct {
	log     *zap.SugaredLogger
	service Generator
}

func (*GenerateHandler) Pattern() string {
	return "/generate-playlist"
}

// NewGenerateHandler builds a new GenerateHandler.
func NewGenerateHandler(log *zap.SugaredLogger, service *playlist.Service) *GenerateHandler {
	return &GenerateHandler{
		log:     log,
		service: service,
	}
}

type Request struct {
	Prompt string `json:"prompt"`
}

type Response struct {
	Success  bool                  `json:"success"`
	Features cochlea.MusicFeatures `json:"features"`
	Playlist cochlea.Playlist      `json:"playlist"`
	Message  string                `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Generate a playlist from a mood description
// @Summary Generate a playlist from a mood description
// @Description Extracts musical features from the prompt and resolves matching Spotify tracks
// @Tags Playlist
// @Accept json
// @Produce json
// @Param request body Request true "Mood description"
// @Success 200 {object} Response
// @Router /generate-playlist [post]
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "please provide a valid text prompt")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "please provide a valid text prompt")
		return
	}

	result, err := h.service.Generate(r.Context(), req.Prompt)
	if err != nil {
		h.log.Errorw("failed to generate playlist", "error", err)
		switch {
		case errors.Is(err, cochlea.ErrEmptyPrompt):
			writeError(w, http.StatusBadRequest, "please provide a valid text prompt")
		case errors.Is(err, cochlea.ErrResponseParse):
			writeError(w, http.StatusInternalServerError, "failed to parse model response")
		default:
			writeError(w, http.StatusInternalServerError, "failed to generate playlist")
		}
		return
	}

	json.NewEncoder(w).Encode(Response{
		Success:  true,
		Features: result.Features,
		Playlist: result.Playlist,
		Message:  result.Message,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
