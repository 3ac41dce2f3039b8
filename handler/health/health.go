package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kswain/cochlea/config"
)

// HealthHandler is an http.Handler reporting which backing services are
// configured.
type HealthHandler struct {
	log *zap.SugaredLogger
	cfg config.Config
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, cfg config.Config) *HealthHandler {
	return &HealthHandler{
		log: log,
		cfg: cfg,
	}
}

type Services struct {
	Groq    bool `json:"groq"`
	Spotify bool `json:"spotify"`
}

type Response struct {
	Status   string   `json:"status"`
	Services Services `json:"services"`
	Message  string   `json:"message"`
}

// Health check
// @Summary Health check
// @Description Reports which backing services have credentials configured
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Info("health check")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Status: "ok",
		Services: Services{
			Groq:    h.cfg.GroqKey != "",
			Spotify: h.cfg.SpotifyConfigured(),
		},
		Message: "playlist service is running",
	})
}
