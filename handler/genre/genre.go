package genre

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kswain/cochlea/genre"
)

// GenresHandler is an http.Handler listing the seedable genre vocabulary.
type GenresHandler struct {
	log *zap.SugaredLogger
}

func (*GenresHandler) Pattern() string {
	return "/genres"
}

// NewGenresHandler builds a new GenresHandler.
func NewGenresHandler(log *zap.SugaredLogger) *GenresHandler {
	return &GenresHandler{log: log}
}

type Response struct {
	Genres []string `json:"genres"`
}

// List seedable genres
// @Summary List seedable genres
// @Description The closed genre vocabulary accepted as recommendation seeds
// @Tags Genre
// @Produce json
// @Success 200 {object} Response
// @Router /genres [get]
func (h *GenresHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Genres: genre.All()})
}
