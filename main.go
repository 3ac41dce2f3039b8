package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kswain/cochlea/config"
	genreHandler "github.com/kswain/cochlea/handler/genre"
	"github.com/kswain/cochlea/handler/health"
	playlistHandler "github.com/kswain/cochlea/handler/playlist"
	"github.com/kswain/cochlea/groq"
	"github.com/kswain/cochlea/logger"
	"github.com/kswain/cochlea/playlist"
	"github.com/kswain/cochlea/spotify"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

//	@title			Cochlea
//	@version		1.0
//	@description	Turns a free-text mood description into a ranked list of Spotify tracks

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:8080
// @BasePath	/api
func main() {
	fx.New(
		fx.Provide(NewHTTPServer,
			config.Options,
			logger.Options,
			groq.Options,
			spotify.Options,
			spotify.ResolverOptions,
			NewPlaylistService,
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

// NewPlaylistService wires the concrete extractor and resolver into the
// orchestrator's ports.
func NewPlaylistService(g *groq.Client, r *spotify.Resolver, log *zap.SugaredLogger) *playlist.Service {
	return playlist.NewService(g, r, log)
}

func NewHTTPServer(
	lc fx.Lifecycle,
	log *zap.SugaredLogger,
	cfg config.Config,
	service *playlist.Service,
) *http.Server {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	// Define handlers
	generateHandler := playlistHandler.NewGenerateHandler(log, service)
	api.Handle(generateHandler.Pattern(), generateHandler).Methods(http.MethodPost)

	healthHandler := health.NewHealthHandler(log, cfg)
	api.Handle(healthHandler.Pattern(), healthHandler).Methods(http.MethodGet)

	genresHandler := genreHandler.NewGenresHandler(log)
	api.Handle(genresHandler.Pattern(), genresHandler).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: jsonMiddleware(router),
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infof("starting HTTP server at %s", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
