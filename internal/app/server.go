package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"
	"tush00nka/studybud/internal/handler"
	"tush00nka/studybud/internal/pkg/metrics"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Auth    *handler.AuthMiddleware
	User    *handler.UserHandler
	Room    *handler.RoomHandler
	Message *handler.MessageHandler
	API     *handler.APIHandler
	Feed    *handler.FeedHandler
	Metrics *metrics.Metrics
}

type Server struct {
	router  *mux.Router
	handler http.Handler
}

func NewServer(h Handlers, allowedOrigins []string) *Server {
	router := mux.NewRouter()

	if h.Metrics != nil {
		router.Use(h.Metrics.Middleware)
		router.Handle("/metrics", h.Metrics.Handler()).Methods("GET")
	}
	router.Use(h.Auth.Authenticate)

	router.HandleFunc("/ping", handler.Ping).Methods("GET")
	h.API.RegisterRoutes(router)
	h.User.RegisterRoutes(router, h.Auth)
	h.Room.RegisterRoutes(router, h.Auth)
	h.Message.RegisterRoutes(router, h.Auth)
	h.Feed.RegisterRoutes(router, h.Auth)

	// swag serves doc.json from the registered docs package
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)

	return &Server{router: router, handler: cors(router)}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, port string) error {
	srv := &http.Server{
		Handler: handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
			handlers.LoggingHandler(os.Stdout, s.handler),
		),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
