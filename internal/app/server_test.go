package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"tush00nka/studybud/internal/config"
	"tush00nka/studybud/internal/handler"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/pkg/metrics"
	"tush00nka/studybud/internal/repository"
	"tush00nka/studybud/internal/service"
	"tush00nka/studybud/internal/ws"

	"gorm.io/gorm/logger"
)

type noRevocations struct{}

func (noRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (noRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}

func newTestServer(t *testing.T, origins []string) *Server {
	t.Helper()

	db, err := repository.NewDB(config.DriverSQLite, ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	hub := ws.NewHub()
	t.Cleanup(hub.Shutdown)

	roomRepo := repository.NewRoomRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo, nil)
	roomService := service.NewRoomService(roomRepo, topicRepo, hub)
	messageService := service.NewMessageService(repository.NewMessageRepository(db), roomRepo, hub)
	topicService := service.NewTopicService(topicRepo)
	sessions := service.NewSessionService(auth.NewTokenManager("test-key", time.Hour), noRevocations{}, userRepo)

	return NewServer(Handlers{
		Auth:    handler.NewAuthMiddleware(sessions),
		User:    handler.NewUserHandler(userService, roomService, messageService, topicService, sessions, false),
		Room:    handler.NewRoomHandler(roomService, messageService, topicService),
		Message: handler.NewMessageHandler(messageService),
		API:     handler.NewAPIHandler(roomService),
		Feed:    handler.NewFeedHandler(roomService, hub, ws.NewUpgrader(origins, false)),
		Metrics: metrics.New(hub),
	}, origins)
}

func TestCORSPreflightRequest(t *testing.T) {
	server := newTestServer(t, []string{"*"})

	req := httptest.NewRequest("OPTIONS", "/create-room", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %v, want *", got)
	}

	// gorilla/handlers echoes the requested headers on preflight
	if rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("Access-Control-Allow-Headers should not be empty for OPTIONS request")
	}
}

func TestCORSWithActualRequest(t *testing.T) {
	server := newTestServer(t, []string{"http://app.test"})

	tests := []struct {
		origin string
		want   string
	}{
		{"http://app.test", "http://app.test"},
		{"http://evil.test", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/api/rooms", nil)
		req.Header.Set("Origin", tt.origin)

		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestServerRoutes(t *testing.T) {
	server := newTestServer(t, []string{"*"})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/ping", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"GET", "/api", http.StatusOK},
		{"GET", "/api/rooms", http.StatusOK},
		{"GET", "/topics", http.StatusOK},
		{"GET", "/activities", http.StatusOK},
		{"GET", "/room/abc", http.StatusNotFound},
		{"POST", "/create-room", http.StatusFound},
		{"GET", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			server.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rr.Body.String(), `studybud_http_requests_total{code="302",method="POST",route="/create-room"} 1`) {
		t.Errorf("metrics did not record the redirected request:\n%s", rr.Body.String())
	}
}
