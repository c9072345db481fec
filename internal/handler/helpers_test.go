package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
	"tush00nka/studybud/internal/config"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/repository"
	"tush00nka/studybud/internal/service"
	"tush00nka/studybud/internal/ws"

	"github.com/gorilla/mux"
	"gorm.io/gorm/logger"
)

type memoryRevocations struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (m *memoryRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[tokenID] = true
	return nil
}

func (m *memoryRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[tokenID], nil
}

type memoryAvatars struct{}

func (memoryAvatars) UploadAvatar(ctx context.Context, file io.Reader, filename, contentType string, userID uint) (*model.FileMetadata, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return nil, err
	}
	return &model.FileMetadata{S3Key: service.AvatarKey(userID, "test", filename)}, nil
}

func (memoryAvatars) GeneratePresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	return "https://storage.test/" + key, nil
}

type testEnv struct {
	router   *mux.Router
	hub      *ws.Hub
	users    service.UserService
	rooms    service.RoomService
	messages service.MessageService
	sessions service.SessionService
}

func newTestEnv(t *testing.T, avatars service.AvatarStorage) *testEnv {
	t.Helper()

	db, err := repository.NewDB(config.DriverSQLite, ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	hub := ws.NewHub()
	t.Cleanup(hub.Shutdown)

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	env := &testEnv{
		hub:      hub,
		users:    service.NewUserService(userRepo, avatars),
		rooms:    service.NewRoomService(roomRepo, topicRepo, hub),
		messages: service.NewMessageService(messageRepo, roomRepo, hub),
		sessions: service.NewSessionService(
			auth.NewTokenManager("test-key", time.Hour),
			&memoryRevocations{ids: map[string]bool{}},
			userRepo,
		),
	}
	topics := service.NewTopicService(topicRepo)

	mw := NewAuthMiddleware(env.sessions)
	router := mux.NewRouter()
	router.Use(mw.Authenticate)
	NewAPIHandler(env.rooms).RegisterRoutes(router)
	NewUserHandler(env.users, env.rooms, env.messages, topics, env.sessions, false).RegisterRoutes(router, mw)
	NewRoomHandler(env.rooms, env.messages, topics).RegisterRoutes(router, mw)
	NewMessageHandler(env.messages).RegisterRoutes(router, mw)
	NewFeedHandler(env.rooms, hub, ws.NewUpgrader(nil, true)).RegisterRoutes(router, mw)
	env.router = router

	return env
}

// signUp registers a user and returns it with a session token.
func (e *testEnv) signUp(t *testing.T, username string) (*model.User, string) {
	t.Helper()
	user, err := e.users.Register(context.Background(), service.RegisterInput{
		Username:        username,
		Password:        "pass-" + username,
		ConfirmPassword: "pass-" + username,
	})
	if err != nil {
		t.Fatalf("Register(%q) error = %v", username, err)
	}
	token, err := e.sessions.Issue(user.ID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return user, token
}

func (e *testEnv) createRoom(t *testing.T, host *model.User, name, topic, description string) *model.Room {
	t.Helper()
	room, err := e.rooms.CreateRoom(context.Background(), host.ID, service.RoomInput{Name: name, Topic: topic, Description: description})
	if err != nil {
		t.Fatalf("CreateRoom(%q) error = %v", name, err)
	}
	return room
}

// do sends a request through the router. body is JSON-encoded unless nil.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, want, rr.Body.String())
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
