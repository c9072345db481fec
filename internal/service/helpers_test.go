package service

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"
	"tush00nka/studybud/internal/config"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db       *gorm.DB
	users    UserService
	rooms    RoomService
	messages MessageService
	topics   TopicService
	feed     *recordingBroadcaster
	avatars  *fakeAvatars
}

func newFixture(t *testing.T) *fixture {
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

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	f := &fixture{
		db:      db,
		feed:    &recordingBroadcaster{},
		avatars: &fakeAvatars{objects: map[string][]byte{}},
	}
	f.users = NewUserService(userRepo, f.avatars)
	f.rooms = NewRoomService(roomRepo, topicRepo, f.feed)
	f.messages = NewMessageService(messageRepo, roomRepo, f.feed)
	f.topics = NewTopicService(topicRepo)
	return f
}

func (f *fixture) register(t *testing.T, username string) *model.User {
	t.Helper()
	user, err := f.users.Register(context.Background(), RegisterInput{
		Username:        username,
		Password:        "pass-" + username,
		ConfirmPassword: "pass-" + username,
	})
	if err != nil {
		t.Fatalf("Register(%q) error = %v", username, err)
	}
	return user
}

func (f *fixture) createRoom(t *testing.T, host *model.User, name, topic string) *model.Room {
	t.Helper()
	room, err := f.rooms.CreateRoom(context.Background(), host.ID, RoomInput{Name: name, Topic: topic})
	if err != nil {
		t.Fatalf("CreateRoom(%q) error = %v", name, err)
	}
	return room
}

type recordingBroadcaster struct {
	mu      sync.Mutex
	posted  []uint
	deleted []uint
	rooms   []uint
}

func (b *recordingBroadcaster) MessagePosted(message *model.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.posted = append(b.posted, message.ID)
}

func (b *recordingBroadcaster) MessageDeleted(roomID, messageID uint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleted = append(b.deleted, messageID)
}

type fakeAvatars struct {
	objects map[string][]byte
}

func (a *fakeAvatars) UploadAvatar(ctx context.Context, file io.Reader, filename, contentType string, userID uint) (*model.FileMetadata, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	key := AvatarKey(userID, "fixed", filename)
	a.objects[key] = buf.Bytes()
	return &model.FileMetadata{S3Key: key, Filename: filename, ContentType: contentType, UploadedByUserID: userID}, nil
}

func (a *fakeAvatars) GeneratePresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	return "https://storage.test/" + key, nil
}

func (b *recordingBroadcaster) RoomDeleted(roomID uint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, roomID)
}
