package service

import (
	"context"
	"io"
	"time"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, actorID uint, input ProfileInput) (*model.User, error)
	SetAvatar(ctx context.Context, actorID uint, file io.Reader, filename, contentType string) (*model.User, error)
	DeleteAccount(ctx context.Context, actorID uint) error
}

type RoomService interface {
	CreateRoom(ctx context.Context, actorID uint, input RoomInput) (*model.Room, error)
	UpdateRoom(ctx context.Context, actorID, roomID uint, input RoomInput) (*model.Room, error)
	DeleteRoom(ctx context.Context, actorID, roomID uint) error
	GetRoom(ctx context.Context, roomID uint) (*model.Room, error)
	GetRoomForEdit(ctx context.Context, actorID, roomID uint) (*model.Room, error)
	ListRooms(ctx context.Context, filter repository.RoomFilter) ([]model.Room, error)
	CountRooms(ctx context.Context, filter repository.RoomFilter) (int64, error)
}

type MessageService interface {
	PostMessage(ctx context.Context, actorID, roomID uint, body string) (*model.Message, error)
	DeleteMessage(ctx context.Context, actorID, messageID uint) (*model.Message, error)
	ListMessages(ctx context.Context, filter repository.MessageFilter) ([]model.Message, error)
	RecentMessages(ctx context.Context, limit int) ([]model.Message, error)
}

type TopicService interface {
	ListTopics(ctx context.Context, query string, limit int) ([]model.TopicWithCount, error)
}

type SessionService interface {
	Issue(userID uint) (string, error)
	Resolve(ctx context.Context, token string) (*auth.Claims, error)
	Revoke(ctx context.Context, claims *auth.Claims) error
	TTL() time.Duration
}

// Broadcaster is told about room activity after it has been stored.
type Broadcaster interface {
	MessagePosted(message *model.Message)
	MessageDeleted(roomID, messageID uint)
	RoomDeleted(roomID uint)
}

// AvatarStorage stores profile pictures.
type AvatarStorage interface {
	UploadAvatar(ctx context.Context, file io.Reader, filename, contentType string, userID uint) (*model.FileMetadata, error)
	GeneratePresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
