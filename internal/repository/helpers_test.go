package repository

import (
	"context"
	"testing"
	"time"
	"tush00nka/studybud/internal/config"
	"tush00nka/studybud/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDB(config.DriverSQLite, ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}

func createRoom(t *testing.T, db *gorm.DB, host *model.User, topic *model.Topic, name, description string) *model.Room {
	t.Helper()
	room := &model.Room{Name: name, Description: description}
	if host != nil {
		room.HostID = &host.ID
	}
	if topic != nil {
		room.TopicID = &topic.ID
	}
	if err := NewRoomRepository(db).Create(context.Background(), room); err != nil {
		t.Fatalf("failed to create room %q: %v", name, err)
	}
	return room
}

func createMessage(t *testing.T, db *gorm.DB, user *model.User, room *model.Room, body string) *model.Message {
	t.Helper()
	msg := &model.Message{UserID: user.ID, RoomID: room.ID, Body: body}
	if err := NewMessageRepository(db).Create(context.Background(), msg); err != nil {
		t.Fatalf("failed to create message: %v", err)
	}
	return msg
}

func setUpdatedAt(t *testing.T, db *gorm.DB, value any, at time.Time) {
	t.Helper()
	if err := db.Model(value).UpdateColumn("updated_at", at).Error; err != nil {
		t.Fatalf("failed to set updated_at: %v", err)
	}
}

func roomNames(rooms []model.Room) []string {
	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	return names
}
