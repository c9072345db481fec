package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"tush00nka/studybud/internal/repository"
)

func TestRoomService_CreateRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	room, err := f.rooms.CreateRoom(ctx, alice.ID, RoomInput{
		Name:        "  Python Basics ",
		Topic:       "Python",
		Description: "loops and lists",
	})
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}

	if room.Name != "Python Basics" {
		t.Errorf("Name = %q, want %q", room.Name, "Python Basics")
	}
	if room.Host == nil || room.Host.ID != alice.ID {
		t.Errorf("Host = %+v, want alice", room.Host)
	}
	if room.Topic == nil || room.Topic.Name != "Python" {
		t.Errorf("Topic = %+v, want Python", room.Topic)
	}
	if len(room.Participants) != 0 {
		t.Errorf("Participants = %d, want 0", len(room.Participants))
	}
}

func TestRoomService_CreateRoomValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")

	tests := []struct {
		name    string
		actorID uint
		input   RoomInput
		want    error
	}{
		{"anonymous", 0, RoomInput{Name: "x"}, ErrUnauthenticated},
		{"blank name", alice.ID, RoomInput{Name: "   "}, ErrValidation},
		{"long name", alice.ID, RoomInput{Name: strings.Repeat("a", 201)}, ErrValidation},
		{"long topic", alice.ID, RoomInput{Name: "x", Topic: strings.Repeat("t", 201)}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.rooms.CreateRoom(context.Background(), tt.actorID, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("CreateRoom() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRoomService_TopicReusedAcrossHosts(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	first := f.createRoom(t, alice, "Django ORM", "Django")
	second := f.createRoom(t, bob, "Django Forms", "Django")

	if first.TopicID == nil || second.TopicID == nil {
		t.Fatal("expected both rooms to have a topic")
	}
	if *first.TopicID != *second.TopicID {
		t.Errorf("topic ids = %d and %d, want the same topic", *first.TopicID, *second.TopicID)
	}

	topics, err := f.topics.ListTopics(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("ListTopics() error = %v", err)
	}
	if len(topics) != 1 || topics[0].RoomCount != 2 {
		t.Errorf("topics = %+v, want one Django topic with 2 rooms", topics)
	}
}

func TestRoomService_OnlyHostMayChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	room := f.createRoom(t, alice, "Python Basics", "Python")

	if _, err := f.rooms.GetRoomForEdit(ctx, bob.ID, room.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("GetRoomForEdit(bob) error = %v, want ErrForbidden", err)
	}
	if _, err := f.rooms.UpdateRoom(ctx, bob.ID, room.ID, RoomInput{Name: "Hijacked"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("UpdateRoom(bob) error = %v, want ErrForbidden", err)
	}
	if err := f.rooms.DeleteRoom(ctx, bob.ID, room.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("DeleteRoom(bob) error = %v, want ErrForbidden", err)
	}

	stored, err := f.rooms.GetRoom(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetRoom() error = %v", err)
	}
	if stored.Name != "Python Basics" {
		t.Errorf("Name = %q after forbidden update, want unchanged", stored.Name)
	}
}

func TestRoomService_UpdateRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	room := f.createRoom(t, alice, "Python Basics", "Python")

	updated, err := f.rooms.UpdateRoom(ctx, alice.ID, room.ID, RoomInput{
		Name:        "Python Advanced",
		Topic:       "Python 3",
		Description: "decorators",
	})
	if err != nil {
		t.Fatalf("UpdateRoom() error = %v", err)
	}
	if updated.Name != "Python Advanced" || updated.Description != "decorators" {
		t.Errorf("room = %q/%q, want updated fields", updated.Name, updated.Description)
	}
	if updated.Topic == nil || updated.Topic.Name != "Python 3" {
		t.Errorf("Topic = %+v, want Python 3", updated.Topic)
	}
	if updated.HostID == nil || *updated.HostID != alice.ID {
		t.Errorf("HostID = %v, want alice", updated.HostID)
	}

	cleared, err := f.rooms.UpdateRoom(ctx, alice.ID, room.ID, RoomInput{Name: "Python Advanced"})
	if err != nil {
		t.Fatalf("UpdateRoom(no topic) error = %v", err)
	}
	if cleared.TopicID != nil {
		t.Errorf("TopicID = %v, want nil after clearing the topic", *cleared.TopicID)
	}
}

func TestRoomService_DeleteRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	room := f.createRoom(t, alice, "Python Basics", "")

	if _, err := f.messages.PostMessage(ctx, alice.ID, room.ID, "hello"); err != nil {
		t.Fatalf("PostMessage() error = %v", err)
	}

	if err := f.rooms.DeleteRoom(ctx, alice.ID, room.ID); err != nil {
		t.Fatalf("DeleteRoom() error = %v", err)
	}

	if _, err := f.rooms.GetRoom(ctx, room.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRoom() after delete error = %v, want ErrNotFound", err)
	}
	if len(f.feed.rooms) != 1 || f.feed.rooms[0] != room.ID {
		t.Errorf("broadcast rooms = %v, want [%d]", f.feed.rooms, room.ID)
	}

	messages, err := f.messages.ListMessages(ctx, repository.MessageFilter{RoomID: room.ID})
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("messages after delete = %d, want 0", len(messages))
	}

	if err := f.rooms.DeleteRoom(ctx, alice.ID, room.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteRoom() error = %v, want ErrNotFound", err)
	}
}

func TestRoomService_HostlessRoomIsLocked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	room := f.createRoom(t, alice, "Orphan", "")

	if err := f.users.DeleteAccount(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}

	stored, err := f.rooms.GetRoom(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetRoom() error = %v", err)
	}
	if stored.HostID != nil {
		t.Fatalf("HostID = %d, want nil", *stored.HostID)
	}

	bob := f.register(t, "bob")
	if _, err := f.rooms.UpdateRoom(ctx, bob.ID, room.ID, RoomInput{Name: "Mine"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("UpdateRoom() on hostless room error = %v, want ErrForbidden", err)
	}
}
