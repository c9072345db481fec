package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/repository"
	"unicode/utf8"
)

const maxNameLength = 200

// RoomInput carries the editable fields of a room. Topic is free text and is
// resolved to an existing topic of the same name or a new one.
type RoomInput struct {
	Name        string
	Topic       string
	Description string
}

func (in RoomInput) normalize() (RoomInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Topic = strings.TrimSpace(in.Topic)

	if in.Name == "" {
		return in, invalid("room name is required")
	}
	if utf8.RuneCountInString(in.Name) > maxNameLength {
		return in, invalid("room name must be at most %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(in.Topic) > maxNameLength {
		return in, invalid("topic must be at most %d characters", maxNameLength)
	}
	return in, nil
}

type roomService struct {
	roomRepo    repository.RoomRepository
	topicRepo   repository.TopicRepository
	broadcaster Broadcaster
}

// NewRoomService creates a RoomService. broadcaster may be nil.
func NewRoomService(roomRepo repository.RoomRepository, topicRepo repository.TopicRepository, broadcaster Broadcaster) RoomService {
	return &roomService{roomRepo: roomRepo, topicRepo: topicRepo, broadcaster: broadcaster}
}

func (s *roomService) resolveTopic(ctx context.Context, name string) (*model.Topic, error) {
	if name == "" {
		return nil, nil
	}
	topic, err := s.topicRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve topic %q: %w", name, err)
	}
	return topic, nil
}

// CreateRoom creates a room hosted by the acting user.
func (s *roomService) CreateRoom(ctx context.Context, actorID uint, input RoomInput) (*model.Room, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	input, err := input.normalize()
	if err != nil {
		return nil, err
	}

	topic, err := s.resolveTopic(ctx, input.Topic)
	if err != nil {
		return nil, err
	}

	room := &model.Room{
		HostID:      &actorID,
		Name:        input.Name,
		Description: input.Description,
	}
	if topic != nil {
		room.TopicID = &topic.ID
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	log.Printf("room: user %d created room %d %q", actorID, room.ID, room.Name)
	return s.GetRoom(ctx, room.ID)
}

// GetRoomForEdit loads a room the acting user is allowed to change.
func (s *roomService) GetRoomForEdit(ctx context.Context, actorID, roomID uint) (*model.Room, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !room.IsHostedBy(actorID) {
		return nil, ErrForbidden
	}

	return room, nil
}

// UpdateRoom changes name, topic and description. Only the host may do so.
func (s *roomService) UpdateRoom(ctx context.Context, actorID, roomID uint, input RoomInput) (*model.Room, error) {
	room, err := s.GetRoomForEdit(ctx, actorID, roomID)
	if err != nil {
		return nil, err
	}

	input, err = input.normalize()
	if err != nil {
		return nil, err
	}

	topic, err := s.resolveTopic(ctx, input.Topic)
	if err != nil {
		return nil, err
	}

	room.Name = input.Name
	room.Description = input.Description
	room.TopicID = nil
	if topic != nil {
		room.TopicID = &topic.ID
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, lookup("room", err)
	}

	return s.GetRoom(ctx, room.ID)
}

// DeleteRoom removes a room and its messages. Only the host may do so.
func (s *roomService) DeleteRoom(ctx context.Context, actorID, roomID uint) error {
	if _, err := s.GetRoomForEdit(ctx, actorID, roomID); err != nil {
		return err
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		return lookup("room", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.RoomDeleted(roomID)
	}

	log.Printf("room: user %d deleted room %d", actorID, roomID)
	return nil
}

func (s *roomService) GetRoom(ctx context.Context, roomID uint) (*model.Room, error) {
	if roomID == 0 {
		return nil, fmt.Errorf("room %w", ErrNotFound)
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, lookup("room", err)
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]model.Room, error) {
	return s.roomRepo.Find(ctx, filter)
}

func (s *roomService) CountRooms(ctx context.Context, filter repository.RoomFilter) (int64, error) {
	return s.roomRepo.Count(ctx, filter)
}
