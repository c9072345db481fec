package service

import (
	"context"
	"fmt"
	"strings"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/repository"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

type messageService struct {
	messageRepo repository.MessageRepository
	roomRepo    repository.RoomRepository
	broadcaster Broadcaster
}

// NewMessageService creates a MessageService. broadcaster may be nil.
func NewMessageService(messageRepo repository.MessageRepository, roomRepo repository.RoomRepository, broadcaster Broadcaster) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		roomRepo:    roomRepo,
		broadcaster: broadcaster,
	}
}

// PostMessage stores a message and makes its author a participant of the room.
func (s *messageService) PostMessage(ctx context.Context, actorID, roomID uint, body string) (*model.Message, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	if strings.TrimSpace(body) == "" {
		return nil, invalid("message cannot be empty")
	}

	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		return nil, lookup("room", err)
	}

	message := &model.Message{
		UserID: actorID,
		RoomID: roomID,
		Body:   body,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if err := s.roomRepo.AddParticipant(ctx, roomID, actorID); err != nil {
		return nil, fmt.Errorf("add participant: %w", err)
	}

	stored, err := s.messageRepo.FindByID(ctx, message.ID)
	if err != nil {
		return nil, lookup("message", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.MessagePosted(stored)
	}

	return stored, nil
}

// DeleteMessage removes a message. Only its author may do so.
func (s *messageService) DeleteMessage(ctx context.Context, actorID, messageID uint) (*model.Message, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, lookup("message", err)
	}

	if !message.IsAuthoredBy(actorID) {
		return nil, ErrForbidden
	}

	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		return nil, lookup("message", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.MessageDeleted(message.RoomID, message.ID)
	}

	return message, nil
}

// ListMessages returns every matching message unless filter.Limit is set.
func (s *messageService) ListMessages(ctx context.Context, filter repository.MessageFilter) ([]model.Message, error) {
	return s.messageRepo.Find(ctx, filter)
}

// RecentMessages lists the latest messages across all rooms, 50 by default
// and never more than 200.
func (s *messageService) RecentMessages(ctx context.Context, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	return s.messageRepo.Find(ctx, repository.MessageFilter{Limit: limit})
}
