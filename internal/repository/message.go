package repository

import (
	"context"
	"strings"
	"tush00nka/studybud/internal/model"

	"gorm.io/gorm"
)

// MessageFilter narrows a message listing. Zero values mean "any".
type MessageFilter struct {
	// Query is matched case-insensitively against the room's topic name and
	// the room name. Blank matches everything.
	Query  string
	RoomID uint
	UserID uint
	Limit  int
	// NewestPostedFirst orders by creation time instead of the default
	// last-updated order.
	NewestPostedFirst bool
}

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uint) (*model.Message, error)
	Find(ctx context.Context, filter MessageFilter) ([]model.Message, error)
	Delete(ctx context.Context, id uint) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Room").Create(message).Error)
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Room").
		First(&message, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (r *messageRepository) Find(ctx context.Context, filter MessageFilter) ([]model.Message, error) {
	tx := r.db.WithContext(ctx).Model(&model.Message{}).
		Select("messages.*").
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Joins("LEFT JOIN topics ON topics.id = rooms.topic_id").
		Preload("User").
		Preload("Room.Topic")

	if q := strings.TrimSpace(filter.Query); q != "" {
		p := containsPattern(q)
		tx = tx.Where(`(LOWER(topics.name) LIKE ? ESCAPE '\' OR LOWER(rooms.name) LIKE ? ESCAPE '\')`, p, p)
	}
	if filter.RoomID != 0 {
		tx = tx.Where("messages.room_id = ?", filter.RoomID)
	}
	if filter.UserID != 0 {
		tx = tx.Where("messages.user_id = ?", filter.UserID)
	}

	if filter.NewestPostedFirst {
		tx = tx.Order("messages.created_at DESC, messages.id DESC")
	} else {
		tx = tx.Order("messages.updated_at DESC, messages.created_at DESC, messages.id DESC")
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	messages := []model.Message{}
	if err := tx.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Message{}, id)
	if err := result.Error; err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
