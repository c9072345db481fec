package repository

import (
	"context"
	"fmt"
	"strings"
	"tush00nka/studybud/internal/model"

	"gorm.io/gorm"
)

// RoomFilter narrows a room listing. Zero values mean "any".
type RoomFilter struct {
	// Query is matched case-insensitively against the topic name, the room
	// name and the description. Blank matches everything.
	Query   string
	HostID  uint
	TopicID uint
	Limit   int
}

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id uint) (*model.Room, error)
	Find(ctx context.Context, filter RoomFilter) ([]model.Room, error)
	Count(ctx context.Context, filter RoomFilter) (int64, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id uint) error
	AddParticipant(ctx context.Context, roomID, userID uint) error
	Participants(ctx context.Context, roomID uint) ([]model.User, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	return translate(r.db.WithContext(ctx).Omit("Host", "Topic", "Participants").Create(room).Error)
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		First(&room, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (r *roomRepository) filtered(ctx context.Context, filter RoomFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&model.Room{}).
		Joins("LEFT JOIN topics ON topics.id = rooms.topic_id")

	if q := strings.TrimSpace(filter.Query); q != "" {
		p := containsPattern(q)
		tx = tx.Where(`(LOWER(topics.name) LIKE ? ESCAPE '\' OR LOWER(rooms.name) LIKE ? ESCAPE '\' OR LOWER(rooms.description) LIKE ? ESCAPE '\')`, p, p, p)
	}
	if filter.HostID != 0 {
		tx = tx.Where("rooms.host_id = ?", filter.HostID)
	}
	if filter.TopicID != 0 {
		tx = tx.Where("rooms.topic_id = ?", filter.TopicID)
	}
	return tx
}

// Find returns matching rooms, most recently updated first.
func (r *roomRepository) Find(ctx context.Context, filter RoomFilter) ([]model.Room, error) {
	tx := r.filtered(ctx, filter).
		Select("rooms.*").
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		Order("rooms.updated_at DESC, rooms.created_at DESC, rooms.id DESC")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	rooms := []model.Room{}
	if err := tx.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Count(ctx context.Context, filter RoomFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update writes name, topic and description. Host and participants are not
// touched.
func (r *roomRepository) Update(ctx context.Context, room *model.Room) error {
	result := r.db.WithContext(ctx).Model(room).
		Select("Name", "TopicID", "Description").
		Updates(room)
	if err := result.Error; err != nil {
		return translate(err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the room and everything posted in it.
func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}

		if err := tx.Exec("DELETE FROM "+model.RoomParticipantsTable+" WHERE room_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete participants: %w", err)
		}

		result := tx.Delete(&model.Room{}, id)
		if err := result.Error; err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddParticipant is a set union: adding an existing participant is a no-op.
func (r *roomRepository) AddParticipant(ctx context.Context, roomID, userID uint) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO "+model.RoomParticipantsTable+" (room_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		roomID, userID,
	).Error
}

func (r *roomRepository) Participants(ctx context.Context, roomID uint) ([]model.User, error) {
	users := []model.User{}
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("users.*").
		Joins("JOIN "+model.RoomParticipantsTable+" ON "+model.RoomParticipantsTable+".user_id = users.id").
		Where(model.RoomParticipantsTable+".room_id = ?", roomID).
		Order("users.username").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
