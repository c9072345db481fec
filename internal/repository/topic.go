package repository

import (
	"context"
	"fmt"
	"strings"
	"tush00nka/studybud/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicRepository interface {
	GetOrCreate(ctx context.Context, name string) (*model.Topic, error)
	FindByID(ctx context.Context, id uint) (*model.Topic, error)
	Find(ctx context.Context, query string, limit int) ([]model.TopicWithCount, error)
	Delete(ctx context.Context, id uint) error
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

// GetOrCreate returns the topic named exactly name, inserting it if needed.
// The insert ignores unique-name conflicts, so concurrent callers converge on
// the same row.
func (r *topicRepository) GetOrCreate(ctx context.Context, name string) (*model.Topic, error) {
	db := r.db.WithContext(ctx)

	topic := model.Topic{Name: name}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&topic)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("insert topic: %w", translate(err))
	}

	if result.RowsAffected == 1 && topic.ID != 0 {
		return &topic, nil
	}

	var existing model.Topic
	if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

func (r *topicRepository) FindByID(ctx context.Context, id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, translate(err)
	}
	return &topic, nil
}

// Find lists topics whose name contains query, busiest first.
func (r *topicRepository) Find(ctx context.Context, query string, limit int) ([]model.TopicWithCount, error) {
	tx := r.db.WithContext(ctx).Model(&model.Topic{}).
		Select("topics.id, topics.name, COUNT(rooms.id) AS room_count").
		Joins("LEFT JOIN rooms ON rooms.topic_id = topics.id").
		Group("topics.id, topics.name").
		Order("room_count DESC, topics.id")

	if q := strings.TrimSpace(query); q != "" {
		tx = tx.Where(`LOWER(topics.name) LIKE ? ESCAPE '\'`, containsPattern(q))
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	topics := []model.TopicWithCount{}
	if err := tx.Scan(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// Delete removes the topic; rooms tagged with it keep existing untagged.
func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Room{}).Where("topic_id = ?", id).Update("topic_id", nil).Error; err != nil {
			return fmt.Errorf("untag rooms: %w", err)
		}

		result := tx.Delete(&model.Topic{}, id)
		if err := result.Error; err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
