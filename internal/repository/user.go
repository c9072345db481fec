package repository

import (
	"context"
	"fmt"
	"tush00nka/studybud/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UsernameTaken(ctx context.Context, username string, exceptID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update writes the editable profile fields of user.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Model(user).
		Select("Username", "Email", "Name", "Bio", "AvatarKey").
		Updates(user)
	if err := result.Error; err != nil {
		return translate(err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? AND id <> ?", username, exceptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the user together with their messages and participations.
// Rooms they host stay, with no host.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}

		if err := tx.Exec("DELETE FROM "+model.RoomParticipantsTable+" WHERE user_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete participations: %w", err)
		}

		if err := tx.Model(&model.Room{}).Where("host_id = ?", id).Update("host_id", nil).Error; err != nil {
			return fmt.Errorf("orphan rooms: %w", err)
		}

		result := tx.Delete(&model.User{}, id)
		if err := result.Error; err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
