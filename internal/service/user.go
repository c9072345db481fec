package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/mail"
	"strings"
	"time"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/repository"
	"unicode/utf8"
)

const (
	maxUsernameLength = 150
	avatarURLExpiry   = time.Hour
)

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type ProfileInput struct {
	Username string
	Email    string
	Name     string
	Bio      string
}

type userService struct {
	userRepo repository.UserRepository
	avatars  AvatarStorage
}

// NewUserService creates a UserService. avatars may be nil, which disables
// avatar uploads.
func NewUserService(userRepo repository.UserRepository, avatars AvatarStorage) UserService {
	return &userService{userRepo: userRepo, avatars: avatars}
}

// normalizeUsername lowercases and trims a handle and checks its characters:
// letters, digits and @ . + - _ only.
func normalizeUsername(raw string) (string, error) {
	username := strings.ToLower(strings.TrimSpace(raw))
	if username == "" {
		return "", invalid("username is required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return "", invalid("username must be at most %d characters", maxUsernameLength)
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case strings.ContainsRune("@.+-_", r):
		default:
			return "", invalid("username may contain only letters, digits and @/./+/-/_")
		}
	}
	return username, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("enter a valid email address")
	}
	return email, nil
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	username, err := normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if input.Password == "" {
		return nil, invalid("password is required")
	}

	if input.Password != input.ConfirmPassword {
		return nil, invalid("passwords do not match")
	}

	taken, err := s.userRepo.UsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("user with username %s %w", username, ErrConflict)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Username: username, Email: email, Password: hash}
	user.EnsureDisplayName()
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("user with username %s %w", username, ErrConflict)
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, invalid("username and password are required")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: username or password does not exist", ErrUnauthenticated)
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: username or password does not exist", ErrUnauthenticated)
	}

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookup("user", err)
	}

	s.attachAvatarURL(ctx, user)
	return user, nil
}

func (s *userService) attachAvatarURL(ctx context.Context, user *model.User) {
	if s.avatars == nil || user.AvatarKey == "" {
		return
	}

	url, err := s.avatars.GeneratePresignedURL(ctx, user.AvatarKey, avatarURLExpiry)
	if err != nil {
		log.Printf("user: failed to presign avatar for user %d: %v", user.ID, err)
		return
	}
	user.AvatarURL = url
}

func (s *userService) UpdateProfile(ctx context.Context, actorID uint, input ProfileInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, lookup("user", err)
	}

	username, err := normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	taken, err := s.userRepo.UsernameTaken(ctx, username, user.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("user with username %s %w", username, ErrConflict)
	}

	user.Username = username
	user.Email = email
	user.Name = strings.TrimSpace(input.Name)
	user.Bio = input.Bio
	user.EnsureDisplayName()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("user with username %s %w", username, ErrConflict)
		}
		return nil, lookup("user", err)
	}

	s.attachAvatarURL(ctx, user)
	return user, nil
}

func (s *userService) SetAvatar(ctx context.Context, actorID uint, file io.Reader, filename, contentType string) (*model.User, error) {
	if s.avatars == nil {
		return nil, fmt.Errorf("avatar upload %w", ErrUnavailable)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalid("avatar must be an image")
	}

	user, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, lookup("user", err)
	}

	meta, err := s.avatars.UploadAvatar(ctx, file, filename, contentType, user.ID)
	if err != nil {
		return nil, err
	}

	user.AvatarKey = meta.S3Key
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, lookup("user", err)
	}

	s.attachAvatarURL(ctx, user)
	return user, nil
}

func (s *userService) DeleteAccount(ctx context.Context, actorID uint) error {
	if err := s.userRepo.Delete(ctx, actorID); err != nil {
		return lookup("user", err)
	}
	return nil
}
