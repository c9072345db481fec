package model

import "time"

// User is an account. Username is the unique, lowercase handle. Email is
// private and only serialized through the owner's account view.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:254" json:"-"`
	Name      string    `gorm:"size:200" json:"name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	AvatarKey string    `gorm:"size:512" json:"-"`
	AvatarURL string    `gorm:"-" json:"avatar_url,omitempty"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) SanitizePassword() {
	u.Password = ""
}

func (u *User) EnsureDisplayName() {
	if u.Name == "" {
		u.Name = u.Username
	}
}
