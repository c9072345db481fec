package model

import "time"

type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	Room      *Room     `gorm:"constraint:OnDelete:CASCADE" json:"room,omitempty"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAuthoredBy reports whether userID wrote the message.
func (m *Message) IsAuthoredBy(userID uint) bool {
	return m.UserID == userID
}

// Preview is the first 50 characters of the body.
func (m *Message) Preview() string {
	runes := []rune(m.Body)
	if len(runes) <= 50 {
		return m.Body
	}
	return string(runes[:50])
}
