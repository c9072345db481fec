package model

import "time"

// RoomParticipantsTable is the join table backing Room.Participants.
const RoomParticipantsTable = "room_participants"

type Room struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HostID       *uint     `gorm:"index" json:"host_id"`
	Host         *User     `gorm:"foreignKey:HostID;constraint:OnDelete:SET NULL" json:"host,omitempty"`
	TopicID      *uint     `gorm:"index" json:"topic_id"`
	Topic        *Topic    `gorm:"foreignKey:TopicID;constraint:OnDelete:SET NULL" json:"topic,omitempty"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Participants []User    `gorm:"many2many:room_participants;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsHostedBy reports whether userID is the room's host. A room without a
// host is owned by nobody.
func (r *Room) IsHostedBy(userID uint) bool {
	return r.HostID != nil && *r.HostID == userID
}

// ParticipantIDs returns the ids of the loaded participants.
func (r *Room) ParticipantIDs() []uint {
	ids := make([]uint, 0, len(r.Participants))
	for _, p := range r.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}
