package model

// Topic labels rooms. Names are matched by exact equality.
type Topic struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;uniqueIndex;not null" json:"name"`
}

// TopicWithCount is a topic together with the number of rooms tagged with it.
type TopicWithCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	RoomCount int64  `json:"room_count"`
}
