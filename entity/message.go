package entity

import "time"

type Message struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	RoomID          uint       `json:"room" gorm:"not null"`
	SenderID        uint       `json:"sender" gorm:"not null"`
	Content         string     `json:"content" gorm:"type:text;not null"`
	Timestamp       time.Time  `json:"timestamp" gorm:"autoCreateTime"`
	EditedTimestamp *time.Time `json:"edited_timestamp"`

	Room   ChatRoom `json:"-" gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE;"`
	Sender User     `json:"-" gorm:"foreignKey:SenderID;references:ID;constraint:OnDelete:CASCADE;"`

	Reactions []Reaction `json:"-" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
	Replies   []Reply    `json:"-" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
}
