package entity

import "time"

// Reply references two messages: the thread root (MessageID) and the
// specific message being answered (ReplyToID). Deleting either one
// removes the reply.
type Reply struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	MessageID       uint       `json:"message" gorm:"not null"`
	ReplyToID       uint       `json:"reply_to" gorm:"not null"`
	UserID          uint       `json:"user" gorm:"not null"`
	Content         string     `json:"content" gorm:"type:text;not null"`
	Timestamp       time.Time  `json:"timestamp" gorm:"autoCreateTime"`
	EditedTimestamp *time.Time `json:"edited_timestamp"`

	Message Message `json:"-" gorm:"foreignKey:MessageID;references:ID;constraint:OnDelete:CASCADE;"`
	ReplyTo Message `json:"-" gorm:"foreignKey:ReplyToID;references:ID;constraint:OnDelete:CASCADE;"`
	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}
