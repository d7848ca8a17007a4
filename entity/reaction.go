package entity

import "time"

type Reaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MessageID uint      `json:"message" gorm:"not null"`
	UserID    uint      `json:"user" gorm:"not null"`
	Emoji     string    `json:"emoji" gorm:"type:varchar(50)"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`

	Message Message `json:"-" gorm:"foreignKey:MessageID;references:ID;constraint:OnDelete:CASCADE;"`
	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}
