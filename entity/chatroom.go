package entity

type ChatRoom struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	IsGroupChat bool   `json:"is_group_chat" gorm:"default:false"`

	Users    []User    `json:"users" gorm:"many2many:chat_room_users;constraint:OnDelete:CASCADE;"`
	Messages []Message `json:"messages" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"`
}
