package entity

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(150);not null"`
	Email    string `json:"email" gorm:"type:varchar(254)"`
	Password string `json:"-" gorm:"type:varchar(255)"`

	Profile  *Profile   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Rooms    []ChatRoom `json:"-" gorm:"many2many:chat_room_users;"`
	Messages []Message  `json:"-" gorm:"foreignKey:SenderID"`
}
