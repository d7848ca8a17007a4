package entity

// Profile is provisioned automatically the first time its user is saved;
// there is never more than one per user.
type Profile struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         uint   `json:"user" gorm:"uniqueIndex;not null"`
	Bio            string `json:"bio" gorm:"type:varchar(500)"`
	ProfilePicture string `json:"profile_picture" gorm:"type:text"`
	OnlineStatus   bool   `json:"online_status" gorm:"default:false"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}
