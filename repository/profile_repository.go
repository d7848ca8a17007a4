package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-backend/entity"
)

type ProfileRepository struct {
	Repository[entity.Profile]
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (repository ProfileRepository) FindByUserId(ctx context.Context, db *gorm.DB, profile *entity.Profile, userID uint) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Take(profile).Error
}
