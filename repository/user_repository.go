package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-backend/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (repository UserRepository) FindByUsername(ctx context.Context, db *gorm.DB, user *entity.User, username string) error {
	return db.WithContext(ctx).Where("username = ?", username).Take(user).Error
}
