package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-backend/entity"
)

type ReactionRepository struct {
	Repository[entity.Reaction]
}

func NewReactionRepository() *ReactionRepository {
	return &ReactionRepository{}
}

func (repository ReactionRepository) FindByIdWithUser(ctx context.Context, db *gorm.DB, reaction *entity.Reaction, id uint) error {
	return db.WithContext(ctx).Preload("User").Where("id = ?", id).Take(reaction).Error
}

func (repository ReactionRepository) FindAllWithUser(ctx context.Context, db *gorm.DB, reactions *[]entity.Reaction) error {
	return db.WithContext(ctx).Preload("User").Find(reactions).Error
}
