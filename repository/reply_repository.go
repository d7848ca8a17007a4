package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-backend/entity"
)

type ReplyRepository struct {
	Repository[entity.Reply]
}

func NewReplyRepository() *ReplyRepository {
	return &ReplyRepository{}
}

func (repository ReplyRepository) FindByIdWithUser(ctx context.Context, db *gorm.DB, reply *entity.Reply, id uint) error {
	return db.WithContext(ctx).Preload("User").Where("id = ?", id).Take(reply).Error
}

func (repository ReplyRepository) FindAllWithUser(ctx context.Context, db *gorm.DB, replies *[]entity.Reply) error {
	return db.WithContext(ctx).Preload("User").Find(replies).Error
}
