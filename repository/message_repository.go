package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-backend/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (repository MessageRepository) FindByIdWithSender(ctx context.Context, db *gorm.DB, message *entity.Message, id uint) error {
	return db.WithContext(ctx).Preload("Sender").Where("id = ?", id).Take(message).Error
}

func (repository MessageRepository) FindAllWithSender(ctx context.Context, db *gorm.DB, messages *[]entity.Message) error {
	return db.WithContext(ctx).Preload("Sender").Find(messages).Error
}

func (repository MessageRepository) FindPageWithSender(ctx context.Context, db *gorm.DB, messages *[]entity.Message, offset, limit int) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Message{}).Count(&count).Error; err != nil {
		return 0, err
	}
	err := db.WithContext(ctx).Preload("Sender").Offset(offset).Limit(limit).Find(messages).Error
	return count, err
}
