package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-backend/entity"
)

type ChatRoomRepository struct {
	Repository[entity.ChatRoom]
}

func NewChatRoomRepository() *ChatRoomRepository {
	return &ChatRoomRepository{}
}

func (repository ChatRoomRepository) FindByIdWithUsers(ctx context.Context, db *gorm.DB, room *entity.ChatRoom, id uint) error {
	return db.WithContext(ctx).Preload("Users").Where("id = ?", id).Take(room).Error
}

func (repository ChatRoomRepository) FindAllWithUsers(ctx context.Context, db *gorm.DB, rooms *[]entity.ChatRoom) error {
	return db.WithContext(ctx).Preload("Users").Find(rooms).Error
}

func (repository ChatRoomRepository) FindPageWithUsers(ctx context.Context, db *gorm.DB, rooms *[]entity.ChatRoom, offset, limit int) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.ChatRoom{}).Count(&count).Error; err != nil {
		return 0, err
	}
	err := db.WithContext(ctx).Preload("Users").Offset(offset).Limit(limit).Find(rooms).Error
	return count, err
}
