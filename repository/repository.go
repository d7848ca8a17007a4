package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository[T any] struct {
	*gorm.DB
}

func (repo Repository[T]) Save(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Create(entity).Error
}

func (repo Repository[T]) Update(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Save(entity).Error
}

func (repo Repository[T]) Delete(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Delete(entity).Error
}

func (repo Repository[T]) FindById(ctx context.Context, db *gorm.DB, entity *T, id uint) error {
	return db.WithContext(ctx).Where("id = ?", id).Take(entity).Error
}

func (repo Repository[T]) FindAll(ctx context.Context, db *gorm.DB, entities *[]T) error {
	return db.WithContext(ctx).Find(entities).Error
}

// FindPage fetches one page in default database order and reports the
// total row count before paging.
func (repo Repository[T]) FindPage(ctx context.Context, db *gorm.DB, entities *[]T, offset, limit int) (int64, error) {
	var model T
	var count int64
	if err := db.WithContext(ctx).Model(&model).Count(&count).Error; err != nil {
		return 0, err
	}
	err := db.WithContext(ctx).Offset(offset).Limit(limit).Find(entities).Error
	return count, err
}

func (repo Repository[T]) ExistsById(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var model T
	var count int64
	err := db.WithContext(ctx).Model(&model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
