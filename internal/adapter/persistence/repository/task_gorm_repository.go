package repository

import (
	"context"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type TaskGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ITaskRepository = (*TaskGormRepository)(nil)

func NewTaskGormRepository(db *gorm.DB) *TaskGormRepository {
	return &TaskGormRepository{db: db}
}

func (r *TaskGormRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	if err := dbFromContext(ctx, r.db).Create(&t).Error; err != nil {
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskGormRepository) UpdateTitleDescription(ctx context.Context, id uint, title, description string) error {
	return dbFromContext(ctx, r.db).
		Model(&entities.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description}).Error
}
