package db

import (
	"context"

	"github.com/terraincognita07/daystreak/internal/models"
	"gorm.io/gorm"
)

type ExerciseLogRepository struct {
	database *gorm.DB
}

func NewExerciseLogRepository(database *gorm.DB) *ExerciseLogRepository {
	return &ExerciseLogRepository{database: database}
}

// ListByUser returns every log of the user, oldest first.
func (repo *ExerciseLogRepository) ListByUser(ctx context.Context, userID string) ([]models.ExerciseLog, error) {
	logs := make([]models.ExerciseLog, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *ExerciseLogRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).
		Model(&models.ExerciseLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ExerciseLogRepository) Create(ctx context.Context, entry *models.ExerciseLog) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}
