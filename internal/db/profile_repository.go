package db

import (
	"context"

	"github.com/terraincognita07/daystreak/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByID(ctx context.Context, profileID string) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.WithContext(ctx).Where("id = ?", profileID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) ExistsByID(ctx context.Context, profileID string) (bool, error) {
	var matched int64
	if err := repo.database.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", profileID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return repo.database.WithContext(ctx).Create(profile).Error
}
