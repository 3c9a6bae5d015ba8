package api

import (
	"github.com/terraincognita07/daystreak/internal/db"
	"github.com/terraincognita07/daystreak/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, cache services.ProfileSummaryCache) *Handler {
	repositories := db.NewRepositories(database)
	handler.profiles = services.NewProfileService(repositories.Profiles, repositories.ExerciseLogs, cache, handler.location)
	handler.exercises = services.NewExerciseService(repositories.ExerciseLogs, repositories.Profiles, cache, handler.location)
	return handler
}
