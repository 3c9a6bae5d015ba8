package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles     *ProfileRepository
	ExerciseLogs *ExerciseLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:     NewProfileRepository(database),
		ExerciseLogs: NewExerciseLogRepository(database),
	}
}
