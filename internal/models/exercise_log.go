package models

import "time"

type ExerciseLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index:idx_exercise_logs_user_timestamp" json:"user_id"`
	Timestamp time.Time `gorm:"not null;index:idx_exercise_logs_user_timestamp" json:"timestamp"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
