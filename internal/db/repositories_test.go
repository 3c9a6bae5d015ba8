package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/daystreak/internal/models"
	"gorm.io/gorm"
)

func TestProfileRepositoryCreateAndFind(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "daystreak-profiles.db"))
	repo := NewProfileRepository(database)
	ctx := context.Background()

	profile := models.Profile{ID: "4f1b2f0e-6a77-4c7e-9c1d-1d8c0b0c6a10", Name: "Runner", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, &profile); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if found.Name != "Runner" {
		t.Fatalf("expected name Runner, got %q", found.Name)
	}

	exists, err := repo.ExistsByID(ctx, profile.ID)
	if err != nil || !exists {
		t.Fatalf("ExistsByID() = %v, %v; want true, nil", exists, err)
	}

	duplicate := models.Profile{ID: profile.ID, Name: "Other", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, &duplicate); err == nil {
		t.Fatal("expected duplicate profile insert to fail")
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for missing profile, got %v", err)
	}
}

func TestExerciseLogRepositoryListsOldestFirst(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "daystreak-logs.db"))
	repos := NewRepositories(database)
	ctx := context.Background()

	userID := "0d3c1a52-8f39-4b8e-9d55-3c8a3b8d4e21"
	if err := repos.Profiles.Create(ctx, &models.Profile{ID: userID, Name: "Walker", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	otherID := "9a0f5a3c-1111-4d2b-8a44-2b7f7f3c9e01"
	if err := repos.Profiles.Create(ctx, &models.Profile{ID: otherID, Name: "Other", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("create other profile: %v", err)
	}

	timestamps := []time.Time{
		time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 6, 15, 0, 0, time.UTC),
	}
	for _, timestamp := range timestamps {
		entry := models.ExerciseLog{UserID: userID, Timestamp: timestamp, CreatedAt: time.Now().UTC()}
		if err := repos.ExerciseLogs.Create(ctx, &entry); err != nil {
			t.Fatalf("create log: %v", err)
		}
	}
	if err := repos.ExerciseLogs.Create(ctx, &models.ExerciseLog{UserID: otherID, Timestamp: timestamps[0], CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("create other log: %v", err)
	}

	logs, err := repos.ExerciseLogs.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	for index := 1; index < len(logs); index++ {
		if logs[index].Timestamp.Before(logs[index-1].Timestamp) {
			t.Fatalf("expected ascending timestamps, got %v before %v", logs[index-1].Timestamp, logs[index].Timestamp)
		}
	}

	count, err := repos.ExerciseLogs.CountByUser(ctx, userID)
	if err != nil {
		t.Fatalf("CountByUser() unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}
