package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/daystreak/internal/db"
	"github.com/terraincognita07/daystreak/internal/models"
	"github.com/terraincognita07/daystreak/internal/security"
	"github.com/terraincognita07/daystreak/internal/services"
	"gorm.io/gorm"
)

const (
	testSecretKey = "0123456789abcdef0123456789abcdef"
	testProfileID = "4f1b2f0e-6a77-4c7e-9c1d-1d8c0b0c6a10"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "daystreak-cli-test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func TestRunTokenCommandPrintsVerifiableToken(t *testing.T) {
	now := time.Date(2026, time.January, 6, 9, 0, 0, 0, time.UTC)
	var output bytes.Buffer

	if err := RunTokenCommand(&output, testSecretKey, strings.ToUpper(testProfileID), time.Hour, now); err != nil {
		t.Fatalf("RunTokenCommand() unexpected error: %v", err)
	}

	subject, err := security.ParseToken([]byte(testSecretKey), strings.TrimSpace(output.String()), now)
	if err != nil {
		t.Fatalf("printed token does not verify: %v", err)
	}
	if subject != testProfileID {
		t.Fatalf("expected normalized subject %s, got %s", testProfileID, subject)
	}
}

func TestRunTokenCommandRejectsInvalidProfileID(t *testing.T) {
	var output bytes.Buffer
	err := RunTokenCommand(&output, testSecretKey, "not-a-uuid", time.Hour, time.Now())
	if !errors.Is(err, services.ErrInvalidProfileID) {
		t.Fatalf("expected ErrInvalidProfileID, got %v", err)
	}
	if output.Len() != 0 {
		t.Fatalf("expected no output on error, got %q", output.String())
	}
}

func TestRunStreakCommandPrintsTotals(t *testing.T) {
	database := openTestDatabase(t)

	if err := database.Create(&models.Profile{ID: testProfileID, Name: "Ada"}).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	for _, day := range []int{1, 2, 5, 6} {
		entry := models.ExerciseLog{
			UserID:    testProfileID,
			Timestamp: time.Date(2026, time.January, day, 8, 0, 0, 0, time.UTC),
		}
		if err := database.Create(&entry).Error; err != nil {
			t.Fatalf("create exercise log: %v", err)
		}
	}

	var output bytes.Buffer
	if err := RunStreakCommand(context.Background(), &output, database, time.UTC, testProfileID, "2026-01-06", time.Now()); err != nil {
		t.Fatalf("RunStreakCommand() unexpected error: %v", err)
	}

	for _, want := range []string{
		"name: Ada",
		"today: 2026-01-06",
		"total_exercise_day_count: 4",
		"current_exercise_day_streak: 2",
	} {
		if !strings.Contains(output.String(), want) {
			t.Fatalf("expected output to contain %q, got %q", want, output.String())
		}
	}

	output.Reset()
	if err := RunStreakCommand(context.Background(), &output, database, time.UTC, testProfileID, "2026-01-09", time.Now()); err != nil {
		t.Fatalf("RunStreakCommand() unexpected error: %v", err)
	}
	if !strings.Contains(output.String(), "current_exercise_day_streak: 0") {
		t.Fatalf("expected broken streak three days later, got %q", output.String())
	}
}

func TestRunStreakCommandErrors(t *testing.T) {
	database := openTestDatabase(t)
	var output bytes.Buffer

	err := RunStreakCommand(context.Background(), &output, database, time.UTC, testProfileID, "", time.Now())
	if !errors.Is(err, services.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	if err := RunStreakCommand(context.Background(), &output, database, time.UTC, testProfileID, "06/01/2026", time.Now()); err == nil {
		t.Fatal("expected error for malformed --today")
	}
}

func TestRunMigrateCommandReportsVersions(t *testing.T) {
	database := openTestDatabase(t)
	var output bytes.Buffer

	if err := RunMigrateCommand(&output, database); err != nil {
		t.Fatalf("RunMigrateCommand() unexpected error: %v", err)
	}
	if !strings.Contains(output.String(), "schema up to date (sqlite): 0001") {
		t.Fatalf("unexpected migrate output %q", output.String())
	}
}
