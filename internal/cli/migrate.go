package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/daystreak/internal/db"
	"gorm.io/gorm"
)

func RunMigrateCommand(out io.Writer, database *gorm.DB) error {
	if err := db.ApplyMigrations(database); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	versions, err := db.AppliedMigrations(database)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "schema up to date (%s): %s\n", database.Dialector.Name(), strings.Join(versions, ", "))
	return err
}
