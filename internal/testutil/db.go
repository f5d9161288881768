// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"orderup/internal/database"
	"orderup/internal/migrations"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB returns a migrated, isolated in-memory SQLite database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Initialize(database.DriverSQLite, dsn, false, nil)
	require.NoError(t, err)
	require.NoError(t, migrations.RunMigrations(db, false, nil))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
