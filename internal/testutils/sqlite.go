package testutils

import (
	"fmt"
	"testing"

	"maturity-tracker-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory sqlite database with the full schema.
// The connection is closed when the test ends.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:test_%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		Driver:   database.DriverSQLite,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SQLiteTestSuite gives every test a fresh in-memory database and fixtures bound to it
type SQLiteTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Fixtures *Fixtures
}

// SetupTest opens a new database for each test
func (s *SQLiteTestSuite) SetupTest() {
	s.DB = NewSQLiteDB(s.T())
	s.Fixtures = NewFixtures(s.T(), s.DB)
}
