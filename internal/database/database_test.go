package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"maturity-tracker-backend/internal/config"
	"maturity-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:db_%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := Initialize(dsn, &Options{Driver: DriverSQLite, LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestInitializeSQLite(t *testing.T) {
	db := openMemoryDB(t)

	t.Run("creates every table", func(t *testing.T) {
		m := db.Migrator()
		for _, model := range Models() {
			assert.True(t, m.HasTable(model), "missing table for %T", model)
		}
	})

	t.Run("uses a single connection", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("enforces foreign keys", func(t *testing.T) {
		team := &models.Team{Name: "Orphans", OwnerID: uuid.New()}
		assert.Error(t, db.Create(team).Error)
	})
}

func TestInitializeSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "maturity.db")
	db, err := Initialize("file:"+path+"?_foreign_keys=on", &Options{Driver: DriverSQLite, LogLevel: logger.Silent})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
	require.NoError(t, sqlDB.Close())
	assert.FileExists(t, path)
}

func TestInitializeUnsupportedDriver(t *testing.T) {
	_, err := Initialize("whatever", &Options{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestTxManager(t *testing.T) {
	db := openMemoryDB(t)
	tx := NewTxManager(db)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := tx.WithTransaction(ctx, func(tx *gorm.DB) error {
			return tx.Create(&models.MeasurementCategory{Name: "Committed"}).Error
		})
		require.NoError(t, err)

		var count int64
		db.Model(&models.MeasurementCategory{}).Where("name = ?", "Committed").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rolls back every statement on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := tx.WithTransaction(ctx, func(tx *gorm.DB) error {
			if err := tx.Create(&models.MeasurementCategory{Name: "First"}).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.MeasurementCategory{Name: "Second"}).Error; err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var count int64
		db.Model(&models.MeasurementCategory{}).Where("name IN ?", []string{"First", "Second"}).Count(&count)
		assert.Zero(t, count)
	})
}

func TestConnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connect.db")
	cfg := &config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    "file:" + path + "?_foreign_keys=on",
		LogLevel:       "error",
	}

	db, err := Connect(cfg, true)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	assert.False(t, db.Migrator().HasTable(&models.Campaign{}))

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Campaign{}))
}
