package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	// running it again on an existing schema is fine
	require.NoError(t, Migrate(db))

	for _, table := range []interface{}{&models.User{}, &models.UserRole{}, &models.MenuItem{}, &models.Reservation{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasConstraint(&models.MenuItem{}, "chk_menu_items_price"))
	assert.True(t, db.Migrator().HasConstraint(&models.Reservation{}, "chk_reservations_status"))
}

func TestGrantAdmin(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	ctx := context.Background()

	user, err := repository.NewUserRepository(db).Create(ctx, "gerant@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, GrantAdmin(ctx, db, "Gerant@Example.com"))
	ok, err := repository.NewRoleRepository(db).HasRole(ctx, user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	err = GrantAdmin(ctx, db, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
