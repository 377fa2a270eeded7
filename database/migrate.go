package database

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/repository"
	"github.com/yeremiapane/restaurant-site/utils"
	"gorm.io/gorm"
)

// Migrate creates or alters the site tables, check constraints included.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.MenuItem{},
		&models.Reservation{},
	)
	if err != nil {
		return fmt.Errorf("database: automigrate: %w", err)
	}

	// AutoMigrate only creates check constraints with the table. Add the ones
	// missing from tables that existed before.
	checks := []struct {
		model interface{}
		name  string
	}{
		{&models.MenuItem{}, "chk_menu_items_price"},
		{&models.Reservation{}, "chk_reservations_guests"},
		{&models.Reservation{}, "chk_reservations_status"},
	}
	for _, chk := range checks {
		if db.Migrator().HasConstraint(chk.model, chk.name) {
			continue
		}
		if err := db.Migrator().CreateConstraint(chk.model, chk.name); err != nil {
			// sqlite cannot add constraints to an existing table
			utils.InfoLogger.WithError(err).WithField("constraint", chk.name).Warn("could not add check constraint")
		}
	}

	utils.InfoLogger.Info("database migrated")
	return nil
}

// GrantAdmin gives the registered user with this email the admin role.
func GrantAdmin(ctx context.Context, db *gorm.DB, email string) error {
	user, err := repository.NewUserRepository(db).FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("database: grant admin: %w", err)
	}
	if err := repository.NewRoleRepository(db).Grant(ctx, user.ID, models.RoleAdmin); err != nil {
		return fmt.Errorf("database: grant admin: %w", err)
	}
	utils.InfoLogger.WithField("user_id", user.ID).Info("admin role granted")
	return nil
}
