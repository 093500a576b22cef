package migrations

import (
	"canteen/internal/auth"
	"canteen/internal/config"
	"canteen/internal/logger"
	"canteen/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run migrates the schema and seeds bootstrap data: the single admin
// account and, on a fresh install, the sample menu.
func Run(db *gorm.DB, cfg *config.Config) error {
	log := logger.L()
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.Feedback{},
	)
	if err != nil {
		return err
	}

	if err := ensureAdmin(db, cfg); err != nil {
		return err
	}
	if err := seedMenu(db); err != nil {
		return err
	}

	log.Info("database migrations completed")
	return nil
}

// ensureAdmin creates the default admin account when no admin-role user
// exists yet.
func ensureAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", string(models.RoleAdmin)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         string(models.RoleAdmin),
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.L().Info("default admin created", zap.String("username", admin.Username))
	return nil
}

// seedMenu inserts the sample catalog when the menu table is empty.
func seedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var sample []models.MenuItem
	for _, row := range []struct {
		name     string
		price    float64
		from, to string
	}{
		{"Chicken Biryani", 120.0, "11:00", "15:00"},
		{"Veg Biryani", 100.0, "11:00", "15:00"},
		{"Samosa", 15.0, "09:00", "17:00"},
		{"Egg Manchuria", 80.0, "11:00", "15:00"},
		{"Chicken Manchuria", 100.0, "11:00", "15:00"},
		{"Idli", 30.0, "07:00", "10:30"},
		{"Dosa", 40.0, "07:00", "11:00"},
		{"Poori", 35.0, "07:00", "11:00"},
	} {
		from, to := row.from, row.to
		sample = append(sample, models.MenuItem{
			Name:          row.name,
			Price:         row.price,
			Available:     true,
			AvailableFrom: &from,
			AvailableTo:   &to,
		})
	}

	if err := db.Create(&sample).Error; err != nil {
		return err
	}

	logger.L().Info("sample menu seeded", zap.Int("items", len(sample)))
	return nil
}
