package bootstrap

import (
	"log"

	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/pkg/credential"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Asset{},
		&entity.MaintenanceRecord{},
	)
}

// SeedAdminUser creates a development admin account so the API is usable
// right after first boot. It is a no-op when the account exists.
func SeedAdminUser(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("admin user already exists, skipping seed")
		return nil
	}

	hash, err := credential.HashPassword(password)
	if err != nil {
		return err
	}

	admin := entity.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("admin user seeded: %s", email)
	return nil
}
