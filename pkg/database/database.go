package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/config"
	"github.com/Wannasingh/wannasingh-blog/internal/model"
)

// InitDB opens the configured database and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dial = postgres.Open(cfg.Database.DSN)
	case "sqlite", "":
		dial = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates/updates the schema and seeds the status lookup rows.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Status{},
		&model.Category{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Message{},
		&model.Notification{},
	); err != nil {
		return err
	}
	statuses := []model.Status{
		{ID: model.StatusDraft, Status: "draft"},
		{ID: model.StatusPublished, Status: "published"},
	}
	for _, s := range statuses {
		if err := db.Where("id = ?", s.ID).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}
	return nil
}
