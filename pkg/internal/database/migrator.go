package database

import (
	"github.com/lumenpress/lumen/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Category{},
	&models.Tag{},
	&models.Post{},
	&models.Comment{},
	&models.AuthTicket{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Like{},
			&models.SavedPost{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
