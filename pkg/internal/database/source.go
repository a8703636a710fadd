package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var dialector gorm.Dialector
	switch viper.GetString("database.driver") {
	case "sqlite":
		dialector = sqlite.Open(viper.GetString("database.dsn"))
	default:
		dialector = postgres.Open(viper.GetString("database.dsn"))
	}

	var err error
	C, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(&log.Logger, logger.Config{
			SlowThreshold:             time.Second,
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  logger.Error,
		}),
	})

	return err
}
