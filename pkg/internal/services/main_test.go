package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lumenpress/lumen/pkg/internal/cache"
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(source))

	database.C = source

	if cache.S == nil {
		require.NoError(t, cache.NewStore())
	}
}

func createTestAccount(t *testing.T, name, role string) models.Account {
	t.Helper()

	account := models.Account{
		Name:  name,
		Nick:  name,
		Email: fmt.Sprintf("%s@example.com", name),
		Role:  role,
	}
	require.NoError(t, database.C.Create(&account).Error)

	return account
}
