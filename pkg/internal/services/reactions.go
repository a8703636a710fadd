package services

import (
	"errors"

	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"gorm.io/gorm"
)

// ToggleLikePost flips the like of a post for one account. It reports true when
// the like is now active and false when it was withdrawn. The composite primary
// key on likes keeps a concurrent double-toggle from inserting twice.
func ToggleLikePost(user models.Account, post models.Post) (bool, error) {
	like := models.Like{
		PostID:    post.ID,
		AccountID: user.ID,
	}

	if err := database.C.Where(&like).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, database.C.Create(&like).Error
		}
		return false, err
	}

	return false, database.C.Delete(&like).Error
}

// ToggleSavePost follows the exact toggle semantics of ToggleLikePost, tracked
// independently of the like state.
func ToggleSavePost(user models.Account, post models.Post) (bool, error) {
	saved := models.SavedPost{
		PostID:    post.ID,
		AccountID: user.ID,
	}

	if err := database.C.Where(&saved).First(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, database.C.Create(&saved).Error
		}
		return false, err
	}

	return false, database.C.Delete(&saved).Error
}

func ListSavedPost(user models.Account, take int, offset int) ([]models.SavedPost, error) {
	if take > 100 {
		take = 100
	}

	var items []models.SavedPost
	err := database.C.
		Where("account_id = ?", user.ID).
		Preload("Post", func(tx *gorm.DB) *gorm.DB {
			return PreloadGeneral(tx)
		}).
		Order("created_at DESC").
		Limit(take).Offset(offset).
		Find(&items).Error

	return items, err
}
