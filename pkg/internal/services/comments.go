package services

import (
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
)

func ListComment(postId uint, take int, offset int) ([]models.Comment, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Comment
	err := database.C.
		Where("post_id = ?", postId).
		Preload("Account").
		Order("created_at DESC").
		Limit(take).Offset(offset).
		Find(&items).Error

	return items, err
}

func CountComment(postId uint) (int64, error) {
	var count int64
	err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postId).
		Count(&count).Error

	return count, err
}

func GetComment(id uint) (models.Comment, error) {
	var item models.Comment
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

func NewComment(user models.Account, post models.Post, content string) (models.Comment, error) {
	item := models.Comment{
		Content:   content,
		PostID:    post.ID,
		AccountID: user.ID,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	item.Account = user
	return item, nil
}

func EditComment(item models.Comment, content string) (models.Comment, error) {
	item.Content = content
	err := database.C.Save(&item).Error

	return item, err
}

func DeleteComment(item models.Comment) error {
	return database.C.Delete(&item).Error
}
