package services

import (
	"errors"
	"strings"

	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"gorm.io/gorm"
)

func ListCategory() ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Order("name ASC").Find(&categories).Error

	return categories, err
}

func GetCategoryWithID(id uint) (models.Category, error) {
	var category models.Category
	if err := database.C.Where("id = ?", id).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewCategory(name, description string) (models.Category, error) {
	category := models.Category{
		Name:        name,
		Description: description,
	}

	err := database.C.Save(&category).Error

	return category, err
}

func EditCategory(category models.Category, name, description string) (models.Category, error) {
	category.Name = name
	category.Description = description

	err := database.C.Save(&category).Error

	return category, err
}

func DeleteCategory(category models.Category) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		// Posts survive their category; they just become uncategorized.
		if err := tx.Model(&models.Post{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func ListTag() ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Order("name ASC").Find(&tags).Error

	return tags, err
}

func GetTagOrCreate(name string) (models.Tag, error) {
	name = strings.ToLower(name)
	var tag models.Tag
	if err := database.C.Where(models.Tag{Name: name}).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			err := database.C.Save(&tag).Error
			return tag, err
		}
		return tag, err
	}
	return tag, nil
}
