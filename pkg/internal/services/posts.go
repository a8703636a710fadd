package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlugConflictError names the slug that is already taken so the caller can
// offer a rename instead of treating it as a generic validation failure.
type SlugConflictError struct {
	Slug string
}

func (e SlugConflictError) Error() string {
	return fmt.Sprintf("a post with slug %q already exists", e.Slug)
}

func GenerateSlug(title string) string {
	return slug.Make(title)
}

func FilterPostDraft(tx *gorm.DB) *gorm.DB {
	return tx.Where("published = ?", true)
}

// FilterPostWithUserContext keeps drafts visible to their author and to admins only.
func FilterPostWithUserContext(tx *gorm.DB, user *models.Account) *gorm.DB {
	if user == nil {
		return FilterPostDraft(tx)
	}
	if user.IsAdmin() {
		return tx
	}
	return tx.Where("published = ? OR author_id = ?", true, user.ID)
}

func FilterPostWithAuthorDraft(tx *gorm.DB, uid uint) *gorm.DB {
	return tx.Where("author_id = ? AND published = ?", uid, false)
}

func FilterPostWithCategory(tx *gorm.DB, name string) *gorm.DB {
	return tx.Joins("JOIN categories ON categories.id = posts.category_id").
		Where("categories.name = ?", name)
}

func FilterPostWithTag(tx *gorm.DB, name string) *gorm.DB {
	names := strings.Split(name, ",")
	return tx.Joins("JOIN post_tags ON posts.id = post_tags.post_id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.name IN ?", names).
		Group("posts.id").
		Having("COUNT(DISTINCT tags.id) = ?", len(names))
}

func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + strings.ToLower(probe) + "%"
	return tx.Where(
		"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(description) LIKE ?",
		probe, probe, probe,
	)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Tags").
		Preload("Category").
		Preload("Author")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("posts.id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func GetPostBySlug(tx *gorm.DB, alias string) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC").Preload("Account")
		}).
		Where("slug = ?", alias).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Distinct("posts.id").Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func AttachPostMetric(item *models.Post) {
	countOf := func(model any) int64 {
		var count int64
		if err := database.C.Model(model).
			Where("post_id = ?", item.ID).
			Count(&count).Error; err != nil {
			return 0
		}
		return count
	}

	item.Metric = models.PostMetric{
		CommentCount: countOf(&models.Comment{}),
		LikeCount:    countOf(&models.Like{}),
		SaveCount:    countOf(&models.SavedPost{}),
	}
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	idx := lo.Map(items, func(item *models.Post, index int) uint {
		return item.ID
	})
	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	// Load comment and like counts in two grouped queries instead of per-post lookups.
	type grouped struct {
		PostID uint
		Count  int64
	}
	batchCount := func(model any, assign func(post *models.Post, count int64)) error {
		var rows []grouped
		if err := database.C.Model(model).
			Select("post_id, COUNT(*) as count").
			Where("post_id IN ?", idx).
			Group("post_id").
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, row := range rows {
			if post, ok := itemMap[row.PostID]; ok {
				assign(post, row.Count)
			}
		}
		return nil
	}

	if err := batchCount(&models.Comment{}, func(post *models.Post, count int64) {
		post.Metric.CommentCount = count
	}); err != nil {
		return items, err
	}
	if err := batchCount(&models.Like{}, func(post *models.Post, count int64) {
		post.Metric.LikeCount = count
	}); err != nil {
		return items, err
	}

	return items, nil
}

func ensureSlugAvailable(alias string, selfID uint) error {
	var holder models.Post
	if err := database.C.Select("id").Where("slug = ?", alias).First(&holder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if holder.ID == selfID {
		return nil
	}
	return SlugConflictError{Slug: alias}
}

func EnsurePostCategoryAndTags(item models.Post) (models.Post, error) {
	var err error
	if item.CategoryID != nil {
		var category models.Category
		if err = database.C.Where("id = ?", *item.CategoryID).First(&category).Error; err != nil {
			return item, fmt.Errorf("unable to find category: %v", err)
		}
	}
	for idx, tag := range item.Tags {
		item.Tags[idx], err = GetTagOrCreate(tag.Name)
		if err != nil {
			return item, err
		}
	}
	return item, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = user.ID
	item.Slug = GenerateSlug(item.Title)
	if err := ensureSlugAvailable(item.Slug, 0); err != nil {
		return item, err
	}

	item.Language = DetectLanguage(item.Content)

	item, err := EnsurePostCategoryAndTags(item)
	if err != nil {
		return item, err
	}

	start := time.Now()
	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("id", item.ID).Str("slug", item.Slug).
		Dur("elapsed", time.Since(start)).Msg("The post is posted.")
	return item, nil
}

// EditPost persists field changes and the tag replacement as one unit; a reader
// never observes the post with its tags half swapped.
func EditPost(item models.Post, replaceTags bool) (models.Post, error) {
	newSlug := GenerateSlug(item.Title)
	if newSlug != item.Slug {
		if err := ensureSlugAvailable(newSlug, item.ID); err != nil {
			return item, err
		}
		item.Slug = newSlug
	}

	item.Language = DetectLanguage(item.Content)

	item, err := EnsurePostCategoryAndTags(item)
	if err != nil {
		return item, err
	}

	err = database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&item).Error; err != nil {
			return err
		}
		if replaceTags {
			return tx.Model(&item).Association("Tags").Replace(item.Tags)
		}
		return nil
	})

	return item, err
}

func TogglePostPublished(item models.Post) (models.Post, error) {
	item.Published = !item.Published
	if err := database.C.Omit(clause.Associations).Save(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

// DeletePost removes the post and every dependent row so no orphans remain.
func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []any{&models.Comment{}, &models.Like{}, &models.SavedPost{}} {
			if err := tx.Where("post_id = ?", item.ID).Delete(dependent).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&item).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

const TruncatePostContentThreshold = 160

func TruncatePostContent(post models.Post) models.Post {
	if len([]rune(post.Content)) >= TruncatePostContentThreshold {
		post.Content = string([]rune(post.Content)[:TruncatePostContentThreshold]) + "..."
	}
	return post
}
