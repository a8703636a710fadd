package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/lumenpress/lumen/pkg/internal/services"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func universalPostFilter(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	user, _ := exts.CurrentUser(c)
	tx = services.FilterPostWithUserContext(tx, user)

	if len(c.Query("author")) > 0 {
		author, err := services.GetAccountWithName(c.Query("author"))
		if err != nil {
			return tx, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		tx = tx.Where("author_id = ?", author.ID)
	}

	if len(c.Query("category")) > 0 {
		tx = services.FilterPostWithCategory(tx, c.Query("category"))
	}
	if len(c.Query("tag")) > 0 {
		tx = services.FilterPostWithTag(tx, c.Query("tag"))
	}
	if len(c.Query("probe")) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, c.Query("probe"))
	}

	return tx, nil
}

func listPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	tx := database.C.Model(&models.Post{})

	var err error
	if tx, err = universalPostFilter(c, tx); err != nil {
		return err
	}

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset, "created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if c.QueryBool("truncate", true) {
		for idx, item := range items {
			if item != nil {
				items[idx] = lo.ToPtr(services.TruncatePostContent(*item))
			}
		}
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func listDraftPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	tx := services.FilterPostWithAuthorDraft(database.C.Model(&models.Post{}), user.ID)

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset, "created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	user, _ := exts.CurrentUser(c)
	tx := services.FilterPostWithUserContext(database.C, user)

	item, err := services.GetPostBySlug(tx, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	services.AttachPostMetric(&item)

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	if err := security.CanPerform(user, security.ActionCreatePost); err != nil {
		return exts.PolicyError(err)
	}

	var data struct {
		Title       string   `json:"title" validate:"required,min=5,max=1024"`
		Content     string   `json:"content" validate:"required,min=10"`
		Description *string  `json:"description"`
		Thumbnail   *string  `json:"thumbnail" validate:"omitempty,url"`
		Attachments []string `json:"attachments"`
		CategoryID  *uint    `json:"category_id"`
		Tags        []string `json:"tags"`
		Published   bool     `json:"published"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Title:       data.Title,
		Content:     data.Content,
		Description: data.Description,
		Thumbnail:   data.Thumbnail,
		Attachments: data.Attachments,
		CategoryID:  data.CategoryID,
		Published:   data.Published,
		Tags: lo.Map(data.Tags, func(name string, index int) models.Tag {
			return models.Tag{Name: name}
		}),
	}

	item, err := services.NewPost(*user, item)
	if err != nil {
		var conflict services.SlugConflictError
		if errors.As(err, &conflict) {
			return fiber.NewError(fiber.StatusConflict, conflict.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	item, err := services.GetPostBySlug(database.C, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionUpdatePost, item); err != nil {
		return exts.PolicyError(err)
	}

	var data struct {
		Title       *string   `json:"title" validate:"omitempty,min=5,max=1024"`
		Content     *string   `json:"content" validate:"omitempty,min=10"`
		Description *string   `json:"description"`
		Thumbnail   *string   `json:"thumbnail" validate:"omitempty,url"`
		Attachments *[]string `json:"attachments"`
		CategoryID  *uint     `json:"category_id"`
		Tags        *[]string `json:"tags"`
		Published   *bool     `json:"published"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Title = lo.FromPtrOr(data.Title, item.Title)
	item.Content = lo.FromPtrOr(data.Content, item.Content)
	if data.Description != nil {
		item.Description = data.Description
	}
	if data.Thumbnail != nil {
		item.Thumbnail = data.Thumbnail
	}
	if data.Attachments != nil {
		item.Attachments = *data.Attachments
	}
	if data.CategoryID != nil {
		item.CategoryID = data.CategoryID
	}
	if data.Published != nil {
		item.Published = *data.Published
	}
	if data.Tags != nil {
		item.Tags = lo.Map(*data.Tags, func(name string, index int) models.Tag {
			return models.Tag{Name: name}
		})
	}

	item, err = services.EditPost(item, data.Tags != nil)
	if err != nil {
		var conflict services.SlugConflictError
		if errors.As(err, &conflict) {
			return fiber.NewError(fiber.StatusConflict, conflict.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	item, err := services.GetPostBySlug(database.C, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionDeletePost, item); err != nil {
		return exts.PolicyError(err)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("unable to delete post: %v", err))
	}

	return c.SendStatus(fiber.StatusOK)
}
