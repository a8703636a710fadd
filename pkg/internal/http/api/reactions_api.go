package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/lumenpress/lumen/pkg/internal/services"
)

func toggleLike(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	var data struct {
		PostID uint `json:"post_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tx := services.FilterPostWithUserContext(database.C, user)
	post, err := services.GetPost(tx, data.PostID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionLikePost); err != nil {
		return exts.PolicyError(err)
	}

	liked, err := services.ToggleLikePost(*user, post)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"liked": liked,
	})
}

func toggleSavedPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	var data struct {
		PostID uint `json:"post_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tx := services.FilterPostWithUserContext(database.C, user)
	post, err := services.GetPost(tx, data.PostID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionSavePost); err != nil {
		return exts.PolicyError(err)
	}

	saved, err := services.ToggleSavePost(*user, post)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"saved": saved,
	})
}

func listSavedPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	items, err := services.ListSavedPost(*user, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}
