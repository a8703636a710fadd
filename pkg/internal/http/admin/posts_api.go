package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/lumenpress/lumen/pkg/internal/services"
	"github.com/samber/lo"
)

func adminListPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	if !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "moderation dashboard is for admins only")
	}

	tx := database.C.Model(&models.Post{})

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

func adminTogglePostPublished(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("postId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "post id must be a number")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionTogglePublish, item); err != nil {
		return exts.PolicyError(err)
	}

	item, err = services.TogglePostPublished(item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": lo.Ternary(item.Published, "Post published", "Post unpublished"),
		"post":    item,
	})
}
