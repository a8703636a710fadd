package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/lumenpress/lumen/pkg/internal/services"
)

func listPostComment(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	user, _ := exts.CurrentUser(c)
	tx := services.FilterPostWithUserContext(database.C, user)

	post, err := services.GetPostBySlug(tx, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	count, err := services.CountComment(post.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListComment(post.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	var data struct {
		Content string `json:"content" validate:"required,min=1"`
		PostID  uint   `json:"post_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tx := services.FilterPostWithUserContext(database.C, user)
	post, err := services.GetPost(tx, data.PostID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionCreateComment); err != nil {
		return exts.PolicyError(err)
	}

	item, err := services.NewComment(*user, post, data.Content)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("commentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "comment id must be a number")
	}

	item, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionUpdateComment, item); err != nil {
		return exts.PolicyError(err)
	}

	var data struct {
		Content string `json:"content" validate:"required,min=1"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err = services.EditComment(item, data.Content)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}

func deleteComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("commentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "comment id must be a number")
	}

	item, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionDeleteComment, item); err != nil {
		return exts.PolicyError(err)
	}

	if err := services.DeleteComment(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
