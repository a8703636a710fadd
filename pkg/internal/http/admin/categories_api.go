package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/lumenpress/lumen/pkg/internal/services"
)

func adminNewCategory(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	if err := security.CanPerform(user, security.ActionManageUsers); err != nil {
		return exts.PolicyError(err)
	}

	var data struct {
		Name        string `json:"name" validate:"required,min=2,max=64"`
		Description string `json:"description" validate:"max=500"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.NewCategory(data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func adminEditCategory(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "category id must be a number")
	}

	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionManageUsers); err != nil {
		return exts.PolicyError(err)
	}

	var data struct {
		Name        string `json:"name" validate:"required,min=2,max=64"`
		Description string `json:"description" validate:"max=500"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err = services.EditCategory(category, data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

func adminDeleteCategory(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "category id must be a number")
	}

	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionManageUsers); err != nil {
		return exts.PolicyError(err)
	}

	if err := services.DeleteCategory(category); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
