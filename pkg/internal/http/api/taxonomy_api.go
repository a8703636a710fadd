package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/services"
)

func listTag(c *fiber.Ctx) error {
	items, err := services.ListTag()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func listCategory(c *fiber.Ctx) error {
	items, err := services.ListCategory()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}
