package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/lumenpress/lumen/pkg/internal/services"
)

func doUpload(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	// Uploading goes with authoring, so the create-post privilege gates it.
	if err := security.CanPerform(user, security.ActionCreatePost); err != nil {
		return exts.PolicyError(err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no file provided")
	}

	url, err := services.SaveUpload(file, func(dst string) error {
		return c.SaveFile(file, dst)
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
