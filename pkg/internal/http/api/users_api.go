package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/services"
)

func getMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	// Read through to the database so a freshly changed role shows up
	// even while the ticket cache is still warm.
	account, err := services.GetAccount(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

func editMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	var data struct {
		Nick        *string `json:"nick" validate:"omitempty,min=2,max=64"`
		Description *string `json:"description" validate:"omitempty,max=500"`
		Avatar      *string `json:"avatar" validate:"omitempty,url"`
		Location    *string `json:"location"`
		Website     *string `json:"website" validate:"omitempty,url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.GetAccount(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	account, err = services.EditAccountProfile(account, services.AccountProfileChanges{
		Nick:        data.Nick,
		Description: data.Description,
		Avatar:      data.Avatar,
		Location:    data.Location,
		Website:     data.Website,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

func getOtherUser(c *fiber.Ctx) error {
	account, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Public profile; the email stays private.
	account.Email = ""

	return c.JSON(account)
}
