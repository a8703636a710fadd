package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/lumenpress/lumen/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

func adminListAccount(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	if err := security.CanPerform(user, security.ActionManageUsers); err != nil {
		return exts.PolicyError(err)
	}

	accounts, count, err := services.ListAccount(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  accounts,
	})
}

func adminSetAccountRole(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user id must be a number")
	}

	account, err := services.GetAccount(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionManageUsers); err != nil {
		return exts.PolicyError(err)
	}

	var data struct {
		Role string `json:"role" validate:"required,oneof=READER EDITOR ADMIN"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err = services.SetAccountRole(account, data.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

func adminDeleteAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user, _ := exts.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user id must be a number")
	}

	account, err := services.GetAccount(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := security.CanPerform(user, security.ActionManageUsers); err != nil {
		return exts.PolicyError(err)
	}

	if account.ID == user.ID {
		return fiber.NewError(fiber.StatusBadRequest, "you cannot delete your own account here")
	}

	if err := services.DeleteAccount(account); err != nil {
		log.Error().Err(err).Uint("actor", user.ID).Uint("account", account.ID).
			Msg("An error occurred when deleting account...")
		return fiber.NewError(fiber.StatusInternalServerError, "unable to delete account")
	}

	return c.SendStatus(fiber.StatusOK)
}
