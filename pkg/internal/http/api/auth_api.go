package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenpress/lumen/pkg/internal/http/exts"
	"github.com/lumenpress/lumen/pkg/internal/services"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required,min=2,max=64"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Name, data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateWithPassword(data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	ticket, err := services.GrantTicket(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "auth_ticket",
		Value:    ticket.Token,
		Expires:  ticket.ExpiredAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"token":   ticket.Token,
		"account": account,
	})
}

func doLogout(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(token) == 0 {
		token = c.Cookies("auth_ticket")
	}

	if len(token) > 0 {
		if err := services.RevokeTicket(token); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:    "auth_ticket",
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
	})

	return c.SendStatus(fiber.StatusOK)
}
