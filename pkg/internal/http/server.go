package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/lumenpress/lumen/pkg/internal"
	"github.com/lumenpress/lumen/pkg/internal/http/admin"
	"github.com/lumenpress/lumen/pkg/internal/http/api"
	"github.com/lumenpress/lumen/pkg/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func NewServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Lumen",
		AppName:               "Lumen v" + pkg.AppVersion,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             16 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodOptions,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
		}, ","),
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
	}))

	app.Use(requestLogger)
	app.Use(authenticate)

	app.Static("/uploads", viper.GetString("content.upload_dir"))

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/api/admin")

	return app
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("Request handled")

	return err
}

// authenticate resolves the bearer ticket, when one is offered, into the
// account placed at c.Locals("user"). Anonymous requests pass through.
func authenticate(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(token) == 0 {
		token = c.Cookies("auth_ticket")
	}

	if len(token) > 0 {
		if user, err := services.Authenticate(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}
