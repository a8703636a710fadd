package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL).Name("Admin")
	{
		admin.Get("/posts", adminListPost)
		admin.Patch("/posts/:postId/publish", adminTogglePostPublished)

		admin.Get("/users", adminListAccount)
		admin.Patch("/users/:userId", adminSetAccountRole)
		admin.Delete("/users/:userId", adminDeleteAccount)

		admin.Post("/categories", adminNewCategory)
		admin.Patch("/categories/:categoryId", adminEditCategory)
		admin.Delete("/categories/:categoryId", adminDeleteCategory)
	}
}
