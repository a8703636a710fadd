package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/register", doRegister)
			auth.Post("/login", doLogin)
			auth.Post("/logout", doLogout)
		}

		api.Get("/users/me", getMyself)
		api.Patch("/users/me", editMyself)
		api.Get("/users/:name", getOtherUser)

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listPost)
			posts.Post("/", createPost)
			posts.Get("/drafts", listDraftPost)
			posts.Get("/:slug", getPost)
			posts.Patch("/:slug", editPost)
			posts.Delete("/:slug", deletePost)
			posts.Get("/:slug/comments", listPostComment)
		}

		comments := api.Group("/comments").Name("Comments API")
		{
			comments.Post("/", createComment)
			comments.Patch("/:commentId", editComment)
			comments.Delete("/:commentId", deleteComment)
		}

		api.Post("/likes", toggleLike)
		api.Get("/saved-posts", listSavedPost)
		api.Post("/saved-posts", toggleSavedPost)

		api.Get("/tags", listTag)
		api.Get("/categories", listCategory)

		api.Post("/upload", doUpload)
	}
}
