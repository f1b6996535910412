package devserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/logging"
)

// NewApp builds the devserver fiber app over the given store.
func NewApp(cfg *config.Config, store Store, log *logging.Logger) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(LoggingMiddleware(log))

	// The resolver probes this before anything else.
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	usersHandler := NewUsersHandler(store, cfg)
	app.Post("/api/auth/login", usersHandler.Login)

	auth := AuthMiddleware(cfg)
	admin := AdminMiddleware()

	topicsHandler := NewTopicsHandler(store)
	topics := app.Group("/api/topics", auth)
	topics.Get("/", topicsHandler.List)
	topics.Get("/:id", topicsHandler.Get)
	topics.Post("/", admin, topicsHandler.Create)
	topics.Put("/:id", admin, topicsHandler.Update)
	topics.Delete("/:id", admin, topicsHandler.Delete)

	lessonsHandler := NewLessonsHandler(store)
	topics.Get("/:id/lessons", lessonsHandler.ListByTopic)
	lessons := app.Group("/api/lessons", auth)
	lessons.Get("/:id", lessonsHandler.Get)
	lessons.Post("/", admin, lessonsHandler.Create)
	lessons.Put("/:id", admin, lessonsHandler.Update)
	lessons.Delete("/:id", admin, lessonsHandler.Delete)

	assessmentsHandler := NewAssessmentsHandler(store)
	topics.Get("/:id/assessment", assessmentsHandler.GetByTopic)
	app.Post("/api/assessments/:id/submit", auth, assessmentsHandler.Submit)

	activityHandler := NewActivityHandler(store)
	lessons.Post("/:id/complete", activityHandler.Complete)
	lessons.Delete("/:id/complete", activityHandler.Uncomplete)
	lessons.Post("/:id/view", activityHandler.View)

	users := app.Group("/api/users", auth)
	users.Get("/", admin, usersHandler.List)
	users.Get("/:id", usersHandler.Get)
	users.Put("/:id", usersHandler.Update)
	users.Get("/:id/lesson-completions", activityHandler.Completions)
	users.Get("/:id/attempts", activityHandler.Attempts)
	users.Get("/:id/topics/:topicId/progress", activityHandler.Progress)

	return app
}
