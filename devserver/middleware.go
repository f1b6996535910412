package devserver

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/logging"
	"github.com/lumenlearn/lumen-go/session"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in locals. An empty or invalid token gets a 401.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		userID, role, err := session.Identity(token, cfg.JWTSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals("userID", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// AdminMiddleware additionally requires the admin role.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden - Admin access required",
			})
		}
		return c.Next()
	}
}

// LoggingMiddleware logs each request with its status and latency.
func LoggingMiddleware(log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}

func currentUserID(c *fiber.Ctx) int {
	userID, _ := c.Locals("userID").(int)
	return userID
}
