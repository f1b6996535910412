package devserver

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/session"
)

type UsersHandler struct {
	Store Store
	Cfg   *config.Config
}

func NewUsersHandler(store Store, cfg *config.Config) *UsersHandler {
	return &UsersHandler{Store: store, Cfg: cfg}
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login mints a dev token for a seeded user. This is a development
// fixture; there is no password check and no real identity provider.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	row, err := h.Store.UserByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unknown user",
		})
	}

	token, err := session.Mint(row.ID, row.Role, h.Cfg.JWTSecret, 72*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not issue token",
		})
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  userWire(*row),
	})
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	rows, err := h.Store.Users()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query users",
		})
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, userWire(row))
	}
	return c.JSON(result)
}

func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	row, err := h.Store.User(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query users",
		})
	}
	return c.JSON(userWire(*row))
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	// Users may only edit their own profile; admins may edit anyone.
	if role, _ := c.Locals("role").(string); role != "admin" && currentUserID(c) != id {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	row, err := h.Store.UpdateUser(id, translateFields(body, userColumns))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update user",
		})
	}
	return c.JSON(userWire(*row))
}
