package handlers

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/taskforge/taskforge/errors"
	"github.com/taskforge/taskforge/service"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "username and password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return apperrors.Validation("invalid request body")
	}

	user, err := h.auth.Register(c.UserContext(), body.Username, body.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered",
		"user":    fiber.Map{"id": user.ID, "username": user.Username},
	})
}

// Login godoc
// @Summary Exchange credentials for a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "username and password"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return apperrors.Validation("invalid request body")
	}

	token, err := h.auth.Login(c.UserContext(), body.Username, body.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
