package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitledger/fitledger/internal/services"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.auth.Register(services.RegistrationInput{
		Username: req.Username,
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	token, err := handler.generateToken(user.ID, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password are required")
	}

	user, err := handler.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		// Authentication failures stay 401 rather than the generic 403.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := handler.generateToken(user.ID, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, err := handler.auth.FindByID(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
