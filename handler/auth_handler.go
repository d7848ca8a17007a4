package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"chat-backend/dto/req"
	"chat-backend/dto/res"
	"chat-backend/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	request := new(req.RegisterRequest)
	if err := c.BodyParser(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(res.DetailResponse{Detail: "Malformed request body."})
	}

	registerResponse, err := handler.AuthUsecase.Register(c.Context(), request)
	if err != nil {
		return handler.renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(registerResponse)
}

func (handler *AuthHandler) LoginUser(c *fiber.Ctx) error {
	request := new(req.LoginRequest)
	if err := c.BodyParser(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(res.DetailResponse{Detail: "Malformed request body."})
	}

	loginResponse, err := handler.AuthUsecase.Login(c.Context(), request)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Invalid username or password.",
			})
		}
		return handler.renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(loginResponse)
}

func (handler *AuthHandler) GetAccount(c *fiber.Ctx) error {
	accountResponse, err := handler.AuthUsecase.GetAccount(c.Context(), principalID(c))
	if err != nil {
		return handler.renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(accountResponse)
}

func (handler *AuthHandler) UpdateAccount(c *fiber.Ctx) error {
	request := new(req.EditAccountRequest)
	if err := c.BodyParser(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(res.DetailResponse{Detail: "Malformed request body."})
	}

	accountResponse, err := handler.AuthUsecase.UpdateAccount(c.Context(), principalID(c), request)
	if err != nil {
		return handler.renderError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(accountResponse)
}

func (handler *AuthHandler) renderError(c *fiber.Ctx, err error) error {
	var validationError *usecase.ValidationError
	if errors.As(err, &validationError) {
		return c.Status(fiber.StatusBadRequest).JSON(validationError.Fields)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c)
	}

	handler.Logger.WithError(err).Error("auth operation failed")
	return c.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
		Status:     fiber.ErrInternalServerError.Message,
		StatusCode: fiber.StatusInternalServerError,
		Error:      "Internal server error.",
	})
}
