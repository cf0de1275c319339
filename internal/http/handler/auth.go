package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/auth"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

// Signup handles POST /api/auth/signup.
func Signup(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.SignupRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		pair, err := svc.Signup(c.UserContext(), req)
		if err != nil {
			return authError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(pair)
	}
}

// Login handles POST /api/auth/login.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		pair, err := svc.Login(c.UserContext(), req)
		if err != nil {
			return authError(c, err)
		}

		return c.JSON(pair)
	}
}

// RefreshToken handles POST /api/auth/refresh.
func RefreshToken(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.RefreshRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.RefreshToken == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "refresh_token is required")
		}

		pair, err := svc.Refresh(c.UserContext(), req.RefreshToken)
		if err != nil {
			return authError(c, err)
		}

		return c.JSON(pair)
	}
}

// Me handles GET /api/auth/me: resolves the bearer token to a profile.
func Me(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		}

		user, err := svc.CurrentUser(c.UserContext(), token)
		if err != nil {
			return authError(c, err)
		}

		return c.JSON(user)
	}
}

// VerifyToken handles GET /api/auth/verify: confirms the bearer token is
// valid and returns the owning user.
func VerifyToken(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		}

		user, err := svc.CurrentUser(c.UserContext(), token)
		if err != nil {
			return authError(c, err)
		}

		return c.JSON(fiber.Map{
			"valid": true,
			"user":  user,
		})
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// authError maps service failures to HTTP statuses. Unknown errors are
// reported without the internal message.
func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmailTaken):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, service.ErrBadCredentials),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, auth.ErrInvalidToken):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, service.ErrInactiveUser):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
