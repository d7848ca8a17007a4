package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"chat-backend/config/common"
	"chat-backend/dto/res"
	"chat-backend/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Token is not valid",
			})
		},
	})(c)
}

// WithPrincipal binds the caller's user id when a valid bearer token is
// present and passes the request through either way. The CRUD surface is
// open; the principal only matters for attributing created records.
func (middleware *Middleware) WithPrincipal(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		userID, err := middleware.JWT.GetUserIdFromToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			middleware.Log.WithError(err).Warn("ignoring invalid bearer token")
		} else {
			c.Locals("user_id", userID)
		}
	}
	return c.Next()
}
