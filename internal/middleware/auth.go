package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/config"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/services"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// SessionCookie is the name of the Authorizer session cookie.
const SessionCookie = "cookie_session"

// userLocal is the context key holding the authenticated *models.User.
const userLocal = "user"

// AuthUser validates the request's session cookie against the Authorizer
// instance, upserts the local identity record, and stores it in the request
// context. Unauthenticated requests are rejected before any business logic.
func AuthUser(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies(SessionCookie)
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Authorizer cookie %q not found", SessionCookie),
				Type:    "authorization.user",
			}
		}

		// Lazy init: the redirect URL comes from the first request seen.
		if !services.IsAuthorizerInitialized() {
			if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
				return &types.CustomError{
					Code:    fiber.StatusServiceUnavailable,
					Message: fmt.Sprintf("Authorizer unavailable: %v", err),
					Type:    "authorization.init",
				}
			}
		}

		identity, err := services.ValidateSession(session, []string{"user"})
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "authorization.user",
			}
		}

		user, err := services.UpsertUser(db, services.UserFromSession(identity))
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusInternalServerError,
				Message: fmt.Sprintf("Failed to record user: %v", err),
				Type:    "authorization.upsert",
			}
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// SetUser stores an authenticated user on the request context the way
// AuthUser does. Handler tests use it to stand in for the full middleware.
func SetUser(c *fiber.Ctx, user *models.User) {
	c.Locals(userLocal, user)
}

// UserFromContext returns the authenticated user stored by AuthUser.
func UserFromContext(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(userLocal).(*models.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("user not found in context")
	}
	return user, nil
}
