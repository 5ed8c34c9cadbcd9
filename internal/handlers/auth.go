package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/middleware"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/services"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/utils"
)

// AuthHandler serves the authenticated-user routes
type AuthHandler struct {
	DB *gorm.DB
}

// GetCurrentUser handles GET /api/auth/user
// @Summary Get the current user
// @Description Returns the identity record for the active session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/user [get]
// @Security CookieAuth
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// GetPreferences handles GET /api/auth/user/preferences
// @Summary Get client preferences
// @Description Returns the stored client preferences for the current user
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/user/preferences [get]
// @Security CookieAuth
func (h *AuthHandler) GetPreferences(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	prefs, err := services.GetUserPreferences(h.DB, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to fetch preferences", fiber.StatusInternalServerError, "getPreferences")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(prefs)
}

// UpdatePreferences handles PUT /api/auth/user/preferences
// @Summary Replace client preferences
// @Description Stores the request body as the current user's preferences
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/user/preferences [put]
// @Security CookieAuth
func (h *AuthHandler) UpdatePreferences(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	body := c.Body()
	if !json.Valid(body) {
		return utils.ErrorResponse(c, "Preferences must be a JSON document", fiber.StatusBadRequest, "updatePreferences")
	}

	prefs, err := services.UpdateUserPreferences(h.DB, user.ID, body)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to store preferences", fiber.StatusInternalServerError, "updatePreferences")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(prefs)
}
