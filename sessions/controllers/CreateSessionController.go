package controllers

import (
	"crypto/subtle"
	"strings"
	"time"

	"jobcard-backend/config"
	"jobcard-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const sessionDuration = 12 * time.Hour

// Sign-in attempts share one limiter for the whole workshop; the access code
// is shared too, so per-account throttling has nothing to key on.
var loginLimiter = rate.NewLimiter(rate.Every(2*time.Second), 5)

type SessionController struct {
	TokenMaker token.Maker
}

type createSessionRequest struct {
	StaffName  string `json:"staff_name"`
	AccessCode string `json:"access_code"`
}

// CreateSessionController signs a staff member in against the shared workshop
// access code and sets the session cookie.
func (sc *SessionController) CreateSessionController(c *fiber.Ctx) error {
	if !loginLimiter.Allow() {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"message": "Too many attempts",
			"error":   "Please wait a moment and try again",
		})
	}

	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	req.StaffName = strings.TrimSpace(req.StaffName)
	if req.StaffName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "staff_name is required",
		})
	}

	accessCode := config.GetEnv("WORKSHOP_ACCESS_CODE")
	if accessCode == "" {
		config.Logger.Error("WORKSHOP_ACCESS_CODE is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Sign-in unavailable",
			"error":   "service misconfigured",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(accessCode)) != 1 {
		config.Logger.Warn("Rejected sign-in attempt", zap.String("staffName", req.StaffName))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"error":   "Invalid access code",
		})
	}

	accessToken, err := sc.TokenMaker.CreateToken(req.StaffName, sessionDuration)
	if err != nil {
		config.Logger.Error("Failed to create session token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create session",
			"error":   err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(sessionDuration),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Signed in",
		"staff_name": req.StaffName,
	})
}

// DeleteSessionController signs the staff member out by expiring the cookie.
func (sc *SessionController) DeleteSessionController(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Signed out",
	})
}
