// Package auth provides API key middleware.
//
// This is an advisory access gate for single-session deployments, not a
// security model: keys are compared as plain header values.
package auth

import "github.com/gofiber/fiber/v2"

// Config configures the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
	// Header is the header carrying the key. Defaults to X-Api-Key.
	Header string
}

// New creates an API key check middleware.
func New(cfg Config) fiber.Handler {
	header := cfg.Header
	if header == "" {
		header = "X-Api-Key"
	}

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || c.Get(header) == cfg.ApiKey {
			return c.Next()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid or missing API key",
		})
	}
}

// NewAdmin creates the admin key check guarding PFEP master-data management
// routes. It reads the X-Admin-Key header.
func NewAdmin(adminKey string) fiber.Handler {
	return New(Config{ApiKey: adminKey, Header: "X-Admin-Key"})
}
