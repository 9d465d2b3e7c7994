// Package rayid assigns every request a unique identifier for tracing.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray ID on responses and may supply one on requests.
const Header = "X-Ray-ID"

// New creates the ray ID middleware. An incoming X-Ray-ID is honored so
// upstream proxies can thread their own identifiers through; otherwise a
// fresh UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
