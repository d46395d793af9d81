package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header exposing the generated RayID.
const HeaderName = "X-Ray-Id"

// New returns a middleware that attaches a unique RayID to every request.
// The ID is stored in Locals("ray_id") for the logger and echoed back in the
// response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
