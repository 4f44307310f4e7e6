package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureClientID resolves the caller's client id from the X-Client-ID
// header or the clientId query parameter, minting a fresh one when absent.
// The resolved id is echoed back in the response header so clients can
// persist it.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Locals("clientID", clientID)
		c.Set("X-Client-ID", clientID)
		return c.Next()
	}
}
