package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/daystreak/internal/security"
	"github.com/terraincognita07/daystreak/internal/services"
)

// authenticateRequest resolves the caller's profile id from the bearer token.
// The profile itself may not exist yet; creating it is the caller's first call.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (string, error) {
	rawToken, err := security.BearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return "", err
	}

	subject, err := security.ParseToken(handler.secretKey, rawToken, handler.now())
	if err != nil {
		return "", err
	}

	return services.NormalizeProfileID(subject)
}
