package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/recruitkit/candidatesdb/internal/types"
)

// parseIDParam parses a path segment as a positive integer identifier.
// Anything else is rejected before reaching the domain layer.
func parseIDParam(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, types.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// parseBody decodes a JSON body into dst, normalizing decode failures into a
// ValidationError so malformed payloads never surface as 500s.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return types.NewValidationError("body", "malformed JSON payload")
	}
	return nil
}
