package handlers

import (
	"encoding/json"

	"community-watch/internal/core/domain"
	"community-watch/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// decodePatch decodes a partial update body into dst.
// Keys outside allowed are rejected before anything is decoded; a null value
// is only accepted for keys listed in nullable and is reported back so the
// caller can clear that column.
func decodePatch(c *fiber.Ctx, allowed, nullable []string, dst interface{}) (map[string]bool, error) {
	decode := c.App().Config().JSONDecoder

	var raw map[string]json.RawMessage
	if err := decode(c.Body(), &raw); err != nil || raw == nil {
		return nil, errInvalidBody
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	if err := services.CheckUpdatableFields(keys, allowed); err != nil {
		return nil, err
	}

	canBeNull := make(map[string]bool, len(nullable))
	for _, key := range nullable {
		canBeNull[key] = true
	}

	cleared := make(map[string]bool)
	for key, value := range raw {
		if string(value) != "null" {
			continue
		}
		if !canBeNull[key] {
			return nil, domain.NewValidationError(key, key+" cannot be null")
		}
		cleared[key] = true
		delete(raw, key)
	}

	body, err := json.Marshal(raw)
	if err != nil {
		return nil, errInvalidBody
	}
	if err := decode(body, dst); err != nil {
		return nil, errInvalidBody
	}
	return cleared, nil
}
