package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"medref/internal/service"
)

// SuggestDoctors handles GET /api/suggestions/:patientId. On success the
// body is the full set of matching doctors in storage order.
func SuggestDoctors(svc service.SuggestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patientID, err := strconv.ParseInt(c.Params("patientId"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid patient id format")
		}
		docs, err := svc.Suggest(c.UserContext(), patientID)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(docs)
	}
}
