package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"medref/internal/model"
	"medref/internal/service"
)

// RegisterDoctor handles POST /api/doctors.
// The request body is a Doctor without id; the response carries the
// database-assigned id.
func RegisterDoctor(svc service.DoctorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc model.Doctor
		if err := c.BodyParser(&doc); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		doc.ID = 0 // ids are system-generated

		stored, err := svc.Register(c.UserContext(), &doc)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// DeleteDoctor handles DELETE /api/doctors/:id. Deleting an absent id
// still returns 204.
func DeleteDoctor(svc service.DoctorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Remove(c.UserContext(), id); err != nil {
			return writeDomainError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
