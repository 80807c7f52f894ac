package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"medref/internal/model"
	"medref/internal/service"
)

// RegisterPatient handles POST /api/patients.
func RegisterPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p model.Patient
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		p.ID = 0 // ids are system-generated

		stored, err := svc.Register(c.UserContext(), &p)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetPatient handles GET /api/patients/:id. An unknown id is a 404, never
// a 200 with an empty body.
func GetPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(p)
	}
}

// DeletePatient handles DELETE /api/patients/:id. Deleting an absent id
// still returns 204.
func DeletePatient(svc service.PatientService) fiber.Handler {
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
