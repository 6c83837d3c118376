package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"turatti/internal/log"
)

// internalErr logs the real failure and returns the generic 500 body; no
// internal detail ever reaches the client.
func internalErr(c *fiber.Ctx, action string, err error) error {
	log.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
