package handlers

import (
	"github.com/gofiber/fiber/v2"

	"turatti/internal/log"
	"turatti/internal/services"
	"turatti/internal/validate"
)

type StoreHandler struct {
	Dir *services.DirectoryService
}

func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.Dir.ListStores()
	if err != nil {
		return internalErr(c, "lojas.list", err)
	}
	return c.JSON(fiber.Map{"lojas": stores})
}

// Salespeople is GET /api/v1/vendedores. A failed query degrades to the
// placeholder roster with fallback=true instead of an error, keeping the
// contact flow usable.
func (h *StoreHandler) Salespeople(c *fiber.Ctx) error {
	var storeID int64
	if id, ok := validate.ID(c.Query("loja_id")); ok {
		storeID = id
	}
	people, fellBack, err := h.Dir.ListSalespeople(storeID)
	if fellBack {
		log.Error(c, "vendedores.fallback", err, map[string]any{"loja_id": storeID})
		return c.JSON(fiber.Map{"vendedores": people, "fallback": true})
	}
	return c.JSON(fiber.Map{"vendedores": people})
}
