package handlers

import (
	"github.com/gofiber/fiber/v2"

	"turatti/internal/services"
	"turatti/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	include := validate.Flag(c.Query("include_subcategorias"))
	cats, err := h.Catalog.ListCategories(include)
	if err != nil {
		return internalErr(c, "categorias.list", err)
	}
	return c.JSON(fiber.Map{"categorias": cats})
}

func (h *CategoryHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "ID da categoria inválido")
	}
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		if isNoRows(err) {
			return notFound(c, "Categoria não encontrada")
		}
		return internalErr(c, "categorias.get", err)
	}
	return c.JSON(fiber.Map{"categoria": cat})
}

type SubcategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	var categoryID int64
	if id, ok := validate.ID(c.Query("categoria")); ok {
		categoryID = id
	}
	subs, err := h.Catalog.ListSubcategories(categoryID)
	if err != nil {
		return internalErr(c, "subcategorias.list", err)
	}
	return c.JSON(fiber.Map{"subcategorias": subs, "total": len(subs)})
}

func (h *SubcategoryHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "ID da subcategoria inválido")
	}
	sub, err := h.Catalog.GetSubcategory(id)
	if err != nil {
		if isNoRows(err) {
			return notFound(c, "Subcategoria não encontrada")
		}
		return internalErr(c, "subcategorias.get", err)
	}
	return c.JSON(fiber.Map{"subcategoria": sub})
}
