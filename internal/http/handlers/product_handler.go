package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"turatti/internal/services"
	"turatti/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List is GET /api/v1/produtos with the full filter/sort/paginate contract.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := services.ProductQuery{
		OnSaleOnly:   validate.Flag(c.Query("promocao")),
		NewOnly:      validate.Flag(c.Query("novidade")),
		PaintOnly:    validate.Flag(c.Query("tipo_tinta")),
		ElectricOnly: validate.Flag(c.Query("tipo_eletrico")),
		Search:       validate.Search(c.Query("busca")),
		Status:       strings.TrimSpace(c.Query("status")),
		Page:         validate.Page(c.Query("page")),
		Limit:        validate.Limit(c.Query("limit")),
	}
	if id, ok := validate.ID(c.Query("categoria")); ok {
		q.CategoryID = id
	}
	if id, ok := validate.ID(c.Query("subcategoria")); ok {
		q.SubcatID = id
	}
	if csv := c.Query("subcategorias"); csv != "" {
		q.SubcatIDs = validate.IDList(csv)
	}

	items, page, err := h.Catalog.ListProducts(q)
	if err != nil {
		return internalErr(c, "produtos.list", err)
	}
	return c.JSON(fiber.Map{"produtos": items, "pagination": page})
}

// Detail is GET /api/v1/produtos/:id with the subcategory/category join.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "ID do produto inválido")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		if isNoRows(err) {
			return notFound(c, "Produto não encontrado")
		}
		return internalErr(c, "produtos.get", err)
	}
	return c.JSON(fiber.Map{"produto": p})
}
