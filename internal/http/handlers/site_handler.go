package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"turatti/internal/services"
)

type SiteHandler struct {
	Site *services.SiteService
}

// Banners is GET /api/v1/banners; active by default, ativo=false flips the
// filter. The response is enveloped like every other endpoint.
func (h *SiteHandler) Banners(c *fiber.Ctx) error {
	active := !strings.EqualFold(c.Query("ativo"), "false")
	banners, err := h.Site.ListBanners(active)
	if err != nil {
		return internalErr(c, "banners.list", err)
	}
	return c.JSON(fiber.Map{"banners": banners})
}

func (h *SiteHandler) SocialLinks(c *fiber.Ctx) error {
	links, err := h.Site.ListSocialLinks()
	if err != nil {
		return internalErr(c, "redes_sociais.list", err)
	}
	return c.JSON(fiber.Map{"redesSociais": links})
}

func (h *SiteHandler) Logos(c *fiber.Ctx) error {
	logos, err := h.Site.ListLogos(c.Query("tipo"), c.Query("posicao"))
	if err != nil {
		return internalErr(c, "logos.list", err)
	}
	return c.JSON(fiber.Map{"logos": logos})
}
