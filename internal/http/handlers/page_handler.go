package handlers

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"turatti/internal/carousel"
	"turatti/internal/config"
	"turatti/internal/display"
	"turatti/internal/domain"
	"turatti/internal/log"
	"turatti/internal/services"
	"turatti/internal/validate"
)

// PageHandler renders the storefront HTML views. Page data is assembled from
// the same query surface the JSON API exposes; a failed fetch degrades to an
// empty section, never a broken page.
type PageHandler struct {
	Catalog *services.CatalogService
	Site    *services.SiteService
	Cfg     config.Config
}

type productCard struct {
	ID        int64
	Name      string
	FullName  string
	Price     string
	SalePrice string
	Discount  int
	Savings   string
	Image     string
	SaleEnds  string
}

func (h *PageHandler) card(p domain.Product) productCard {
	card := productCard{
		ID:       p.ID,
		Name:     display.AbbreviateName(p.Name, 4),
		FullName: p.Name,
		Price:    display.Currency(p.Price),
		Image:    display.ImageURLPtr(p.ImageMain, h.Cfg.StorageBaseURL),
	}
	if p.OnSale && p.SalePrice != nil {
		if d := display.DiscountPercent(p.Price, *p.SalePrice); d > 0 {
			card.Discount = d
			card.SalePrice = display.Currency(*p.SalePrice)
			card.Savings = display.Currency(display.SavingsAmount(p.Price, *p.SalePrice))
		}
		if p.SaleEndsAt != nil {
			if end, err := time.Parse(time.RFC3339, *p.SaleEndsAt); err == nil && end.After(time.Now()) {
				card.SaleEnds = *p.SaleEndsAt
			}
		}
	}
	return card
}

// Home fans out the independent section fetches concurrently; one failure
// must not discard the others' results.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	var (
		wg     sync.WaitGroup
		cats   []domain.Category
		promos []domain.Product
		social []domain.SocialLink
		logos  []domain.Logo
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		var err error
		if cats, err = h.Catalog.ListCategories(true); err != nil {
			log.Error(c, "home.categorias", err, nil)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if promos, _, err = h.Catalog.ListProducts(services.ProductQuery{OnSaleOnly: true, Limit: 20}); err != nil {
			log.Error(c, "home.promocoes", err, nil)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if social, err = h.Site.ListSocialLinks(); err != nil {
			log.Error(c, "home.redes_sociais", err, nil)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if logos, err = h.Site.ListLogos("claro", "header"); err != nil {
			log.Error(c, "home.logos", err, nil)
		}
	}()
	wg.Wait()

	cards := make([]productCard, 0, len(promos))
	for _, p := range promos {
		cards = append(cards, h.card(p))
	}
	// Initial carousel state is rendered server-side; the row loops only when
	// it has enough source items.
	offers := carousel.New(cards, 4)
	logoURL := display.PlaceholderDataURL()
	if len(logos) > 0 {
		logoURL = display.ImageURL(logos[0].ImageURL, h.Cfg.StorageBaseURL)
	}
	return c.Render("home", fiber.Map{
		"Categories": cats,
		"Offers":     offers.Display(),
		"OfferStops": offers.NavStops(),
		"OfferLoop":  offers.Looping(),
		"Social":     social,
		"LogoURL":    logoURL,
	})
}

func (h *PageHandler) Product(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Produto não encontrado"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		if isNoRows(err) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Produto não encontrado"})
		}
		log.Error(c, "page.produto", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Algo deu errado. Tente novamente."})
	}
	card := h.card(p)
	countdown := ""
	if card.SaleEnds != "" {
		if end, perr := time.Parse(time.RFC3339, card.SaleEnds); perr == nil {
			if left, expired := carousel.Remaining(end, time.Now()); !expired {
				countdown = left.String()
			}
		}
	}
	return c.Render("product", fiber.Map{"P": p, "Card": card, "Countdown": countdown})
}
