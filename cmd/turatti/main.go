package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"turatti/internal/config"
	"turatti/internal/display"
	"turatti/internal/http/handlers"
	applog "turatti/internal/log"
	"turatti/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")
	engine.AddFunc("socialIcon", display.SocialIconPath)
	engine.AddFunc("iterate", func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Generic body only; internals stay in the log.
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo deu errado. Tente novamente.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
			}
			return nil
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	deps := handlers.NewDeps(db, cfg)

	// Storefront pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/produto/:id", deps.PageHandler.Product)

	// Catalog query contract (read-only, GET + JSON throughout)
	api := app.Group("/api/v1")
	api.Get("/produtos", limiter.New(limiter.Config{Max: 60, Expiration: time.Minute}), deps.ProductHandler.List)
	api.Get("/produtos/:id", deps.ProductHandler.Detail)
	api.Get("/categorias", deps.CategoryHandler.List)
	api.Get("/categorias/:id", deps.CategoryHandler.Detail)
	api.Get("/subcategorias", deps.SubcategoryHandler.List)
	api.Get("/subcategorias/:id", deps.SubcategoryHandler.Detail)
	api.Get("/lojas", deps.StoreHandler.List)
	api.Get("/vendedores", deps.StoreHandler.Salespeople)
	api.Get("/banners", deps.SiteHandler.Banners)
	api.Get("/redes-sociais", deps.SiteHandler.SocialLinks)
	api.Get("/logos", deps.SiteHandler.Logos)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Página não encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
