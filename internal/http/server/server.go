package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockroom/internal/config"
	"stockroom/internal/http/handlers"
	applog "stockroom/internal/log"
	"stockroom/web"
)

// NewApp builds the fiber app with middleware and every route. It does not
// touch the schema or seed data.
func NewApp(cfg config.Config, db *sqlx.DB) *fiber.App {
	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")

	app := fiber.New(fiber.Config{
		AppName:      "stockroom",
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions}, ","),
	}))
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				applog.Warn(c, "rate.limit.hit", nil)
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
			},
		}))
	}

	// ---------- Routes ----------
	deps := handlers.NewDeps(db)

	app.Get("/", deps.HomeHandler.Welcome)
	app.Get("/healthz", deps.HomeHandler.Health)

	app.Get("/categories", deps.CategoryHandler.List)
	app.Post("/categories", deps.CategoryHandler.Create)

	products := app.Group("/products")
	products.Get("/", deps.ProductHandler.List)
	products.Post("/", deps.ProductHandler.Create)
	products.Post("/upload_csv", deps.ProductHandler.UploadCSV)
	products.Get("/download_csv", deps.ProductHandler.DownloadCSV)
	products.Put("/:id", deps.ProductHandler.Update)
	products.Delete("/:id", deps.ProductHandler.Delete)

	sales := app.Group("/sales")
	sales.Get("/", deps.SaleHandler.List)
	sales.Post("/", deps.SaleHandler.Create)
	sales.Post("/upload_csv", deps.SaleHandler.UploadCSV)
	sales.Get("/download_csv", deps.SaleHandler.DownloadCSV)
	sales.Get("/summary", deps.SaleHandler.Summary)
	sales.Put("/:id", deps.SaleHandler.Update)
	sales.Delete("/:id", deps.SaleHandler.Delete)

	return app
}
