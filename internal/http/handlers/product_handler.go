package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

var productFields = []string{"name", "description", "price", "category_id", "brand"}

type idPayload struct {
	ID int64 `json:"id"`
}

// GET /products?query=&category_id=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	catID, byCategory := validate.CategoryFilter(c.Query("category_id"))
	products, err := h.Catalog.ListProducts(c.Query("query"), catID, byCategory)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.Nulls = nullKeys(c, productFields...)
	id, err := h.Catalog.CreateProduct(in)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.create", map[string]any{"id": id})
	return envelope(c, fiber.StatusCreated, "product", idPayload{ID: id}, "Produto criado")
}

// PUT /products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in domain.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.Nulls = nullKeys(c, productFields...)
	if _, err := h.Catalog.UpdateProduct(id, in); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	applog.Audit(c, "product.update", map[string]any{"id": id})
	return envelope(c, fiber.StatusOK, "product", idPayload{ID: id}, "Produto atualizado")
}

// DELETE /products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return envelope(c, fiber.StatusOK, "product", idPayload{ID: id}, "Produto removido")
}

// POST /products/upload_csv
// Parse failures are not caught here and surface as a 500.
func (h *ProductHandler) UploadCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := h.Catalog.ImportProducts(f)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.import", map[string]any{"batch": uuid.NewString(), "file": fh.Filename, "rows": len(rows)})
	return envelope(c, fiber.StatusCreated, "products", rows, "Produtos inseridos via CSV")
}

// GET /products/download_csv
func (h *ProductHandler) DownloadCSV(c *fiber.Ctx) error {
	return attachment(c, "products.csv", h.Catalog.ExportProducts)
}
