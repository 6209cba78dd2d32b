package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockroom/internal/csvio"
	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

const (
	msgBadSaleDate = "Data inválida. Use o formato AAAA-MM-DD HH:MM:SS."
	msgBadCSVDate  = "Data inválida no CSV. Use o formato AAAA-MM-DD."
)

var saleFields = []string{"product_id", "quantity", "total_price", "date"}

type SaleHandler struct {
	Sales *services.SalesService
}

// saleFail answers 400 with an empty sale envelope.
func saleFail(c *fiber.Ctx, action string, err error, msg string) error {
	applog.Warn(c, action, map[string]any{"err": err.Error()})
	return envelope(c, fiber.StatusBadRequest, "sale", fiber.Map{}, msg)
}

// GET /sales?query=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.Sales.ListSales(c.Query("query"))
	if err != nil {
		return err
	}
	return c.JSON(sales)
}

// POST /sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in domain.SaleInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.Nulls = nullKeys(c, saleFields...)
	sale, err := h.Sales.CreateSale(in)
	if errors.Is(err, services.ErrBadDate) {
		return saleFail(c, "sale.create.bad_date", err, msgBadSaleDate)
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "sale.create", map[string]any{"id": sale.ID})
	return envelope(c, fiber.StatusCreated, "sale", sale, "Venda criada com sucesso")
}

// PUT /sales/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in domain.SaleInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.Nulls = nullKeys(c, saleFields...)
	sale, err := h.Sales.UpdateSale(id, in)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, services.ErrBadDate):
		return saleFail(c, "sale.update.bad_date", err, msgBadSaleDate)
	case err != nil:
		return err
	}
	applog.Audit(c, "sale.update", map[string]any{"id": id})
	return envelope(c, fiber.StatusOK, "sale", sale, "Venda atualizada com sucesso")
}

// DELETE /sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Sales.DeleteSale(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	applog.Audit(c, "sale.delete", map[string]any{"id": id})
	return envelope(c, fiber.StatusOK, "sale", idPayload{ID: id}, "Venda deletada com sucesso")
}

// POST /sales/upload_csv
// The file is stored whole or not at all.
func (h *SaleHandler) UploadCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := h.Sales.ImportSales(f)
	var pe *csvio.ParseError
	switch {
	case errors.As(err, &pe):
		return saleFail(c, "sale.import.parse", err, "Erro ao ler o CSV: "+pe.Error())
	case errors.Is(err, services.ErrBadDate):
		return saleFail(c, "sale.import.bad_date", err, msgBadCSVDate)
	case err != nil:
		return err
	}
	applog.Audit(c, "sale.import", map[string]any{"batch": uuid.NewString(), "file": fh.Filename, "rows": len(rows)})
	return envelope(c, fiber.StatusCreated, "sales", rows, "Vendas inseridas via CSV")
}

// GET /sales/download_csv
func (h *SaleHandler) DownloadCSV(c *fiber.Ctx) error {
	return attachment(c, "sales.csv", h.Sales.ExportSales)
}

// GET /sales/summary?group_by=week|month|year
func (h *SaleHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.Sales.Summary(validate.GroupBy(c.Query("group_by", "month")))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
