package csvio

import (
	"encoding/csv"
	"io"

	"stockroom/internal/domain"
	"stockroom/internal/validate"
)

// ReadSales parses product_id,quantity,total_price,date. Dates are returned
// as raw text; the caller decides which layout they must match.
func ReadSales(r io.Reader) ([]domain.SaleCSVRow, error) {
	t, err := readTable(r, "product_id", "quantity", "total_price", "date")
	if err != nil {
		return nil, err
	}
	out := make([]domain.SaleCSVRow, 0, len(t.rows))
	for i := range t.rows {
		pid, err := t.intCell(i, "product_id")
		if err != nil {
			return nil, err
		}
		qty, err := t.intCell(i, "quantity")
		if err != nil {
			return nil, err
		}
		total, err := t.floatCell(i, "total_price")
		if err != nil {
			return nil, err
		}
		out = append(out, domain.SaleCSVRow{
			ProductID:  pid,
			Quantity:   qty,
			TotalPrice: total,
			Date:       t.cell(i, "date"),
		})
	}
	return out, nil
}

// WriteSales writes sales with dates as YYYY-MM-DD HH:MM:SS.
func WriteSales(w io.Writer, sales []domain.Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SaleHeader); err != nil {
		return err
	}
	for _, s := range sales {
		rec := []string{formatInt(s.ID), formatInt(s.ProductID), formatInt(s.Quantity), formatFloat(s.TotalPrice), s.Date.Format(validate.SaleDateLayout)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
