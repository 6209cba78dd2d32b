package csvio

import (
	"encoding/csv"
	"io"

	"stockroom/internal/domain"
)

// ReadProducts parses name,description,price,category_id[,brand]. A missing
// brand column or cell yields "".
func ReadProducts(r io.Reader) ([]domain.ProductCSVRow, error) {
	t, err := readTable(r, "name", "description", "price", "category_id")
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductCSVRow, 0, len(t.rows))
	for i := range t.rows {
		price, err := t.floatCell(i, "price")
		if err != nil {
			return nil, err
		}
		catID, err := t.intCell(i, "category_id")
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ProductCSVRow{
			Name:        t.cell(i, "name"),
			Description: t.cell(i, "description"),
			Price:       price,
			CategoryID:  catID,
			Brand:       t.cell(i, "brand"),
		})
	}
	return out, nil
}

func WriteProducts(w io.Writer, products []domain.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ProductHeader); err != nil {
		return err
	}
	for _, p := range products {
		rec := []string{formatInt(p.ID), p.Name, p.Description, formatFloat(p.Price), formatInt(p.CategoryID), p.Brand}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
