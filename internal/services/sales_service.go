package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/csvio"
	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/validate"
)

type SalesService struct {
	Sales *repos.SaleRepo
}

func NewSalesService(sales *repos.SaleRepo) *SalesService {
	return &SalesService{Sales: sales}
}

// View renders a sale for JSON output.
func View(s domain.Sale) domain.SaleView {
	return domain.SaleView{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		Date:       s.Date.Format(validate.SaleDateLayout),
	}
}

func (s *SalesService) ListSales(q string) ([]domain.SaleView, error) {
	sales, err := s.Sales.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SaleView, 0, len(sales))
	for _, sale := range sales {
		out = append(out, View(sale))
	}
	return out, nil
}

func parseSaleDate(raw string) (time.Time, error) {
	d, ok := validate.SaleDate(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, raw)
	}
	return d, nil
}

// CreateSale checks the date first; a bad date writes nothing.
func (s *SalesService) CreateSale(in domain.SaleInput) (domain.SaleView, error) {
	if in.Date == nil {
		return domain.SaleView{}, fmt.Errorf("%w: date", ErrMissingField)
	}
	d, err := parseSaleDate(*in.Date)
	if err != nil {
		return domain.SaleView{}, err
	}
	switch {
	case in.ProductID == nil:
		return domain.SaleView{}, fmt.Errorf("%w: product_id", ErrMissingField)
	case in.Quantity == nil:
		return domain.SaleView{}, fmt.Errorf("%w: quantity", ErrMissingField)
	case in.TotalPrice == nil:
		return domain.SaleView{}, fmt.Errorf("%w: total_price", ErrMissingField)
	}
	if err := rejectNulls(in.Nulls); err != nil {
		return domain.SaleView{}, err
	}

	sale := domain.Sale{ProductID: *in.ProductID, Quantity: *in.Quantity, TotalPrice: *in.TotalPrice, Date: d}
	id, err := s.Sales.Create(sale)
	if err != nil {
		return domain.SaleView{}, err
	}
	sale.ID = id
	return View(sale), nil
}

// UpdateSale overwrites only the fields present in in. An unknown id wins
// over a bad date or a null field, and either of those aborts the whole update.
func (s *SalesService) UpdateSale(id int64, in domain.SaleInput) (domain.SaleView, error) {
	sale, err := s.Sales.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SaleView{}, ErrNotFound
	}
	if err != nil {
		return domain.SaleView{}, err
	}
	if err := rejectNulls(in.Nulls); err != nil {
		return domain.SaleView{}, err
	}
	if in.Date != nil {
		d, err := parseSaleDate(*in.Date)
		if err != nil {
			return domain.SaleView{}, err
		}
		sale.Date = d
	}
	if in.ProductID != nil {
		sale.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		sale.Quantity = *in.Quantity
	}
	if in.TotalPrice != nil {
		sale.TotalPrice = *in.TotalPrice
	}
	if err := s.Sales.Update(sale); err != nil {
		return domain.SaleView{}, err
	}
	return View(sale), nil
}

func (s *SalesService) DeleteSale(id int64) error {
	n, err := s.Sales.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ParseSalesCSV reads a sales file and checks every date against
// YYYY-MM-DD before anything is stored.
func ParseSalesCSV(r io.Reader) ([]domain.SaleCSVRow, []domain.Sale, error) {
	rows, err := csvio.ReadSales(r)
	if err != nil {
		return nil, nil, err
	}
	sales := make([]domain.Sale, 0, len(rows))
	for i, row := range rows {
		d, ok := validate.CSVDate(row.Date)
		if !ok {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadDate, i+2, row.Date)
		}
		sales = append(sales, domain.Sale{ProductID: row.ProductID, Quantity: row.Quantity, TotalPrice: row.TotalPrice, Date: d})
	}
	return rows, sales, nil
}

// ImportSales stores the whole file in one commit or nothing at all.
func (s *SalesService) ImportSales(r io.Reader) ([]domain.SaleCSVRow, error) {
	rows, sales, err := ParseSalesCSV(r)
	if err != nil {
		return nil, err
	}
	if err := s.Sales.CreateBatch(sales); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SalesService) ExportSales(w io.Writer) error {
	sales, err := s.Sales.All()
	if err != nil {
		return err
	}
	return csvio.WriteSales(w, sales)
}

// BucketKey maps a sale date to its summary period: YYYY for year,
// YYYY-W<nn> for week (Sunday-start, days before the first Sunday are week
// 00) and YYYY-MM otherwise.
func BucketKey(t time.Time, groupBy string) string {
	switch groupBy {
	case "week":
		week := (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
		return fmt.Sprintf("%04d-W%02d", t.Year(), week)
	case "year":
		return fmt.Sprintf("%04d", t.Year())
	default:
		return t.Format("2006-01")
	}
}

// Summary totals quantity and total_price per period over every sale.
func (s *SalesService) Summary(groupBy string) (map[string]domain.SummaryBucket, error) {
	sales, err := s.Sales.All()
	if err != nil {
		return nil, err
	}
	qty := map[string]int64{}
	revenue := map[string]decimal.Decimal{}
	for _, sale := range sales {
		key := BucketKey(sale.Date, groupBy)
		qty[key] += sale.Quantity
		revenue[key] = revenue[key].Add(decimal.NewFromFloat(sale.TotalPrice))
	}
	out := make(map[string]domain.SummaryBucket, len(qty))
	for key, q := range qty {
		out[key] = domain.SummaryBucket{Quantity: q, Profit: revenue[key].InexactFloat64()}
	}
	return out, nil
}
