package repos

import (
	"fmt"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/validate"

	"github.com/jmoiron/sqlx"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// saleRow is the stored form; date is TEXT in YYYY-MM-DD HH:MM:SS.
type saleRow struct {
	ID         int64   `db:"id"`
	ProductID  int64   `db:"product_id"`
	Quantity   int64   `db:"quantity"`
	TotalPrice float64 `db:"total_price"`
	Date       string  `db:"date"`
}

func toRow(s domain.Sale) saleRow {
	return saleRow{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		Date:       s.Date.Format(validate.SaleDateLayout),
	}
}

func (r saleRow) sale() (domain.Sale, error) {
	d, err := time.Parse(validate.SaleDateLayout, r.Date)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("sale %d: stored date %q: %w", r.ID, r.Date, err)
	}
	return domain.Sale{ID: r.ID, ProductID: r.ProductID, Quantity: r.Quantity, TotalPrice: r.TotalPrice, Date: d}, nil
}

func toSales(rows []saleRow) ([]domain.Sale, error) {
	out := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		s, err := row.sale()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

const insertSale = `
  INSERT INTO sales(product_id, quantity, total_price, date)
  VALUES(:product_id, :quantity, :total_price, :date)`

func (r *SaleRepo) Create(s domain.Sale) (int64, error) {
	res, err := r.db.NamedExec(insertSale, toRow(s))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CreateBatch inserts all sales in one transaction; either every row lands or none.
func (r *SaleRepo) CreateBatch(sales []domain.Sale) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range sales {
		if _, err := tx.NamedExec(insertSale, toRow(s)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get returns sql.ErrNoRows when id is unknown.
func (r *SaleRepo) Get(id int64) (domain.Sale, error) {
	var row saleRow
	if err := r.db.Get(&row, `
  SELECT id, product_id, quantity, total_price, date
  FROM sales
  WHERE id = ?
`, id); err != nil {
		return domain.Sale{}, err
	}
	return row.sale()
}

func (r *SaleRepo) Update(s domain.Sale) error {
	_, err := r.db.NamedExec(`
  UPDATE sales
  SET product_id = :product_id, quantity = :quantity,
      total_price = :total_price, date = :date
  WHERE id = :id`, toRow(s))
	return err
}

// Delete reports how many rows were removed.
func (r *SaleRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// List returns all sales, or those whose product_id or quantity text
// contains q. The columns are integers, so this only works because SQLite
// compares their text form under LIKE.
func (r *SaleRepo) List(q string) ([]domain.Sale, error) {
	sql := `
  SELECT id, product_id, quantity, total_price, date
  FROM sales`
	args := []any{}
	if q != "" {
		like := "%" + q + "%"
		sql += `
  WHERE LOWER(product_id) LIKE LOWER(?) OR LOWER(quantity) LIKE LOWER(?)`
		args = append(args, like, like)
	}
	sql += `
  ORDER BY id`

	var rows []saleRow
	if err := r.db.Select(&rows, sql, args...); err != nil {
		return nil, err
	}
	return toSales(rows)
}

func (r *SaleRepo) All() ([]domain.Sale, error) { return r.List("") }
