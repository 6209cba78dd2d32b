package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

// MissingCategoryName labels products whose category_id does not resolve.
const MissingCategoryName = "Categoria não encontrada"

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const insertProduct = `
  INSERT INTO products(name, description, price, category_id, brand)
  VALUES(:name, :description, :price, :category_id, :brand)`

func (r *ProductRepo) Create(p domain.Product) (int64, error) {
	res, err := r.db.NamedExec(insertProduct, p)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CreateBatch inserts all products in one transaction.
func (r *ProductRepo) CreateBatch(ps []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range ps {
		if _, err := tx.NamedExec(insertProduct, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get returns sql.ErrNoRows when id is unknown.
func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT id, name, description, price, category_id, brand
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.NamedExec(`
  UPDATE products
  SET name = :name, description = :description, price = :price,
      category_id = :category_id, brand = :brand
  WHERE id = :id`, p)
	return err
}

// Delete reports how many rows were removed.
func (r *ProductRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepo) All() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT id, name, description, price, category_id, brand
  FROM products
  ORDER BY id`)
	return out, err
}

// Search matches q case-insensitively against name, description or brand and
// optionally narrows to one category. Empty q matches everything.
func (r *ProductRepo) Search(q string, catID int64, byCategory bool) ([]domain.ProductListing, error) {
	where := `1 = 1`
	args := []any{}
	if q != "" {
		like := "%" + q + "%"
		where += ` AND (LOWER(p.name) LIKE LOWER(?) OR LOWER(p.description) LIKE LOWER(?) OR LOWER(p.brand) LIKE LOWER(?))`
		args = append(args, like, like, like)
	}
	if byCategory {
		where += ` AND p.category_id = ?`
		args = append(args, catID)
	}

	sql := `
  SELECT
    p.id, p.name, p.description, p.price,
    COALESCE(c.name, ?) AS category,
    p.brand
  FROM products p
  LEFT JOIN categories c ON c.id = p.category_id
  WHERE ` + where + `
  ORDER BY p.id`
	args = append([]any{MissingCategoryName}, args...)

	out := []domain.ProductListing{}
	err := r.db.Select(&out, sql, args...)
	return out, err
}
