package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite store and makes sure the tables exist. It never
// drops or seeds anything; see Reset.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: every pooled conn to ":memory:" would be a separate
	// database, and it serializes writers on the file store too.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Foreign keys stay off (SQLite default): products may point at a category
// that does not exist and listings fall back to a placeholder name.
// AUTOINCREMENT keeps ids from being reused after a delete.
const schema = `
CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  price REAL NOT NULL,
  category_id INTEGER NOT NULL REFERENCES categories(id),
  brand TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);

-- product_id is a plain integer, not a foreign key
CREATE TABLE IF NOT EXISTS sales(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL,
  total_price REAL NOT NULL,
  date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date);
`

func ensureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}

// SeedCategories is the fixed category set written on every reset.
var SeedCategories = []struct {
	ID   int64
	Name string
}{
	{1, "TVs"},
	{2, "Refrigerators"},
	{3, "Laptops"},
	{4, "Microwaves"},
	{5, "Smartphones"},
}

// Reset drops and recreates every table, then reseeds the fixed categories.
func Reset(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range []string{"sales", "products", "categories"} {
		if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + t); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(schema); err != nil {
		return err
	}
	for _, c := range SeedCategories {
		if _, err := tx.Exec(`INSERT INTO categories(id, name) VALUES(?, ?)`, c.ID, c.Name); err != nil {
			return err
		}
	}
	return tx.Commit()
}
