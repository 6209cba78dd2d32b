package domain

import "time"

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	CategoryID  int64   `db:"category_id"`
	Brand       string  `db:"brand"`
}

// ProductListing is a product row annotated with its category name.
type ProductListing struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Category    string  `db:"category" json:"category"`
	Brand       string  `db:"brand" json:"brand"`
}

// ProductInput is a create or update request body; nil fields were absent
// or null. Nulls lists the keys that were explicitly null.
type ProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"category_id"`
	Brand       *string  `json:"brand"`
	Nulls       []string `json:"-"`
}

type Sale struct {
	ID         int64
	ProductID  int64
	Quantity   int64
	TotalPrice float64
	Date       time.Time
}

// SaleView is the JSON shape of a sale, date rendered as YYYY-MM-DD HH:MM:SS.
type SaleView struct {
	ID         int64   `json:"id"`
	ProductID  int64   `json:"product_id"`
	Quantity   int64   `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Date       string  `json:"date"`
}

// SaleInput is a create or update request body; nil fields were absent or
// null. Date is raw text and still has to be checked against the sale layout.
type SaleInput struct {
	ProductID  *int64   `json:"product_id"`
	Quantity   *int64   `json:"quantity"`
	TotalPrice *float64 `json:"total_price"`
	Date       *string  `json:"date"`
	Nulls      []string `json:"-"`
}

// SummaryBucket accumulates sales for one period key. Profit is the sum of
// total_price, i.e. revenue.
type SummaryBucket struct {
	Quantity int64   `json:"quantity"`
	Profit   float64 `json:"profit"`
}

// ProductCSVRow is one data row of a products upload.
type ProductCSVRow struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"category_id"`
	Brand       string  `json:"brand"`
}

// SaleCSVRow is one data row of a sales upload; Date is the raw cell text.
type SaleCSVRow struct {
	ProductID  int64   `json:"product_id"`
	Quantity   int64   `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Date       string  `json:"date"`
}
