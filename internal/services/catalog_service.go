package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"stockroom/internal/csvio"
	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) CreateCategory(name *string) (domain.Category, error) {
	if name == nil {
		return domain.Category{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	return s.Cats.Create(*name)
}

// CreateProduct requires every field but brand, which defaults to "".
func (s *CatalogService) CreateProduct(in domain.ProductInput) (int64, error) {
	switch {
	case in.Name == nil:
		return 0, fmt.Errorf("%w: name", ErrMissingField)
	case in.Description == nil:
		return 0, fmt.Errorf("%w: description", ErrMissingField)
	case in.Price == nil:
		return 0, fmt.Errorf("%w: price", ErrMissingField)
	case in.CategoryID == nil:
		return 0, fmt.Errorf("%w: category_id", ErrMissingField)
	}
	if err := rejectNulls(in.Nulls); err != nil {
		return 0, err
	}
	p := domain.Product{Name: *in.Name, Description: *in.Description, Price: *in.Price, CategoryID: *in.CategoryID}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	return s.Prods.Create(p)
}

// UpdateProduct overwrites only the fields present in in. A null field fails
// the update once the product is known to exist.
func (s *CatalogService) UpdateProduct(id int64, in domain.ProductInput) (int64, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if err := rejectNulls(in.Nulls); err != nil {
		return 0, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if err := s.Prods.Update(p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *CatalogService) DeleteProduct(id int64) error {
	n, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) ListProducts(q string, catID int64, byCategory bool) ([]domain.ProductListing, error) {
	return s.Prods.Search(q, catID, byCategory)
}

// ImportProducts parses the upload and inserts every row in one commit.
// Parse failures come back as *csvio.ParseError and nothing is written.
func (s *CatalogService) ImportProducts(r io.Reader) ([]domain.ProductCSVRow, error) {
	rows, err := csvio.ReadProducts(r)
	if err != nil {
		return nil, err
	}
	ps := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		ps = append(ps, domain.Product{
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			CategoryID:  row.CategoryID,
			Brand:       row.Brand,
		})
	}
	if err := s.Prods.CreateBatch(ps); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *CatalogService) ExportProducts(w io.Writer) error {
	ps, err := s.Prods.All()
	if err != nil {
		return err
	}
	return csvio.WriteProducts(w, ps)
}
