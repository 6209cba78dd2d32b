package services

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	applog "stockroom/internal/log"
	"stockroom/internal/repos"
)

// Bootstrap wipes the store, reseeds the fixed categories and loads the sales
// dataset at salesFile. It runs once at process start, never per request.
func Bootstrap(db *sqlx.DB, salesFile string) error {
	if err := repos.Reset(db); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}

	f, err := os.Open(salesFile)
	if err != nil {
		return fmt.Errorf("open sales seed: %w", err)
	}
	defer f.Close()

	_, sales, err := ParseSalesCSV(f)
	if err != nil {
		return fmt.Errorf("parse sales seed %s: %w", salesFile, err)
	}
	if err := repos.NewSaleRepo(db).CreateBatch(sales); err != nil {
		return fmt.Errorf("load sales seed: %w", err)
	}

	applog.Info(nil, "bootstrap.done", map[string]any{
		"categories": len(repos.SeedCategories),
		"sales":      len(sales),
		"file":       salesFile,
	})
	return nil
}
