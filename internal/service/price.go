package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/metehanbayar/orman/internal/models"
	"github.com/metehanbayar/orman/internal/store"
)

// ErrPriceDBNotConfigured is returned when price endpoints are hit on a
// deployment without a POS connection.
var ErrPriceDBNotConfigured = errors.New("price database not configured")

// PriceService pulls current prices from the POS database into the
// catalog. Products opt in by carrying the POS product name.
type PriceService struct {
	db      *store.PriceDB
	catalog *store.CatalogStore
}

// NewPriceService creates a PriceService. db may be nil when no POS
// database is configured.
func NewPriceService(db *store.PriceDB, catalog *store.CatalogStore) *PriceService {
	return &PriceService{db: db, catalog: catalog}
}

// SyncResult reports what a price sync changed.
type SyncResult struct {
	Updated  int               `json:"updated"`
	Products []models.Product  `json:"products"`
	Rows     []models.PriceRow `json:"rows"`
}

// FetchPrices returns the raw POS price rows without touching the catalog.
func (s *PriceService) FetchPrices(ctx context.Context) ([]models.PriceRow, error) {
	if s.db == nil {
		return nil, ErrPriceDBNotConfigured
	}
	return s.db.FetchPrices(ctx)
}

// Ping checks the POS connection.
func (s *PriceService) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrPriceDBNotConfigured
	}
	return s.db.Ping(ctx)
}

// SyncPrices pulls POS prices and writes the updated catalog back.
func (s *PriceService) SyncPrices(ctx context.Context) (*SyncResult, error) {
	if s.db == nil {
		return nil, ErrPriceDBNotConfigured
	}

	rows, err := s.db.FetchPrices(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	updated := ApplyPrices(products, rows)
	if updated > 0 {
		if err := s.catalog.ReplaceProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("failed to save synced prices: %w", err)
		}
	}
	log.Printf("[PriceSync] Updated %d of %d products from %d POS rows", updated, len(products), len(rows))

	return &SyncResult{Updated: updated, Products: products, Rows: rows}, nil
}

// ApplyPrices copies POS prices onto matching products in place and
// returns how many products changed. Matching is by the product's POS
// name, case-insensitively; portion names bind variation prices within
// the matched product's rows.
func ApplyPrices(products []models.Product, rows []models.PriceRow) int {
	updated := 0
	for i := range products {
		p := &products[i]
		if p.MssqlProductName == "" {
			continue
		}

		var matched []models.PriceRow
		for _, row := range rows {
			if strings.EqualFold(row.Product, p.MssqlProductName) {
				matched = append(matched, row)
			}
		}
		if len(matched) == 0 {
			continue
		}

		changed := false
		for vi := range p.Variations {
			v := &p.Variations[vi]
			for _, row := range matched {
				if strings.EqualFold(row.Portion, v.Name) {
					if price := formatPrice(row.Price); v.Price != price {
						v.Price = price
						changed = true
					}
					break
				}
			}
		}

		// The headline price follows the first variation when the
		// product has any, otherwise the first POS row.
		newPrice := p.Price
		if len(p.Variations) > 0 {
			newPrice = p.Variations[0].Price
		} else {
			newPrice = formatPrice(matched[0].Price)
		}
		if p.Price != newPrice {
			p.Price = newPrice
			changed = true
		}

		if changed {
			updated++
		}
	}
	return updated
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
