package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metehanbayar/orman/internal/models"
)

func TestApplyPricesVariations(t *testing.T) {
	products := []models.Product{
		{
			ID:               "p1",
			Name:             "Adana Kebap",
			MssqlProductName: "ADANA KEBAP",
			Price:            "150",
			Variations: []models.Variation{
				{Name: "Porsiyon", Price: "150"},
				{Name: "1.5 Porsiyon", Price: "210"},
			},
		},
	}
	rows := []models.PriceRow{
		{Product: "Adana Kebap", Portion: "Porsiyon", Price: 185.5},
		{Product: "Adana Kebap", Portion: "1.5 Porsiyon", Price: 250},
	}

	updated := ApplyPrices(products, rows)
	assert.Equal(t, 1, updated)

	assert.Equal(t, "185.5", products[0].Variations[0].Price)
	assert.Equal(t, "250", products[0].Variations[1].Price)
	// The headline price follows the first variation.
	assert.Equal(t, "185.5", products[0].Price)
}

func TestApplyPricesDirectPrice(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Ayran", MssqlProductName: "Ayran", Price: "30"},
	}
	rows := []models.PriceRow{
		{Product: "AYRAN", Portion: "Normal", Price: 35},
	}

	updated := ApplyPrices(products, rows)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "35", products[0].Price)
}

func TestApplyPricesSkipsUnlinkedProducts(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "El Yapımı Limonata", Price: "60"},
		{ID: "p2", Name: "Künefe", MssqlProductName: "Künefe", Price: "90"},
	}
	rows := []models.PriceRow{
		{Product: "Limonata", Portion: "Normal", Price: 70},
	}

	updated := ApplyPrices(products, rows)
	assert.Equal(t, 0, updated)
	assert.Equal(t, "60", products[0].Price, "products without a POS link are never touched")
	assert.Equal(t, "90", products[1].Price, "unmatched POS names are left alone")
}

func TestApplyPricesUnchangedPriceNotCounted(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Ayran", MssqlProductName: "Ayran", Price: "35"},
	}
	rows := []models.PriceRow{
		{Product: "Ayran", Portion: "Normal", Price: 35},
	}

	assert.Equal(t, 0, ApplyPrices(products, rows))
}

func TestPriceServiceUnconfigured(t *testing.T) {
	ctx := context.Background()
	svc := NewPriceService(nil, nil)

	_, err := svc.FetchPrices(ctx)
	require.ErrorIs(t, err, ErrPriceDBNotConfigured)

	_, err = svc.SyncPrices(ctx)
	require.ErrorIs(t, err, ErrPriceDBNotConfigured)

	require.ErrorIs(t, svc.Ping(ctx), ErrPriceDBNotConfigured)
}
