package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/metehanbayar/orman/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

const (
	productsFile   = "products.json"
	categoriesFile = "categories.json"
)

// CatalogStore persists products and categories as JSON flat files under
// a data directory. Writes go through a temp file and an atomic rename.
// An optional Redis cache fronts the product list.
type CatalogStore struct {
	dataDir string
	cache   *Cache

	mu sync.Mutex
}

// NewCatalogStore creates a store rooted at dataDir. cache may be nil.
func NewCatalogStore(dataDir string, cache *Cache) *CatalogStore {
	return &CatalogStore{dataDir: dataDir, cache: cache}
}

// ListProducts returns every product in the catalog.
func (s *CatalogStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	if products, ok := s.cache.GetProducts(ctx); ok {
		return products, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}
	s.cache.SetProducts(ctx, products)
	return products, nil
}

// GetProduct returns the product with the given id.
func (s *CatalogStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// CreateProduct appends a product, assigning ids to it and its variations.
func (s *CatalogStore) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range product.Variations {
		if product.Variations[i].ID == "" {
			product.Variations[i].ID = uuid.New().String()
		}
	}

	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}
	products = append(products, product)
	if err := s.writeProducts(products); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &product, nil
}

// UpdateProduct applies a partial update to the product with the given id.
func (s *CatalogStore) UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		update.Apply(&products[i])
		if err := s.writeProducts(products); err != nil {
			return nil, err
		}
		s.cache.Invalidate(ctx)
		return &products[i], nil
	}
	return nil, ErrProductNotFound
}

// DeleteProduct removes the product with the given id.
func (s *CatalogStore) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.readProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products = append(products[:i], products[i+1:]...)
		if err := s.writeProducts(products); err != nil {
			return err
		}
		s.cache.Invalidate(ctx)
		return nil
	}
	return ErrProductNotFound
}

// ReplaceProducts overwrites the whole catalog, used by price sync.
func (s *CatalogStore) ReplaceProducts(ctx context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeProducts(products); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

// ListCategories returns every category.
func (s *CatalogStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCategories()
}

// CreateCategory appends a category, rejecting duplicate names.
func (s *CatalogStore) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	categories, err := s.readCategories()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, category.Name) {
			return nil, ErrCategoryExists
		}
	}
	categories = append(categories, category)
	if err := s.writeCategories(categories); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory replaces the category with the given id.
func (s *CatalogStore) UpdateCategory(ctx context.Context, id string, category models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.readCategories()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		category.ID = id
		categories[i] = category
		if err := s.writeCategories(categories); err != nil {
			return nil, err
		}
		return &categories[i], nil
	}
	return nil, ErrCategoryNotFound
}

// DeleteCategory removes the category with the given id.
func (s *CatalogStore) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.readCategories()
	if err != nil {
		return err
	}
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		categories = append(categories[:i], categories[i+1:]...)
		return s.writeCategories(categories)
	}
	return ErrCategoryNotFound
}

func (s *CatalogStore) readProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.readJSONFile(productsFile, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *CatalogStore) writeProducts(products []models.Product) error {
	return s.writeJSONFile(productsFile, products)
}

func (s *CatalogStore) readCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.readJSONFile(categoriesFile, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CatalogStore) writeCategories(categories []models.Category) error {
	return s.writeJSONFile(categoriesFile, categories)
}

// readJSONFile reads a catalog file, creating the data directory and an
// empty file on first touch.
func (s *CatalogStore) readJSONFile(name string, v interface{}) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(s.dataDir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// writeJSONFile writes through a temp file and renames it into place, so
// a crash mid-write never leaves a truncated catalog behind.
func (s *CatalogStore) writeJSONFile(name string, v interface{}) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dataDir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		// Rename can fail across filesystems; fall back to a direct
		// write and clean up the temp file.
		if werr := os.WriteFile(path, data, 0o644); werr != nil {
			return fmt.Errorf("failed to replace %s: %w", name, werr)
		}
		_ = os.Remove(tmp)
	}
	return nil
}
