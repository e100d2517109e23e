package api

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metehanbayar/orman/config"
	"github.com/metehanbayar/orman/internal/models"
	"github.com/metehanbayar/orman/internal/recommend"
	"github.com/metehanbayar/orman/internal/service"
	"github.com/metehanbayar/orman/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.CatalogStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "correct-horse",
		JWTSecret:     "test-secret",
	}

	catalog := store.NewCatalogStore(t.TempDir(), nil)
	engine := recommend.New(
		recommend.WithTopK(1),
		recommend.WithClock(func() time.Time {
			return time.Date(2024, time.March, 6, 15, 0, 0, 0, time.UTC)
		}),
		recommend.WithRandSource(rand.NewSource(1)),
	)
	authSvc := service.NewAuthService(cfg)
	priceSvc := service.NewPriceService(nil, catalog)
	imageSvc := service.NewImageService(t.TempDir(), nil)

	router := gin.New()
	SetupAPI(router, catalog, engine, authSvc, priceSvc, imageSvc)
	return router, catalog
}

func doJSON(router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("login response did not set the auth cookie")
	return nil
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductWritesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/products", models.Product{Name: "Köfte", Category: "Ana Yemekler"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/products/p1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := login(t, router)

	w := doJSON(router, http.MethodPost, "/api/v1/products", models.Product{
		Name:     "Izgara Köfte",
		Category: "Ana Yemekler",
		Price:    "180",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(router, http.MethodGet, "/api/v1/products/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/products/"+created.ID, gin.H{"price": "195"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "195", updated.Price)
	assert.Equal(t, "Izgara Köfte", updated.Name)

	w = doJSON(router, http.MethodDelete, "/api/v1/products/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryConflict(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := login(t, router)

	w := doJSON(router, http.MethodPost, "/api/v1/categories", models.Category{Name: "Tatlılar"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/categories", models.Category{Name: "Tatlılar"}, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFeatureIcons(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/features", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var icons []models.FeatureIcon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &icons))
	assert.NotEmpty(t, icons)
}

func TestRecommendationsEndpoint(t *testing.T) {
	router, catalog := newTestRouter(t)

	// Empty catalog is a client-visible condition, not a server fault.
	w := doJSON(router, http.MethodPost, "/api/v1/recommendations", gin.H{"preferences": "et severim"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	seed := []models.Product{
		{ID: "m1", Name: "Izgara Köfte", Category: "Ana Yemekler", Price: "180"},
		{ID: "d1", Name: "Ayran", Category: "İçecekler", Price: "30"},
		{ID: "s1", Name: "Baklava", Category: "Tatlılar", Price: "90"},
	}
	require.NoError(t, catalog.ReplaceProducts(context.Background(), seed))

	w = doJSON(router, http.MethodPost, "/api/v1/recommendations", gin.H{"preferences": "et severim"})
	require.Equal(t, http.StatusOK, w.Code)

	var rec recommend.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "m1", rec.MainDish.ID)
	assert.Equal(t, "d1", rec.Drink.ID)
	assert.Equal(t, "s1", rec.Dessert.ID)
	assert.True(t, rec.MetBudget)

	// A catalog with no drinks cannot satisfy the triple.
	require.NoError(t, catalog.ReplaceProducts(context.Background(), seed[:1]))
	w = doJSON(router, http.MethodPost, "/api/v1/recommendations", gin.H{"preferences": "et severim"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPriceEndpointsWithoutPOS(t *testing.T) {
	router, _ := newTestRouter(t)
	cookie := login(t, router)

	w := doJSON(router, http.MethodGet, "/api/v1/prices", nil, cookie)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/prices/update", nil, cookie)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
