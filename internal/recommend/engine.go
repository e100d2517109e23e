package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/metehanbayar/orman/internal/models"
)

const (
	defaultTopK              = 3
	defaultMaxPremiumRetries = 20

	premiumMainDishFloor = 250
	premiumDrinkFloor    = 150
	premiumDessertFloor  = 150
	premiumBudgetFloor   = 750

	teaServiceNote = "Çay ikramımızdır"
)

var (
	// ErrEmptyCatalog is returned when the caller supplies no products.
	ErrEmptyCatalog = errors.New("recommend: empty product catalog")

	// ErrInsufficientCatalog is returned when a menu role has no
	// candidates, either because classification left a pool empty or
	// because the premium price floors filtered everything out.
	ErrInsufficientCatalog = errors.New("recommend: insufficient catalog diversity")
)

// Recommendation is a full menu suggestion. The three products are copies
// of catalog entries; enrichment (tea-service note, pairing tags) is
// applied to the copies and also reported separately so callers never see
// their catalog mutated.
type Recommendation struct {
	MainDish models.Product `json:"mainDish"`
	Drink    models.Product `json:"drink"`
	Dessert  models.Product `json:"dessert"`

	MainDishNotes []string         `json:"mainDishNotes,omitempty"`
	DrinkTags     []models.Feature `json:"drinkTags,omitempty"`

	// MetBudget is false only when a premium request exhausted its
	// retries without reaching the budget floor and the best combination
	// seen was returned instead.
	MetBudget bool `json:"metBudget"`
}

// Engine recommends a main dish, drink and dessert triple from a product
// catalog. It caches the derived pools keyed by a catalog fingerprint and
// is safe for concurrent use.
type Engine struct {
	topK              int
	maxPremiumRetries int
	now               func() time.Time

	mu          sync.Mutex
	rng         *rand.Rand
	fingerprint string
	pools       productPools
}

type productPools struct {
	mainDishes []models.Product
	drinks     []models.Product
	desserts   []models.Product
}

// Option configures an Engine.
type Option func(*Engine)

// WithTopK sets how many top-scored candidates the randomized selector
// chooses between. k < 1 falls back to exact top-1.
func WithTopK(k int) Option {
	return func(e *Engine) {
		if k < 1 {
			k = 1
		}
		e.topK = k
	}
}

// WithMaxPremiumRetries caps how often a premium selection is redrawn
// before settling for the best combination seen.
func WithMaxPremiumRetries(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.maxPremiumRetries = n
	}
}

// WithClock injects the time source used for the contextual bonuses.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRandSource injects the randomness source, letting tests pin the
// randomized top-k selection.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) { e.rng = rand.New(src) }
}

// New creates an Engine with the production defaults.
func New(opts ...Option) *Engine {
	e := &Engine{
		topK:              defaultTopK,
		maxPremiumRetries: defaultMaxPremiumRetries,
		now:               time.Now,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Recommend picks a main dish, drink and dessert for the given catalog.
// With a non-empty preference string the choice is preference-scored and
// pairing-aware; without one each slot is drawn uniformly at random.
// The returned products are pairwise distinct by id.
func (e *Engine) Recommend(products []models.Product, preferences string) (*Recommendation, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pools := e.poolsFor(products)
	if strings.TrimSpace(preferences) == "" {
		return e.randomRecommendation(pools)
	}
	return e.smartRecommendation(pools, preferences)
}

// poolsFor returns the cached pools, rebuilding them whenever the catalog
// fingerprint changes. Callers must hold e.mu.
func (e *Engine) poolsFor(products []models.Product) *productPools {
	fp := fingerprint(products)
	if fp != e.fingerprint {
		e.pools = buildPools(products)
		e.fingerprint = fp
	}
	return &e.pools
}

func buildPools(products []models.Product) productPools {
	var pools productPools
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if IsMainDishCategory(p.Category) {
			pools.mainDishes = append(pools.mainDishes, p)
		}
		if IsDrinkCategory(p.Category) {
			pools.drinks = append(pools.drinks, p)
		}
		if IsDessertCategory(p.Category) {
			pools.desserts = append(pools.desserts, p)
		}
	}
	return pools
}

// fingerprint hashes every product field the scorer and pairing rules
// read, so any catalog edit invalidates the cached pools.
func fingerprint(products []models.Product) string {
	h := sha256.New()
	for _, p := range products {
		io.WriteString(h, p.ID)
		io.WriteString(h, "|")
		io.WriteString(h, p.Name)
		io.WriteString(h, "|")
		io.WriteString(h, p.Description)
		io.WriteString(h, "|")
		io.WriteString(h, p.Price)
		io.WriteString(h, "|")
		io.WriteString(h, p.Category)
		for _, f := range p.Features {
			io.WriteString(h, "|")
			io.WriteString(h, f.Label)
			io.WriteString(h, "=")
			io.WriteString(h, f.Value)
		}
		io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil))
}

// smartRecommendation runs the preference-scored selection, including the
// meat narrowing, premium floors and the bounded budget retry.
func (e *Engine) smartRecommendation(pools *productPools, preferences string) (*Recommendation, error) {
	prefs := foldTR(preferences)
	isPremium := strings.Contains(prefs, "premium")

	mainPool := pools.mainDishes
	if strings.Contains(prefs, "et") {
		if meat := filterMeatDishes(mainPool); len(meat) > 0 {
			mainPool = meat
		}
	}

	drinkPool := pools.drinks
	dessertPool := pools.desserts
	if isPremium {
		mainPool = filterMinPrice(mainPool, premiumMainDishFloor)
		drinkPool = filterMinPrice(drinkPool, premiumDrinkFloor)
		dessertPool = filterMinPrice(dessertPool, premiumDessertFloor)
		switch {
		case len(mainPool) == 0:
			return nil, fmt.Errorf("%w: no main dish at or above the premium price floor", ErrInsufficientCatalog)
		case len(drinkPool) == 0:
			return nil, fmt.Errorf("%w: no drink at or above the premium price floor", ErrInsufficientCatalog)
		case len(dessertPool) == 0:
			return nil, fmt.Errorf("%w: no dessert at or above the premium price floor", ErrInsufficientCatalog)
		}
	}

	attempts := 1
	if isPremium {
		attempts = e.maxPremiumRetries
	}

	var best *Recommendation
	var bestTotal float64
	for i := 0; i < attempts; i++ {
		rec, err := e.buildSelection(mainPool, drinkPool, dessertPool, preferences)
		if err != nil {
			return nil, err
		}
		total := productPrice(rec.MainDish) + productPrice(rec.Drink) + productPrice(rec.Dessert)
		if !isPremium || total >= premiumBudgetFloor {
			rec.MetBudget = true
			return rec, nil
		}
		if best == nil || total > bestTotal {
			best = rec
			bestTotal = total
		}
	}

	// Retries exhausted: settle for the best-priced combination seen.
	best.MetBudget = false
	return best, nil
}

// buildSelection draws one complete triple from the given pools.
func (e *Engine) buildSelection(mainPool, drinkPool, dessertPool []models.Product, preferences string) (*Recommendation, error) {
	used := make(map[string]struct{})
	now := e.now()

	mainDish, err := e.selectByPreference(mainPool, "main dish", preferences, used, now)
	if err != nil {
		return nil, err
	}
	mainDish = cloneProduct(mainDish)
	notes := appendTeaService(&mainDish)

	drink, err := e.selectPaired(drinkPool, "drink", preferences, used, now, func(d models.Product) int {
		return matchDrinkWithMainDish(mainDish, d)
	})
	if err != nil {
		return nil, err
	}
	drink = cloneProduct(drink)

	tags := pairingTags(mainDish, drink)
	drink.Features = append(drink.Features, tags...)

	dessert, err := e.selectPaired(dessertPool, "dessert", preferences, used, now, func(d models.Product) int {
		return matchDessertWithMeal(mainDish, drink, d)
	})
	if err != nil {
		return nil, err
	}
	dessert = cloneProduct(dessert)

	return &Recommendation{
		MainDish:      mainDish,
		Drink:         drink,
		Dessert:       dessert,
		MainDishNotes: notes,
		DrinkTags:     tags,
	}, nil
}

// selectByPreference scores every unused candidate, sorts descending and
// picks uniformly among the top k. The chosen id is marked used.
func (e *Engine) selectByPreference(pool []models.Product, role, preferences string, used map[string]struct{}, now time.Time) (models.Product, error) {
	type scoredProduct struct {
		product models.Product
		score   int
	}

	var candidates []scoredProduct
	for _, p := range pool {
		if _, taken := used[p.ID]; taken {
			continue
		}
		candidates = append(candidates, scoredProduct{product: p, score: scoreProduct(p, preferences, now)})
	}
	if len(candidates) == 0 {
		return models.Product{}, fmt.Errorf("%w: no %s candidates", ErrInsufficientCatalog, role)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	k := e.topK
	if k > len(candidates) {
		k = len(candidates)
	}
	pick := candidates[e.rng.Intn(k)].product
	used[pick.ID] = struct{}{}
	return pick, nil
}

// selectPaired takes the single highest preference+pairing score,
// deterministically, falling back to the randomized selector when no
// candidate remains.
func (e *Engine) selectPaired(pool []models.Product, role, preferences string, used map[string]struct{}, now time.Time, pairing func(models.Product) int) (models.Product, error) {
	var best models.Product
	bestScore := -1
	for _, p := range pool {
		if _, taken := used[p.ID]; taken {
			continue
		}
		if s := scoreProduct(p, preferences, now) + pairing(p); s > bestScore {
			best = p
			bestScore = s
		}
	}
	if bestScore < 0 {
		return e.selectByPreference(pool, role, preferences, used, now)
	}
	used[best.ID] = struct{}{}
	return best, nil
}

// randomRecommendation picks each slot uniformly at random, with no
// scoring, pairing or enrichment. The exclusion set still guarantees
// pairwise-distinct ids even when pools overlap.
func (e *Engine) randomRecommendation(pools *productPools) (*Recommendation, error) {
	used := make(map[string]struct{})

	mainDish, err := e.randomPick(pools.mainDishes, "main dish", used)
	if err != nil {
		return nil, err
	}
	drink, err := e.randomPick(pools.drinks, "drink", used)
	if err != nil {
		return nil, err
	}
	dessert, err := e.randomPick(pools.desserts, "dessert", used)
	if err != nil {
		return nil, err
	}

	return &Recommendation{
		MainDish:  cloneProduct(mainDish),
		Drink:     cloneProduct(drink),
		Dessert:   cloneProduct(dessert),
		MetBudget: true,
	}, nil
}

func (e *Engine) randomPick(pool []models.Product, role string, used map[string]struct{}) (models.Product, error) {
	var candidates []models.Product
	for _, p := range pool {
		if _, taken := used[p.ID]; !taken {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return models.Product{}, fmt.Errorf("%w: no %s candidates", ErrInsufficientCatalog, role)
	}
	pick := candidates[e.rng.Intn(len(candidates))]
	used[pick.ID] = struct{}{}
	return pick, nil
}

// appendTeaService adds the tea-service note and feature to the main dish
// copy and returns the notes that were added.
func appendTeaService(p *models.Product) []string {
	var notes []string
	if !strings.Contains(p.Description, teaServiceNote) {
		if p.Description != "" {
			p.Description += " • " + teaServiceNote
		} else {
			p.Description = teaServiceNote
		}
		notes = append(notes, teaServiceNote)
	}

	for _, f := range p.Features {
		if f.Label == "İkram" {
			return notes
		}
	}
	p.Features = append(p.Features, models.Feature{
		ID:    "tea-service",
		Icon:  "🫖",
		Label: "İkram",
		Value: "Çay",
	})
	return notes
}

func filterMeatDishes(pool []models.Product) []models.Product {
	var meat []models.Product
	for _, p := range pool {
		if containsAny(productText(p), meatKeywords) {
			meat = append(meat, p)
		}
	}
	return meat
}

func filterMinPrice(pool []models.Product, floor float64) []models.Product {
	var filtered []models.Product
	for _, p := range pool {
		if productPrice(p) >= floor {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func productPrice(p models.Product) float64 {
	price, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0
	}
	return price
}

// cloneProduct returns a copy whose feature and variation slices are
// detached from the catalog's backing arrays, so enrichment on the copy
// can never leak into shared state.
func cloneProduct(p models.Product) models.Product {
	clone := p
	if p.Features != nil {
		clone.Features = append([]models.Feature(nil), p.Features...)
	}
	if p.Variations != nil {
		clone.Variations = append([]models.Variation(nil), p.Variations...)
	}
	return clone
}
