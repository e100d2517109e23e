package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/metehanbayar/orman/internal/models"
)

// A weekday afternoon outside summer, so no contextual bonus fires
// unless a test opts into one.
var quietClock = time.Date(2024, time.March, 6, 15, 0, 0, 0, time.UTC)

func TestScoreProductVeganPreference(t *testing.T) {
	veggie := models.Product{Name: "Sebze Tabağı", Description: "Mevsim yeşillikleri", Category: "Ana Yemekler"}
	meaty := models.Product{Name: "Izgara Köfte", Description: "Közlenmiş biber ile", Category: "Ana Yemekler"}

	// Meat-free products earn both the absence bonus and the keyword
	// bonus; meat products earn nothing.
	assert.Equal(t, vegMeatFreePoints+vegKeywordPoints, scoreProduct(veggie, "vegan", quietClock))
	assert.Equal(t, 0, scoreProduct(meaty, "vegan", quietClock))
}

func TestScoreProductMeatPreference(t *testing.T) {
	meaty := models.Product{Name: "Izgara Köfte", Category: "Ana Yemekler"}
	veggie := models.Product{Name: "Sebze Tabağı", Category: "Ana Yemekler"}

	assert.Equal(t, meatTextPoints, scoreProduct(meaty, "et severim", quietClock))
	assert.Equal(t, 0, scoreProduct(veggie, "et severim", quietClock))

	// A category mentioning meat stacks on top of the text match.
	steak := models.Product{Name: "Antrikot", Category: "Steakhouse"}
	assert.Equal(t, meatTextPoints+meatCategoryPoints, scoreProduct(steak, "et severim", quietClock))
}

func TestScoreProductSpicyPreference(t *testing.T) {
	spicy := models.Product{
		Name:     "Acılı Adana",
		Category: "Kebaplar",
		Features: []models.Feature{{Label: "Acı Seviyesi", Value: "Acılı"}},
	}
	mild := models.Product{Name: "Tavuk Şiş", Category: "Kebaplar"}

	assert.Equal(t, spicyTextPoints+spicyFeatureBonus, scoreProduct(spicy, "acı", quietClock))
	assert.Equal(t, 0, scoreProduct(mild, "acı", quietClock))
}

func TestScoreProductPriceBrackets(t *testing.T) {
	at := func(price string) models.Product {
		return models.Product{Name: "Bonfile", Category: "Ana Yemekler", Price: price}
	}

	assert.Equal(t, premiumOver200Points+premiumOver300Bonus, scoreProduct(at("350"), "premium", quietClock))
	assert.Equal(t, premiumOver200Points, scoreProduct(at("250"), "premium", quietClock))
	assert.Equal(t, 0, scoreProduct(at("150"), "premium", quietClock))

	assert.Equal(t, budgetUnder100Points+budgetUnder50Bonus, scoreProduct(at("45"), "ekonomik", quietClock))
	assert.Equal(t, budgetUnder100Points, scoreProduct(at("80"), "ekonomik", quietClock))
	assert.Equal(t, 0, scoreProduct(at("120"), "ekonomik", quietClock))
}

func TestScoreProductCalorieTiers(t *testing.T) {
	at := func(desc string) models.Product {
		return models.Product{Name: "Bowl", Category: "Salatalar", Description: desc}
	}

	assert.Equal(t, 15, scoreProduct(at("Sadece 250 kcal"), "diyet", quietClock))
	assert.Equal(t, 10, scoreProduct(at("450 kcal"), "diyet", quietClock))
	assert.Equal(t, 5, scoreProduct(at("700 kcal"), "diyet", quietClock))
	assert.Equal(t, 0, scoreProduct(at("900 kcal"), "diyet", quietClock))
	assert.Equal(t, 0, scoreProduct(at("doyurucu bir kase"), "diyet", quietClock))
}

func TestScoreProductWeekendBonuses(t *testing.T) {
	saturdayBrunch := time.Date(2024, time.March, 9, 11, 0, 0, 0, time.UTC)
	saturdayEvening := time.Date(2024, time.March, 9, 20, 0, 0, 0, time.UTC)

	breakfast := models.Product{Name: "Kahvaltı Tabağı", Category: "Kahvaltılıklar"}
	assert.Equal(t, weekendBrunchBonus, scoreProduct(breakfast, "", saturdayBrunch))
	assert.Equal(t, 0, scoreProduct(breakfast, "", quietClock))

	chefsPick := models.Product{
		Name:     "Bonfile",
		Category: "Ana Yemekler",
		Features: []models.Feature{{Label: "Özellik", Value: "Şefin Önerisi"}},
	}
	assert.Equal(t, weekendChefBonus, scoreProduct(chefsPick, "", saturdayEvening))
	assert.Equal(t, 0, scoreProduct(chefsPick, "", saturdayBrunch))
}

func TestScoreProductSeasonBonus(t *testing.T) {
	july := time.Date(2024, time.July, 3, 15, 0, 0, 0, time.UTC)

	iceCream := models.Product{Name: "Dondurma", Category: "Tatlılar"}
	assert.Equal(t, seasonTextBonus, scoreProduct(iceCream, "", july))
	assert.Equal(t, 0, scoreProduct(iceCream, "", quietClock))

	soup := models.Product{Name: "Mercimek Çorba", Category: "Çorbalar"}
	assert.Equal(t, seasonTextBonus, scoreProduct(soup, "", quietClock))
	assert.Equal(t, 0, scoreProduct(soup, "", july))
}

func TestScoreProductCuisineAndDietaryGroups(t *testing.T) {
	pizza := models.Product{Name: "Margherita Pizza", Category: "Pizzalar"}
	assert.Equal(t, cuisinePoints, scoreProduct(pizza, "italyan", quietClock))

	glutenFree := models.Product{Name: "Glutensiz Kek", Category: "Tatlılar"}
	got := scoreProduct(glutenFree, "glutensiz", quietClock)
	assert.GreaterOrEqual(t, got, dietaryPoints)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"et", "severim", "acılı", "olsun"}, tokenize("et severim, acılı olsun."))
	assert.Empty(t, tokenize("   "))
}
