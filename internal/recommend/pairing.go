package recommend

import "github.com/metehanbayar/orman/internal/models"

// Pairing rule vocabulary. Keyed on substring matches in the combined
// name+description+category text of the dishes involved.
var (
	spicyMealWords   = []string{"acı", "baharatlı", "spicy", "hot"}
	seafoodMealWords = []string{"balık", "fish", "deniz", "seafood", "karides", "shrimp"}
	italianMealWords = []string{"makarna", "pasta", "pizza", "italian"}
	breakfastWords   = []string{"kahvaltı", "breakfast", "yumurta", "egg", "tost", "toast"}
	heavyMealWords   = []string{"et", "meat", "kebap", "kebab", "pizza"}
	turkishMealWords = []string{"türk", "turkish", "kebap", "pide", "lahmacun"}

	wineWords        = []string{"şarap", "wine"}
	whiteWineWords   = []string{"beyaz şarap", "white wine"}
	ayranWords       = []string{"ayran", "yoğurt", "yogurt"}
	coolingWords     = []string{"soğuk", "cold", "ice", "buzlu", "ayran", "limonata"}
	milkWords        = []string{"süt", "milk", "yoğurt", "yogurt"}
	lemonadeWords    = []string{"limonata", "lemonade"}
	colaWords        = []string{"kola", "cola", "soda"}
	teaWords         = []string{"çay", "tea"}
	coffeeWords      = []string{"kahve", "coffee"}
	orangeJuiceWords = []string{"portakal suyu", "orange juice"}

	lightDessertWords = []string{"sütlü", "milk", "hafif", "light", "dondurma", "ice cream"}
	coffeeDessertWords = []string{"çikolata", "chocolate", "tiramisu", "cheesecake"}
	turkishDessertWords = []string{"baklava", "künefe", "kadayıf", "sütlaç", "kazandibi"}
)

func productText(p models.Product) string {
	return foldTR(p.Name + " " + p.Description + " " + p.Category)
}

// matchDrinkWithMainDish scores how traditionally a drink accompanies the
// chosen main dish, on top of the drink's own preference score.
func matchDrinkWithMainDish(mainDish, drink models.Product) int {
	mainText := productText(mainDish)
	drinkText := productText(drink)
	score := 0

	if containsAny(mainText, meatKeywords) {
		if containsAny(drinkText, wineWords) {
			score += 15
		}
		if containsAny(drinkText, ayranWords) {
			score += 10
		}
	}

	if containsAny(mainText, spicyMealWords) {
		if containsAny(drinkText, coolingWords) {
			score += 15
		}
		if containsAny(drinkText, milkWords) {
			score += 10
		}
	}

	if containsAny(mainText, seafoodMealWords) {
		if containsAny(drinkText, whiteWineWords) {
			score += 15
		}
		if containsAny(drinkText, lemonadeWords) {
			score += 10
		}
	}

	if containsAny(mainText, italianMealWords) {
		if containsAny(drinkText, wineWords) {
			score += 12
		}
		if containsAny(drinkText, colaWords) {
			score += 8
		}
	}

	if containsAny(mainText, breakfastWords) {
		if containsAny(drinkText, teaWords) {
			score += 15
		}
		if containsAny(drinkText, coffeeWords) {
			score += 12
		}
		if containsAny(drinkText, orangeJuiceWords) {
			score += 10
		}
	}

	return score
}

// matchDessertWithMeal scores how well a dessert closes the selected
// main dish and drink.
func matchDessertWithMeal(mainDish, drink, dessert models.Product) int {
	mealText := foldTR(mainDish.Name + " " + drink.Name)
	dessertText := foldTR(dessert.Name + " " + dessert.Description)
	score := 0

	// Light desserts after heavy mains.
	if containsAny(mealText, heavyMealWords) && containsAny(dessertText, lightDessertWords) {
		score += 10
	}

	// Desserts that go with coffee.
	if containsAny(mealText, coffeeWords) && containsAny(dessertText, coffeeDessertWords) {
		score += 12
	}

	// Traditional desserts after Turkish mains.
	if containsAny(mealText, turkishMealWords) && containsAny(dessertText, turkishDessertWords) {
		score += 15
	}

	return score
}

// pairingTags returns the display tags describing a notable main/drink
// pairing, if any.
func pairingTags(mainDish, drink models.Product) []models.Feature {
	mainText := productText(mainDish)
	drinkText := productText(drink)

	var tags []models.Feature
	if containsAny(mainText, spicyMealWords) && containsAny(drinkText, coolingWords) {
		tags = append(tags, models.Feature{
			ID:    "pairing",
			Icon:  "✨",
			Label: "Uyum",
			Value: "Ferahlatıcı İçecek",
		})
	}
	if containsAny(mainText, meatKeywords) && containsAny(drinkText, wineWords) {
		tags = append(tags, models.Feature{
			ID:    "pairing",
			Icon:  "🍷",
			Label: "Uyum",
			Value: "Et ile Uyumlu",
		})
	}
	return tags
}
