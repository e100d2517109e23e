package recommend

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/metehanbayar/orman/internal/models"
)

// Per-rule point values. The exact numbers decide the ranking, so they
// are ported from the production tuning and kept in one place.
const (
	meatTextPoints       = 15
	meatCategoryPoints   = 10
	vegMeatFreePoints    = 15
	vegKeywordPoints     = 10
	healthyKeywordPoints = 10
	healthyCategoryBonus = 8
	spicyTextPoints      = 12
	spicyFeatureBonus    = 8
	budgetUnder100Points = 10
	budgetUnder50Bonus   = 5
	premiumOver200Points = 15
	premiumOver300Bonus  = 10
	portionTextPoints    = 10
	portionFeatureBonus  = 8
	cuisinePoints        = 15
	mealTypePoints       = 10
	seasonalPoints       = 8
	texturePoints        = 10
	cookingMethodPoints  = 12
	moodPoints           = 12
	moodBoostPoints      = 8
	dietaryPoints        = 20
	tastePoints          = 10
	weekendBrunchBonus   = 10
	weekendChefBonus     = 15
	seasonTextBonus      = 8
)

// Scorer vocabulary not shared with the classifier.
var (
	spicyTextWords    = []string{"acı", "aci", "spicy", "hot", "jalapeno", "chili"}
	bigPortionWords   = []string{"büyük", "xl", "king", "mega", "jumbo", "duble"}
	smallPortionWords = []string{"küçük", "small", "mini", "yarım"}

	romanticBoostWords  = []string{"şarap", "wine", "mum", "candle"}
	energeticBoostWords = []string{"protein", "vitamin", "fresh", "taze"}
	relaxingBoostWords  = []string{"çay", "tea", "bitki", "herbal"}
	socialBoostWords    = []string{"paylaşım", "sharing", "porsiyon", "portion"}

	brunchWords = []string{"kahvaltı", "breakfast", "brunch", "yumurta", "egg", "tost", "toast"}
	summerWords = []string{"serinletici", "refreshing", "soğuk", "cold", "dondurma", "ice cream"}
	winterWords = []string{"sıcak", "hot", "çorba", "soup", "güveç", "stew"}
)

var calorieRe = regexp.MustCompile(`(\d+)\s*kcal`)

// tokenize splits a folded preference string on whitespace, commas and
// periods, dropping empty tokens.
func tokenize(prefs string) []string {
	return strings.FieldsFunc(prefs, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '.'
	})
}

// scoreProduct computes the additive compatibility score between one
// product and the raw preference string. Scores are unbounded and never
// negative; missing description is treated as empty text, never an error.
func scoreProduct(p models.Product, preferences string, now time.Time) int {
	name := foldTR(p.Name)
	desc := foldTR(p.Description)
	category := foldTR(p.Category)
	// Name and description are deliberately concatenated without a
	// separator, matching how the text was assembled in production.
	text := name + desc
	fullText := name + " " + desc + " " + category

	price, _ := strconv.ParseFloat(p.Price, 64)

	score := 0
	words := tokenize(foldTR(preferences))

	for _, word := range words {
		// Meat preference.
		if strings.Contains(word, "et") || strings.Contains(word, "meat") {
			if containsAny(name, meatKeywords) || containsAny(desc, meatKeywords) {
				score += meatTextPoints
			}
			if strings.Contains(category, "steak") || strings.Contains(category, "et") {
				score += meatCategoryPoints
			}
		}

		// Vegetarian preference: absence of meat is itself a signal.
		if strings.Contains(word, "vejet") || strings.Contains(word, "vegan") {
			if !containsAny(name, meatKeywords) && !containsAny(desc, meatKeywords) {
				score += vegMeatFreePoints
			}
			if containsAny(name, vegetarianKeywords) || containsAny(desc, vegetarianKeywords) {
				score += vegKeywordPoints
			}
		}

		// Healthy preference.
		if strings.Contains(word, "sağlık") || strings.Contains(word, "healthy") || strings.Contains(word, "fit") {
			if containsAny(name, healthyKeywords) || containsAny(desc, healthyKeywords) {
				score += healthyKeywordPoints
			}
			if strings.Contains(category, "salata") || strings.Contains(category, "salad") {
				score += healthyCategoryBonus
			}
		}

		// Spicy preference.
		if strings.Contains(word, "acı") || strings.Contains(word, "spicy") {
			if containsAny(text, spicyTextWords) {
				score += spicyTextPoints
			}
			if hasFeature(p, "Acı Seviyesi", "Acılı", "Spicy") {
				score += spicyFeatureBonus
			}
		}

		// Price preferences.
		if strings.Contains(word, "ekonomik") || strings.Contains(word, "ucuz") {
			if price < 100 {
				score += budgetUnder100Points
			}
			if price < 50 {
				score += budgetUnder50Bonus
			}
		}
		if strings.Contains(word, "premium") || strings.Contains(word, "lüks") {
			if price > 200 {
				score += premiumOver200Points
			}
			if price > 300 {
				score += premiumOver300Bonus
			}
		}

		// Portion preferences.
		if strings.Contains(word, "büyük") || strings.Contains(word, "doyur") {
			if containsAny(text, bigPortionWords) {
				score += portionTextPoints
			}
			if hasFeature(p, "Porsiyon", "Büyük", "2 Kişilik") {
				score += portionFeatureBonus
			}
		}
		if strings.Contains(word, "küçük") || strings.Contains(word, "az") {
			if containsAny(text, smallPortionWords) {
				score += portionTextPoints
			}
			if hasFeature(p, "Porsiyon", "Küçük", "1 Kişilik") {
				score += portionFeatureBonus
			}
		}

		// Cuisine, meal, season, texture and cooking method tables.
		score += groupScore(cuisineTypes, word, cuisinePoints, name, desc, category)
		score += groupScore(mealTypes, word, mealTypePoints, name, desc, category)
		score += groupScore(seasonalPreferences, word, seasonalPoints, name, desc)
		score += groupScore(texturePreferences, word, texturePoints, name, desc)
		score += groupScore(cookingMethods, word, cookingMethodPoints, name, desc)

		score += moodScore(word, fullText)
		score += groupScore(dietaryRestrictions, word, dietaryPoints, fullText)
		score += groupScore(tastePreferences, word, tastePoints, fullText)
	}

	// Contextual bonuses, evaluated once per call on the injected clock.
	hour := now.Hour()
	if weekday := now.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		if hour >= 10 && hour <= 14 && containsAny(text, brunchWords) {
			score += weekendBrunchBonus
		}
		if hour >= 19 && hour <= 23 {
			for _, f := range p.Features {
				if f.Value == "Şefin Önerisi" {
					score += weekendChefBonus
					break
				}
			}
		}
	}

	if month := now.Month(); month >= time.June && month <= time.September {
		if containsAny(text, summerWords) {
			score += seasonTextBonus
		}
	} else if containsAny(text, winterWords) {
		score += seasonTextBonus
	}

	// Calorie-aware bonus when the preferences mention diet or calories
	// and the description carries an "N kcal" figure.
	if mentionsCalories(words) {
		if m := calorieRe.FindStringSubmatch(desc); m != nil {
			calories, _ := strconv.Atoi(m[1])
			switch {
			case calories < 300:
				score += 15
			case calories < 500:
				score += 10
			case calories < 800:
				score += 5
			}
		}
	}

	return score
}

// groupScore awards points once per group whose vocabulary appears both
// in the preference token and in any of the product texts.
func groupScore(groups []keywordGroup, word string, points int, texts ...string) int {
	score := 0
	for _, g := range groups {
		if !containsAny(word, g.keywords) {
			continue
		}
		for _, t := range texts {
			if containsAny(t, g.keywords) {
				score += points
				break
			}
		}
	}
	return score
}

// moodScore awards the base mood points plus a secondary boost when the
// product text also carries the mood's signature vocabulary.
func moodScore(word, fullText string) int {
	score := 0
	for _, mood := range moodPreferences {
		if !containsAny(word, mood.keywords) || !containsAny(fullText, mood.keywords) {
			continue
		}
		score += moodPoints
		switch mood.typ {
		case "romantik":
			if containsAny(fullText, romanticBoostWords) {
				score += moodBoostPoints
			}
		case "enerjik":
			if containsAny(fullText, energeticBoostWords) {
				score += moodBoostPoints
			}
		case "rahatlatıcı":
			if containsAny(fullText, relaxingBoostWords) {
				score += moodBoostPoints
			}
		case "sosyal":
			if containsAny(fullText, socialBoostWords) {
				score += moodBoostPoints
			}
		}
	}
	return score
}

// hasFeature reports whether the product carries a feature with the given
// label whose value contains any of the wanted substrings.
func hasFeature(p models.Product, label string, wanted ...string) bool {
	for _, f := range p.Features {
		if f.Label != label {
			continue
		}
		for _, w := range wanted {
			if strings.Contains(f.Value, w) {
				return true
			}
		}
	}
	return false
}

func mentionsCalories(words []string) bool {
	for _, w := range words {
		if strings.Contains(w, "diyet") || strings.Contains(w, "kalori") {
			return true
		}
	}
	return false
}
