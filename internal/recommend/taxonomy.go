package recommend

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keyword tables driving classification and scoring. Matching is
// case-folded substring search over Turkish and English vocabulary, so
// the diacritics here are load-bearing.

// Priority category names, checked before the keyword fallback.
var (
	mainDishPriority = []string{
		"steak house", "steakhouse", "et yemekleri",
		"izgara", "ana yemekler", "burgerler", "kebaplar",
		"pideler", "makarnalar", "tavuk yemekleri",
	}

	drinkPriority = []string{
		"içecekler", "beverages", "drinks", "kahveler",
		"çaylar", "soğuk içecekler", "sıcak içecekler",
		"meşrubatlar", "smoothies", "milkshakes",
	}

	dessertPriority = []string{
		"tatlılar", "desserts", "pastalar", "sütlü tatlılar",
		"dondurma çeşitleri", "waffle çeşitleri", "baklavalar",
		"cheesecake", "tiramisu", "künefe",
	}
)

// Category keyword fallbacks with their cross-class exclusions.
var (
	mainDishWords = []string{
		"burger", "pizza", "makarna", "spagetti", "tavuk", "chicken", "et",
		"meat", "steak", "biftek", "salata", "salad", "wrap", "dürüm",
		"köfte", "kebap", "döner", "bonfile", "antrikot", "pirzola",
		"ızgara", "mangal",
	}
	mainDishExclude = []string{
		"içecek", "drink", "beverage", "tatlı", "dessert", "sweet",
		"coffee", "kahve", "tea", "çay",
	}

	drinkWords = []string{
		"kahve", "coffee", "çay", "tea", "içecek", "drink", "smoothie",
		"shake", "juice", "soda", "limonata", "ayran", "kola",
	}
	drinkExclude = []string{
		"steak", "burger", "pizza", "tatlı", "dessert", "sweet",
		"pasta", "cake", "waffle",
	}

	dessertWords = []string{
		"tatlı", "dessert", "sweet", "pasta", "cake", "dondurma",
		"ice cream", "waffle", "cheesecake", "brownie", "cookie",
		"kurabiye", "pudding", "tiramisu", "baklava", "künefe",
		"kadayıf", "sufle",
	}
	dessertExclude = []string{
		"steak", "burger", "pizza", "içecek", "drink", "beverage",
		"coffee", "kahve", "tea", "çay",
	}
)

// Product vocabulary used by the scorer.
var (
	meatKeywords = []string{
		"et", "meat", "steak", "biftek", "bonfile", "pirzola", "köfte",
		"kebap", "döner", "tavuk", "chicken", "kanat", "but", "antrikot",
		"kuzu", "dana", "beef", "lamb", "şiş", "ızgara", "mangal", "burger",
		"sucuk", "pastırma", "kavurma", "tandır", "külbastı", "şnitzel",
	}

	vegetarianKeywords = []string{
		"vejetaryen", "vegetarian", "vegan", "sebze", "vegetable",
		"salata", "salad", "yeşillik", "mantar", "mushroom",
		"mercimek", "nohut", "fasulye", "patlıcan", "kabak",
		"ıspanak", "brokoli", "karnabahar", "tofu",
	}

	healthyKeywords = []string{
		"sağlıklı", "healthy", "fit", "diyet", "diet", "light",
		"düşük kalorili", "low calorie", "protein", "glutensiz",
		"gluten free", "organik", "organic", "kinoa", "quinoa",
		"avokado", "avocado", "chia", "badem", "almond",
	}
)

// keywordGroup maps a preference sub-type to the vocabulary that signals
// it, both in the user's text and in the product's text.
type keywordGroup struct {
	typ      string
	keywords []string
}

var cuisineTypes = []keywordGroup{
	{typ: "türk", keywords: []string{"türk", "turkish", "anadolu", "osmanlı", "geleneksel"}},
	{typ: "italyan", keywords: []string{"italyan", "italian", "pizza", "pasta", "makarna"}},
	{typ: "meksika", keywords: []string{"meksika", "mexican", "taco", "burrito", "nachos"}},
	{typ: "uzakdoğu", keywords: []string{"çin", "japon", "thai", "sushi", "noodle", "asya"}},
	{typ: "hint", keywords: []string{"hint", "indian", "curry", "masala", "tandoori"}},
}

var mealTypes = []keywordGroup{
	{typ: "kahvaltı", keywords: []string{"kahvaltı", "breakfast", "sabah", "morning"}},
	{typ: "öğle", keywords: []string{"öğle", "lunch", "hafif"}},
	{typ: "akşam", keywords: []string{"akşam", "dinner", "gece"}},
}

var seasonalPreferences = []keywordGroup{
	{typ: "yaz", keywords: []string{"yaz", "summer", "soğuk", "ferah", "serinletici"}},
	{typ: "kış", keywords: []string{"kış", "winter", "sıcak", "çorba", "soup"}},
}

var texturePreferences = []keywordGroup{
	{typ: "çıtır", keywords: []string{"çıtır", "crispy", "kıtır", "gevrek"}},
	{typ: "yumuşak", keywords: []string{"yumuşak", "soft", "tender", "lokum"}},
}

var cookingMethods = []keywordGroup{
	{typ: "ızgara", keywords: []string{"ızgara", "grilled", "mangal", "barbekü"}},
	{typ: "fırın", keywords: []string{"fırın", "oven", "baked", "roasted"}},
	{typ: "tava", keywords: []string{"tava", "pan", "sote", "kavurma"}},
	{typ: "buğulama", keywords: []string{"buğulama", "steamed", "haşlama", "boiled"}},
}

var moodPreferences = []keywordGroup{
	{typ: "romantik", keywords: []string{"romantik", "romantic", "özel", "special", "date", "buluşma"}},
	{typ: "enerjik", keywords: []string{"enerji", "energy", "güç", "power", "dinç", "canlı"}},
	{typ: "rahatlatıcı", keywords: []string{"rahat", "relax", "sakin", "huzur", "peaceful"}},
	{typ: "sosyal", keywords: []string{"sosyal", "social", "arkadaş", "friend", "grup", "kalabalık"}},
}

var dietaryRestrictions = []keywordGroup{
	{typ: "glutensiz", keywords: []string{"glutensiz", "gluten free", "çölyak"}},
	{typ: "laktozsuz", keywords: []string{"laktozsuz", "lactose free", "sütsüz"}},
	{typ: "şekersiz", keywords: []string{"şekersiz", "sugar free", "diyabetik"}},
	{typ: "vegan", keywords: []string{"vegan", "plant based", "bitkisel"}},
}

var tastePreferences = []keywordGroup{
	{typ: "tatlı", keywords: []string{"tatlı", "sweet", "şekerli", "ballı"}},
	{typ: "ekşi", keywords: []string{"ekşi", "sour", "limonlu", "narenciye"}},
	{typ: "tuzlu", keywords: []string{"tuzlu", "salty", "çerezlik"}},
	{typ: "umami", keywords: []string{"umami", "doyurucu", "lezzetli"}},
}

// Casers are stateful and must not be shared between goroutines, so
// foldTR reuses them through a pool instead of building one per call.
var lowerTR = sync.Pool{
	New: func() interface{} {
		c := cases.Lower(language.Turkish)
		return &c
	},
}

// foldTR lowercases with Turkish casing rules. Plain strings.ToLower maps
// İ to "i" plus a combining dot, which silently breaks substring matches
// against dotted-i vocabulary like "içecekler".
func foldTR(s string) string {
	c := lowerTR.Get().(*cases.Caser)
	defer lowerTR.Put(c)
	return c.String(s)
}

// containsAny reports whether s contains any of the given keywords.
// Inputs are expected to be already case-folded.
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
