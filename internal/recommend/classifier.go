package recommend

// Category classifiers. Each predicate is independent: the priority list
// is checked first, then the keyword fallback AND-ed with an exclusion
// against the other two classes. An ambiguous category may therefore
// satisfy more than one predicate and land its product in more than one
// pool; the selection layer's non-reuse set keeps the final triple
// pairwise distinct.

// IsMainDishCategory reports whether the category names a main dish.
func IsMainDishCategory(category string) bool {
	c := foldTR(category)
	if containsAny(c, mainDishPriority) {
		return true
	}
	return containsAny(c, mainDishWords) && !containsAny(c, mainDishExclude)
}

// IsDrinkCategory reports whether the category names a drink.
func IsDrinkCategory(category string) bool {
	c := foldTR(category)
	if containsAny(c, drinkPriority) {
		return true
	}
	return containsAny(c, drinkWords) && !containsAny(c, drinkExclude)
}

// IsDessertCategory reports whether the category names a dessert.
func IsDessertCategory(category string) bool {
	c := foldTR(category)
	if containsAny(c, dessertPriority) {
		return true
	}
	return containsAny(c, dessertWords) && !containsAny(c, dessertExclude)
}
