package recipe

import (
	"strings"

	"recipebox/internal/mealdb"
)

const (
	// descriptionLimit is the number of characters of the raw instructions
	// kept in the short description.
	descriptionLimit = 120

	defaultDescription  = "Delicious meal from TheMealDB"
	defaultCategory     = "Main Course"
	placeholderCookTime = "30 minutes"
	placeholderServings = 4
)

// Normalize converts a raw TheMealDB record into a Recipe. It returns nil for
// a nil meal and never fails on partial input: missing fields degrade to
// defaults. TheMealDB supplies no cook time or servings, so those are fixed
// placeholders.
func Normalize(meal *mealdb.Meal) *Recipe {
	if meal == nil {
		return nil
	}

	var ingredients []string
	for _, slot := range meal.IngredientSlots() {
		ingredient := strings.TrimSpace(slot.Ingredient)
		if ingredient == "" {
			continue
		}
		if measure := strings.TrimSpace(slot.Measure); measure != "" {
			ingredients = append(ingredients, measure+" "+ingredient)
		} else {
			ingredients = append(ingredients, ingredient)
		}
	}

	category := meal.Category
	if category == "" {
		category = defaultCategory
	}

	return &Recipe{
		ID:           meal.ID,
		Title:        meal.Name,
		Description:  describe(meal.Instructions),
		Image:        meal.Thumbnail,
		CookTime:     placeholderCookTime,
		Servings:     placeholderServings,
		Category:     category,
		Area:         meal.Area,
		Ingredients:  ingredients,
		Instructions: splitInstructions(meal.Instructions),
	}
}

// describe derives the short description: the first 120 characters of the
// instructions with a trailing ellipsis, or a fixed placeholder when the
// instructions are absent.
func describe(instructions string) string {
	if instructions == "" {
		return defaultDescription
	}
	runes := []rune(instructions)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + "..."
}

// splitInstructions breaks the raw instructions into steps on line breaks,
// dropping blank lines.
func splitInstructions(instructions string) []string {
	if instructions == "" {
		return nil
	}
	var steps []string
	for _, line := range strings.Split(instructions, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		steps = append(steps, line)
	}
	return steps
}
