package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"recipebox/internal/mealdb"
)

func TestNormalize_NilMeal(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestNormalize_Fields(t *testing.T) {
	meal := &mealdb.Meal{
		ID:           "52772",
		Name:         "Teriyaki Chicken Casserole",
		Instructions: "Preheat oven to 350F.",
		Thumbnail:    "https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
		Category:     "Chicken",
		Area:         "Japanese",
	}

	r := Normalize(meal)
	assert.NotNil(t, r)
	assert.Equal(t, "52772", r.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", r.Title)
	assert.Equal(t, meal.Thumbnail, r.Image)
	assert.Equal(t, "Chicken", r.Category)
	assert.Equal(t, "Japanese", r.Area)
	assert.Equal(t, "30 minutes", r.CookTime)
	assert.Equal(t, 4, r.Servings)
}

func TestNormalize_DefaultCategory(t *testing.T) {
	r := Normalize(&mealdb.Meal{ID: "1", Name: "Mystery Meal"})
	assert.Equal(t, "Main Course", r.Category)
}

func TestNormalize_IngredientsSkipEmptySlots(t *testing.T) {
	meal := &mealdb.Meal{
		ID:          "1",
		Name:        "Cake",
		Ingredient1: "Flour",
		Measure1:    "1 cup",
		Ingredient2: "Sugar",
		Measure2:    "   ",
		// Slot 3 left empty; slot 4 still counts.
		Ingredient4: " Eggs ",
		Measure4:    " 2 ",
		Ingredient5: "  ",
		Measure5:    "3 tbsp",
	}

	r := Normalize(meal)
	assert.Equal(t, []string{"1 cup Flour", "Sugar", "2 Eggs"}, r.Ingredients)
}

func TestNormalize_IngredientsAllSlots(t *testing.T) {
	meal := &mealdb.Meal{ID: "1", Name: "Everything Stew"}
	slots := meal.IngredientSlots()
	assert.Len(t, slots, 20)
	for _, slot := range slots {
		assert.Empty(t, slot.Ingredient)
	}
	assert.Empty(t, Normalize(meal).Ingredients)
}

func TestNormalize_InstructionsSplit(t *testing.T) {
	meal := &mealdb.Meal{
		ID:           "1",
		Name:         "Toast",
		Instructions: "Step one.\r\nStep two.\n\nStep three.",
	}

	r := Normalize(meal)
	assert.Equal(t, []string{"Step one.", "Step two.", "Step three."}, r.Instructions)
}

func TestNormalize_InstructionsAbsent(t *testing.T) {
	r := Normalize(&mealdb.Meal{ID: "1", Name: "Ice"})
	assert.Empty(t, r.Instructions)
	assert.Equal(t, "Delicious meal from TheMealDB", r.Description)
}

func TestNormalize_DescriptionTruncation(t *testing.T) {
	long := strings.Repeat("a", 130)
	r := Normalize(&mealdb.Meal{ID: "1", Name: "Long", Instructions: long})
	assert.Equal(t, strings.Repeat("a", 120)+"...", r.Description)
}

func TestNormalize_DescriptionShortInstructions(t *testing.T) {
	r := Normalize(&mealdb.Meal{ID: "1", Name: "Short", Instructions: "Mix well."})
	assert.Equal(t, "Mix well....", r.Description)
}

func TestNormalize_DescriptionCountsRunes(t *testing.T) {
	long := strings.Repeat("é", 130)
	r := Normalize(&mealdb.Meal{ID: "1", Name: "Accents", Instructions: long})
	assert.Equal(t, strings.Repeat("é", 120)+"...", r.Description)
}
