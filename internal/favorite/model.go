package favorite

import "time"

// Entry is one saved recipe reference for a user. Title, image, cook time and
// servings are denormalized from the recipe at save time so the favorites
// list renders without another upstream call.
type Entry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	RecipeID  string    `json:"recipeId" db:"recipe_id"`
	Title     string    `json:"title" db:"title"`
	Image     string    `json:"imageUrl" db:"image_url"`
	CookTime  string    `json:"cookTime" db:"cook_time"`
	Servings  int       `json:"servings" db:"servings"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
