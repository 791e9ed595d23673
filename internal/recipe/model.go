package recipe

// Recipe is the normalized shape the app works with, derived from a raw
// TheMealDB record.
type Recipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	CookTime     string   `json:"cookTime"`
	Servings     int      `json:"servings"`
	Category     string   `json:"category"`
	Area         string   `json:"area,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// Category is a meal category as exposed by the API.
type Category struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
