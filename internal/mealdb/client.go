package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the public TheMealDB v1 API endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Client is a client for the TheMealDB HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new TheMealDB client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// mealsResponse is the envelope for every meal-returning endpoint. The API
// returns {"meals": null} for no results, which decodes to a nil slice.
type mealsResponse struct {
	Meals []Meal `json:"meals"`
}

// categoriesResponse is the envelope for the category listing endpoint.
type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

// get issues a GET against the given API path and decodes the JSON envelope
// into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-OK status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}

// SearchByName searches meals by name.
func (c *Client) SearchByName(ctx context.Context, query string) ([]Meal, error) {
	var data mealsResponse
	if err := c.get(ctx, "search.php", url.Values{"s": {query}}, &data); err != nil {
		return nil, err
	}
	return data.Meals, nil
}

// LookupByID looks up full meal details by id. Returns nil when the id is
// unknown upstream.
func (c *Client) LookupByID(ctx context.Context, id string) (*Meal, error) {
	var data mealsResponse
	if err := c.get(ctx, "lookup.php", url.Values{"i": {id}}, &data); err != nil {
		return nil, err
	}
	if len(data.Meals) == 0 {
		return nil, nil
	}
	return &data.Meals[0], nil
}

// Random fetches a single random meal.
func (c *Client) Random(ctx context.Context) (*Meal, error) {
	var data mealsResponse
	if err := c.get(ctx, "random.php", nil, &data); err != nil {
		return nil, err
	}
	if len(data.Meals) == 0 {
		return nil, nil
	}
	return &data.Meals[0], nil
}

// FilterByIngredient lists meals that use the given main ingredient. Filter
// results carry only id, name and thumbnail.
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]Meal, error) {
	var data mealsResponse
	if err := c.get(ctx, "filter.php", url.Values{"i": {ingredient}}, &data); err != nil {
		return nil, err
	}
	return data.Meals, nil
}

// FilterByCategory lists meals in the given category.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]Meal, error) {
	var data mealsResponse
	if err := c.get(ctx, "filter.php", url.Values{"c": {category}}, &data); err != nil {
		return nil, err
	}
	return data.Meals, nil
}

// Categories lists all meal categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var data categoriesResponse
	if err := c.get(ctx, "categories.php", nil, &data); err != nil {
		return nil, err
	}
	return data.Categories, nil
}
