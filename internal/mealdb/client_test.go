package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchByName(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("s")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strCategory":"Chicken","strIngredient1":"soy sauce","strMeasure1":"3/4 cup"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meals, err := client.SearchByName(context.Background(), "chicken teriyaki")

	assert.NoError(t, err)
	assert.Equal(t, "/search.php", gotPath)
	assert.Equal(t, "chicken teriyaki", gotQuery)
	assert.Len(t, meals, 1)
	assert.Equal(t, "52772", meals[0].ID)
	assert.Equal(t, "soy sauce", meals[0].Ingredient1)
	assert.Equal(t, "3/4 cup", meals[0].Measure1)
}

func TestSearchByName_NullMeals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meals, err := client.SearchByName(context.Background(), "zzzzz")

	assert.NoError(t, err)
	assert.Empty(t, meals)
}

func TestLookupByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		assert.Equal(t, "52772", r.URL.Query().Get("i"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meal, err := client.LookupByID(context.Background(), "52772")

	assert.NoError(t, err)
	assert.NotNil(t, meal)
	assert.Equal(t, "Teriyaki Chicken Casserole", meal.Name)
}

func TestLookupByID_Miss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meal, err := client.LookupByID(context.Background(), "999999")

	assert.NoError(t, err)
	assert.Nil(t, meal)
}

func TestFilterByIngredient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter.php", r.URL.Path)
		assert.Equal(t, "chicken", r.URL.Query().Get("i"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":[{"idMeal":"1"},{"idMeal":"2"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	meals, err := client.FilterByIngredient(context.Background(), "chicken")

	assert.NoError(t, err)
	assert.Len(t, meals, 2)
}

func TestCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories.php", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"categories":[{"strCategory":"Beef","strCategoryThumb":"https://example.com/beef.png","strCategoryDescription":"Beef dishes"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	categories, err := client.Categories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, "Beef", categories[0].Name)
}

func TestGet_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SearchByName(context.Background(), "chicken")

	assert.Error(t, err)
}

func TestGet_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Categories(context.Background())

	assert.Error(t, err)
}
