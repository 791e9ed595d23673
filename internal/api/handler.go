package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipebox/internal/favorite"
	"recipebox/internal/recipe"
)

const (
	// upstreamTimeout bounds handlers that fan out to TheMealDB.
	upstreamTimeout = 15 * time.Second
	// storageTimeout bounds database calls.
	storageTimeout = 5 * time.Second
)

// RecipeService defines the recipe browsing operations used by the handlers.
// Implementations absorb upstream failures and return empty results instead
// of errors.
type RecipeService interface {
	Search(ctx context.Context, query string) []*recipe.Recipe
	ByID(ctx context.Context, id string) *recipe.Recipe
	Categories(ctx context.Context) []recipe.Category
	ByCategory(ctx context.Context, category string) []*recipe.Recipe
}

// FavoriteStore defines the favorite persistence operations used by the
// handlers.
type FavoriteStore interface {
	Add(ctx context.Context, entry *favorite.Entry) (*favorite.Entry, error)
	ListByUser(ctx context.Context, userID string) ([]*favorite.Entry, error)
	Remove(ctx context.Context, userID, recipeID string) error
}

// Handler handles HTTP requests.
type Handler struct {
	Recipes   RecipeService
	Favorites FavoriteStore
	Logger    *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(recipes RecipeService, favorites FavoriteStore, logger *zap.Logger) *Handler {
	return &Handler{Recipes: recipes, Favorites: favorites, Logger: logger}
}

// SearchRecipes handles recipe search. An empty query returns the default
// random listing. Upstream failures surface as an empty array, never an
// error status.
func (h *Handler) SearchRecipes(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Recipes.Search(ctx, c.Query("q")))
}

// GetRecipe handles single recipe lookup by id.
func (h *Handler) GetRecipe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	r := h.Recipes.ByID(ctx, c.Param("id"))
	if r == nil {
		c.String(http.StatusNotFound, "Recipe not found")
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetCategories handles the category listing.
func (h *Handler) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Recipes.Categories(ctx))
}

// GetRecipesByCategory handles listing all recipes in a category.
func (h *Handler) GetRecipesByCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.Recipes.ByCategory(ctx, c.Param("category")))
}

// ListFavorites handles listing a user's favorites.
func (h *Handler) ListFavorites(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storageTimeout)
	defer cancel()

	entries, err := h.Favorites.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		h.Logger.Error("failed to list favorites", zap.Error(err))
		c.String(http.StatusInternalServerError, fmt.Sprintf("database error: %s", err.Error()))
		return
	}
	if entries == nil {
		entries = []*favorite.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

// addFavoriteRequest is the body of a save-favorite request.
type addFavoriteRequest struct {
	UserID   string `json:"userId" binding:"required"`
	RecipeID string `json:"recipeId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Image    string `json:"imageUrl"`
	CookTime string `json:"cookTime"`
	Servings int    `json:"servings"`
}

// AddFavorite handles saving a favorite. Saving is idempotent: a recipe the
// user already favorited is returned unchanged.
func (h *Handler) AddFavorite(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storageTimeout)
	defer cancel()

	saved, err := h.Favorites.Add(ctx, &favorite.Entry{
		UserID:   req.UserID,
		RecipeID: req.RecipeID,
		Title:    req.Title,
		Image:    req.Image,
		CookTime: req.CookTime,
		Servings: req.Servings,
	})
	if err != nil {
		h.Logger.Error("failed to save favorite", zap.String("userId", req.UserID), zap.String("recipeId", req.RecipeID), zap.Error(err))
		c.String(http.StatusInternalServerError, fmt.Sprintf("failed to save favorite: %s", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// RemoveFavorite handles deleting a favorite. A missing favorite is reported
// as not found, distinct from a storage failure.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storageTimeout)
	defer cancel()

	err := h.Favorites.Remove(ctx, c.Param("userId"), c.Param("recipeId"))
	if err != nil {
		if errors.Is(err, favorite.ErrNotFound) {
			c.String(http.StatusNotFound, "Favorite not found")
			return
		}
		h.Logger.Error("failed to delete favorite", zap.Error(err))
		c.String(http.StatusInternalServerError, fmt.Sprintf("failed to delete favorite: %s", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
