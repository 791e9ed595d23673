package recipe

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"recipebox/internal/mealdb"
)

// searchLimit caps how many recipes a search returns.
const searchLimit = 12

// MealSource defines the subset of the TheMealDB client used by the Service.
type MealSource interface {
	SearchByName(ctx context.Context, query string) ([]mealdb.Meal, error)
	LookupByID(ctx context.Context, id string) (*mealdb.Meal, error)
	Random(ctx context.Context) (*mealdb.Meal, error)
	FilterByIngredient(ctx context.Context, ingredient string) ([]mealdb.Meal, error)
	FilterByCategory(ctx context.Context, category string) ([]mealdb.Meal, error)
	Categories(ctx context.Context) ([]mealdb.Category, error)
}

// Service resolves browse and search requests against TheMealDB and
// normalizes the results. Upstream failures are absorbed: every operation
// degrades to an empty result rather than returning an error, and the
// condition is logged.
type Service struct {
	source MealSource
	logger *zap.Logger
}

// NewService creates a new Service.
func NewService(source MealSource, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Search resolves a free-text query. An empty query returns a batch of random
// recipes. Otherwise meals are looked up by name first; only when that yields
// nothing is a single ingredient lookup issued with the same query. Results
// are capped at 12 before normalizing.
func (s *Service) Search(ctx context.Context, query string) []*Recipe {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.randomBatch(ctx, searchLimit)
	}

	meals, err := s.source.SearchByName(ctx, query)
	if err != nil {
		s.logger.Warn("name search failed", zap.String("query", query), zap.Error(err))
		meals = nil
	}

	if len(meals) == 0 {
		meals, err = s.source.FilterByIngredient(ctx, query)
		if err != nil {
			s.logger.Warn("ingredient search failed", zap.String("query", query), zap.Error(err))
			meals = nil
		}
	}

	if len(meals) > searchLimit {
		meals = meals[:searchLimit]
	}
	return normalizeAll(meals)
}

// randomBatch fetches count random meals concurrently and collects the ones
// that succeed. A failed fetch is omitted, never fatal to the batch.
func (s *Service) randomBatch(ctx context.Context, count int) []*Recipe {
	results := make([]*mealdb.Meal, count)

	var g errgroup.Group
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			meal, err := s.source.Random(ctx)
			if err != nil {
				s.logger.Warn("random meal fetch failed", zap.Error(err))
				return nil
			}
			results[i] = meal
			return nil
		})
	}
	_ = g.Wait()

	recipes := make([]*Recipe, 0, count)
	for _, meal := range results {
		if r := Normalize(meal); r != nil {
			recipes = append(recipes, r)
		}
	}
	return recipes
}

// ByID fetches and normalizes a single recipe. Returns nil when the id is
// unknown or the upstream call fails.
func (s *Service) ByID(ctx context.Context, id string) *Recipe {
	meal, err := s.source.LookupByID(ctx, id)
	if err != nil {
		s.logger.Warn("meal lookup failed", zap.String("id", id), zap.Error(err))
		return nil
	}
	return Normalize(meal)
}

// Categories returns the upstream category list, empty on failure.
func (s *Service) Categories(ctx context.Context) []Category {
	raw, err := s.source.Categories(ctx)
	if err != nil {
		s.logger.Warn("category listing failed", zap.Error(err))
		raw = nil
	}
	categories := make([]Category, 0, len(raw))
	for _, c := range raw {
		categories = append(categories, Category{
			Name:        c.Name,
			Image:       c.Thumbnail,
			Description: c.Description,
		})
	}
	return categories
}

// ByCategory returns all normalized recipes in a category, with no cap.
func (s *Service) ByCategory(ctx context.Context, category string) []*Recipe {
	meals, err := s.source.FilterByCategory(ctx, category)
	if err != nil {
		s.logger.Warn("category filter failed", zap.String("category", category), zap.Error(err))
		meals = nil
	}
	return normalizeAll(meals)
}

// normalizeAll normalizes meals in order, dropping any that normalize to nil.
func normalizeAll(meals []mealdb.Meal) []*Recipe {
	recipes := make([]*Recipe, 0, len(meals))
	for i := range meals {
		if r := Normalize(&meals[i]); r != nil {
			recipes = append(recipes, r)
		}
	}
	return recipes
}
