package recipes

import (
	"context"

	"github.com/annsokol/foodbook/internal/api/routes/users"
	"github.com/annsokol/foodbook/internal/database"
)

type RecipeTag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type RecipeIngredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

type RecipeResponse struct {
	ID               int64              `json:"id"`
	Tags             []RecipeTag        `json:"tags"`
	Author           users.UserResponse `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            *string            `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int32              `json:"cooking_time"`
}

// PreviewResponse is the short representation returned by the favorite
// and shopping cart endpoints.
type PreviewResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	CookingTime int32   `json:"cooking_time"`
}

func NewPreviewResponse(preview database.GetRecipePreviewRow) PreviewResponse {
	var image *string
	if preview.ImageUrl.Valid {
		image = &preview.ImageUrl.String
	}
	return PreviewResponse{
		ID:          preview.ID,
		Name:        preview.Name,
		Image:       image,
		CookingTime: preview.CookingTime,
	}
}

func newRecipeResponse(row database.ListRecipesRow, tags []RecipeTag, ingredients []RecipeIngredient) RecipeResponse {
	var image *string
	if row.ImageUrl.Valid {
		image = &row.ImageUrl.String
	}
	if tags == nil {
		tags = []RecipeTag{}
	}
	if ingredients == nil {
		ingredients = []RecipeIngredient{}
	}
	return RecipeResponse{
		ID:   row.ID,
		Tags: tags,
		Author: users.UserResponse{
			ID:           row.AuthorID,
			Email:        row.AuthorEmail,
			Username:     row.AuthorUsername,
			FirstName:    row.AuthorFirstName,
			LastName:     row.AuthorLastName,
			IsSubscribed: row.AuthorIsSubscribed,
		},
		Ingredients:      ingredients,
		IsFavorited:      row.IsFavorited,
		IsInShoppingCart: row.IsInShoppingCart,
		Name:             row.Name,
		Image:            image,
		Text:             row.Text,
		CookingTime:      row.CookingTime,
	}
}

// assembleRecipes joins recipe rows with their tags and ingredients
// using two batched queries instead of one pair per recipe.
func assembleRecipes(ctx context.Context, q database.Querier, rows []database.ListRecipesRow) ([]RecipeResponse, error) {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	tagsByRecipe := make(map[int64][]RecipeTag)
	ingredientsByRecipe := make(map[int64][]RecipeIngredient)
	if len(ids) > 0 {
		tagRows, err := q.ListRecipeTags(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tagRows {
			tagsByRecipe[t.RecipeID] = append(tagsByRecipe[t.RecipeID], RecipeTag{
				ID:    t.ID,
				Name:  t.Name,
				Color: t.Color,
				Slug:  t.Slug,
			})
		}
		ingredientRows, err := q.ListRecipeIngredients(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, i := range ingredientRows {
			ingredientsByRecipe[i.RecipeID] = append(ingredientsByRecipe[i.RecipeID], RecipeIngredient{
				ID:              i.ID,
				Name:            i.Name,
				MeasurementUnit: i.MeasurementUnit,
				Amount:          i.Amount,
			})
		}
	}

	responses := make([]RecipeResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, newRecipeResponse(row, tagsByRecipe[row.ID], ingredientsByRecipe[row.ID]))
	}
	return responses, nil
}
