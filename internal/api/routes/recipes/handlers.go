// Package recipes contains handlers for recipes, favorites and the
// shopping cart.
package recipes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	apiError "github.com/annsokol/foodbook/internal/api/error"
	"github.com/annsokol/foodbook/internal/api/pagination"
	"github.com/annsokol/foodbook/internal/api/requestid"
	"github.com/annsokol/foodbook/internal/api/token"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/env"
	mJson "github.com/annsokol/foodbook/internal/json"
	"github.com/annsokol/foodbook/internal/recipe"
	"github.com/annsokol/foodbook/internal/relation"
	"github.com/annsokol/foodbook/internal/role"
	"github.com/annsokol/foodbook/internal/shoppinglist"
)

func parseRecipeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
}

// viewerParam is the nullable viewer id passed to queries computing
// is_favorited and friends. Anonymous requests read NULL.
func viewerParam(ctx context.Context) pgtype.Int8 {
	viewerID, ok := token.ViewerFromCtx(ctx)
	return pgtype.Int8{Int64: viewerID, Valid: ok}
}

// validateRecipePayload runs the domain checks shared by create and
// update: bounds, duplicates and catalog existence.
func validateRecipePayload(ctx context.Context, q database.Querier, cookingTime int32, tags []int64, ingredients []IngredientAmount) error {
	if err := recipe.ValidateCookingTime(cookingTime); err != nil {
		return err
	}
	if err := recipe.ValidateTags(tags); err != nil {
		return err
	}
	entries := make([]recipe.IngredientEntry, 0, len(ingredients))
	ingredientIDs := make([]int64, 0, len(ingredients))
	for _, ingredient := range ingredients {
		entries = append(entries, recipe.IngredientEntry{ID: ingredient.ID, Amount: ingredient.Amount})
		ingredientIDs = append(ingredientIDs, ingredient.ID)
	}
	if err := recipe.ValidateIngredients(entries); err != nil {
		return err
	}

	tagCount, err := q.CountTagsByIDs(ctx, tags)
	if err != nil {
		return err
	}
	if tagCount != int64(len(tags)) {
		return fmt.Errorf("unknown tag id")
	}
	ingredientCount, err := q.CountIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return err
	}
	if ingredientCount != int64(len(ingredientIDs)) {
		return fmt.Errorf("unknown ingredient id")
	}
	return nil
}

func insertRecipeContents(ctx context.Context, q database.Querier, recipeID int64, tags []int64, ingredients []IngredientAmount) error {
	for _, tagID := range tags {
		err := q.AddRecipeTag(ctx, database.AddRecipeTagParams{RecipeID: recipeID, TagID: tagID})
		if err != nil {
			return err
		}
	}
	for _, ingredient := range ingredients {
		err := q.CreateRecipeIngredient(ctx, database.CreateRecipeIngredientParams{
			RecipeID:     recipeID,
			IngredientID: ingredient.ID,
			Amount:       ingredient.Amount,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeAssembledRecipe(w http.ResponseWriter, r *http.Request, status int, recipeID int64) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	row, err := env.Database.GetRecipe(ctx, database.GetRecipeParams{ID: recipeID, ViewerID: viewerParam(ctx)})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	responses, err := assembleRecipes(ctx, env.Database, []database.ListRecipesRow{database.ListRecipesRow(row)})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to assemble recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.EncodeResponse(w, status, responses[0]); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleListRecipes godoc
//
//	@Summary	List recipes, newest publications last.
//	@Tags		Recipes
//	@Produce	json
//	@Param		page				query		int		false	"Page number"
//	@Param		limit				query		int		false	"Page size"
//	@Param		author				query		int		false	"Filter by author id"
//	@Param		tags				query		[]string	false	"Filter by tag slug, any-of"
//	@Param		is_favorited		query		int		false	"Only the viewer's favorites"
//	@Param		is_in_shopping_cart	query		int		false	"Only the viewer's cart"
//	@Success	200					{object}	pagination.Page
//	@Router		/api/recipes [GET]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	params, err := pagination.Parse(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid pagination parameters", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid pagination parameters", requestID)
		return
	}

	query := r.URL.Query()
	var authorID pgtype.Int8
	if raw := query.Get("author"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Invalid author filter", slog.String("author", raw))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid author filter", requestID)
			return
		}
		authorID = pgtype.Int8{Int64: id, Valid: true}
	}
	tagSlugs := query["tags"]
	viewer := viewerParam(ctx)

	// Favorite and cart filters are a no-op for anonymous viewers
	onlyFavorited := viewer.Valid && query.Get("is_favorited") == "1"
	onlyInCart := viewer.Valid && query.Get("is_in_shopping_cart") == "1"

	env.Logger.DebugContext(ctx, "Listing recipes")
	rows, err := env.Database.ListRecipes(ctx, database.ListRecipesParams{
		ViewerID:      viewer,
		AuthorID:      authorID,
		FilterTags:    len(tagSlugs) > 0,
		TagSlugs:      tagSlugs,
		OnlyFavorited: onlyFavorited,
		OnlyInCart:    onlyInCart,
		Limit:         params.Limit32(),
		Offset:        params.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	count, err := env.Database.CountRecipes(ctx, database.CountRecipesParams{
		AuthorID:      authorID,
		FilterTags:    len(tagSlugs) > 0,
		TagSlugs:      tagSlugs,
		OnlyFavorited: onlyFavorited,
		ViewerID:      viewer,
		OnlyInCart:    onlyInCart,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	results, err := assembleRecipes(ctx, env.Database, rows)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to assemble recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	err = mJson.EncodeResponse(w, http.StatusOK, pagination.NewPage(r, count, params, results))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetRecipe godoc
//
//	@Summary	Retrieve a single recipe.
//	@Tags		Recipes
//	@Produce	json
//	@Param		recipeID	path		int	true	"Recipe ID"
//	@Success	200			{object}	RecipeResponse
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{recipeID} [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipeID, err := parseRecipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving recipe", slog.Int64("recipe-id", recipeID))
	row, err := env.Database.GetRecipe(ctx, database.GetRecipeParams{ID: recipeID, ViewerID: viewerParam(ctx)})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Recipe does not exist", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	responses, err := assembleRecipes(ctx, env.Database, []database.ListRecipesRow{database.ListRecipesRow(row)})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to assemble recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.EncodeResponse(w, http.StatusOK, responses[0]); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCreateRecipe godoc
//
//	@Summary	Publish a new recipe.
//	@Tags		Recipes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateRecipeRequest	true	"Recipe"
//	@Success	201		{object}	RecipeResponse
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes [POST]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}

	// Decode JSON
	var request CreateRecipeRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	if err := mJson.DecodeRequest(r, &request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.ValidationError, "invalid request body", requestID)
		return
	}

	// Domain validation
	env.Logger.DebugContext(ctx, "Validating recipe payload")
	if err := validateRecipePayload(ctx, env.Database, request.CookingTime, request.Tags, request.Ingredients); err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe payload", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.ValidationError, err.Error(), requestID)
		return
	}

	// Decode image
	env.Logger.DebugContext(ctx, "Decoding image")
	file, err := recipe.DecodeImage(request.Image)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode image", slog.Any("error", err))
		_ = apiError.EncodeFieldError(w, apiError.ValidationError, "image", err.Error(), requestID)
		return
	}

	// Insert recipe, tags and ingredients in one transaction. The image
	// upload happens inside it so a storage failure rolls everything back.
	env.Logger.DebugContext(ctx, "Creating recipe")
	tx, err := env.Database.Pool.Begin(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	defer tx.Rollback(ctx)
	qtx := env.Database.WithTx(tx)

	recipeID, err := qtx.CreateRecipe(ctx, database.CreateRecipeParams{
		AuthorID:    userID,
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create recipe", slog.Any("error", err))
		if database.IsCheckViolation(err) {
			_ = apiError.EncodeError(w, apiError.ValidationError, "value out of bounds", requestID)
			return
		}
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := insertRecipeContents(ctx, qtx, recipeID, request.Tags, request.Ingredients); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to store recipe contents", slog.Any("error", err))
		if database.IsCheckViolation(err) {
			_ = apiError.EncodeError(w, apiError.ValidationError, "value out of bounds", requestID)
			return
		}
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Uploading image", slog.Int64("recipe-id", recipeID))
	imageURL, err := env.FileStore.WriteRecipeImage(ctx, recipeID, file.Suffix, file.MimeType, file.Data)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to upload image", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	err = qtx.UpdateRecipe(ctx, database.UpdateRecipeParams{
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
		ImageUrl:    pgtype.Text{String: imageURL, Valid: true},
		ID:          recipeID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to store image url", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeAssembledRecipe(w, r, http.StatusCreated, recipeID)
}

// HandleUpdateRecipe godoc
//
//	@Summary	Update a recipe. Author only.
//	@Tags		Recipes
//	@Accept		json
//	@Produce	json
//	@Param		recipeID	path		int					true	"Recipe ID"
//	@Param		request		body		UpdateRecipeRequest	true	"Recipe"
//	@Success	200			{object}	RecipeResponse
//	@Failure	403			{object}	apiError.Error	"Forbidden"
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{recipeID} [PATCH]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}
	recipeID, err := parseRecipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving recipe", slog.Int64("recipe-id", recipeID))
	existing, err := env.Database.GetRecipe(ctx, database.GetRecipeParams{ID: recipeID, ViewerID: viewerParam(ctx)})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Recipe does not exist", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if existing.AuthorID != userID {
		env.Logger.ErrorContext(ctx, "Recipe not owned by user",
			slog.Int64("recipe-id", recipeID), slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "recipe belongs to another user", requestID)
		return
	}

	// Decode JSON
	var request UpdateRecipeRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	if err := mJson.DecodeRequest(r, &request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.ValidationError, "invalid request body", requestID)
		return
	}

	// Domain validation
	env.Logger.DebugContext(ctx, "Validating recipe payload")
	if err := validateRecipePayload(ctx, env.Database, request.CookingTime, request.Tags, request.Ingredients); err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe payload", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.ValidationError, err.Error(), requestID)
		return
	}

	// Replace the image only when a new payload was sent
	var imageURL pgtype.Text
	if request.Image != "" {
		env.Logger.DebugContext(ctx, "Decoding image")
		file, err := recipe.DecodeImage(request.Image)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to decode image", slog.Any("error", err))
			_ = apiError.EncodeFieldError(w, apiError.ValidationError, "image", err.Error(), requestID)
			return
		}
		env.Logger.DebugContext(ctx, "Uploading image", slog.Int64("recipe-id", recipeID))
		url, err := env.FileStore.WriteRecipeImage(ctx, recipeID, file.Suffix, file.MimeType, file.Data)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to upload image", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		imageURL = pgtype.Text{String: url, Valid: true}
	}

	// Tags and ingredients are replaced wholesale in one transaction
	env.Logger.DebugContext(ctx, "Updating recipe")
	tx, err := env.Database.Pool.Begin(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	defer tx.Rollback(ctx)
	qtx := env.Database.WithTx(tx)

	err = qtx.UpdateRecipe(ctx, database.UpdateRecipeParams{
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
		ImageUrl:    imageURL,
		ID:          recipeID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to update recipe", slog.Any("error", err))
		if database.IsCheckViolation(err) {
			_ = apiError.EncodeError(w, apiError.ValidationError, "value out of bounds", requestID)
			return
		}
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := qtx.ClearRecipeTags(ctx, recipeID); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to clear recipe tags", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := qtx.ClearRecipeIngredients(ctx, recipeID); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to clear recipe ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := insertRecipeContents(ctx, qtx, recipeID, request.Tags, request.Ingredients); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to store recipe contents", slog.Any("error", err))
		if database.IsCheckViolation(err) {
			_ = apiError.EncodeError(w, apiError.ValidationError, "value out of bounds", requestID)
			return
		}
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Drop the replaced object once the new URL is durable
	if imageURL.Valid && existing.ImageUrl.Valid && existing.ImageUrl.String != imageURL.String {
		if err := env.FileStore.DeleteObjectURL(ctx, existing.ImageUrl.String); err != nil {
			env.Logger.WarnContext(ctx, "Failed to delete replaced image", slog.Any("error", err))
		}
	}

	encodeAssembledRecipe(w, r, http.StatusOK, recipeID)
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe. Author or admin only.
//	@Tags		Recipes
//	@Success	204
//	@Param		recipeID	path		int				true	"Recipe ID"
//	@Failure	403			{object}	apiError.Error	"Forbidden"
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{recipeID} [DELETE]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}
	recipeID, err := parseRecipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving recipe", slog.Int64("recipe-id", recipeID))
	existing, err := env.Database.GetRecipe(ctx, database.GetRecipeParams{ID: recipeID})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Recipe does not exist", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if existing.AuthorID != userID {
		user, err := env.Database.GetUserByID(ctx, userID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to retrieve user", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if role.ToRole(user.Role) != role.RoleAdmin {
			env.Logger.ErrorContext(ctx, "Recipe not owned by user",
				slog.Int64("recipe-id", recipeID), slog.Int64("user-id", userID))
			_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "recipe belongs to another user", requestID)
			return
		}
	}

	env.Logger.DebugContext(ctx, "Deleting recipe", slog.Int64("recipe-id", recipeID))
	if _, err := env.Database.DeleteRecipe(ctx, recipeID); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to delete recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if existing.ImageUrl.Valid {
		if err := env.FileStore.DeleteObjectURL(ctx, existing.ImageUrl.String); err != nil {
			env.Logger.WarnContext(ctx, "Failed to delete recipe image", slog.Any("error", err))
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleAddRelation covers favorite and cart additions, which differ
// only in the underlying relation.
func handleAddRelation(w http.ResponseWriter, r *http.Request, reg relation.Registry, name string) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}
	recipeID, err := parseRecipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving recipe preview", slog.Int64("recipe-id", recipeID))
	preview, err := env.Database.GetRecipePreview(ctx, recipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Recipe does not exist", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve recipe preview", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Adding relation", slog.String("relation", name),
		slog.Int64("recipe-id", recipeID), slog.Int64("user-id", userID))
	err = reg.Add(ctx, userID, recipeID)
	if errors.Is(err, relation.ErrAlreadyExists) {
		env.Logger.ErrorContext(ctx, "Relation already exists", slog.String("relation", name))
		_ = apiError.EncodeError(w, apiError.AlreadyExists, fmt.Sprintf("recipe already in %s", name), requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to add relation", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.EncodeResponse(w, http.StatusCreated, NewPreviewResponse(preview)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

func handleRemoveRelation(w http.ResponseWriter, r *http.Request, reg relation.Registry, name string) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}
	recipeID, err := parseRecipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Removing relation", slog.String("relation", name),
		slog.Int64("recipe-id", recipeID), slog.Int64("user-id", userID))
	err = reg.Remove(ctx, userID, recipeID)
	if errors.Is(err, relation.ErrNotFound) {
		env.Logger.ErrorContext(ctx, "Relation does not exist", slog.String("relation", name))
		_ = apiError.EncodeError(w, apiError.RelationNotFound, fmt.Sprintf("recipe not in %s", name), requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to remove relation", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFavorite godoc
//
//	@Summary	Add a recipe to the viewer's favorites.
//	@Tags		Favorites
//	@Produce	json
//	@Param		recipeID	path		int	true	"Recipe ID"
//	@Success	201			{object}	PreviewResponse
//	@Failure	400			{object}	apiError.Error	"Bad Request"
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{recipeID}/favorite [POST]
func HandleFavorite(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleAddRelation(w, r, relation.Favorites(env.Database), "favorites")
}

// HandleUnfavorite godoc
//
//	@Summary	Remove a recipe from the viewer's favorites.
//	@Tags		Favorites
//	@Success	204
//	@Param		recipeID	path		int				true	"Recipe ID"
//	@Failure	400			{object}	apiError.Error	"Bad Request"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{recipeID}/favorite [DELETE]
func HandleUnfavorite(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleRemoveRelation(w, r, relation.Favorites(env.Database), "favorites")
}

// HandleAddToCart godoc
//
//	@Summary	Add a recipe to the viewer's shopping cart.
//	@Tags		ShoppingCart
//	@Produce	json
//	@Param		recipeID	path		int	true	"Recipe ID"
//	@Success	201			{object}	PreviewResponse
//	@Failure	400			{object}	apiError.Error	"Bad Request"
//	@Failure	404			{object}	apiError.Error	"Not Found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{recipeID}/shopping_cart [POST]
func HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleAddRelation(w, r, relation.ShoppingCart(env.Database), "shopping cart")
}

// HandleRemoveFromCart godoc
//
//	@Summary	Remove a recipe from the viewer's shopping cart.
//	@Tags		ShoppingCart
//	@Success	204
//	@Param		recipeID	path		int				true	"Recipe ID"
//	@Failure	400			{object}	apiError.Error	"Bad Request"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{recipeID}/shopping_cart [DELETE]
func HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleRemoveRelation(w, r, relation.ShoppingCart(env.Database), "shopping cart")
}

// HandleDownloadShoppingCart godoc
//
//	@Summary	Download the aggregated shopping list as a text file.
//	@Tags		ShoppingCart
//	@Produce	plain
//	@Success	200	{string}	string
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/download_shopping_cart [GET]
func HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Collecting cart ingredients", slog.Int64("user-id", userID))
	rows, err := env.Database.AggregateCartIngredients(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to collect cart ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	items := make([]shoppinglist.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, shoppinglist.Item{
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          int64(row.Amount),
		})
	}
	content := shoppinglist.Render(shoppinglist.Aggregate(items))

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", shoppinglist.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
