// Package ingredients contains handlers for the ingredient catalog.
package ingredients

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	apiError "github.com/annsokol/foodbook/internal/api/error"
	"github.com/annsokol/foodbook/internal/api/requestid"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/env"
	mJson "github.com/annsokol/foodbook/internal/json"
)

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func NewIngredientResponse(i database.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              i.ID,
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit,
	}
}

// likeEscaper neutralizes LIKE wildcards so the search stays a literal
// prefix match. Postgres treats backslash as the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// HandleSearchIngredients godoc
//
//	@Summary	List ingredients, optionally filtered by name prefix.
//	@Tags		Catalog
//	@Produce	json
//	@Param		name	query		string	false	"Name prefix"
//	@Success	200		{array}		IngredientResponse
//	@Failure	500		{object}	apiError.Error
//	@Router		/api/ingredients [GET]
func HandleSearchIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	prefix := likeEscaper.Replace(strings.TrimSpace(r.URL.Query().Get("name")))
	ingredients, err := env.Database.SearchIngredients(ctx, prefix)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to search ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	resp := make([]IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		resp = append(resp, NewIngredientResponse(i))
	}
	if err := mJson.EncodeResponse(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetIngredient godoc
//
//	@Summary	Get an ingredient by id.
//	@Tags		Catalog
//	@Produce	json
//	@Param		ingredientID	path		string	true	"Ingredient ID"
//	@Success	200				{object}	IngredientResponse
//	@Failure	404				{object}	apiError.Error
//	@Failure	500				{object}	apiError.Error
//	@Router		/api/ingredients/{ingredientID} [GET]
func HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	ingredientID, err := strconv.ParseInt(chi.URLParam(r, "ingredientID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to parse ingredient id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "expected an integer ingredient id", requestID)
		return
	}

	ingredient, err := env.Database.GetIngredient(ctx, ingredientID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "ingredient not found", slog.Int64("ingredient-id", ingredientID))
		_ = apiError.EncodeError(w, apiError.IngredientNotFound, "ingredient not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.EncodeResponse(w, http.StatusOK, NewIngredientResponse(ingredient)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
