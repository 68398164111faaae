package recipes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	apiError "github.com/annsokol/foodbook/internal/api/error"
	"github.com/annsokol/foodbook/internal/api/token"
	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/env"
	mJson "github.com/annsokol/foodbook/internal/json"
	"github.com/annsokol/foodbook/internal/log"
	"github.com/annsokol/foodbook/internal/shoppinglist"
)

func testEnv(mockDB *database.MockQuerier) *env.Env {
	return &env.Env{
		Logger:   log.NullLogger(),
		Database: &database.Database{Querier: mockDB},
		Config:   &config.Config{Env: config.EnvDev},
	}
}

// newRequest builds an authenticated request with a recipeID route param.
func newRequest(t *testing.T, method, target string, body string, e *env.Env, userID int64, recipeID string) *http.Request {
	t.Helper()

	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	ctx := env.WithCtx(r.Context(), e)
	if userID != 0 {
		ctx = token.UserIDWithCtx(ctx, userID)
	}
	if recipeID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("recipeID", recipeID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func decodeError(t *testing.T, body []byte) apiError.Error {
	t.Helper()
	var apiErr apiError.Error
	if err := mJson.Unmarshal(body, &apiErr); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return apiErr
}

func TestHandleFavorite(t *testing.T) {
	preview := database.GetRecipePreviewRow{
		ID:          5,
		Name:        "Borscht",
		ImageUrl:    pgtype.Text{String: "http://localhost:8080/media/recipes/images/5.png", Valid: true},
		CookingTime: 90,
	}

	tests := []struct {
		name       string
		setup      func(mockDB *database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "adds favorite",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().GetRecipePreview(gomock.Any(), int64(5)).Return(preview, nil)
				mockDB.EXPECT().
					FavoriteExists(gomock.Any(), database.FavoriteExistsParams{UserID: 1, RecipeID: 5}).
					Return(false, nil)
				mockDB.EXPECT().
					CreateFavorite(gomock.Any(), database.CreateFavoriteParams{UserID: 1, RecipeID: 5}).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "second add is a client error",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().GetRecipePreview(gomock.Any(), int64(5)).Return(preview, nil)
				mockDB.EXPECT().
					FavoriteExists(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.AlreadyExists,
		},
		{
			name: "unknown recipe",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					GetRecipePreview(gomock.Any(), int64(5)).
					Return(database.GetRecipePreviewRow{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			tt.setup(mockDB)
			e := testEnv(mockDB)

			r := newRequest(t, "POST", "/api/recipes/5/favorite", "", e, 1, "5")
			w := httptest.NewRecorder()

			HandleFavorite(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if got := decodeError(t, w.Body.Bytes()); got.Code != tt.wantCode.String() {
					t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
				}
			}
			if tt.wantStatus == http.StatusCreated {
				var resp PreviewResponse
				if err := mJson.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ID != preview.ID || resp.Name != preview.Name {
					t.Errorf("preview = %+v, want id %d name %q", resp, preview.ID, preview.Name)
				}
			}
		})
	}
}

func TestHandleUnfavorite(t *testing.T) {
	tests := []struct {
		name       string
		deleted    int64
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{name: "removes favorite", deleted: 1, wantStatus: http.StatusNoContent},
		{name: "never favorited", deleted: 0, wantStatus: http.StatusBadRequest, wantCode: apiError.RelationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			mockDB.EXPECT().
				DeleteFavorite(gomock.Any(), database.DeleteFavoriteParams{UserID: 1, RecipeID: 5}).
				Return(tt.deleted, nil)
			e := testEnv(mockDB)

			r := newRequest(t, "DELETE", "/api/recipes/5/favorite", "", e, 1, "5")
			w := httptest.NewRecorder()

			HandleUnfavorite(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if got := decodeError(t, w.Body.Bytes()); got.Code != tt.wantCode.String() {
					t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleDownloadShoppingCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	mockDB.EXPECT().
		AggregateCartIngredients(gomock.Any(), int64(1)).
		Return([]database.AggregateCartIngredientsRow{
			{Name: "Salt", MeasurementUnit: "g", Amount: 10},
			{Name: "Flour", MeasurementUnit: "g", Amount: 500},
			{Name: "Salt", MeasurementUnit: "g", Amount: 5},
		}, nil)
	e := testEnv(mockDB)

	r := newRequest(t, "GET", "/api/recipes/download_shopping_cart", "", e, 1, "")
	w := httptest.NewRecorder()

	HandleDownloadShoppingCart(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, shoppinglist.FileName) {
		t.Errorf("Content-Disposition = %q, want filename %q", got, shoppinglist.FileName)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, shoppinglist.Header) {
		t.Errorf("body does not start with header: %q", body)
	}
	if !strings.Contains(body, "Salt - 15 g") {
		t.Errorf("body missing summed line, got %q", body)
	}
	if !strings.Contains(body, "Flour - 500 g") {
		t.Errorf("body missing line, got %q", body)
	}
	flourIdx := strings.Index(body, "Flour")
	saltIdx := strings.Index(body, "Salt")
	if flourIdx > saltIdx {
		t.Errorf("lines not alphabetical: %q", body)
	}
}

func TestHandleListRecipesAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := database.ListRecipesRow{
		ID:             5,
		AuthorID:       2,
		Name:           "Borscht",
		Text:           "Chop and simmer.",
		CookingTime:    90,
		AuthorEmail:    "chef@example.com",
		AuthorUsername: "chef",
	}

	mockDB := database.NewMockQuerier(ctrl)
	// Anonymous viewer: favorite/cart filters must be dropped and the
	// viewer id must be NULL.
	mockDB.EXPECT().
		ListRecipes(gomock.Any(), database.ListRecipesParams{
			OnlyFavorited: false,
			OnlyInCart:    false,
			Limit:         6,
			Offset:        0,
		}).
		Return([]database.ListRecipesRow{row}, nil)
	mockDB.EXPECT().
		CountRecipes(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	mockDB.EXPECT().
		ListRecipeTags(gomock.Any(), []int64{5}).
		Return([]database.ListRecipeTagsRow{
			{RecipeID: 5, ID: 1, Name: "dinner", Color: "#FF0000", Slug: "dinner"},
		}, nil)
	mockDB.EXPECT().
		ListRecipeIngredients(gomock.Any(), []int64{5}).
		Return([]database.ListRecipeIngredientsRow{
			{RecipeID: 5, ID: 3, Name: "Beetroot", MeasurementUnit: "g", Amount: 300},
		}, nil)
	e := testEnv(mockDB)

	r := newRequest(t, "GET", "/api/recipes?is_favorited=1&is_in_shopping_cart=1", "", e, 0, "")
	w := httptest.NewRecorder()

	HandleListRecipes(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if !strings.Contains(body, `"is_favorited":false`) {
		t.Errorf("anonymous viewer must read is_favorited false, got %s", body)
	}
	if !strings.Contains(body, `"is_in_shopping_cart":false`) {
		t.Errorf("anonymous viewer must read is_in_shopping_cart false, got %s", body)
	}
	if !strings.Contains(body, `"count":1`) {
		t.Errorf("missing count envelope, got %s", body)
	}
}

// fakeTx satisfies pgx.Tx for handlers that open a transaction. Only
// Commit and Rollback are reachable when the Querier is mocked.
type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type fakePool struct {
	tx *fakeTx
}

func (p *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	return p.tx, nil
}

func TestHandleUpdateRecipeReplacesContents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewer := pgtype.Int8{Int64: 2, Valid: true}
	existing := database.GetRecipeRow{ID: 5, AuthorID: 2, Name: "Borscht", Text: "Simmer.", CookingTime: 90}

	mockDB := database.NewMockQuerier(ctrl)
	mockDB.EXPECT().
		GetRecipe(gomock.Any(), database.GetRecipeParams{ID: 5, ViewerID: viewer}).
		Return(existing, nil)
	mockDB.EXPECT().CountTagsByIDs(gomock.Any(), []int64{1}).Return(int64(1), nil)
	mockDB.EXPECT().CountIngredientsByIDs(gomock.Any(), []int64{11, 12}).Return(int64(2), nil)

	// The old associations are cleared before the new set goes in, and
	// only the submitted entries are inserted.
	gomock.InOrder(
		mockDB.EXPECT().
			UpdateRecipe(gomock.Any(), database.UpdateRecipeParams{
				Name:        "Borscht",
				Text:        "Simmer longer.",
				CookingTime: 95,
				ID:          5,
			}).
			Return(nil),
		mockDB.EXPECT().ClearRecipeTags(gomock.Any(), int64(5)).Return(nil),
		mockDB.EXPECT().ClearRecipeIngredients(gomock.Any(), int64(5)).Return(nil),
		mockDB.EXPECT().
			AddRecipeTag(gomock.Any(), database.AddRecipeTagParams{RecipeID: 5, TagID: 1}).
			Return(nil),
		mockDB.EXPECT().
			CreateRecipeIngredient(gomock.Any(), database.CreateRecipeIngredientParams{RecipeID: 5, IngredientID: 11, Amount: 5}).
			Return(nil),
		mockDB.EXPECT().
			CreateRecipeIngredient(gomock.Any(), database.CreateRecipeIngredientParams{RecipeID: 5, IngredientID: 12, Amount: 1}).
			Return(nil),
	)

	// Response assembly after the commit
	updated := existing
	updated.Text = "Simmer longer."
	updated.CookingTime = 95
	mockDB.EXPECT().
		GetRecipe(gomock.Any(), database.GetRecipeParams{ID: 5, ViewerID: viewer}).
		Return(updated, nil)
	mockDB.EXPECT().
		ListRecipeTags(gomock.Any(), []int64{5}).
		Return([]database.ListRecipeTagsRow{
			{RecipeID: 5, ID: 1, Name: "dinner", Color: "#FF0000", Slug: "dinner"},
		}, nil)
	mockDB.EXPECT().
		ListRecipeIngredients(gomock.Any(), []int64{5}).
		Return([]database.ListRecipeIngredientsRow{
			{RecipeID: 5, ID: 11, Name: "Beetroot", MeasurementUnit: "g", Amount: 5},
			{RecipeID: 5, ID: 12, Name: "Dill", MeasurementUnit: "g", Amount: 1},
		}, nil)

	tx := &fakeTx{}
	e := testEnv(mockDB)
	e.Database.Pool = &fakePool{tx: tx}

	body := `{"name":"Borscht","text":"Simmer longer.","cooking_time":95,"tags":[1],"ingredients":[{"id":11,"amount":5},{"id":12,"amount":1}]}`
	r := newRequest(t, "PATCH", "/api/recipes/5", body, e, 2, "5")
	w := httptest.NewRecorder()

	HandleUpdateRecipe(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if tx.commits != 1 {
		t.Errorf("commits = %d, want 1", tx.commits)
	}

	var resp RecipeResponse
	if err := mJson.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Ingredients) != 2 {
		t.Fatalf("ingredients = %+v, want exactly the submitted pair", resp.Ingredients)
	}
	if resp.Ingredients[0].ID != 11 || resp.Ingredients[0].Amount != 5 ||
		resp.Ingredients[1].ID != 12 || resp.Ingredients[1].Amount != 1 {
		t.Errorf("ingredients = %+v, want {11:5, 12:1}", resp.Ingredients)
	}
}

func TestHandleUpdateRecipeErrors(t *testing.T) {
	viewer := pgtype.Int8{Int64: 2, Valid: true}
	body := `{"name":"Borscht","text":"Simmer.","cooking_time":90,"tags":[1],"ingredients":[{"id":11,"amount":5}]}`

	tests := []struct {
		name       string
		setup      func(mockDB *database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "not the author",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), database.GetRecipeParams{ID: 5, ViewerID: viewer}).
					Return(database.GetRecipeRow{ID: 5, AuthorID: 9}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiError.RecipeNotOwned,
		},
		{
			name: "unknown recipe",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), gomock.Any()).
					Return(database.GetRecipeRow{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
		{
			name: "check violation surfaces as a validation error",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), database.GetRecipeParams{ID: 5, ViewerID: viewer}).
					Return(database.GetRecipeRow{ID: 5, AuthorID: 2}, nil)
				mockDB.EXPECT().CountTagsByIDs(gomock.Any(), []int64{1}).Return(int64(1), nil)
				mockDB.EXPECT().CountIngredientsByIDs(gomock.Any(), []int64{11}).Return(int64(1), nil)
				mockDB.EXPECT().
					UpdateRecipe(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23514"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.ValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			tt.setup(mockDB)

			e := testEnv(mockDB)
			e.Database.Pool = &fakePool{tx: &fakeTx{}}

			r := newRequest(t, "PATCH", "/api/recipes/5", body, e, 2, "5")
			w := httptest.NewRecorder()

			HandleUpdateRecipe(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if got := decodeError(t, w.Body.Bytes()); got.Code != tt.wantCode.String() {
				t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleCreateRecipeRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "duplicate tags",
			body: `{"name":"Borscht","text":"Simmer.","cooking_time":90,"tags":[1,1],"ingredients":[{"id":3,"amount":300}],"image":"aGk="}`,
		},
		{
			name: "duplicate ingredients",
			body: `{"name":"Borscht","text":"Simmer.","cooking_time":90,"tags":[1],"ingredients":[{"id":3,"amount":300},{"id":3,"amount":5}],"image":"aGk="}`,
		},
		{
			name: "cooking time over limit",
			body: `{"name":"Borscht","text":"Simmer.","cooking_time":32001,"tags":[1],"ingredients":[{"id":3,"amount":300}],"image":"aGk="}`,
		},
		{
			name: "amount under limit",
			body: `{"name":"Borscht","text":"Simmer.","cooking_time":90,"tags":[1],"ingredients":[{"id":3,"amount":0}],"image":"aGk="}`,
		},
		{
			name: "missing fields",
			body: `{"name":"Borscht"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// The payload must be rejected before any write reaches the
			// database.
			mockDB := database.NewMockQuerier(ctrl)
			e := testEnv(mockDB)

			r := newRequest(t, "POST", "/api/recipes", tt.body, e, 1, "")
			w := httptest.NewRecorder()

			HandleCreateRecipe(w, r)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
		})
	}
}
