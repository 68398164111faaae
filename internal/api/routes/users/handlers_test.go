package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	apiError "github.com/annsokol/foodbook/internal/api/error"
	"github.com/annsokol/foodbook/internal/api/token"
	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/env"
	mJson "github.com/annsokol/foodbook/internal/json"
	"github.com/annsokol/foodbook/internal/log"
)

func testEnv(mockDB *database.MockQuerier) *env.Env {
	return &env.Env{
		Logger:   log.NullLogger(),
		Database: &database.Database{Querier: mockDB},
		Config:   &config.Config{Env: config.EnvDev},
	}
}

func newRequest(t *testing.T, method, target, body string, e *env.Env, userID int64, authorID string) *http.Request {
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
	if authorID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("userID", authorID)
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

func TestHandleCreateUser(t *testing.T) {
	validBody := `{"email":"ann@example.com","username":"ann","first_name":"Ann","last_name":"Sokol","password":"correct horse battery staple"}`

	tests := []struct {
		name       string
		body       string
		setup      func(mockDB *database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "creates user",
			body: validBody,
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg database.CreateUserParams) (int64, error) {
						if arg.Email != "ann@example.com" || arg.Username != "ann" {
							t.Errorf("unexpected params: %+v", arg)
						}
						if arg.PasswordHash == "" || strings.Contains(arg.PasswordHash, "correct horse") {
							t.Errorf("password stored without hashing: %q", arg.PasswordHash)
						}
						return 1, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "weak password",
			body:       `{"email":"ann@example.com","username":"ann","first_name":"Ann","last_name":"Sokol","password":"abc"}`,
			setup:      func(mockDB *database.MockQuerier) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.WeakPassword,
		},
		{
			name: "email taken",
			body: validBody,
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.EmailConflict,
		},
		{
			name: "username taken",
			body: validBody,
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.UsernameConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			tt.setup(mockDB)
			e := testEnv(mockDB)

			r := newRequest(t, "POST", "/api/users", tt.body, e, 0, "")
			w := httptest.NewRecorder()

			HandleCreateUser(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if got := decodeError(t, w.Body.Bytes()); got.Code != tt.wantCode.String() {
					t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
				}
			}
			if tt.wantStatus == http.StatusCreated {
				var resp UserResponse
				if err := mJson.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ID != 1 || resp.Username != "ann" || resp.IsSubscribed {
					t.Errorf("response = %+v", resp)
				}
			}
		})
	}
}

func TestHandleSubscribe(t *testing.T) {
	author := database.User{
		ID:        8,
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "Chef",
		LastName:  "Kiss",
	}

	tests := []struct {
		name       string
		authorID   string
		setup      func(mockDB *database.MockQuerier)
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:     "subscribes",
			authorID: "8",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().GetUserByID(gomock.Any(), int64(8)).Return(author, nil)
				mockDB.EXPECT().
					SubscriptionExists(gomock.Any(), database.SubscriptionExistsParams{SubscriberID: 7, AuthorID: 8}).
					Return(false, nil)
				mockDB.EXPECT().
					CreateSubscription(gomock.Any(), database.CreateSubscriptionParams{SubscriberID: 7, AuthorID: 8}).
					Return(nil)
				mockDB.EXPECT().
					ListAuthorRecipePreviews(gomock.Any(), database.ListAuthorRecipePreviewsParams{AuthorID: 8, Limit: 100}).
					Return([]database.ListAuthorRecipePreviewsRow{
						{ID: 5, Name: "Borscht", CookingTime: 90},
					}, nil)
				mockDB.EXPECT().CountRecipesByAuthor(gomock.Any(), int64(8)).Return(int64(1), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:     "self subscription",
			authorID: "7",
			setup: func(mockDB *database.MockQuerier) {
				self := author
				self.ID = 7
				mockDB.EXPECT().GetUserByID(gomock.Any(), int64(7)).Return(self, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.SelfSubscription,
		},
		{
			name:     "already subscribed",
			authorID: "8",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().GetUserByID(gomock.Any(), int64(8)).Return(author, nil)
				mockDB.EXPECT().
					SubscriptionExists(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.AlreadyExists,
		},
		{
			name:     "unknown author",
			authorID: "8",
			setup: func(mockDB *database.MockQuerier) {
				mockDB.EXPECT().
					GetUserByID(gomock.Any(), int64(8)).
					Return(database.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			tt.setup(mockDB)
			e := testEnv(mockDB)

			r := newRequest(t, "POST", "/api/users/"+tt.authorID+"/subscribe", "", e, 7, tt.authorID)
			w := httptest.NewRecorder()

			HandleSubscribe(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if got := decodeError(t, w.Body.Bytes()); got.Code != tt.wantCode.String() {
					t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
				}
			}
			if tt.wantStatus == http.StatusCreated {
				var resp SubscriptionResponse
				if err := mJson.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if !resp.IsSubscribed {
					t.Error("is_subscribed must be true after subscribing")
				}
				if resp.RecipesCount != 1 || len(resp.Recipes) != 1 {
					t.Errorf("recipes = %+v count %d", resp.Recipes, resp.RecipesCount)
				}
			}
		})
	}
}

func TestHandleUnsubscribe(t *testing.T) {
	tests := []struct {
		name       string
		deleted    int64
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{name: "unsubscribes", deleted: 1, wantStatus: http.StatusNoContent},
		{name: "never subscribed", deleted: 0, wantStatus: http.StatusBadRequest, wantCode: apiError.RelationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			mockDB.EXPECT().
				DeleteSubscription(gomock.Any(), database.DeleteSubscriptionParams{SubscriberID: 7, AuthorID: 8}).
				Return(tt.deleted, nil)
			e := testEnv(mockDB)

			r := newRequest(t, "DELETE", "/api/users/8/subscribe", "", e, 7, "8")
			w := httptest.NewRecorder()

			HandleUnsubscribe(w, r)

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
