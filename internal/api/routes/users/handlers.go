// Package users contains handlers for accounts and subscriptions.
package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apiError "github.com/annsokol/foodbook/internal/api/error"
	"github.com/annsokol/foodbook/internal/api/pagination"
	"github.com/annsokol/foodbook/internal/api/requestid"
	"github.com/annsokol/foodbook/internal/api/token"
	"github.com/annsokol/foodbook/internal/argon2id"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/env"
	mJson "github.com/annsokol/foodbook/internal/json"
	"github.com/annsokol/foodbook/internal/password"
	"github.com/annsokol/foodbook/internal/relation"
	"github.com/annsokol/foodbook/internal/role"
)

// defaultRecipesLimit caps the recipe previews embedded in a
// subscription entry when the client does not ask for a limit.
const defaultRecipesLimit = 100

func recipesLimit(r *http.Request) int32 {
	raw := r.URL.Query().Get("recipes_limit")
	if raw == "" {
		return defaultRecipesLimit
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || limit < 0 {
		return defaultRecipesLimit
	}
	return int32(limit)
}

// viewerSubscribed reports whether the requesting user follows the given author.
// Anonymous viewers and self-views always read false.
func viewerSubscribed(ctx context.Context, q database.Querier, authorID int64) (bool, error) {
	viewerID, ok := token.ViewerFromCtx(ctx)
	if !ok || viewerID == authorID {
		return false, nil
	}
	return q.SubscriptionExists(ctx, database.SubscriptionExistsParams{
		SubscriberID: viewerID,
		AuthorID:     authorID,
	})
}

func newSubscriptionResponse(ctx context.Context, q database.Querier, author database.User, limit int32) (SubscriptionResponse, error) {
	previews, err := q.ListAuthorRecipePreviews(ctx, database.ListAuthorRecipePreviewsParams{
		AuthorID: author.ID,
		Limit:    limit,
	})
	if err != nil {
		return SubscriptionResponse{}, err
	}
	count, err := q.CountRecipesByAuthor(ctx, author.ID)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	recipes := make([]RecipePreview, 0, len(previews))
	for _, preview := range previews {
		var image *string
		if preview.ImageUrl.Valid {
			image = &preview.ImageUrl.String
		}
		recipes = append(recipes, RecipePreview{
			ID:          preview.ID,
			Name:        preview.Name,
			Image:       image,
			CookingTime: preview.CookingTime,
		})
	}
	return SubscriptionResponse{
		UserResponse: NewUserResponse(author, true),
		Recipes:      recipes,
		RecipesCount: count,
	}, nil
}

// HandleCreateUser godoc
//
//	@Summary	Register a new account.
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateUserRequest	true	"Signup Request"
//	@Success	201		{object}	UserResponse
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Router		/api/users [POST]
func HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request CreateUserRequest
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

	// Check password strength
	env.Logger.DebugContext(ctx, "Validating password strength")
	if err := password.ValidatePassword(request.Password); err != nil {
		env.Logger.ErrorContext(ctx, "Password is too weak", slog.Any("error", err))
		_ = apiError.EncodeFieldError(w, apiError.WeakPassword, "password", err.Error(), requestID)
		return
	}

	// Hash password
	env.Logger.DebugContext(ctx, "Hashing password")
	passwordHash, err := argon2id.EncodeHash(request.Password, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Insert user
	env.Logger.DebugContext(ctx, "Creating user")
	id, err := env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        request.Email,
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: passwordHash,
		Role:         role.RoleUser.String(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && database.IsUniqueViolation(err) {
			if strings.Contains(pgErr.ConstraintName, "email") {
				env.Logger.ErrorContext(ctx, "Email already registered", slog.String("email", request.Email))
				_ = apiError.EncodeFieldError(w, apiError.EmailConflict, "email", "email already registered", requestID)
				return
			}
			env.Logger.ErrorContext(ctx, "Username already taken", slog.String("username", request.Username))
			_ = apiError.EncodeFieldError(w, apiError.UsernameConflict, "username", "username already taken", requestID)
			return
		}
		env.Logger.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Write response
	env.Logger.DebugContext(ctx, "Writing response")
	err = mJson.EncodeResponse(w, http.StatusCreated, UserResponse{
		ID:        id,
		Email:     request.Email,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleListUsers godoc
//
//	@Summary	List registered users.
//	@Tags		Users
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	pagination.Page
//	@Router		/api/users [GET]
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	params, err := pagination.Parse(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid pagination parameters", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid pagination parameters", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Listing users")
	users, err := env.Database.ListUsers(ctx, database.ListUsersParams{
		Limit:  params.Limit32(),
		Offset: params.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	count, err := env.Database.CountUsers(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	results := make([]UserResponse, 0, len(users))
	for _, user := range users {
		subscribed, err := viewerSubscribed(ctx, env.Database, user.ID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to check subscription", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		results = append(results, NewUserResponse(user, subscribed))
	}

	env.Logger.DebugContext(ctx, "Writing response")
	err = mJson.EncodeResponse(w, http.StatusOK, pagination.NewPage(r, count, params, results))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetUser godoc
//
//	@Summary	Retrieve a user profile.
//	@Tags		Users
//	@Produce	json
//	@Param		userID	path		int	true	"User ID"
//	@Success	200		{object}	UserResponse
//	@Failure	404		{object}	apiError.Error	"Not Found"
//	@Router		/api/users/{userID} [GET]
func HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving user", slog.Int64("user-id", userID))
	user, err := env.Database.GetUserByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "User does not exist", slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	subscribed, err := viewerSubscribed(ctx, env.Database, user.ID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to check subscription", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	err = mJson.EncodeResponse(w, http.StatusOK, NewUserResponse(user, subscribed))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleMe godoc
//
//	@Summary	Retrieve the authenticated user's profile.
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Security	AccessTokenCookie
//	@Router		/api/users/me [GET]
func HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving user", slog.Int64("user-id", userID))
	user, err := env.Database.GetUserByID(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	err = mJson.EncodeResponse(w, http.StatusOK, NewUserResponse(user, false))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleSetPassword godoc
//
//	@Summary	Change the authenticated user's password.
//	@Tags		Users
//	@Accept		json
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Bad Request"
//	@Security	AccessTokenCookie
//	@Router		/api/users/set_password [POST]
func HandleSetPassword(w http.ResponseWriter, r *http.Request) {
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
	var request SetPasswordRequest
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

	// Verify current password
	env.Logger.DebugContext(ctx, "Retrieving user", slog.Int64("user-id", userID))
	user, err := env.Database.GetUserByID(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	argonParams, argonSalt, trueHash, err := argon2id.DecodeHash(user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode password hash", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	givenHash := argon2id.HashWithSalt(request.CurrentPassword, *argonParams, argonSalt)
	if subtle.ConstantTimeCompare(givenHash, trueHash) == 0 {
		env.Logger.ErrorContext(ctx, "Current password is incorrect")
		_ = apiError.EncodeFieldError(w, apiError.InvalidCredentials, "current_password", "current password is incorrect", requestID)
		return
	}

	// Check new password strength
	env.Logger.DebugContext(ctx, "Validating new password strength")
	if err := password.ValidatePassword(request.NewPassword); err != nil {
		env.Logger.ErrorContext(ctx, "New password is too weak", slog.Any("error", err))
		_ = apiError.EncodeFieldError(w, apiError.WeakPassword, "new_password", err.Error(), requestID)
		return
	}

	// Store new hash
	env.Logger.DebugContext(ctx, "Updating password")
	passwordHash, err := argon2id.EncodeHash(request.NewPassword, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	err = env.Database.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		PasswordHash: passwordHash,
		ID:           userID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to update password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListSubscriptions godoc
//
//	@Summary	List authors the authenticated user follows.
//	@Tags		Subscriptions
//	@Produce	json
//	@Param		page			query		int	false	"Page number"
//	@Param		limit			query		int	false	"Page size"
//	@Param		recipes_limit	query		int	false	"Max recipe previews per author"
//	@Success	200				{object}	pagination.Page
//	@Security	AccessTokenCookie
//	@Router		/api/users/subscriptions [GET]
func HandleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}

	params, err := pagination.Parse(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid pagination parameters", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid pagination parameters", requestID)
		return
	}
	limit := recipesLimit(r)

	env.Logger.DebugContext(ctx, "Listing subscribed authors")
	authors, err := env.Database.ListSubscribedAuthors(ctx, database.ListSubscribedAuthorsParams{
		SubscriberID: userID,
		Limit:        params.Limit32(),
		Offset:       params.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list subscribed authors", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	count, err := env.Database.CountSubscribedAuthors(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count subscribed authors", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	results := make([]SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		response, err := newSubscriptionResponse(ctx, env.Database, author, limit)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to build subscription entry", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		results = append(results, response)
	}

	env.Logger.DebugContext(ctx, "Writing response")
	err = mJson.EncodeResponse(w, http.StatusOK, pagination.NewPage(r, count, params, results))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleSubscribe godoc
//
//	@Summary	Subscribe to an author.
//	@Tags		Subscriptions
//	@Produce	json
//	@Param		userID	path		int	true	"Author ID"
//	@Success	201		{object}	SubscriptionResponse
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	404		{object}	apiError.Error	"Not Found"
//	@Security	AccessTokenCookie
//	@Router		/api/users/{userID}/subscribe [POST]
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}
	authorID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid author id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	// The author must exist before any relation bookkeeping
	env.Logger.DebugContext(ctx, "Retrieving author", slog.Int64("author-id", authorID))
	author, err := env.Database.GetUserByID(ctx, authorID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Author does not exist", slog.Int64("author-id", authorID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve author", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating subscription",
		slog.Int64("subscriber-id", userID), slog.Int64("author-id", authorID))
	err = relation.Subscriptions(env.Database).Add(ctx, userID, authorID)
	switch {
	case errors.Is(err, relation.ErrSelfSubscription):
		env.Logger.ErrorContext(ctx, "Self subscription rejected", slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.SelfSubscription, "cannot subscribe to yourself", requestID)
		return
	case errors.Is(err, relation.ErrAlreadyExists):
		env.Logger.ErrorContext(ctx, "Subscription already exists", slog.Int64("author-id", authorID))
		_ = apiError.EncodeError(w, apiError.AlreadyExists, "already subscribed", requestID)
		return
	case err != nil:
		env.Logger.ErrorContext(ctx, "Failed to create subscription", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	response, err := newSubscriptionResponse(ctx, env.Database, author, recipesLimit(r))
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to build subscription entry", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	err = mJson.EncodeResponse(w, http.StatusCreated, response)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleUnsubscribe godoc
//
//	@Summary	Unsubscribe from an author.
//	@Tags		Subscriptions
//	@Success	204
//	@Param		userID	path		int				true	"Author ID"
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Security	AccessTokenCookie
//	@Router		/api/users/{userID}/subscribe [DELETE]
func HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "No user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	}
	authorID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid author id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Deleting subscription",
		slog.Int64("subscriber-id", userID), slog.Int64("author-id", authorID))
	err = relation.Subscriptions(env.Database).Remove(ctx, userID, authorID)
	if errors.Is(err, relation.ErrNotFound) {
		env.Logger.ErrorContext(ctx, "Subscription does not exist", slog.Int64("author-id", authorID))
		_ = apiError.EncodeError(w, apiError.RelationNotFound, "not subscribed", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to delete subscription", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
