package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	ValidationError         ErrorCode = "validation_error"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	WeakPassword            ErrorCode = "weak_password"
	EmailConflict           ErrorCode = "email_conflict"
	UsernameConflict        ErrorCode = "username_conflict"
	AdminAlreadySetup       ErrorCode = "admin_already_setup"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	TagNotFound             ErrorCode = "tag_not_found"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	UserNotFound            ErrorCode = "user_not_found"
	AlreadyExists           ErrorCode = "already_exists"
	RelationNotFound        ErrorCode = "relation_not_found"
	SelfSubscription        ErrorCode = "self_subscription"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	ValidationError:         http.StatusBadRequest,
	InvalidCredentials:      http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	WeakPassword:            http.StatusBadRequest,
	EmailConflict:           http.StatusBadRequest,
	UsernameConflict:        http.StatusBadRequest,
	AdminAlreadySetup:       http.StatusConflict,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	TagNotFound:             http.StatusNotFound,
	IngredientNotFound:      http.StatusNotFound,
	UserNotFound:            http.StatusNotFound,
	AlreadyExists:           http.StatusBadRequest,
	RelationNotFound:        http.StatusBadRequest,
	SelfSubscription:        http.StatusBadRequest,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
