package recipes

type IngredientAmount struct {
	ID     int64 `json:"id" validate:"required"`
	Amount int32 `json:"amount" validate:"required"`
}

type CreateRecipeRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int32              `json:"cooking_time" validate:"required"`
	Tags        []int64            `json:"tags" validate:"required"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,dive"`
	Image       string             `json:"image" validate:"required"`
}

// UpdateRecipeRequest replaces every field of a recipe. Tags and
// ingredients are replaced wholesale; the image is kept when omitted.
type UpdateRecipeRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int32              `json:"cooking_time" validate:"required"`
	Tags        []int64            `json:"tags" validate:"required"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,dive"`
	Image       string             `json:"image"`
}
