package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrInvalidPrice          = errors.New("price must be a decimal with at most 2 decimal places")
	ErrInvalidTime           = errors.New("time_minutes must be positive")
	ErrMissingRequiredFields = errors.New("title, time_minutes and price are required")
)

type (
	NameRequest struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	CreateRecipeRequest struct {
		Title       string        `json:"title" validate:"required,max=255"`
		TimeMinutes int           `json:"time_minutes" validate:"required,min=1"`
		Price       string        `json:"price" validate:"required"`
		Description string        `json:"description" validate:"omitempty"`
		Link        string        `json:"link" validate:"omitempty,url"`
		Tags        []NameRequest `json:"tags" validate:"omitempty,dive"`
		Ingredients []NameRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	// UpdateRecipeRequest uses pointers so that an omitted field can be told
	// apart from a zero value. A nil Tags/Ingredients leaves the association
	// set untouched; a non-nil empty slice clears it.
	UpdateRecipeRequest struct {
		Title       *string        `json:"title" validate:"omitempty,max=255"`
		TimeMinutes *int           `json:"time_minutes" validate:"omitempty,min=1"`
		Price       *string        `json:"price" validate:"omitempty"`
		Description *string        `json:"description" validate:"omitempty"`
		Link        *string        `json:"link" validate:"omitempty,url"`
		Tags        *[]NameRequest `json:"tags" validate:"omitempty,dive"`
		Ingredients *[]NameRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		TimeMinutes int       `json:"time_minutes"`
		Price       string    `json:"price"`
		Link        string    `json:"link,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Description string               `json:"description,omitempty"`
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
	}
)
