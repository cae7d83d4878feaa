package recipe

import (
	"Recipe-App-API/domain"
	"Recipe-App-API/entities"
	"Recipe-App-API/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var priceRegex = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string, partial bool) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// normalizePrice validates a decimal string and pads it to two decimal
// places, so "5" and "5.0" are both stored as "5.00".
func normalizePrice(price string) (string, error) {
	if !priceRegex.MatchString(price) {
		return "", domain.ErrInvalidPrice
	}

	whole, frac, found := strings.Cut(price, ".")
	if !found {
		frac = ""
	}
	for len(frac) < 2 {
		frac += "0"
	}
	return whole + "." + frac, nil
}

func names(reqs []domain.NameRequest) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Name)
	}
	return out
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		ImageURL:    recipe.ImageURL,
		CreatedAt:   recipe.CreatedAt,
	}
}

func toRecipeDetailResponse(recipe *entities.Recipe) domain.RecipeDetailResponse {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, domain.TagResponse{ID: t.ID.String(), Name: t.Name})
	}

	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, i := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{ID: i.ID.String(), Name: i.Name})
	}

	return domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Description:    recipe.Description,
		Tags:           tags,
		Ingredients:    ingredients,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toRecipeResponse(r))
	}
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	price, err := normalizePrice(req.Price)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if req.TimeMinutes <= 0 {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidTime
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       price,
		Description: req.Description,
		Link:        req.Link,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, names(req.Tags), names(req.Ingredients)); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string, partial bool) (domain.RecipeDetailResponse, error) {
	if !partial && (req.Title == nil || req.TimeMinutes == nil || req.Price == nil) {
		return domain.RecipeDetailResponse{}, domain.ErrMissingRequiredFields
	}

	recipe, err := s.recipeRepository.GetRecipeByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		if *req.TimeMinutes <= 0 {
			return domain.RecipeDetailResponse{}, domain.ErrInvalidTime
		}
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		price, err := normalizePrice(*req.Price)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Price = price
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	var tagNames, ingredientNames *[]string
	if req.Tags != nil {
		n := names(*req.Tags)
		tagNames = &n
	}
	if req.Ingredients != nil {
		n := names(*req.Ingredients)
		ingredientNames = &n
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tagNames, ingredientNames); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	deleted, err := s.recipeRepository.DeleteRecipeByIDAndUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	key := fmt.Sprintf("recipes/%s/%s%s", userID, recipe.ID.String(), filepath.Ext(req.Image.Filename))
	imageURL, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return "", err
	}

	if err := s.recipeRepository.SaveImageURL(ctx, id, userID, imageURL); err != nil {
		return "", err
	}

	return imageURL, nil
}
