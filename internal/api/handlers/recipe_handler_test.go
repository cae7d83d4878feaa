package handlers

import (
	"Recipe-App-API/domain"
	"Recipe-App-API/internal/middleware"
	"Recipe-App-API/internal/utils"
	"Recipe-App-API/pkg/jwt"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecipeService returns canned data per user so the handler and auth
// middleware can be exercised without a database.
type fakeRecipeService struct {
	recipesByUser map[string][]domain.RecipeResponse
}

func (f *fakeRecipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	return f.recipesByUser[userID], nil
}

func (f *fakeRecipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error) {
	for _, r := range f.recipesByUser[userID] {
		if r.ID == id {
			return domain.RecipeDetailResponse{
				RecipeResponse: r,
				Tags:           []domain.TagResponse{},
				Ingredients:    []domain.IngredientResponse{},
			}, nil
		}
	}
	return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
}

func (f *fakeRecipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	res := domain.RecipeDetailResponse{
		RecipeResponse: domain.RecipeResponse{
			ID:          uuid.New().String(),
			Title:       req.Title,
			TimeMinutes: req.TimeMinutes,
			Price:       req.Price,
		},
		Tags:        []domain.TagResponse{},
		Ingredients: []domain.IngredientResponse{},
	}
	f.recipesByUser[userID] = append(f.recipesByUser[userID], res.RecipeResponse)
	return res, nil
}

func (f *fakeRecipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string, partial bool) (domain.RecipeDetailResponse, error) {
	return f.GetRecipeDetail(ctx, id, userID)
}

func (f *fakeRecipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	for i, r := range f.recipesByUser[userID] {
		if r.ID == id {
			f.recipesByUser[userID] = append(f.recipesByUser[userID][:i], f.recipesByUser[userID][i+1:]...)
			return nil
		}
	}
	return domain.ErrRecipeNotFound
}

func (f *fakeRecipeService) UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (string, error) {
	return "", domain.ErrRecipeNotFound
}

func newTestApp(svc *fakeRecipeService) (*fiber.App, jwt.JWTService) {
	utils.InitValidator()
	app := fiber.New()
	m := middleware.NewMiddleware()
	jwtService := jwt.NewJWTService()
	h := NewRecipeHandler(svc, utils.Validate)

	recipes := app.Group("/api/v1/recipes", m.AuthMiddleware(jwtService))
	recipes.Get("", h.GetRecipes)
	recipes.Post("", h.CreateRecipe)
	recipes.Get("/:id", h.GetRecipeDetail)
	recipes.Patch("/:id", h.PatchRecipe)
	recipes.Delete("/:id", h.DeleteRecipe)

	return app, jwtService
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestRecipesRequireAuth(t *testing.T) {
	app, _ := newTestApp(&fakeRecipeService{recipesByUser: map[string][]domain.RecipeResponse{}})

	res := doRequest(t, app, http.MethodGet, "/api/v1/recipes", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestGetRecipesReturnsOnlyCallers(t *testing.T) {
	userA := uuid.New().String()
	userB := uuid.New().String()
	svc := &fakeRecipeService{recipesByUser: map[string][]domain.RecipeResponse{
		userA: {{ID: uuid.New().String(), Title: "A's recipe"}},
		userB: {{ID: uuid.New().String(), Title: "B's recipe"}},
	}}
	app, jwtService := newTestApp(svc)

	token := jwtService.GenerateTokenUser(userA, domain.RoleUser)
	res := doRequest(t, app, http.MethodGet, "/api/v1/recipes", token, nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		Data []domain.RecipeResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "A's recipe", body.Data[0].Title)
}

func TestGetRecipeDetailNotFoundForOtherUser(t *testing.T) {
	owner := uuid.New().String()
	recipeID := uuid.New().String()
	svc := &fakeRecipeService{recipesByUser: map[string][]domain.RecipeResponse{
		owner: {{ID: recipeID, Title: "Sample recipe"}},
	}}
	app, jwtService := newTestApp(svc)

	token := jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)
	res := doRequest(t, app, http.MethodGet, "/api/v1/recipes/"+recipeID, token, nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestCreateRecipe(t *testing.T) {
	svc := &fakeRecipeService{recipesByUser: map[string][]domain.RecipeResponse{}}
	app, jwtService := newTestApp(svc)

	token := jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)
	res := doRequest(t, app, http.MethodPost, "/api/v1/recipes", token, fiber.Map{
		"title":        "Sample recipe",
		"time_minutes": 10,
		"price":        "5.00",
	})
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	var body struct {
		Data domain.RecipeDetailResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Sample recipe", body.Data.Title)
	assert.NotNil(t, body.Data.Tags)
	assert.NotNil(t, body.Data.Ingredients)
}

func TestCreateRecipeMissingFields(t *testing.T) {
	svc := &fakeRecipeService{recipesByUser: map[string][]domain.RecipeResponse{}}
	app, jwtService := newTestApp(svc)

	token := jwtService.GenerateTokenUser(uuid.New().String(), domain.RoleUser)
	res := doRequest(t, app, http.MethodPost, "/api/v1/recipes", token, fiber.Map{
		"title": "No price or time",
	})
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestDeleteRecipeNoContent(t *testing.T) {
	owner := uuid.New().String()
	recipeID := uuid.New().String()
	svc := &fakeRecipeService{recipesByUser: map[string][]domain.RecipeResponse{
		owner: {{ID: recipeID}},
	}}
	app, jwtService := newTestApp(svc)

	token := jwtService.GenerateTokenUser(owner, domain.RoleUser)
	res := doRequest(t, app, http.MethodDelete, "/api/v1/recipes/"+recipeID, token, nil)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)

	res = doRequest(t, app, http.MethodDelete, "/api/v1/recipes/"+recipeID, token, nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}
