package recipe

import (
	"Recipe-App-API/domain"
	"Recipe-App-API/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRecipeRepo keeps recipes and per-user tag/ingredient rows in memory and
// mirrors the repository contract: get-or-create by (owner, name), replace on
// non-nil name slices, owner filter on every id lookup.
type fakeRecipeRepo struct {
	recipes     []*entities.Recipe
	tags        map[uuid.UUID]map[string]entities.Tag
	ingredients map[uuid.UUID]map[string]entities.Ingredient
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{
		tags:        make(map[uuid.UUID]map[string]entities.Tag),
		ingredients: make(map[uuid.UUID]map[string]entities.Ingredient),
	}
}

func (f *fakeRecipeRepo) resolveTags(userID uuid.UUID, names []string) []entities.Tag {
	if f.tags[userID] == nil {
		f.tags[userID] = make(map[string]entities.Tag)
	}
	out := make([]entities.Tag, 0, len(names))
	for _, name := range names {
		tag, ok := f.tags[userID][name]
		if !ok {
			tag = entities.Tag{ID: uuid.New(), UserID: userID, Name: name}
			f.tags[userID][name] = tag
		}
		out = append(out, tag)
	}
	return out
}

func (f *fakeRecipeRepo) resolveIngredients(userID uuid.UUID, names []string) []entities.Ingredient {
	if f.ingredients[userID] == nil {
		f.ingredients[userID] = make(map[string]entities.Ingredient)
	}
	out := make([]entities.Ingredient, 0, len(names))
	for _, name := range names {
		ingredient, ok := f.ingredients[userID][name]
		if !ok {
			ingredient = entities.Ingredient{ID: uuid.New(), UserID: userID, Name: name}
			f.ingredients[userID][name] = ingredient
		}
		out = append(out, ingredient)
	}
	return out
}

func (f *fakeRecipeRepo) CreateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames, ingredientNames []string) error {
	recipe.Tags = f.resolveTags(recipe.UserID, tagNames)
	recipe.Ingredients = f.resolveIngredients(recipe.UserID, ingredientNames)
	stored := *recipe
	f.recipes = append(f.recipes, &stored)
	return nil
}

func (f *fakeRecipeRepo) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	// newest first
	for i := len(f.recipes) - 1; i >= 0; i-- {
		if f.recipes[i].UserID.String() == userID {
			copied := *f.recipes[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) GetRecipeByIDAndUser(ctx context.Context, id, userID string) (*entities.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID.String() == id && r.UserID.String() == userID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepo) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames, ingredientNames *[]string) error {
	for i, r := range f.recipes {
		if r.ID == recipe.ID {
			if tagNames != nil {
				recipe.Tags = f.resolveTags(recipe.UserID, *tagNames)
			} else {
				recipe.Tags = r.Tags
			}
			if ingredientNames != nil {
				recipe.Ingredients = f.resolveIngredients(recipe.UserID, *ingredientNames)
			} else {
				recipe.Ingredients = r.Ingredients
			}
			stored := *recipe
			f.recipes[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepo) DeleteRecipeByIDAndUser(ctx context.Context, id, userID string) (int64, error) {
	for i, r := range f.recipes {
		if r.ID.String() == id && r.UserID.String() == userID {
			f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRecipeRepo) SaveImageURL(ctx context.Context, id, userID, imageURL string) error {
	for _, r := range f.recipes {
		if r.ID.String() == id && r.UserID.String() == userID {
			r.ImageURL = imageURL
			return nil
		}
	}
	return nil
}

func sampleCreateRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:       "Sample recipe",
		TimeMinutes: 10,
		Price:       "5.00",
	}
}

func TestCreateRecipeSetsOwnerToCaller(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	userID := uuid.New().String()

	res, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), userID)
	require.NoError(t, err)

	stored := repo.recipes[0]
	assert.Equal(t, userID, stored.UserID.String())
	assert.Equal(t, res.ID, stored.ID.String())
	assert.Equal(t, "5.00", res.Price)
	assert.Empty(t, res.Tags)
	assert.Empty(t, res.Ingredients)
}

func TestCreateRecipeNormalizesPrice(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)

	req := sampleCreateRequest()
	req.Price = "5"
	res, err := s.CreateRecipe(context.Background(), req, uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, "5.00", res.Price)
}

func TestCreateRecipeInvalidPrice(t *testing.T) {
	s := NewRecipeService(newFakeRecipeRepo(), nil)

	for _, price := range []string{"abc", "5.123", "-5.00", ""} {
		req := sampleCreateRequest()
		req.Price = price
		_, err := s.CreateRecipe(context.Background(), req, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrInvalidPrice, "price %q", price)
	}
}

func TestCreateRecipeWithNewTags(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)

	req := sampleCreateRequest()
	req.Tags = []domain.NameRequest{{Name: "curry"}, {Name: "Dinner"}}
	res, err := s.CreateRecipe(context.Background(), req, uuid.New().String())
	require.NoError(t, err)
	assert.Len(t, res.Tags, 2)
}

func TestCreateRecipeReusesExistingTags(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	userID := uuid.New().String()

	req := sampleCreateRequest()
	req.Tags = []domain.NameRequest{{Name: "Indian"}}
	first, err := s.CreateRecipe(context.Background(), req, userID)
	require.NoError(t, err)

	req2 := sampleCreateRequest()
	req2.Title = "pongal"
	req2.Tags = []domain.NameRequest{{Name: "Indian"}, {Name: "Breakfast"}}
	second, err := s.CreateRecipe(context.Background(), req2, userID)
	require.NoError(t, err)

	require.Len(t, second.Tags, 2)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID, "existing tag must be reused, not duplicated")

	userUUID, _ := uuid.Parse(userID)
	assert.Len(t, repo.tags[userUUID], 2)
}

func TestGetRecipesLimitedToUser(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	userA := uuid.New().String()
	userB := uuid.New().String()

	_, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), userA)
	require.NoError(t, err)
	_, err = s.CreateRecipe(context.Background(), sampleCreateRequest(), userB)
	require.NoError(t, err)

	res, err := s.GetRecipes(context.Background(), userA)
	require.NoError(t, err)
	require.Len(t, res, 1)

	stored := repo.recipes[0]
	assert.Equal(t, userA, stored.UserID.String())
}

func TestGetRecipeDetailOtherUserIsNotFound(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	created, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), owner)
	require.NoError(t, err)

	_, err = s.GetRecipeDetail(context.Background(), created.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	detail, err := s.GetRecipeDetail(context.Background(), created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.ID)
	assert.NotNil(t, detail.Tags)
	assert.NotNil(t, detail.Ingredients)
}

func TestUpdateRecipeKeepsOwner(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	created, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), owner)
	require.NoError(t, err)

	title := "New Recipe title"
	_, err = s.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Title: &title}, owner, true)
	require.NoError(t, err)

	stored := repo.recipes[0]
	assert.Equal(t, owner, stored.UserID.String())
	assert.Equal(t, "New Recipe title", stored.Title)
	assert.Equal(t, "5.00", stored.Price, "untouched fields keep their values")
}

func TestUpdateRecipeOtherUserIsNotFound(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)

	created, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), uuid.New().String())
	require.NoError(t, err)

	title := "hijack"
	_, err = s.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Title: &title}, uuid.New().String(), true)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestFullUpdateRequiresAllFields(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	created, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), owner)
	require.NoError(t, err)

	title := "only title"
	_, err = s.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Title: &title}, owner, false)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)
}

func TestUpdateRecipeCreatesTag(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	created, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), owner)
	require.NoError(t, err)

	tags := []domain.NameRequest{{Name: "Lunch"}}
	res, err := s.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Tags: &tags}, owner, true)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, "Lunch", res.Tags[0].Name)
}

func TestUpdateRecipeReplacesTagSet(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	req := sampleCreateRequest()
	req.Tags = []domain.NameRequest{{Name: "Breakfast"}}
	created, err := s.CreateRecipe(context.Background(), req, owner)
	require.NoError(t, err)

	tags := []domain.NameRequest{{Name: "Lunch"}}
	res, err := s.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Tags: &tags}, owner, true)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, "Lunch", res.Tags[0].Name)
}

func TestUpdateRecipeClearTagsKeepsTagRows(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	req := sampleCreateRequest()
	req.Tags = []domain.NameRequest{{Name: "Dessert"}}
	created, err := s.CreateRecipe(context.Background(), req, owner)
	require.NoError(t, err)

	empty := []domain.NameRequest{}
	res, err := s.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Tags: &empty}, owner, true)
	require.NoError(t, err)
	assert.Empty(t, res.Tags)

	// the tag row itself survives for reuse
	userUUID, _ := uuid.Parse(owner)
	assert.Len(t, repo.tags[userUUID], 1)
}

func TestUpdateRecipeOmittedTagsUnchanged(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	req := sampleCreateRequest()
	req.Tags = []domain.NameRequest{{Name: "Dinner"}}
	created, err := s.CreateRecipe(context.Background(), req, owner)
	require.NoError(t, err)

	title := "renamed"
	res, err := s.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Title: &title}, owner, true)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, "Dinner", res.Tags[0].Name)
}

func TestDeleteRecipe(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)
	owner := uuid.New().String()

	created, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), owner)
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecipe(context.Background(), created.ID, owner))
	assert.Empty(t, repo.recipes)
}

func TestDeleteOtherUsersRecipeIsNotFound(t *testing.T) {
	repo := newFakeRecipeRepo()
	s := NewRecipeService(repo, nil)

	created, err := s.CreateRecipe(context.Background(), sampleCreateRequest(), uuid.New().String())
	require.NoError(t, err)

	err = s.DeleteRecipe(context.Background(), created.ID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Len(t, repo.recipes, 1, "recipe must survive a foreign delete attempt")
}

func TestNormalizePrice(t *testing.T) {
	cases := map[string]string{
		"5":     "5.00",
		"5.0":   "5.00",
		"5.00":  "5.00",
		"10.5":  "10.50",
		"12.34": "12.34",
	}
	for in, want := range cases {
		got, err := normalizePrice(in)
		require.NoError(t, err, "price %q", in)
		assert.Equal(t, want, got)
	}
}
