package recipe

import (
	"Recipe-App-API/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames, ingredientNames []string) error
		GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetRecipeByIDAndUser(ctx context.Context, id, userID string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames, ingredientNames *[]string) error
		DeleteRecipeByIDAndUser(ctx context.Context, id, userID string) (int64, error)
		SaveImageURL(ctx context.Context, id, userID, imageURL string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// getOrCreateTags resolves tag names to rows owned by the user, inserting the
// ones that do not exist yet. Runs inside the caller's transaction so a
// concurrent recipe write cannot produce duplicate names.
func getOrCreateTags(tx *gorm.DB, userID uuid.UUID, names []string) ([]entities.Tag, error) {
	tags := make([]entities.Tag, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		var tag entities.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = entities.Tag{ID: uuid.New(), UserID: userID, Name: name}
			err = tx.Create(&tag).Error
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func getOrCreateIngredients(tx *gorm.DB, userID uuid.UUID, names []string) ([]entities.Ingredient, error) {
	ingredients := make([]entities.Ingredient, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		var ingredient entities.Ingredient
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&ingredient).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ingredient = entities.Ingredient{ID: uuid.New(), UserID: userID, Name: name}
			err = tx.Create(&ingredient).Error
		}
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames, ingredientNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Create(recipe).Error; err != nil {
			return err
		}

		tags, err := getOrCreateTags(tx, recipe.UserID, tagNames)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(recipe).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		recipe.Tags = tags

		ingredients, err := getOrCreateIngredients(tx, recipe.UserID, ingredientNames)
		if err != nil {
			return err
		}
		if len(ingredients) > 0 {
			if err := tx.Model(recipe).Association("Ingredients").Append(&ingredients); err != nil {
				return err
			}
		}
		recipe.Ingredients = ingredients

		return nil
	})
}

func (r *recipeRepository) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

// GetRecipeByIDAndUser filters on id and owner in a single query. A recipe
// that exists but belongs to someone else is indistinguishable from a missing
// one, both come back as gorm.ErrRecordNotFound.
func (r *recipeRepository) GetRecipeByIDAndUser(ctx context.Context, id, userID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tagNames, ingredientNames *[]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Save(recipe).Error; err != nil {
			return err
		}

		// nil means the field was absent from the payload: leave the
		// association set alone. An empty slice replaces it with nothing.
		if tagNames != nil {
			tags, err := getOrCreateTags(tx, recipe.UserID, *tagNames)
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				err = tx.Model(recipe).Association("Tags").Clear()
			} else {
				err = tx.Model(recipe).Association("Tags").Replace(&tags)
			}
			if err != nil {
				return err
			}
			recipe.Tags = tags
		}

		if ingredientNames != nil {
			ingredients, err := getOrCreateIngredients(tx, recipe.UserID, *ingredientNames)
			if err != nil {
				return err
			}
			if len(ingredients) == 0 {
				err = tx.Model(recipe).Association("Ingredients").Clear()
			} else {
				err = tx.Model(recipe).Association("Ingredients").Replace(&ingredients)
			}
			if err != nil {
				return err
			}
			recipe.Ingredients = ingredients
		}

		return nil
	})
}

func (r *recipeRepository) DeleteRecipeByIDAndUser(ctx context.Context, id, userID string) (int64, error) {
	var deleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// drop association rows, the tags/ingredients themselves stay
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}

		res := tx.Delete(&recipe)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})

	return deleted, err
}

func (r *recipeRepository) SaveImageURL(ctx context.Context, id, userID, imageURL string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"image_url": imageURL}).Error
}
