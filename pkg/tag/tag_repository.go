package tag

import (
	"Recipe-App-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TagRepository interface {
		GetTags(ctx context.Context, userID string) ([]*entities.Tag, error)
		GetTagByIDAndUser(ctx context.Context, id, userID string) (*entities.Tag, error)
		UpdateTag(ctx context.Context, tag *entities.Tag) error
		DeleteTagByIDAndUser(ctx context.Context, id, userID string) (int64, error)
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetTags(ctx context.Context, userID string) ([]*entities.Tag, error) {
	var tags []*entities.Tag

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name desc").
		Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}

func (r *tagRepository) GetTagByIDAndUser(ctx context.Context, id, userID string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

func (r *tagRepository) DeleteTagByIDAndUser(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Tag{})
	return res.RowsAffected, res.Error
}
