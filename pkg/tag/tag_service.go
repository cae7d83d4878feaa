package tag

import (
	"Recipe-App-API/domain"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	TagService interface {
		GetTags(ctx context.Context, userID string) ([]domain.TagResponse, error)
		UpdateTag(ctx context.Context, id string, req domain.UpdateTagRequest, userID string) (domain.TagResponse, error)
		DeleteTag(ctx context.Context, id string, userID string) error
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) GetTags(ctx context.Context, userID string) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, domain.TagResponse{ID: t.ID.String(), Name: t.Name})
	}
	return res, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id string, req domain.UpdateTagRequest, userID string) (domain.TagResponse, error) {
	tag, err := s.tagRepository.GetTagByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}

	tag.Name = req.Name
	if err := s.tagRepository.UpdateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}

	return domain.TagResponse{ID: tag.ID.String(), Name: tag.Name}, nil
}

func (s *tagService) DeleteTag(ctx context.Context, id string, userID string) error {
	deleted, err := s.tagRepository.DeleteTagByIDAndUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}
