package domain

import "errors"

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessUpdateTag = "tag updated successfully"
	MessageSuccessDeleteTag = "tag deleted successfully"

	MessageFailedGetTags   = "failed to get tags"
	MessageFailedUpdateTag = "failed to update tag"
	MessageFailedDeleteTag = "failed to delete tag"

	ErrTagNotFound = errors.New("tag not found")
)

type (
	UpdateTagRequest struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	TagResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
