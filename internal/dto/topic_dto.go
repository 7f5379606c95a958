package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTopicRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
}

type CreateTopicResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTopicRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description"`
}

type UpdateTopicResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowTopicResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
