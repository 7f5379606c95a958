package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	StatementId uuid.UUID `json:"statement_id" validate:"required"`
	Kind        string    `json:"kind" validate:"required,oneof=agree disagree insight"`
	Comment     string    `json:"comment" validate:"max=1000"`
}

type CreateFeedbackResponse struct {
	Id uuid.UUID `json:"id"`
}

type FeedbackResponse struct {
	Id          uuid.UUID `json:"id"`
	StatementId uuid.UUID `json:"statement_id"`
	Kind        string    `json:"kind"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}
