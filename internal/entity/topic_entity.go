package entity

import (
	"time"

	"github.com/google/uuid"
)

type Topic struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
