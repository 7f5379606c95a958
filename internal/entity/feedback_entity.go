package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackKind string

const (
	FeedbackKindAgree    FeedbackKind = "agree"
	FeedbackKindDisagree FeedbackKind = "disagree"
	FeedbackKindInsight  FeedbackKind = "insight"
)

type Feedback struct {
	Id          uuid.UUID
	StatementId uuid.UUID
	UserId      uuid.UUID
	Kind        FeedbackKind
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
