package mapper

import (
	"testing"
	"time"

	"jukugi-bokujo-be/internal/entity"

	"github.com/google/uuid"
)

func TestStatementMapperRoundTrip(t *testing.T) {
	m := NewStatementMapper()

	confidence := 7
	created := time.Now().Add(-time.Minute)
	updated := time.Now()

	e := &entity.Statement{
		Id:         uuid.New(),
		TurnId:     uuid.New(),
		SessionId:  uuid.New(),
		AgentId:    uuid.New(),
		Content:    "市場の声をまず集めるべきだと考えます。【確信度: 7/10】",
		Confidence: &confidence,
		CharCount:  24,
		CreatedAt:  created,
		UpdatedAt:  &updated,
	}

	got := m.ToEntity(m.ToModel(e))

	if got.Id != e.Id || got.TurnId != e.TurnId || got.SessionId != e.SessionId || got.AgentId != e.AgentId {
		t.Errorf("identifier fields did not survive the round trip: got %+v", got)
	}
	if got.Content != e.Content {
		t.Errorf("Content = %q, want %q", got.Content, e.Content)
	}
	if got.Confidence == nil || *got.Confidence != confidence {
		t.Errorf("Confidence = %v, want %d", got.Confidence, confidence)
	}
	if got.CharCount != e.CharCount {
		t.Errorf("CharCount = %d, want %d", got.CharCount, e.CharCount)
	}
	if got.IsDeleted {
		t.Error("IsDeleted = true for a live statement")
	}
}

func TestStatementMapperNilConfidence(t *testing.T) {
	m := NewStatementMapper()

	e := &entity.Statement{
		Id:        uuid.New(),
		TurnId:    uuid.New(),
		SessionId: uuid.New(),
		AgentId:   uuid.New(),
		Content:   "確信度の記載なし",
		CharCount: 8,
		CreatedAt: time.Now(),
	}

	got := m.ToEntity(m.ToModel(e))
	if got.Confidence != nil {
		t.Errorf("Confidence = %v, want nil", got.Confidence)
	}
}

func TestStatementMapperSoftDelete(t *testing.T) {
	m := NewStatementMapper()

	deleted := time.Now()
	e := &entity.Statement{
		Id:        uuid.New(),
		TurnId:    uuid.New(),
		SessionId: uuid.New(),
		AgentId:   uuid.New(),
		Content:   "削除済み発言",
		CreatedAt: time.Now().Add(-time.Hour),
		DeletedAt: &deleted,
	}

	got := m.ToEntity(m.ToModel(e))
	if !got.IsDeleted {
		t.Error("IsDeleted = false, want true")
	}
	if got.DeletedAt == nil {
		t.Error("DeletedAt = nil, want timestamp")
	}
}

func TestStatementMapperNil(t *testing.T) {
	m := NewStatementMapper()
	if m.ToEntity(nil) != nil {
		t.Error("ToEntity(nil) != nil")
	}
	if m.ToModel(nil) != nil {
		t.Error("ToModel(nil) != nil")
	}
	if got := m.ToEntities(nil); len(got) != 0 {
		t.Errorf("ToEntities(nil) len = %d, want 0", len(got))
	}
}
