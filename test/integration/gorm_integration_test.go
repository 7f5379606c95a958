package integration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"testing"
	"time"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"
	"jukugi-bokujo-be/internal/repository/unitofwork"
	"jukugi-bokujo-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Knowledge Embedding Repository", func(t *testing.T) {
		// Count implies table check
		count, err := uow.KnowledgeEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("KnowledgeEmbedding count: %d", count)
	})

	t.Run("Check Refresh Token Lookup By Hash", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:          userId,
			Email:       "test-refresh-" + uuid.New().String() + "@example.com",
			DisplayName: "Refresh Token User",
			Role:        entity.UserRoleUser,
			Status:      entity.UserStatusActive,
		}
		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		sum := sha256.Sum256([]byte("raw-refresh-" + uuid.New().String()))
		tokenHash := hex.EncodeToString(sum[:])

		token := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    userId,
			TokenHash: tokenHash,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		err = uow.UserRepository().CreateRefreshToken(context.Background(), token)
		assert.NoError(t, err)

		found, err := uow.UserRepository().FindRefreshToken(context.Background(),
			specification.ByTokenHash{TokenHash: tokenHash},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, userId, found.UserId)
			assert.False(t, found.Revoked)
		}
	})

	t.Run("Check Transactional Session Creation", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:          userId,
			Email:       "test-integration-" + uuid.New().String() + "@example.com",
			DisplayName: "Integration Test User",
			Role:        entity.UserRoleUser,
			Status:      entity.UserStatusActive,
		}

		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		topic := &entity.Topic{
			Id:     uuid.New(),
			UserId: userId,
			Title:  "Integration Topic",
		}
		err = uow.TopicRepository().Create(context.Background(), topic)
		assert.NoError(t, err)

		agent := &entity.Agent{
			Id:      uuid.New(),
			UserId:  userId,
			Name:    "Integration Agent",
			Persona: "A test persona",
		}
		err = uow.AgentRepository().Create(context.Background(), agent)
		assert.NoError(t, err)

		// Transaction Test: session plus participant must land together
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		session := &entity.Session{
			Id:       sessionId,
			TopicId:  topic.Id,
			UserId:   userId,
			Mode:     "double_diamond",
			Status:   entity.SessionStatusPending,
			MaxTurns: 8,
		}
		err = uow.SessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		participant := &entity.SessionParticipant{
			Id:        uuid.New(),
			SessionId: sessionId,
			AgentId:   agent.Id,
			JoinOrder: 0,
		}
		err = uow.SessionRepository().AddParticipant(ctx, participant)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Session with Participant in Transaction")
	})
}
