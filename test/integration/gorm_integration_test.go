package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"notesy-be/internal/entity"
	"notesy-be/internal/repository/specification"
	"notesy-be/internal/repository/unitofwork"
	"notesy-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/xid"
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
	assert.NotNil(t, uow.NoteRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Provider Link Upsert", func(t *testing.T) {
		ctx := context.Background()
		userId := uuid.New()
		providerUserId := "it-" + xid.New().String()

		link := &entity.UserProvider{
			Id:             uuid.New(),
			UserId:         userId,
			ProviderName:   "google",
			ProviderUserId: providerUserId,
			AvatarURL:      "http://pics.example.com/one.png",
			CreatedAt:      time.Now(),
		}
		assert.NoError(t, uow.UserRepository().SaveUserProvider(ctx, link))

		// Same provider account again: the row is refreshed, not duplicated.
		link.Id = uuid.New()
		link.AvatarURL = "http://pics.example.com/two.png"
		assert.NoError(t, uow.UserRepository().SaveUserProvider(ctx, link))

		var rows int64
		err := gormDB.Table("user_providers").
			Where("provider_name = ? AND provider_user_id = ?", "google", providerUserId).
			Count(&rows).Error
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		var avatars []string
		err = gormDB.Table("user_providers").
			Where("provider_name = ? AND provider_user_id = ?", "google", providerUserId).
			Pluck("avatar_url", &avatars).Error
		assert.NoError(t, err)
		assert.Equal(t, []string{"http://pics.example.com/two.png"}, avatars)

		assert.NoError(t, gormDB.Exec(
			"DELETE FROM user_providers WHERE provider_name = ? AND provider_user_id = ?",
			"google", providerUserId,
		).Error)
	})

	t.Run("Note CRUD Round Trip", func(t *testing.T) {
		ctx := context.Background()
		owner := "integration-" + xid.New().String() + "@example.com"

		note := &entity.Note{
			Id:          xid.New().String(),
			Email:       owner,
			Title:       "Integration Note",
			Description: "scratch entry",
			DateAdded:   "2026-08-03T10:00:00Z",
		}
		assert.NoError(t, uow.NoteRepository().Create(ctx, note))

		count, err := uow.NoteRepository().Count(ctx, specification.OwnedBy{Email: owner})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)

		found, err := uow.NoteRepository().FindOne(ctx,
			specification.ByNoteID{NoteID: note.Id},
			specification.OwnedBy{Email: owner},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "Integration Note", found.Title)
		}

		assert.NoError(t, uow.NoteRepository().Delete(ctx,
			specification.ByNoteID{NoteID: note.Id},
			specification.OwnedBy{Email: owner},
		))

		gone, err := uow.NoteRepository().FindOne(ctx,
			specification.ByNoteID{NoteID: note.Id},
			specification.OwnedBy{Email: owner},
		)
		assert.NoError(t, err)
		assert.Nil(t, gone)

		count, err = uow.NoteRepository().Count(ctx, specification.OwnedBy{Email: owner})
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}
