package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/model"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"
	"companion-learning-be/internal/repository/unitofwork"
	"companion-learning-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	return gormDB
}

// These tests expect the companions, session_history and bookmarks tables to exist already.
func TestCompanionFlowAgainstPostgres(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	author := "integration-" + uuid.NewString()
	companion := &entity.Companion{
		Id:       uuid.New(),
		Name:     "Integration Neura",
		Subject:  "science",
		Topic:    "Integration_100% cells",
		Duration: 10,
		Color:    "#E5D0FF",
		Author:   author,
	}
	require.NoError(t, uow.CompanionRepository().Create(ctx, companion))

	t.Cleanup(func() {
		db.Where("user_id = ?", author).Delete(&model.Bookmark{})
		db.Where("user_id = ?", author).Delete(&model.SessionHistory{})
		db.Where("author = ?", author).Delete(&model.Companion{})
	})

	t.Run("count by author", func(t *testing.T) {
		n, err := uow.CompanionRepository().Count(ctx, specification.ByAuthor{Author: author})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("wildcards in the search term are literal", func(t *testing.T) {
		found, err := uow.CompanionRepository().FindAll(ctx,
			specification.ByAuthor{Author: author},
			specification.TopicOrNameLike{Topic: "_100%"},
		)
		require.NoError(t, err)
		assert.Len(t, found, 1)

		none, err := uow.CompanionRepository().FindAll(ctx,
			specification.ByAuthor{Author: author},
			specification.TopicOrNameLike{Topic: "x100%"},
		)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("bookmarks join their companion", func(t *testing.T) {
		require.NoError(t, uow.BookmarkRepository().Create(ctx, &entity.Bookmark{
			Id: uuid.New(), CompanionId: companion.Id, UserId: author,
		}))

		rows, err := uow.BookmarkRepository().FindAll(ctx,
			specification.ByUserID{UserID: author},
			specification.WithCompanion{},
		)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].Companion)
		assert.Equal(t, "Integration Neura", rows[0].Companion.Name)

		n, err := uow.BookmarkRepository().Delete(ctx,
			specification.ByCompanionID{CompanionID: companion.Id},
			specification.ByUserID{UserID: author},
		)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("duplicate bookmark is reported only when the store enforces it", func(t *testing.T) {
		b := entity.Bookmark{CompanionId: companion.Id, UserId: author}
		first := b
		first.Id = uuid.New()
		require.NoError(t, uow.BookmarkRepository().Create(ctx, &first))

		second := b
		second.Id = uuid.New()
		err := uow.BookmarkRepository().Create(ctx, &second)
		if err != nil {
			assert.ErrorIs(t, err, contract.ErrDuplicateBookmark)
		}
	})

	t.Run("session history newest first", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.NoError(t, uow.SessionHistoryRepository().Create(ctx, &entity.SessionHistory{
				Id: uuid.New(), CompanionId: companion.Id, UserId: author,
			}))
		}

		rows, err := uow.SessionHistoryRepository().FindAll(ctx,
			specification.ByUserID{UserID: author},
			specification.WithCompanion{},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Limit{N: 10},
		)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}
