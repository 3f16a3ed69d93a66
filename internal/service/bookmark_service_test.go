package service

import (
	"context"
	"errors"
	"testing"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/identity"
	"companion-learning-be/internal/pkg/apperror"
	"companion-learning-be/internal/pkg/logger"
	"companion-learning-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBookmark_SecondCallConflicts(t *testing.T) {
	factory, store := newMemoryFactory()
	neura := seedCompanion(t, store, entity.Companion{Name: "Neura", Subject: "s", Topic: "t", Duration: 5})
	invalidator := &recordingInvalidator{}
	svc := NewBookmarkService(factory, invalidator, logger.NewNopLogger())
	ctx := context.Background()
	caller := identity.Identity{UserId: "u1"}

	_, err := svc.AddBookmark(ctx, caller, neura.Id, "/companions")
	require.NoError(t, err)

	_, err = svc.AddBookmark(ctx, caller, neura.Id, "/companions")
	assert.ErrorIs(t, err, apperror.ErrAlreadyBookmarked)
	assert.Equal(t, "companion is already bookmarked", err.Error())

	rows, err := memory.NewBookmarkRepository(store).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"/companions"}, invalidator.Paths())
}

func TestAddBookmark_Anonymous(t *testing.T) {
	factory, _ := newMemoryFactory()
	invalidator := &recordingInvalidator{}
	svc := NewBookmarkService(factory, invalidator, logger.NewNopLogger())

	_, err := svc.AddBookmark(context.Background(), identity.Anonymous(), uuid.New(), "/")
	assert.ErrorIs(t, err, apperror.ErrAuthenticationRequired)
	assert.Empty(t, invalidator.Paths())

	err = svc.RemoveBookmark(context.Background(), identity.Anonymous(), uuid.New(), "/")
	assert.ErrorIs(t, err, apperror.ErrAuthenticationRequired)
}

func TestAddBookmark_StoreUniqueViolationIsConflict(t *testing.T) {
	factory, _ := newMemoryFactory()
	invalidator := &recordingInvalidator{}
	svc := NewBookmarkService(duplicateOnCreateFactory{factory}, invalidator, logger.NewNopLogger())

	_, err := svc.AddBookmark(context.Background(), identity.Identity{UserId: "u1"}, uuid.New(), "/")
	assert.ErrorIs(t, err, apperror.ErrAlreadyBookmarked)
	assert.Empty(t, invalidator.Paths())
}

func TestRemoveBookmark_MissingIsNotAnError(t *testing.T) {
	factory, store := newMemoryFactory()
	neura := seedCompanion(t, store, entity.Companion{Name: "Neura", Subject: "s", Topic: "t", Duration: 5})
	invalidator := &recordingInvalidator{}
	svc := NewBookmarkService(factory, invalidator, logger.NewNopLogger())
	ctx := context.Background()

	_, err := svc.AddBookmark(ctx, identity.Identity{UserId: "u2"}, neura.Id, "/a")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBookmark(ctx, identity.Identity{UserId: "u1"}, neura.Id, "/b"))

	rows, err := memory.NewBookmarkRepository(store).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"/a", "/b"}, invalidator.Paths())
}

func TestRemoveBookmark_Toggle(t *testing.T) {
	factory, store := newMemoryFactory()
	neura := seedCompanion(t, store, entity.Companion{Name: "Neura", Subject: "s", Topic: "t", Duration: 5})
	svc := NewBookmarkService(factory, &recordingInvalidator{}, logger.NewNopLogger())
	ctx := context.Background()
	caller := identity.Identity{UserId: "u1"}

	_, err := svc.AddBookmark(ctx, caller, neura.Id, "/")
	require.NoError(t, err)

	marked, err := svc.IsBookmarked(ctx, neura.Id, "u1")
	require.NoError(t, err)
	assert.True(t, marked)

	require.NoError(t, svc.RemoveBookmark(ctx, caller, neura.Id, "/"))

	marked, err = svc.IsBookmarked(ctx, neura.Id, "u1")
	require.NoError(t, err)
	assert.False(t, marked)

	_, err = svc.AddBookmark(ctx, caller, neura.Id, "/")
	assert.NoError(t, err)
}

func TestGetBookmarkedCompanions(t *testing.T) {
	factory, store := newMemoryFactory()
	neura := seedCompanion(t, store, entity.Companion{Name: "Neura", Subject: "s", Topic: "t", Duration: 5})
	svc := NewBookmarkService(factory, &recordingInvalidator{}, logger.NewNopLogger())
	ctx := context.Background()
	caller := identity.Identity{UserId: "u1"}

	t.Run("empty list when nothing is bookmarked", func(t *testing.T) {
		list, err := svc.GetBookmarkedCompanions(ctx, "u1")
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("orphaned bookmarks are dropped", func(t *testing.T) {
		_, err := svc.AddBookmark(ctx, caller, neura.Id, "/")
		require.NoError(t, err)
		_, err = svc.AddBookmark(ctx, caller, uuid.New(), "/")
		require.NoError(t, err)

		list, err := svc.GetBookmarkedCompanions(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Neura", list[0].Name)
	})
}

func TestBookmarkService_StoreFailure(t *testing.T) {
	invalidator := &recordingInvalidator{}
	svc := NewBookmarkService(failingFactory{err: errors.New("network unreachable")}, invalidator, logger.NewNopLogger())
	ctx := context.Background()

	_, err := svc.AddBookmark(ctx, identity.Identity{UserId: "u1"}, uuid.New(), "/")
	assert.True(t, apperror.IsStoreError(err))

	err = svc.RemoveBookmark(ctx, identity.Identity{UserId: "u1"}, uuid.New(), "/")
	require.Error(t, err)
	assert.Equal(t, "network unreachable", err.Error())

	_, err = svc.IsBookmarked(ctx, uuid.New(), "u1")
	assert.Error(t, err)

	_, err = svc.GetBookmarkedCompanions(ctx, "u1")
	assert.Error(t, err)
	assert.Empty(t, invalidator.Paths())
}
