package likes

import (
	"context"
	"testing"

	"artwork-app/database"
	"artwork-app/internal/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(db, zap.NewNop())
}

func domainCode(t *testing.T, err error) shared.ErrorCode {
	t.Helper()
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	return derr.Code
}

func TestToggle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	like, err := svc.Add(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(1), like.UserID)
	assert.Equal(t, uint(10), like.ArtworkID)

	// Second like of the same pair is a conflict, not a second row.
	_, err = svc.Add(ctx, 1, 10)
	require.Error(t, err)
	assert.Equal(t, shared.CodeConflict, domainCode(t, err))
	assert.Contains(t, err.Error(), "Artwork already liked")

	removed, err := svc.Remove(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, removed)

	// Add then remove restores prior absence: the pair can be liked again.
	_, err = svc.Add(ctx, 1, 10)
	require.NoError(t, err)
}

func TestRemove_AbsentPair(t *testing.T) {
	svc := setupService(t)

	removed, err := svc.Remove(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListForUser(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 10)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 1, 11)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 2, 10)
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, like := range mine {
		assert.Equal(t, uint(1), like.UserID)
	}
}

func TestSamePairDifferentUsers(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 10)
	require.NoError(t, err)
	// Uniqueness is per (user, artwork), not per artwork.
	_, err = svc.Add(ctx, 2, 10)
	require.NoError(t, err)
}
