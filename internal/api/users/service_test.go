package users

import (
	"context"
	"testing"

	"artwork-app/database"
	"artwork-app/internal/domain/relations"
	"artwork-app/internal/domain/shared"
	"artwork-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(db, zap.NewNop()), db
}

func createUser(t *testing.T, db *gorm.DB, username, email, password string) *users.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := users.User{Username: username, Email: email, PasswordHash: string(hash)}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func domainCode(t *testing.T, err error) shared.ErrorCode {
	t.Helper()
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	return derr.Code
}

func TestUpdate_RequiresCurrentPassword(t *testing.T) {
	svc, db := setupService(t)
	user := createUser(t, db, "bob", "bob@example.com", "hunter22")

	_, err := svc.Update(context.Background(), user.ID, UpdateInput{
		Username:        "bobby",
		Email:           "bob@example.com",
		CurrentPassword: "wrongpass",
	})
	require.Error(t, err)
	assert.Equal(t, shared.CodeValidation, domainCode(t, err))
	assert.Contains(t, err.Error(), "Current password is incorrect")
}

func TestUpdate_KeepsHashWithoutNewPassword(t *testing.T) {
	svc, db := setupService(t)
	user := createUser(t, db, "bob", "bob@example.com", "hunter22")

	updated, err := svc.Update(context.Background(), user.ID, UpdateInput{
		Username:        "bobby",
		Email:           "bobby@example.com",
		CurrentPassword: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "bobby", updated.Username)
	assert.Equal(t, "bobby@example.com", updated.Email)
	// Username/email-only change retains the existing hash.
	assert.Equal(t, user.PasswordHash, updated.PasswordHash)
}

func TestUpdate_RehashesNewPassword(t *testing.T) {
	svc, db := setupService(t)
	user := createUser(t, db, "bob", "bob@example.com", "hunter22")

	updated, err := svc.Update(context.Background(), user.ID, UpdateInput{
		Username:        "bob",
		Email:           "bob@example.com",
		CurrentPassword: "hunter22",
		NewPassword:     "n3wpassword",
	})
	require.NoError(t, err)
	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("n3wpassword")))
}

func TestUpdate_ConflictingUsername(t *testing.T) {
	svc, db := setupService(t)
	createUser(t, db, "alice", "alice@example.com", "hunter22")
	bob := createUser(t, db, "bob", "bob@example.com", "hunter22")

	_, err := svc.Update(context.Background(), bob.ID, UpdateInput{
		Username:        "alice",
		Email:           "bob@example.com",
		CurrentPassword: "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, shared.CodeConflict, domainCode(t, err))
	assert.Contains(t, err.Error(), "Username already exists")
}

func TestUpdate_UnknownUser(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Update(context.Background(), 999, UpdateInput{
		Username:        "ghost",
		Email:           "ghost@example.com",
		CurrentPassword: "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, shared.CodeNotFound, domainCode(t, err))
}

func TestDelete_CascadesRelations(t *testing.T) {
	svc, db := setupService(t)
	user := createUser(t, db, "bob", "bob@example.com", "hunter22")

	require.NoError(t, db.Create(&relations.Like{UserID: user.ID, ArtworkID: 1}).Error)
	require.NoError(t, db.Create(&relations.SavedArtwork{UserID: user.ID, ArtworkID: 2}).Error)

	deleted, err := svc.Delete(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var likeCount, savedCount, userCount int64
	require.NoError(t, db.Model(&relations.Like{}).Where("user_id = ?", user.ID).Count(&likeCount).Error)
	require.NoError(t, db.Model(&relations.SavedArtwork{}).Where("user_id = ?", user.ID).Count(&savedCount).Error)
	require.NoError(t, db.Model(&users.User{}).Count(&userCount).Error)
	assert.Zero(t, likeCount)
	assert.Zero(t, savedCount)
	assert.Zero(t, userCount)
}

func TestDelete_UnknownUser(t *testing.T) {
	svc, _ := setupService(t)

	deleted, err := svc.Delete(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestList_ReturnsAllUsers(t *testing.T) {
	svc, db := setupService(t)
	createUser(t, db, "alice", "alice@example.com", "hunter22")
	createUser(t, db, "bob", "bob@example.com", "hunter22")

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
