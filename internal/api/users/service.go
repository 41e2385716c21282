package users

import (
	"context"
	"errors"

	"artwork-app/internal/api/auth"
	"artwork-app/internal/domain/relations"
	"artwork-app/internal/domain/shared"
	"artwork-app/internal/domain/users"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// UpdateInput carries an account-settings change. NewPassword is optional;
// CurrentPassword is always required, even for a username/email-only change.
type UpdateInput struct {
	Username        string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// List returns every user. Password hashes never serialize.
func (s *Service) List(ctx context.Context) ([]users.User, error) {
	var all []users.User
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		s.logger.Error("listing users", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Server error while fetching users")
	}
	return all, nil
}

// Update verifies the current password, then replaces username, email and —
// only when a new password was supplied — the stored hash.
func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (*users.User, error) {
	var user users.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "User not found")
		}
		s.logger.Error("loading user for update", zap.Uint("id", id), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Server error while updating user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Current password is incorrect")
	}

	if err := auth.CheckUnique(ctx, s.db, s.logger, input.Username, input.Email, id); err != nil {
		return nil, err
	}

	hash := user.PasswordHash
	if input.NewPassword != "" {
		newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("hashing new password", zap.Error(err))
			return nil, shared.NewDomainError(shared.CodeInternal, "Server error while updating user")
		}
		hash = string(newHash)
	}

	user.Username = input.Username
	user.Email = input.Email
	user.PasswordHash = hash
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.NewDomainError(shared.CodeConflict, "Username or email already exists")
		}
		s.logger.Error("updating user", zap.Uint("id", id), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Server error while updating user")
	}

	return &user, nil
}

// Delete removes the user and, in the same transaction, every like and saved
// artwork belonging to them. Returns false when no such user exists.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&relations.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&relations.SavedArtwork{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&users.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		s.logger.Error("deleting user", zap.Uint("id", id), zap.Error(err))
		return false, shared.NewDomainError(shared.CodeInternal, "Server error while deleting user")
	}
	return deleted, nil
}
