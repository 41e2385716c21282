package likes

import (
	"context"
	"errors"

	"artwork-app/internal/domain/relations"
	"artwork-app/internal/domain/shared"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service toggles like rows. There is deliberately no check that the artwork
// id exists: artworks are never deleted, so orphans cannot occur in practice.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Add likes an artwork for a user. Liking twice is a conflict.
func (s *Service) Add(ctx context.Context, userID, artworkID uint) (*relations.Like, error) {
	var existing relations.Like
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		First(&existing).Error
	if err == nil {
		return nil, shared.NewDomainError(shared.CodeConflict, "Artwork already liked")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("checking existing like", zap.Uint("user_id", userID), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Error liking artwork")
	}

	like := relations.Like{UserID: userID, ArtworkID: artworkID}
	if err := s.db.WithContext(ctx).Create(&like).Error; err != nil {
		// Concurrent adds can both pass the check; the unique index decides.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.NewDomainError(shared.CodeConflict, "Artwork already liked")
		}
		s.logger.Error("creating like", zap.Uint("user_id", userID), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Error liking artwork")
	}
	return &like, nil
}

// ListForUser returns all likes belonging to a user.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]relations.Like, error) {
	all := make([]relations.Like, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&all).Error; err != nil {
		s.logger.Error("listing likes", zap.Uint("user_id", userID), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Error fetching liked artworks")
	}
	return all, nil
}

// Remove unlikes an artwork, reporting whether a row was actually deleted.
func (s *Service) Remove(ctx context.Context, userID, artworkID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&relations.Like{})
	if result.Error != nil {
		s.logger.Error("deleting like", zap.Uint("user_id", userID), zap.Error(result.Error))
		return false, shared.NewDomainError(shared.CodeInternal, "Error unliking artwork")
	}
	return result.RowsAffected > 0, nil
}
