package saved

import (
	"context"
	"errors"

	"artwork-app/internal/domain/relations"
	"artwork-app/internal/domain/shared"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service toggles saved-artwork rows. Mirrors the like service over its own
// table.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Add saves an artwork for a user. Saving twice is a conflict.
func (s *Service) Add(ctx context.Context, userID, artworkID uint) (*relations.SavedArtwork, error) {
	var existing relations.SavedArtwork
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		First(&existing).Error
	if err == nil {
		return nil, shared.NewDomainError(shared.CodeConflict, "Artwork already saved")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("checking existing saved artwork", zap.Uint("user_id", userID), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Error saving artwork")
	}

	record := relations.SavedArtwork{UserID: userID, ArtworkID: artworkID}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.NewDomainError(shared.CodeConflict, "Artwork already saved")
		}
		s.logger.Error("creating saved artwork", zap.Uint("user_id", userID), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Error saving artwork")
	}
	return &record, nil
}

// ListForUser returns all saved artworks belonging to a user.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]relations.SavedArtwork, error) {
	all := make([]relations.SavedArtwork, 0)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&all).Error; err != nil {
		s.logger.Error("listing saved artworks", zap.Uint("user_id", userID), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Error fetching saved artworks")
	}
	return all, nil
}

// Remove unsaves an artwork, reporting whether a row was actually deleted.
func (s *Service) Remove(ctx context.Context, userID, artworkID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&relations.SavedArtwork{})
	if result.Error != nil {
		s.logger.Error("deleting saved artwork", zap.Uint("user_id", userID), zap.Error(result.Error))
		return false, shared.NewDomainError(shared.CodeInternal, "Error unsaving artwork")
	}
	return result.RowsAffected > 0, nil
}
