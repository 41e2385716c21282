package relations

// SavedArtwork marks an artwork as saved by a user. Same shape and
// constraints as Like; the two toggles are kept as separate tables.
type SavedArtwork struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_saved_artworks_user_artwork,priority:1" json:"user_id"`
	ArtworkID uint `gorm:"not null;uniqueIndex:idx_saved_artworks_user_artwork,priority:2" json:"artwork_id"`
}
