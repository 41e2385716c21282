package relations

// Like marks an artwork as liked by a user. The composite unique index
// closes the race between the service-level existence check and the insert.
type Like struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_user_artwork,priority:1" json:"user_id"`
	ArtworkID uint `gorm:"not null;uniqueIndex:idx_likes_user_artwork,priority:2" json:"artwork_id"`
}
