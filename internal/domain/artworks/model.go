package artworks

import "time"

// Artwork is a cached museum object. Rows are append-only: the application
// never updates or deletes them.
type Artwork struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Artist   string `gorm:"size:255" json:"artist"`
	Period   string `gorm:"size:255" json:"period"`
	Medium   string `gorm:"size:255" json:"medium"`
	Location string `gorm:"size:255" json:"location"`
	ImageURL string `gorm:"size:255;column:image_url" json:"image_url"`
	MetURL   string `gorm:"size:255;column:met_url" json:"met_url"`

	CreatedAt time.Time `json:"created_at"`
}
