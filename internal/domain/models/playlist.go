package models

import "time"

// Playlist is the per-user song collection, created lazily on the
// first song add and removed together with the owning account.
type Playlist struct {
	BaseModel
	UserID string `gorm:"column:userid;type:varchar(50);uniqueIndex;not null" json:"userId"`
	Songs  []Song `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"songs"`
}

// Song is one track inside a playlist. SongID is the wire identifier
// (a store-assigned UUID, immutable for the life of the song); the
// numeric ID only fixes insertion order.
type Song struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	SongID     string    `gorm:"column:song_id;type:varchar(36);uniqueIndex;not null" json:"_id"`
	PlaylistID uint      `gorm:"index;not null" json:"-"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Artist     string    `gorm:"type:varchar(255);not null" json:"artist"`
	Duration   string    `gorm:"type:varchar(50)" json:"duration"`
	FileURI    string    `gorm:"column:file_uri;type:varchar(1024);not null" json:"fileUri"`
	Image      string    `gorm:"type:varchar(1024)" json:"image,omitempty"`
	IsFavorite bool      `gorm:"default:false" json:"isFavorite"`
	CreatedAt  time.Time `json:"-"`
}
