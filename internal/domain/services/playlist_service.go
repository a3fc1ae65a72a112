package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hearttune-http-service/internal/domain/models"
	"hearttune-http-service/internal/infrastructure/config"
)

// AddSongInput carries the fields of an add-song request
type AddSongInput struct {
	UserID   string
	Title    string
	Artist   string
	Duration string
	FileURI  string
	Image    string
}

// InterfacePlaylistService defines the playlist service interface
type InterfacePlaylistService interface {
	AddSong(in AddSongInput) (*models.Playlist, error)
	GetPlaylist(userID string) (*models.Playlist, error)
	RemoveSong(userID, songID string) error
	RenameSong(userID, songID, newTitle string) error
	ToggleFavorite(userID, songID string) (bool, error)
	ListFavorites(userID string) ([]models.Song, error)
}

// PlaylistService provides per-user playlist operations
type PlaylistService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService(db *gorm.DB, cfg *config.Config) InterfacePlaylistService {
	return &PlaylistService{
		DB:     db,
		Config: cfg,
	}
}

// songID is assigned by the store on insert and never changes
func newSongID() string {
	return uuid.NewString()
}

// AddSong appends a song to the user's playlist, creating the playlist
// on first use. The client enforces its own song cap before calling;
// no upper bound is checked here.
func (s *PlaylistService) AddSong(in AddSongInput) (*models.Playlist, error) {
	if in.FileURI == "" || in.Title == "" || in.Artist == "" || in.UserID == "" {
		return nil, ErrMissingFields
	}

	var playlist models.Playlist
	err := s.DB.Where("userid = ?", in.UserID).First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		playlist = models.Playlist{UserID: in.UserID}
		if err := s.DB.Create(&playlist).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	song := models.Song{
		SongID:     newSongID(),
		PlaylistID: playlist.ID,
		Title:      in.Title,
		Artist:     in.Artist,
		Duration:   in.Duration,
		FileURI:    in.FileURI,
		Image:      in.Image,
		IsFavorite: false,
	}
	if err := s.DB.Create(&song).Error; err != nil {
		return nil, err
	}

	return s.GetPlaylist(in.UserID)
}

// GetPlaylist returns the user's playlist with songs in insertion order
func (s *PlaylistService) GetPlaylist(userID string) (*models.Playlist, error) {
	var playlist models.Playlist
	err := s.DB.Preload("Songs", func(db *gorm.DB) *gorm.DB {
		return db.Order("songs.id ASC")
	}).Where("userid = ?", userID).First(&playlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// RemoveSong deletes a song from the user's playlist
func (s *PlaylistService) RemoveSong(userID, songID string) error {
	if _, err := uuid.Parse(songID); err != nil {
		return ErrInvalidSongID
	}

	var playlist models.Playlist
	if err := s.DB.Where("userid = ?", userID).First(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSongNotFound
		}
		return err
	}

	result := s.DB.Where("playlist_id = ? AND song_id = ?", playlist.ID, songID).Delete(&models.Song{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSongNotFound
	}
	return nil
}

// RenameSong changes a song's title. Renaming to the current title is
// rejected as a no-op.
func (s *PlaylistService) RenameSong(userID, songID, newTitle string) error {
	if _, err := uuid.Parse(songID); err != nil {
		return ErrInvalidSongID
	}

	var playlist models.Playlist
	if err := s.DB.Where("userid = ?", userID).First(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}

	var song models.Song
	if err := s.DB.Where("playlist_id = ? AND song_id = ?", playlist.ID, songID).First(&song).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSongNotFound
		}
		return err
	}

	if song.Title == newTitle {
		return ErrTitleUnchanged
	}

	return s.DB.Model(&song).Update("title", newTitle).Error
}

// ToggleFavorite flips a song's favorite flag and returns the new
// value. The flip happens in a single UPDATE so concurrent toggles on
// the same song are never lost to a read-modify-write race.
func (s *PlaylistService) ToggleFavorite(userID, songID string) (bool, error) {
	if _, err := uuid.Parse(songID); err != nil {
		return false, ErrInvalidSongID
	}

	var playlist models.Playlist
	if err := s.DB.Where("userid = ?", userID).First(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrPlaylistNotFound
		}
		return false, err
	}

	result := s.DB.Model(&models.Song{}).
		Where("playlist_id = ? AND song_id = ?", playlist.ID, songID).
		Update("is_favorite", gorm.Expr("NOT is_favorite"))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, ErrSongNotFound
	}

	var song models.Song
	if err := s.DB.Where("playlist_id = ? AND song_id = ?", playlist.ID, songID).First(&song).Error; err != nil {
		return false, err
	}
	return song.IsFavorite, nil
}

// ListFavorites returns the favorited songs in playlist order. A user
// without a playlist gets an empty list, not an error.
func (s *PlaylistService) ListFavorites(userID string) ([]models.Song, error) {
	var playlist models.Playlist
	if err := s.DB.Where("userid = ?", userID).First(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Song{}, nil
		}
		return nil, err
	}

	var favorites []models.Song
	if err := s.DB.Where("playlist_id = ? AND is_favorite = ?", playlist.ID, true).
		Order("id ASC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Song{}
	}
	return favorites, nil
}
