package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearttune-http-service/internal/domain/models"
)

func addSong(t *testing.T, svc InterfacePlaylistService, userID, title string) models.Song {
	t.Helper()
	playlist, err := svc.AddSong(AddSongInput{
		UserID:   userID,
		Title:    title,
		Artist:   "Artist",
		Duration: "2:45",
		FileURI:  "file:///music/" + title + ".mp3",
	})
	require.NoError(t, err)
	return playlist.Songs[len(playlist.Songs)-1]
}

func TestAddSong_ValidatesRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db, newTestConfig())

	cases := []AddSongInput{
		{UserID: "", Title: "T", Artist: "A", FileURI: "f"},
		{UserID: "u1", Title: "", Artist: "A", FileURI: "f"},
		{UserID: "u1", Title: "T", Artist: "", FileURI: "f"},
		{UserID: "u1", Title: "T", Artist: "A", FileURI: ""},
	}
	for _, in := range cases {
		_, err := svc.AddSong(in)
		require.ErrorIs(t, err, ErrMissingFields)
	}

	var count int64
	db.Model(&models.Playlist{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAddSong_CreatesPlaylistLazilyAndKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db, newTestConfig())

	_, err := svc.GetPlaylist("u1")
	require.ErrorIs(t, err, ErrPlaylistNotFound)

	addSong(t, svc, "u1", "Song A")
	addSong(t, svc, "u1", "Song B")

	playlist, err := svc.GetPlaylist("u1")
	require.NoError(t, err)
	require.Len(t, playlist.Songs, 2)
	assert.Equal(t, "Song A", playlist.Songs[0].Title)
	assert.Equal(t, "Song B", playlist.Songs[1].Title)
	assert.False(t, playlist.Songs[0].IsFavorite)
	assert.NotEqual(t, playlist.Songs[0].SongID, playlist.Songs[1].SongID)

	// Only one playlist exists for the user.
	var count int64
	db.Model(&models.Playlist{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRemoveSong(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db, newTestConfig())

	songA := addSong(t, svc, "u1", "Song A")
	songB := addSong(t, svc, "u1", "Song B")

	err := svc.RemoveSong("u1", "not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidSongID)

	err = svc.RemoveSong("u1", "11111111-1111-1111-1111-111111111111")
	require.ErrorIs(t, err, ErrSongNotFound)

	// A different user cannot reach into u1's playlist.
	err = svc.RemoveSong("u2", songA.SongID)
	require.ErrorIs(t, err, ErrSongNotFound)

	require.NoError(t, svc.RemoveSong("u1", songA.SongID))

	playlist, err := svc.GetPlaylist("u1")
	require.NoError(t, err)
	require.Len(t, playlist.Songs, 1)
	assert.Equal(t, songB.SongID, playlist.Songs[0].SongID)
}

func TestRenameSong(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db, newTestConfig())

	songA := addSong(t, svc, "u1", "Song A")
	songB := addSong(t, svc, "u1", "Song B")

	err := svc.RenameSong("u1", "not-a-uuid", "New Title")
	require.ErrorIs(t, err, ErrInvalidSongID)

	err = svc.RenameSong("u2", songA.SongID, "New Title")
	require.ErrorIs(t, err, ErrPlaylistNotFound)

	err = svc.RenameSong("u1", "11111111-1111-1111-1111-111111111111", "New Title")
	require.ErrorIs(t, err, ErrSongNotFound)

	// Renaming to the current title is a rejected no-op.
	err = svc.RenameSong("u1", songA.SongID, "Song A")
	require.ErrorIs(t, err, ErrTitleUnchanged)

	playlist, err := svc.GetPlaylist("u1")
	require.NoError(t, err)
	assert.Equal(t, "Song A", playlist.Songs[0].Title)

	// A real rename mutates exactly one song.
	require.NoError(t, svc.RenameSong("u1", songA.SongID, "Song A2"))

	playlist, err = svc.GetPlaylist("u1")
	require.NoError(t, err)
	assert.Equal(t, "Song A2", playlist.Songs[0].Title)
	assert.Equal(t, "Song B", playlist.Songs[1].Title)
	assert.Equal(t, songB.SongID, playlist.Songs[1].SongID)
}

func TestToggleFavorite_DoubleToggleRestores(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db, newTestConfig())

	song := addSong(t, svc, "u1", "Song A")

	fav, err := svc.ToggleFavorite("u1", song.SongID)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = svc.ToggleFavorite("u1", song.SongID)
	require.NoError(t, err)
	assert.False(t, fav)

	favorites, err := svc.ListFavorites("u1")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleFavorite_Errors(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db, newTestConfig())

	_, err := svc.ToggleFavorite("u1", "not-a-uuid")
	require.ErrorIs(t, err, ErrInvalidSongID)

	_, err = svc.ToggleFavorite("u1", "11111111-1111-1111-1111-111111111111")
	require.ErrorIs(t, err, ErrPlaylistNotFound)

	addSong(t, svc, "u1", "Song A")
	_, err = svc.ToggleFavorite("u1", "11111111-1111-1111-1111-111111111111")
	require.ErrorIs(t, err, ErrSongNotFound)
}

func TestListFavorites(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaylistService(db, newTestConfig())

	// No playlist yet reads as an empty list, not an error.
	favorites, err := svc.ListFavorites("u1")
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)

	addSong(t, svc, "u1", "Song A")
	songB := addSong(t, svc, "u1", "Song B")
	songC := addSong(t, svc, "u1", "Song C")

	_, err = svc.ToggleFavorite("u1", songB.SongID)
	require.NoError(t, err)
	_, err = svc.ToggleFavorite("u1", songC.SongID)
	require.NoError(t, err)

	favorites, err = svc.ListFavorites("u1")
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "Song B", favorites[0].Title)
	assert.Equal(t, "Song C", favorites[1].Title)

	// Toggling back removes from the set.
	_, err = svc.ToggleFavorite("u1", songB.SongID)
	require.NoError(t, err)

	favorites, err = svc.ListFavorites("u1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, songC.SongID, favorites[0].SongID)
}
