package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hearttune-http-service/internal/domain/services"
	"hearttune-http-service/internal/domain/services/container"
	"hearttune-http-service/internal/error/code"
	"hearttune-http-service/internal/error/response"
	"hearttune-http-service/internal/infrastructure/config"
)

// InterfacePlaylistController defines the playlist controller interface
type InterfacePlaylistController interface {
	AddSong()
	GetPlaylist()
	DeleteSong()
	RenameSong()
	ToggleFavorite()
	GetFavorites()
}

// PlaylistController handles the playlist mutation endpoints
type PlaylistController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPlaylistController creates a new playlist controller
func NewPlaylistController(ctx *gin.Context, container *container.ServiceContainer) *PlaylistController {
	return &PlaylistController{
		Ctx:       ctx,
		Container: container,
	}
}

// AddSongRequest is the add-song payload
type AddSongRequest struct {
	UserID   string `json:"userId" binding:"required" example:"jamie01"`
	Title    string `json:"title" binding:"required" example:"Lullaby"`
	Artist   string `json:"artist" binding:"required" example:"Brahms"`
	Duration string `json:"duration" example:"2:45"`
	FileURI  string `json:"fileUri" binding:"required" example:"file:///music/lullaby.mp3"`
	Image    string `json:"image" example:"file:///covers/lullaby.png"`
}

// RenameSongRequest is the rename payload
type RenameSongRequest struct {
	Title string `json:"title" binding:"required" example:"Lullaby (slow)"`
}

// HandlePlaylistFunc returns a Gin handler that dispatches to the playlist controller
func HandlePlaylistFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPlaylistController(ctx, container)

		switch method {
		case "addSong":
			controller.AddSong()
		case "getPlaylist":
			controller.GetPlaylist()
		case "deleteSong":
			controller.DeleteSong()
		case "renameSong":
			controller.RenameSong()
		case "toggleFavorite":
			controller.ToggleFavorite()
		case "getFavorites":
			controller.GetFavorites()
		default:
			response.Error(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. AddSong appends a song to the user's playlist
// @Summary      Add a song
// @Description  Adds a song to the user's playlist, creating the playlist on first use
// @Tags         Playlist
// @Accept       json
// @Produce      json
// @Param        request body AddSongRequest true "Song fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /playlist/add [post]
// @Security     BearerAuth
func (c *PlaylistController) AddSong() {
	var req AddSongRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Error(c.Ctx, code.ErrValidation, "")
		return
	}

	playlistService := c.Container.GetService("playlist").(services.InterfacePlaylistService)
	playlist, err := playlistService.AddSong(services.AddSongInput{
		UserID:   req.UserID,
		Title:    req.Title,
		Artist:   req.Artist,
		Duration: req.Duration,
		FileURI:  req.FileURI,
		Image:    req.Image,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			response.Error(c.Ctx, code.ErrValidation, "")
			return
		}
		config.Error("add song failed: %v", err)
		c.Ctx.JSON(code.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Song added to playlist", "playlist": playlist})
}

// 2. GetPlaylist returns the user's playlist
// @Summary      Fetch a playlist
// @Description  Returns the user's playlist document with songs in insertion order
// @Tags         Playlist
// @Produce      json
// @Param        userId path string true "User handle"
// @Success      200  {object}  models.Playlist
// @Failure      404  {object}  map[string]interface{}
// @Router       /playlist/user/{userId} [get]
// @Security     BearerAuth
func (c *PlaylistController) GetPlaylist() {
	userID := c.Ctx.Param("userId")

	playlistService := c.Container.GetService("playlist").(services.InterfacePlaylistService)
	playlist, err := playlistService.GetPlaylist(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.FailMessage(c.Ctx, code.ErrPlaylistNotFound, "Playlist not found")
			return
		}
		response.ServerError(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, playlist)
}

// 3. DeleteSong removes a song from the playlist
// @Summary      Delete a song
// @Description  Removes the song with the given id from the user's playlist
// @Tags         Playlist
// @Produce      json
// @Param        songId path string true "Song id"
// @Param        userId path string true "User handle"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /playlist/delete/{songId}/{userId} [delete]
// @Security     BearerAuth
func (c *PlaylistController) DeleteSong() {
	songID := c.Ctx.Param("songId")
	userID := c.Ctx.Param("userId")

	playlistService := c.Container.GetService("playlist").(services.InterfacePlaylistService)
	if err := playlistService.RemoveSong(userID, songID); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			response.FailMessage(c.Ctx, code.ErrInvalidSongID, "Invalid song ID format")
		case errors.Is(err, services.ErrNotFound):
			response.FailMessage(c.Ctx, code.ErrSongNotFound, "Song not found in any playlist")
		default:
			config.Error("delete song failed: %v", err)
			response.ServerError(c.Ctx, "An error occurred while deleting the song")
		}
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Song deleted successfully"})
}

// 4. RenameSong changes a song title
// @Summary      Rename a song
// @Description  Updates the song title; renaming to the current title is rejected
// @Tags         Playlist
// @Accept       json
// @Produce      json
// @Param        songId path string true "Song id"
// @Param        userId path string true "User handle"
// @Param        request body RenameSongRequest true "New title"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /playlist/song/{songId}/{userId} [put]
// @Security     BearerAuth
func (c *PlaylistController) RenameSong() {
	songID := c.Ctx.Param("songId")
	userID := c.Ctx.Param("userId")

	var req RenameSongRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c.Ctx, code.ErrValidation, "")
		return
	}

	playlistService := c.Container.GetService("playlist").(services.InterfacePlaylistService)
	if err := playlistService.RenameSong(userID, songID, req.Title); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSongID):
			response.FailMessage(c.Ctx, code.ErrInvalidSongID, "Invalid songId format")
		case errors.Is(err, services.ErrTitleUnchanged):
			response.FailMessage(c.Ctx, code.ErrTitleUnchanged, "")
		case errors.Is(err, services.ErrPlaylistNotFound):
			response.FailMessage(c.Ctx, code.ErrPlaylistNotFound, "Playlist or song not found")
		case errors.Is(err, services.ErrNotFound):
			response.FailMessage(c.Ctx, code.ErrSongNotFound, "Song not found")
		default:
			config.Error("rename song failed: %v", err)
			response.ServerError(c.Ctx, "Failed to update song")
		}
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Song updated successfully"})
}

// 5. ToggleFavorite flips a song's favorite flag
// @Summary      Toggle favorite
// @Description  Flips the favorite flag and returns the new value
// @Tags         Playlist
// @Produce      json
// @Param        songId path string true "Song id"
// @Param        userId path string true "User handle"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /playlist/toggle-favorite/{songId}/{userId} [put]
// @Security     BearerAuth
func (c *PlaylistController) ToggleFavorite() {
	songID := c.Ctx.Param("songId")
	userID := c.Ctx.Param("userId")

	playlistService := c.Container.GetService("playlist").(services.InterfacePlaylistService)
	isFavorite, err := playlistService.ToggleFavorite(userID, songID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			response.Error(c.Ctx, code.ErrInvalidSongID, "Invalid song ID")
		case errors.Is(err, services.ErrPlaylistNotFound):
			response.Error(c.Ctx, code.ErrPlaylistNotFound, "Playlist not found for this user")
		case errors.Is(err, services.ErrNotFound):
			response.Error(c.Ctx, code.ErrSongNotFound, "Song not found in playlist")
		default:
			config.Error("toggle favorite failed: %v", err)
			response.Error(c.Ctx, code.ErrUnknown, "Server error")
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"success":    true,
		"isFavorite": isFavorite,
		"message":    "Favorite status updated",
	})
}

// 6. GetFavorites lists the favorited songs
// @Summary      List favorites
// @Description  Returns the user's favorited songs in playlist order; an empty list when no playlist exists
// @Tags         Playlist
// @Produce      json
// @Param        userId path string true "User handle"
// @Success      200  {array}   models.Song
// @Failure      500  {object}  map[string]interface{}
// @Router       /playlist/favorites/{userId} [get]
// @Security     BearerAuth
func (c *PlaylistController) GetFavorites() {
	userID := c.Ctx.Param("userId")

	playlistService := c.Container.GetService("playlist").(services.InterfacePlaylistService)
	favorites, err := playlistService.ListFavorites(userID)
	if err != nil {
		config.Error("list favorites failed: %v", err)
		c.Ctx.JSON(code.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response.Success(c.Ctx, favorites)
}
