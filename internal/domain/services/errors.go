package services

import (
	"errors"
	"fmt"
)

// Error categories. Controllers map these onto HTTP statuses:
// validation and conflict to 400, auth to 400 with a generic message,
// not-found to 404, anything else to 500.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
)

// Account errors
var (
	ErrAccountNotFound    = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrEmailInUse         = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrUserIDInUse        = fmt.Errorf("%w: userid already in use", ErrConflict)
	ErrChildHasFamily     = fmt.Errorf("%w: a family already exists for this child", ErrConflict)
	ErrFamilyCodeMismatch = fmt.Errorf("%w: invalid family code or child name", ErrConflict)
	ErrFamilyCodeRequired = fmt.Errorf("%w: family code is required for joining a family", ErrValidation)
	ErrInvalidRole        = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuth)
	ErrPasswordIncorrect  = fmt.Errorf("%w: current password is incorrect", ErrAuth)
)

// Playlist errors
var (
	ErrPlaylistNotFound = fmt.Errorf("%w: playlist not found", ErrNotFound)
	ErrSongNotFound     = fmt.Errorf("%w: song not found in playlist", ErrNotFound)
	ErrInvalidSongID    = fmt.Errorf("%w: invalid song id format", ErrValidation)
	ErrTitleUnchanged   = fmt.Errorf("%w: title is the same as before", ErrValidation)
	ErrMissingFields    = fmt.Errorf("%w: missing required fields", ErrValidation)
)
