package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing or invalid credential.
	StatusUnauthorized = 401
	// StatusNotFound - 404: resource absent.
	StatusNotFound = 404
	// StatusInternalServerError - 500: server failure.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: too many requests.
	ErrTooManyRequests
)

// Account error codes (101xxx).
const (
	// ErrAccountNotFound - 404: account does not exist.
	ErrAccountNotFound int = iota + 101000
	// ErrEmailInUse - 400: email already registered.
	ErrEmailInUse
	// ErrUserIDInUse - 400: user id already registered.
	ErrUserIDInUse
	// ErrInvalidCredentials - 400: email/password mismatch.
	ErrInvalidCredentials
	// ErrPasswordIncorrect - 400: current password mismatch.
	ErrPasswordIncorrect
	// ErrChildHasFamily - 400: a family already exists for this child.
	ErrChildHasFamily
	// ErrFamilyCodeMismatch - 400: family code missing or does not match child.
	ErrFamilyCodeMismatch
)

// Playlist error codes (102xxx).
const (
	// ErrPlaylistNotFound - 404: playlist does not exist.
	ErrPlaylistNotFound int = iota + 102000
	// ErrSongNotFound - 404: song not in playlist.
	ErrSongNotFound
	// ErrInvalidSongID - 400: malformed song identifier.
	ErrInvalidSongID
	// ErrTitleUnchanged - 400: rename to the current title.
	ErrTitleUnchanged
)

// Heartbeat error codes (103xxx).
const (
	// ErrHeartbeatNotFound - 404: no sample recorded yet.
	ErrHeartbeatNotFound int = iota + 103000
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
