package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Common
	ErrSuccess:         "success",
	ErrUnknown:         "Server error",
	ErrBind:            "Invalid request body",
	ErrValidation:      "Missing required fields",
	ErrTokenInvalid:    "Invalid or expired token",
	ErrTooManyRequests: "Too many requests",

	// Account
	ErrAccountNotFound:    "User not found",
	ErrEmailInUse:         "Email already in use.",
	ErrUserIDInUse:        "UserId already in use.",
	ErrInvalidCredentials: "Invalid credentials",
	ErrPasswordIncorrect:  "Current password is incorrect",
	ErrChildHasFamily:     "A family already exists for this child. Please join the existing family.",
	ErrFamilyCodeMismatch: "Invalid family code or does not match the child name.",

	// Playlist
	ErrPlaylistNotFound: "Playlist not found",
	ErrSongNotFound:     "Song not found in playlist",
	ErrInvalidSongID:    "Invalid song ID format",
	ErrTitleUnchanged:   "Title is the same as before",

	// Heartbeat
	ErrHeartbeatNotFound: "No heartbeat recorded",

	// Database
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Account
	ErrAccountNotFound:    StatusNotFound,
	ErrEmailInUse:         StatusBadRequest,
	ErrUserIDInUse:        StatusBadRequest,
	ErrInvalidCredentials: StatusBadRequest,
	ErrPasswordIncorrect:  StatusBadRequest,
	ErrChildHasFamily:     StatusBadRequest,
	ErrFamilyCodeMismatch: StatusBadRequest,

	// Playlist
	ErrPlaylistNotFound: StatusNotFound,
	ErrSongNotFound:     StatusNotFound,
	ErrInvalidSongID:    StatusBadRequest,
	ErrTitleUnchanged:   StatusBadRequest,

	// Heartbeat
	ErrHeartbeatNotFound: StatusNotFound,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
