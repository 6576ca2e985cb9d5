package errors

import (
	"errors"
	"fmt"
)

// Common error types for playlist operations
var (
	// Entry errors
	ErrInvalidWeight  = errors.New("weight must be a positive integer")
	ErrInvalidName    = errors.New("song name cannot be empty")
	ErrWeightOverflow = errors.New("total playlist weight overflows")

	// Playlist errors
	ErrSongNotFound   = errors.New("song not found")
	ErrPlaylistEmpty  = errors.New("playlist is empty")
	ErrDrawOutOfRange = errors.New("random draw out of range")

	// Input errors
	ErrInvalidInput = errors.New("invalid input")
)

// UserError wraps an error with a user-friendly message
type UserError struct {
	Err     error
	Message string
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func (e *UserError) UserMessage() string {
	return e.Message
}

// NewUserError creates a new user error
func NewUserError(err error, message string) *UserError {
	return &UserError{
		Err:     err,
		Message: message,
	}
}

// WrapUserError wraps an error with a formatted user-friendly message
func WrapUserError(err error, format string, args ...interface{}) *UserError {
	return &UserError{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}

// GetUserMessage extracts user-friendly message from error
func GetUserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}

	switch {
	case errors.Is(err, ErrPlaylistEmpty):
		return "📋 Playlist is empty. Add songs before playing"
	case errors.Is(err, ErrSongNotFound):
		return "🔍 Song not found in playlist"
	case errors.Is(err, ErrInvalidWeight):
		return "⚖️ Weight must be a whole number greater than zero"
	case errors.Is(err, ErrInvalidName):
		return "✏️ Song name cannot be empty"
	case errors.Is(err, ErrWeightOverflow):
		return "⚠️ Playlist weight is too large. Remove songs or lower weights"
	case errors.Is(err, ErrInvalidInput):
		return "❌ Invalid input. Use name:weight pairs separated by commas"
	default:
		return "❌ An error occurred. Please try again"
	}
}
