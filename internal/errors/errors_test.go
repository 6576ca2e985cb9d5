package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Empty playlist",
			err:      ErrPlaylistEmpty,
			expected: "📋 Playlist is empty. Add songs before playing",
		},
		{
			name:     "Wrapped not found",
			err:      fmt.Errorf("%w: %q", ErrSongNotFound, "Rav"),
			expected: "🔍 Song not found in playlist",
		},
		{
			name:     "Invalid weight",
			err:      fmt.Errorf("%w: got 0", ErrInvalidWeight),
			expected: "⚖️ Weight must be a whole number greater than zero",
		},
		{
			name:     "User error wins",
			err:      NewUserError(ErrSongNotFound, "custom"),
			expected: "custom",
		},
		{
			name:     "Unknown error",
			err:      errors.New("boom"),
			expected: "❌ An error occurred. Please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage(%v) = %q, expected %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestUserErrorUnwrap(t *testing.T) {
	err := WrapUserError(ErrPlaylistEmpty, "nothing left after %d plays", 3)

	if !errors.Is(err, ErrPlaylistEmpty) {
		t.Error("UserError should unwrap to the wrapped sentinel")
	}
	if err.UserMessage() != "nothing left after 3 plays" {
		t.Errorf("Unexpected message %q", err.UserMessage())
	}
	if err.Error() != ErrPlaylistEmpty.Error() {
		t.Errorf("Error() should return the wrapped error text, got %q", err.Error())
	}
}
