package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vuongmanhnghia/song-playlist/internal/domain/entities"
	"github.com/vuongmanhnghia/song-playlist/internal/domain/valueobjects"
	"github.com/vuongmanhnghia/song-playlist/internal/errors"
)

// MaxSongNameLength is the longest accepted song name
const MaxSongNameLength = 100

// SanitizeInput sanitizes user input by removing potentially dangerous characters
func SanitizeInput(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Trim whitespace
	input = strings.TrimSpace(input)

	return input
}

// ValidateSongName validates a song name
func ValidateSongName(name string) error {
	if name == "" {
		return errors.ErrInvalidName
	}

	if len(name) > MaxSongNameLength {
		return fmt.Errorf("%w: song name too long (max %d characters)", errors.ErrInvalidInput, MaxSongNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: song name contains control characters", errors.ErrInvalidInput)
		}
	}

	return nil
}

// ValidateWeight validates a song weight
func ValidateWeight(weight int64) error {
	return valueobjects.Weight(weight).Validate()
}

// ParseSong parses a single "name:weight" pair
func ParseSong(input string) (entities.Entry, error) {
	input = SanitizeInput(input)

	idx := strings.LastIndex(input, ":")
	if idx < 0 {
		return entities.Entry{}, fmt.Errorf("%w: %q is not name:weight", errors.ErrInvalidInput, input)
	}

	name := SanitizeInput(input[:idx])
	if err := ValidateSongName(name); err != nil {
		return entities.Entry{}, err
	}

	weight, err := strconv.ParseInt(SanitizeInput(input[idx+1:]), 10, 64)
	if err != nil {
		return entities.Entry{}, fmt.Errorf("%w: weight of %q: %v", errors.ErrInvalidInput, name, err)
	}
	if err := ValidateWeight(weight); err != nil {
		return entities.Entry{}, fmt.Errorf("song %q: %w", name, err)
	}

	return entities.NewEntry(name, weight)
}

// ParseSongList parses comma separated "name:weight" pairs, e.g. "A:2,B:1".
// An empty list yields no songs.
func ParseSongList(input string) ([]entities.Entry, error) {
	input = SanitizeInput(input)
	if input == "" {
		return nil, nil
	}

	parts := strings.Split(input, ",")
	songs := make([]entities.Entry, 0, len(parts))
	for _, part := range parts {
		song, err := ParseSong(part)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	return songs, nil
}

// ParseDrawScript parses comma separated draw values, e.g. "0,2,3".
// Values must be non-negative.
func ParseDrawScript(input string) ([]int64, error) {
	input = SanitizeInput(input)
	if input == "" {
		return nil, nil
	}

	parts := strings.Split(input, ",")
	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(SanitizeInput(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: draw value %q: %v", errors.ErrInvalidInput, part, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: draw value %d is negative", errors.ErrInvalidInput, v)
		}
		values = append(values, v)
	}

	return values, nil
}

// TruncateString safely truncates a string to max length
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	// Try to truncate at word boundary
	if maxLen > 3 {
		s = s[:maxLen-3]
		if idx := strings.LastIndexAny(s, " \t\n"); idx > 0 {
			s = s[:idx]
		}
		return s + "..."
	}

	return s[:maxLen]
}
