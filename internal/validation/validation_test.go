package validation

import (
	"errors"
	"strings"
	"testing"

	playlisterrors "github.com/vuongmanhnghia/song-playlist/internal/errors"
)

func TestParseSong(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantWeight int64
		wantErr    error
	}{
		{
			name:       "Simple pair",
			input:      "A:2",
			wantName:   "A",
			wantWeight: 2,
		},
		{
			name:       "Whitespace around parts",
			input:      "  Hey Jude : 5 ",
			wantName:   "Hey Jude",
			wantWeight: 5,
		},
		{
			name:       "Colon inside name",
			input:      "Live: Paris:3",
			wantName:   "Live: Paris",
			wantWeight: 3,
		},
		{
			name:    "Missing weight separator",
			input:   "A",
			wantErr: playlisterrors.ErrInvalidInput,
		},
		{
			name:    "Non numeric weight",
			input:   "A:lots",
			wantErr: playlisterrors.ErrInvalidInput,
		},
		{
			name:    "Zero weight",
			input:   "A:0",
			wantErr: playlisterrors.ErrInvalidWeight,
		},
		{
			name:    "Negative weight",
			input:   "A:-2",
			wantErr: playlisterrors.ErrInvalidWeight,
		},
		{
			name:    "Empty name",
			input:   ":4",
			wantErr: playlisterrors.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song, err := ParseSong(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseSong(%q) error = %v, expected %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSong(%q) failed: %v", tt.input, err)
			}
			if song.Name != tt.wantName || song.Weight.Int64() != tt.wantWeight {
				t.Errorf("ParseSong(%q) = %s/%d, expected %s/%d", tt.input, song.Name, song.Weight, tt.wantName, tt.wantWeight)
			}
		})
	}
}

func TestParseSongList(t *testing.T) {
	songs, err := ParseSongList("A:2,B:1,C:5")
	if err != nil {
		t.Fatalf("ParseSongList failed: %v", err)
	}
	if len(songs) != 3 {
		t.Fatalf("Expected 3 songs, got %d", len(songs))
	}
	if songs[2].Name != "C" || songs[2].Weight != 5 {
		t.Errorf("Expected C/5 last, got %v", songs[2])
	}

	songs, err = ParseSongList("   ")
	if err != nil || len(songs) != 0 {
		t.Errorf("Blank list should parse to nothing, got %v (%v)", songs, err)
	}

	if _, err := ParseSongList("A:2,,B:1"); !errors.Is(err, playlisterrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty item, got %v", err)
	}
}

func TestValidateSongName(t *testing.T) {
	if err := ValidateSongName("Rav"); err != nil {
		t.Errorf("Expected valid name, got %v", err)
	}
	if err := ValidateSongName(strings.Repeat("x", MaxSongNameLength+1)); !errors.Is(err, playlisterrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for long name, got %v", err)
	}
	if err := ValidateWeight(0); !errors.Is(err, playlisterrors.ErrInvalidWeight) {
		t.Errorf("Expected ErrInvalidWeight, got %v", err)
	}
	if err := ValidateSongName("bad\nname"); !errors.Is(err, playlisterrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for control characters, got %v", err)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"hello big world", 12, "hello..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("TruncateString(%q, %d) = %q, expected %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}

func TestParseDrawScript(t *testing.T) {
	values, err := ParseDrawScript(" 0, 2 ,3")
	if err != nil {
		t.Fatalf("ParseDrawScript failed: %v", err)
	}
	if len(values) != 3 || values[0] != 0 || values[1] != 2 || values[2] != 3 {
		t.Errorf("Expected [0 2 3], got %v", values)
	}

	values, err = ParseDrawScript("")
	if err != nil || values != nil {
		t.Errorf("Empty script should parse to nothing, got %v (%v)", values, err)
	}

	for _, input := range []string{"0,x", "1,-2", "1,,2"} {
		if _, err := ParseDrawScript(input); !errors.Is(err, playlisterrors.ErrInvalidInput) {
			t.Errorf("ParseDrawScript(%q): expected ErrInvalidInput, got %v", input, err)
		}
	}
}
