package entities

import (
	"fmt"

	"github.com/vuongmanhnghia/song-playlist/internal/domain/valueobjects"
	"github.com/vuongmanhnghia/song-playlist/internal/errors"
)

// Entry is one playable song and its relative popularity
type Entry struct {
	Name   string              `json:"name"`
	Weight valueobjects.Weight `json:"weight"`
}

// NewEntry creates a validated entry
func NewEntry(name string, weight int64) (Entry, error) {
	e := Entry{Name: name, Weight: valueobjects.Weight(weight)}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Validate checks the name is set and the weight is positive
func (e Entry) Validate() error {
	if e.Name == "" {
		return errors.ErrInvalidName
	}
	if err := e.Weight.Validate(); err != nil {
		return fmt.Errorf("song %q: %w", e.Name, err)
	}
	return nil
}

// String formats the entry the way the playlist printer shows it
func (e Entry) String() string {
	return fmt.Sprintf("Song name: %s, Popularity: %d", e.Name, e.Weight)
}
