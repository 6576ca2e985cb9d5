package entities

import (
	"iter"
	"slices"
	"sync"

	"github.com/vuongmanhnghia/song-playlist/internal/random"
)

// SafePlaylist guards a Playlist with a mutex for multi-goroutine callers
type SafePlaylist struct {
	id       string // fixed at construction, never guarded
	playlist *Playlist
	mu       sync.RWMutex
}

// NewSafePlaylist builds a guarded playlist from entries
func NewSafePlaylist(entries []Entry) (*SafePlaylist, error) {
	p, err := NewPlaylist(entries)
	if err != nil {
		return nil, err
	}
	return &SafePlaylist{id: p.ID, playlist: p}, nil
}

// ID returns the playlist ID. It survives Replace.
func (s *SafePlaylist) ID() string {
	return s.id
}

// Insert appends a song
func (s *SafePlaylist) Insert(name string, weight int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlist.Insert(name, weight)
}

// RemoveByName removes the first song with this name
func (s *SafePlaylist) RemoveByName(name string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlist.RemoveByName(name)
}

// DrawWeighted picks and removes a song.
// src is only called while the lock is held.
func (s *SafePlaylist) DrawWeighted(src random.Source) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlist.DrawWeighted(src)
}

// Replace swaps in a freshly built playlist, keeping the ID
func (s *SafePlaylist) Replace(entries []Entry) error {
	p, err := NewPlaylist(entries)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id
	s.playlist = p
	return nil
}

// Entries iterates over a snapshot taken when iteration starts
func (s *SafePlaylist) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range s.Snapshot() {
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot returns a copy of all songs (for display purposes)
func (s *SafePlaylist) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Collect(s.playlist.Entries())
}

// Len returns the number of songs
func (s *SafePlaylist) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playlist.Len()
}

// TotalWeight returns the sum of all weights
func (s *SafePlaylist) TotalWeight() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playlist.TotalWeight()
}

// Probability returns the chance the named song is drawn next
func (s *SafePlaylist) Probability(name string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playlist.Probability(name)
}

// String renders the playlist for display
func (s *SafePlaylist) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playlist.String()
}
