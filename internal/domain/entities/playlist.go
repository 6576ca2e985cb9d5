package entities

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
	"github.com/vuongmanhnghia/song-playlist/internal/errors"
	"github.com/vuongmanhnghia/song-playlist/internal/random"
)

// Playlist is an ordered collection of weighted songs.
// Traversal order is insertion order: initial entries first, then each
// Insert appended at the end. Remove and draw act on the first match in
// that order. Playlist is not safe for concurrent use; see SafePlaylist.
type Playlist struct {
	ID          string
	entries     []Entry
	totalWeight int64
}

// NewPlaylist builds a playlist from entries, keeping their order.
// No playlist is returned if any entry is invalid.
func NewPlaylist(entries []Entry) (*Playlist, error) {
	p := &Playlist{
		ID:      uuid.New().String(),
		entries: make([]Entry, 0, len(entries)),
	}

	for i, e := range entries {
		if err := p.append(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return p, nil
}

// Insert appends a song. Duplicate names are not rejected.
func (p *Playlist) Insert(name string, weight int64) error {
	e, err := NewEntry(name, weight)
	if err != nil {
		return err
	}
	return p.append(e)
}

// RemoveByName removes and returns the first song with exactly this name
func (p *Playlist) RemoveByName(name string) (Entry, error) {
	for i, e := range p.entries {
		if e.Name == name {
			p.removeAt(i)
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", errors.ErrSongNotFound, name)
}

// DrawWeighted picks a song with probability weight/total, removes it and
// returns it. The draw is exact integer arithmetic over [0, total) so the
// scan always ends on a song. A source value outside that range fails with
// ErrDrawOutOfRange and leaves the playlist unchanged.
func (p *Playlist) DrawWeighted(src random.Source) (Entry, error) {
	if len(p.entries) == 0 {
		return Entry{}, errors.ErrPlaylistEmpty
	}

	r := src.Int64N(p.totalWeight)
	if r < 0 || r >= p.totalWeight {
		return Entry{}, fmt.Errorf("%w: got %d, want [0, %d)", errors.ErrDrawOutOfRange, r, p.totalWeight)
	}

	for i, e := range p.entries {
		w := e.Weight.Int64()
		if r < w {
			p.removeAt(i)
			return e, nil
		}
		r -= w
	}

	// unreachable while totalWeight matches the entries
	return Entry{}, fmt.Errorf("%w: scan ended with %d left of %d", errors.ErrDrawOutOfRange, r, p.totalWeight)
}

// Entries yields a copy of every song in traversal order.
// The sequence can be ranged over any number of times.
func (p *Playlist) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range p.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of songs
func (p *Playlist) Len() int {
	return len(p.entries)
}

// TotalWeight returns the sum of all weights
func (p *Playlist) TotalWeight() int64 {
	return p.totalWeight
}

// Contains reports whether a song with this name is present
func (p *Playlist) Contains(name string) bool {
	for _, e := range p.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Probability returns the chance the first song with this name is drawn next
func (p *Playlist) Probability(name string) (float64, error) {
	for _, e := range p.entries {
		if e.Name == name {
			return float64(e.Weight) / float64(p.totalWeight), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrSongNotFound, name)
}

// String renders the playlist for display
func (p *Playlist) String() string {
	var sb strings.Builder
	sb.WriteString("Song PlayList :\n")
	for e := range p.Entries() {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	sb.WriteString("-------------")
	return sb.String()
}

// append validates e and adds it; on error nothing changes
func (p *Playlist) append(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	total, err := e.Weight.AddTo(p.totalWeight)
	if err != nil {
		return err
	}
	p.entries = append(p.entries, e)
	p.totalWeight = total
	return nil
}

func (p *Playlist) removeAt(i int) {
	p.totalWeight -= p.entries[i].Weight.Int64()
	copy(p.entries[i:], p.entries[i+1:])
	p.entries[len(p.entries)-1] = Entry{}
	p.entries = p.entries[:len(p.entries)-1]
}
