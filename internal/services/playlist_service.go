package services

import (
	"errors"
	"fmt"

	"github.com/vuongmanhnghia/song-playlist/internal/domain/entities"
	playlisterrors "github.com/vuongmanhnghia/song-playlist/internal/errors"
	"github.com/vuongmanhnghia/song-playlist/internal/metrics"
	"github.com/vuongmanhnghia/song-playlist/internal/random"
	"github.com/vuongmanhnghia/song-playlist/internal/validation"
	"github.com/vuongmanhnghia/song-playlist/pkg/logger"
)

// PlaylistService manages a weighted playlist with logging and metrics
type PlaylistService struct {
	playlist *entities.SafePlaylist
	source   random.Source
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewPlaylistService creates a service over an empty playlist
func NewPlaylistService(source random.Source, m *metrics.Metrics, log *logger.Logger) *PlaylistService {
	playlist, _ := entities.NewSafePlaylist(nil)
	return &PlaylistService{
		playlist: playlist,
		source:   source,
		metrics:  m,
		logger:   log,
	}
}

// ID returns the playlist ID
func (s *PlaylistService) ID() string {
	return s.playlist.ID()
}

// Load replaces the playlist contents with songs
func (s *PlaylistService) Load(songs []entities.Entry) error {
	if err := s.playlist.Replace(songs); err != nil {
		s.recordError(metrics.OpLoad, err)
		s.logger.WithPlaylist(s.ID()).WithError(err).Error("Failed to load playlist")
		return err
	}

	s.metrics.SongsAdded.Add(float64(len(songs)))
	s.observe()
	s.logger.WithPlaylist(s.ID()).
		WithField("songs", len(songs)).
		WithField("total_weight", s.playlist.TotalWeight()).
		Info("Playlist loaded")
	return nil
}

// LoadFromString parses "name:weight" pairs and loads them
func (s *PlaylistService) LoadFromString(input string) error {
	songs, err := validation.ParseSongList(input)
	if err != nil {
		s.recordError(metrics.OpLoad, err)
		return err
	}
	return s.Load(songs)
}

// AddSong adds a song to the end of the playlist
func (s *PlaylistService) AddSong(name string, weight int64) error {
	name = validation.SanitizeInput(name)
	if err := validation.ValidateSongName(name); err != nil {
		s.recordError(metrics.OpInsert, err)
		return err
	}

	if err := s.playlist.Insert(name, weight); err != nil {
		s.recordError(metrics.OpInsert, err)
		s.logger.WithSong(s.ID(), name, weight).WithError(err).Warn("Failed to add song")
		return err
	}

	s.metrics.SongsAdded.Inc()
	s.observe()
	s.logger.WithSong(s.ID(), name, weight).Info("Song added")
	return nil
}

// RemoveSong removes the first song with this name
func (s *PlaylistService) RemoveSong(name string) (entities.Entry, error) {
	song, err := s.playlist.RemoveByName(validation.SanitizeInput(name))
	if err != nil {
		s.recordError(metrics.OpRemove, err)
		s.logger.WithPlaylist(s.ID()).WithField("name", name).Warn("Song not in playlist")
		return entities.Entry{}, err
	}

	s.metrics.SongsRemoved.Inc()
	s.observe()
	s.logger.WithSong(s.ID(), song.Name, song.Weight.Int64()).Info("Song removed")
	return song, nil
}

// PlayNext draws a song by weight and removes it
func (s *PlaylistService) PlayNext() (entities.Entry, error) {
	song, err := s.playlist.DrawWeighted(s.source)
	if err != nil {
		s.recordError(metrics.OpPlay, err)
		s.logger.WithPlaylist(s.ID()).Debug("Nothing left to play")
		return entities.Entry{}, err
	}

	s.metrics.SongsPlayed.Inc()
	s.observe()
	s.logger.WithSong(s.ID(), song.Name, song.Weight.Int64()).
		WithField("remaining", s.playlist.Len()).
		Info("Now playing")
	return song, nil
}

// Songs returns a copy of all songs in play order
func (s *PlaylistService) Songs() []entities.Entry {
	return s.playlist.Snapshot()
}

// Size returns the number of songs
func (s *PlaylistService) Size() int {
	return s.playlist.Len()
}

// Chance returns the probability the named song plays next
func (s *PlaylistService) Chance(name string) (float64, error) {
	return s.playlist.Probability(name)
}

// Render formats the playlist for display
func (s *PlaylistService) Render() string {
	return s.playlist.String()
}

func (s *PlaylistService) observe() {
	s.metrics.Observe(s.playlist.Len(), s.playlist.TotalWeight())
}

func (s *PlaylistService) recordError(operation string, err error) {
	s.metrics.RecordError(operation, errorReason(err))
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, playlisterrors.ErrPlaylistEmpty):
		return "empty"
	case errors.Is(err, playlisterrors.ErrSongNotFound):
		return "not_found"
	case errors.Is(err, playlisterrors.ErrInvalidWeight):
		return "invalid_weight"
	case errors.Is(err, playlisterrors.ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, playlisterrors.ErrWeightOverflow):
		return "overflow"
	case errors.Is(err, playlisterrors.ErrDrawOutOfRange):
		return "draw_out_of_range"
	case errors.Is(err, playlisterrors.ErrInvalidInput):
		return "invalid_input"
	default:
		return fmt.Sprintf("%T", err)
	}
}
