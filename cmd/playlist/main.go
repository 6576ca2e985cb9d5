package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vuongmanhnghia/song-playlist/internal/config"
	playlisterrors "github.com/vuongmanhnghia/song-playlist/internal/errors"
	"github.com/vuongmanhnghia/song-playlist/internal/metrics"
	"github.com/vuongmanhnghia/song-playlist/internal/random"
	"github.com/vuongmanhnghia/song-playlist/internal/services"
	"github.com/vuongmanhnghia/song-playlist/internal/validation"
	"github.com/vuongmanhnghia/song-playlist/pkg/logger"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so deferred cleanup runs before exit
func realMain() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	songs := flag.String("songs", cfg.Songs, "initial songs as name:weight pairs")
	plays := flag.Int("plays", cfg.PlayCount, "number of songs to play")
	add := flag.String("add", "", "song to add after the first play, as name:weight")
	remove := flag.String("remove", "", "song to remove after playing")
	script := flag.String("script", "", "fixed draw values, e.g. 0,2,3 (overrides RANDOM_SEED)")
	flag.Parse()

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	source, err := newSource(cfg, *script)
	if err != nil {
		fmt.Println(playlisterrors.GetUserMessage(err))
		log.WithError(err).Error("Invalid draw script")
		return 1
	}

	reg := prometheus.NewRegistry()
	svc := services.NewPlaylistService(source, metrics.New(reg), log)

	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr, reg)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("Metrics server stopped")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
		log.Infof("Serving metrics on %s", cfg.MetricsAddr)
	}

	if err := run(svc, *songs, *plays, *add, *remove); err != nil {
		fmt.Println(playlisterrors.GetUserMessage(err))
		log.WithError(err).Error("Playlist run failed")
		return 1
	}
	return 0
}

// newSource picks the draw source: a script, then a seed, then the clock
func newSource(cfg *config.Config, script string) (random.Source, error) {
	values, err := validation.ParseDrawScript(script)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		return random.NewSequence(values...), nil
	}
	if cfg.HasSeed {
		return random.NewSeeded(cfg.RandomSeed), nil
	}
	return random.NewFromTime(), nil
}

func run(svc *services.PlaylistService, songs string, plays int, add, remove string) error {
	if err := svc.LoadFromString(songs); err != nil {
		return playlisterrors.NewUserError(err, "Cannot load playlist: "+playlisterrors.GetUserMessage(err))
	}
	fmt.Println(svc.Render())

	fmt.Printf("Play %d songs\n", plays)
	for i := 0; i < plays; i++ {
		song, err := svc.PlayNext()
		if errors.Is(err, playlisterrors.ErrPlaylistEmpty) {
			fmt.Println(playlisterrors.GetUserMessage(err))
			break
		}
		if err != nil {
			return err
		}
		fmt.Printf("Song Name: %s\n", validation.TruncateString(song.Name, 36))

		if i == 0 && add != "" {
			if err := addSong(svc, add); err != nil {
				return err
			}
			fmt.Println(svc.Render())
		}
	}
	fmt.Println("-------------")

	if remove != "" {
		if _, err := svc.RemoveSong(remove); err != nil {
			// removing a song that was already played is not fatal
			fmt.Println(playlisterrors.GetUserMessage(err))
		}
	}

	fmt.Println(svc.Render())
	return nil
}

func addSong(svc *services.PlaylistService, input string) error {
	song, err := validation.ParseSong(input)
	if err != nil {
		return playlisterrors.WrapUserError(err, "Cannot add %q: %s", strings.TrimSpace(input),
			playlisterrors.GetUserMessage(err))
	}
	return svc.AddSong(song.Name, song.Weight.Int64())
}
