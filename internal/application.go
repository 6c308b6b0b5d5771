package application

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictacgpu/internal/config"
	"github.com/rocketscienceinc/tictacgpu/internal/dispatch"
	"github.com/rocketscienceinc/tictacgpu/internal/gpu"
	"github.com/rocketscienceinc/tictacgpu/internal/render"
	"github.com/rocketscienceinc/tictacgpu/internal/service"
	"github.com/rocketscienceinc/tictacgpu/internal/transport/redis"
	"github.com/rocketscienceinc/tictacgpu/internal/transport/window"
	"github.com/rocketscienceinc/tictacgpu/internal/usecase"
)

const spectatorDialTimeout = 2 * time.Second

// RunApp - runs the application. It must be called from the main thread.
//
// Teardown runs in reverse order of the defers below: the GPU context is shut down before the
// window it presents to is destroyed.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	win, err := window.New(logger, window.Options{
		Title:     conf.Window.Title,
		Width:     conf.Window.Width,
		Height:    conf.Window.Height,
		Resizable: conf.Window.Resizable,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	gpuContext, err := gpu.New(logger, win, gpu.Options{
		PowerPreference: conf.Render.PowerPreference,
	})
	if err != nil {
		return err
	}
	defer gpuContext.Shutdown()

	renderer, err := render.NewRenderer(logger, gpuContext, palette(conf))
	if err != nil {
		return err
	}
	defer renderer.Release()

	feed := connectSpectator(logger, conf.Spectator)
	if feed != nil {
		defer func() {
			if err := feed.Close(); err != nil {
				log.Error("could not close spectator feed", "error", err)
			}
		}()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game randomness
	bot := service.NewBotService(rng)

	var roundFeed usecase.RoundFeed
	if feed != nil {
		roundFeed = feed
	}
	game := usecase.NewGameManager(logger, rng, bot, renderer, roundFeed)

	dispatcher := dispatch.New(logger, game, renderer, gpuContext, win)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		win.RequestClose()
	}()

	log.Info("Starting event loop")
	if err = win.Run(dispatcher.Dispatch); err != nil {
		return err
	}

	log.Info("Event loop finished, shutting down")
	return nil
}

// connectSpectator - returns nil when the feed is disabled or Redis cannot be reached.
func connectSpectator(logger *slog.Logger, conf config.Spectator) *redis.Client {
	if !conf.Enabled {
		return nil
	}

	log := logger.With("component", "spectator")

	ctx, cancel := context.WithTimeout(context.Background(), spectatorDialTimeout)
	defer cancel()

	client, err := redis.Connect(ctx, conf.Redis.GetRedisAddr(), conf.Channel, conf.Timeout)
	if err != nil {
		log.Warn("spectator feed disabled", "error", err)
		return nil
	}

	log.Info("spectator feed enabled", "addr", conf.Redis.GetRedisAddr(), "channel", conf.Channel)
	return client
}

func palette(conf *config.Config) render.Palette {
	colors := render.DefaultPalette()
	colors.Background = config.Color(conf.Render.Background, colors.Background)
	colors.RoundOver = config.Color(conf.Render.RoundOver, colors.RoundOver)
	return colors
}
