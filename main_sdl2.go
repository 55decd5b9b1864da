//go:build sdl2

package main

import (
	"github.com/ushitora-anqou/wsiwindow/window"
)

func runSDL2() error {
	opts, stop, err := setup()
	if err != nil {
		return err
	}
	defer stop()

	// Initialize SDL
	if err := window.SDLInitialize(); err != nil {
		return err
	}
	defer window.SDLQuit()

	// Create a window
	wind, err := window.NewSDLWindow(opts.title, int32(opts.width), int32(opts.height), nil)
	if err != nil {
		return err
	}
	defer wind.Close()

	synchronizer := window.NewTimeSynchronizer(wind, opts.fps)
	for wind.Running() {
		drainEvents(wind)
		synchronizer.MaySleep()
	}
	return nil
}

func main() {
	err := runSDL2()
	if err != nil {
		fatal(err)
	}
}
