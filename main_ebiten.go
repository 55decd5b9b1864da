//go:build ebiten && !sdl2

package main

import (
	"github.com/ushitora-anqou/wsiwindow/window"
)

func runEbiten() error {
	opts, stop, err := setup()
	if err != nil {
		return err
	}
	defer stop()

	wind := window.NewEbitenWindow(opts.title, opts.width, opts.height, int(opts.fps))
	return wind.Run(func(w window.Window) error {
		drainEvents(w)
		return nil
	})
}

func main() {
	err := runEbiten()
	if err != nil {
		fatal(err)
	}
}
