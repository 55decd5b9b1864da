package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/sqweek/dialog"
	"github.com/ushitora-anqou/wsiwindow/constant"
	"github.com/ushitora-anqou/wsiwindow/event"
	"github.com/ushitora-anqou/wsiwindow/keycode"
	"github.com/ushitora-anqou/wsiwindow/util"
	"github.com/ushitora-anqou/wsiwindow/window"
)

type options struct {
	title         string
	width, height int
	fps           float64
	trace         bool
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet(constant.WINDOW_TITLE, flag.ContinueOnError)
	fs.StringVar(&opts.title, "title", constant.WINDOW_TITLE, "window title")
	fs.IntVar(&opts.width, "width", constant.WINDOW_WIDTH, "window width")
	fs.IntVar(&opts.height, "height", constant.WINDOW_HEIGHT, "window height")
	fs.Float64Var(&opts.fps, "fps", constant.TARGET_FPS, "event polling rate")
	fs.BoolVar(&opts.trace, "trace", false, "log every event")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.fps < 1 {
		return nil, fmt.Errorf("invalid -fps %v: must be at least 1", opts.fps)
	}
	if os.Getenv("WSIWINDOW_TRACE") == "1" {
		opts.trace = true
	}
	return opts, nil
}

func startProfile() (func(), error) {
	filename := os.Getenv("WSIWINDOW_CPUPROFILE")
	if filename == "" {
		return func() {}, nil
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}

func setup() (*options, func(), error) {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		return nil, nil, err
	}
	if opts.trace {
		util.EnableTrace()
	}
	stop, err := startProfile()
	if err != nil {
		return nil, nil, err
	}
	return opts, stop, nil
}

// drainEvents handles every queued event and returns how many there were.
func drainEvents(wind window.Window) int {
	n := 0
	for ev := wind.GetEvent(); !event.IsNone(ev); ev = wind.GetEvent() {
		handleEvent(wind, ev)
		n++
	}
	return n
}

func handleEvent(wind window.Window, ev event.Event) {
	util.Trace("%v", ev)

	switch e := ev.(type) {
	case event.Key:
		if e.Action != event.KeyDown {
			return
		}
		switch e.Keycode {
		case keycode.KeyEscape:
			wind.Close()
		case keycode.KeyTab:
			wind.SetTextInput(!wind.TextInput())
			log.Printf("text input: %v", wind.TextInput())
		}
	case event.Text:
		log.Printf("text: %q", e.Str)
	case event.Shape:
		log.Printf("window: %dx%d at %d,%d", e.Width, e.Height, e.X, e.Y)
	case event.Focus:
		log.Printf("focus: %v", e.HasFocus)
	case event.Mouse:
		if e.Action == event.MouseDown {
			log.Printf("click: button %d at %d,%d", e.Btn, e.X, e.Y)
		}
	case event.Touch:
		if e.Action == event.MouseDown {
			log.Printf("touch: %d at %.0f,%.0f", e.ID, e.X, e.Y)
		}
	case event.None:
	}
}

func fatal(err error) {
	dialog.Message("%v", err).Title(constant.WINDOW_TITLE).Error()
	log.Fatal(err)
}
