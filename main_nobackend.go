//go:build !sdl2 && !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fatal(fmt.Errorf("Usage: go build -tags sdl2|ebiten, then run %s [-title T] [-width W] [-height H] [-trace]", os.Args[0]))
}
