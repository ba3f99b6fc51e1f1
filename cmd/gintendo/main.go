// Command gintendo runs an iNES ROM file.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/nesrom"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	debug   = flag.Bool("debug", false, "Start the debugger REPL instead of the video frontend.")
)

func main() {
	flag.Parse()

	rom, err := nesrom.Load(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	gintendo := console.New(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *debug {
		gintendo.BIOS(ctx)
		os.Exit(0)
	}

	go gintendo.Run(ctx)

	if err := ebiten.RunGame(gintendo); err != nil {
		log.Fatal(err)
	}
}
