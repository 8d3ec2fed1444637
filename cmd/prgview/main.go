// Command prgview opens a window listing a Commodore program file.
//
//	prgview [-v version] file.prg
//
// Arrow keys, Page Up/Down and the mouse wheel scroll the listing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"typein/pkg/listing"
	"typein/pkg/tokens"
	"typein/pkg/utils"
)

const (
	screenWidth  = 640
	screenHeight = 480
	charHeight   = 16 // debug font line height
)

type Game struct {
	title string
	view  viewport
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.view.scroll(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.view.scroll(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.view.scroll(g.view.rows)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.view.scroll(-g.view.rows)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.view.top = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.view.scroll(len(g.view.lines))
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view.scroll(-int(dy))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(listing.Background)
	ebitenutil.DebugPrintAt(screen, g.title, 0, 0)
	for i, line := range g.view.visible() {
		ebitenutil.DebugPrintAt(screen, line, 0, (i+1)*charHeight)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	version := flag.String("v", string(tokens.V2), "BASIC version of the keyword table")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: prgview [-v version] file.prg")
		os.Exit(2)
	}
	path, _, err := utils.GetPathInfo(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to resolve path: %v", err)
	}

	kw, err := tokens.Keywords(tokens.Version(*version))
	if err != nil {
		log.Fatalf("Keyword table: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open program file: %v", err)
	}
	lines, err := listing.Read(f, kw)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to read program file: %v", err)
	}

	game := &Game{
		title: fmt.Sprintf("%s  (%d lines)", path, len(lines)),
		view:  viewport{lines: lines, rows: screenHeight/charHeight - 1},
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Typein PRG Viewer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
