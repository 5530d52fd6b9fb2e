// chessboard - shows a chess position in a window
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	fenFlag    = flag.String("fen", "", "position to show, as FEN (default: starting position)")
	loadFlag   = flag.String("load", "", "show a saved position by name")
	flipFlag   = flag.Bool("flip", false, "draw rank 1 at the top")
	squareFlag = flag.Int("square", 0, "square size in pixels (default: saved preference)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns the storage handle so it is closed on every return path.
func run() error {
	store, storeErr := storage.NewStorage()
	if storeErr != nil {
		log.Printf("Warning: Failed to initialize storage: %v", storeErr)
	}

	prefs := storage.DefaultPreferences()
	if store != nil {
		defer store.Close()
		loaded, err := store.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			prefs = loaded
		}
	}

	view := viewPreferences(prefs, *flipFlag, *squareFlag)

	b, err := loadBoard(store, storeErr)
	if err != nil {
		return err
	}

	game := ui.NewGame(b, view)
	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("chessboard - " + b.FEN())

	if err := ebiten.RunGame(game); err != nil {
		return err
	}

	if store != nil {
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("Warning: Failed to save preferences: %v", err)
		}
	}
	return nil
}

// viewPreferences applies the one-off flags to a copy of prefs, so the
// saved preferences are never changed by them.
func viewPreferences(prefs *storage.Preferences, flip bool, square int) *storage.Preferences {
	view := *prefs
	if flip {
		view.Flipped = true
	}
	if square > 0 {
		view.SquareSize = square
	}
	return &view
}

func loadBoard(store *storage.Storage, storeErr error) (*board.Board, error) {
	switch {
	case *loadFlag != "":
		if store == nil {
			return nil, fmt.Errorf("load %q: storage unavailable: %w", *loadFlag, storeErr)
		}
		return store.LoadPosition(*loadFlag)
	case *fenFlag != "":
		return board.ParseFEN(*fenFlag)
	default:
		return board.New(), nil
	}
}
