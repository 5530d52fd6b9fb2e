// Command chessboard prints a chess position as text, and can export it as
// SVG or PNG and keep named positions in a local database.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
	"github.com/hailam/chessboard/internal/storage"
)

// autoName asks -save for a generated position name.
const autoName = "-"

type options struct {
	fen      string
	load     string
	save     string
	list     bool
	color    bool
	colorSet bool
	info     bool
	svgPath  string
	pngPath  string
	square   int
	flip     bool
	dbDir    string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("chessboard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.fen, "fen", "", "position as FEN (default: starting position)")
	fs.StringVar(&o.load, "load", "", "load a saved position by name")
	fs.StringVar(&o.save, "save", "", `save the position under this name ("-" picks a name)`)
	fs.BoolVar(&o.list, "list", false, "list saved positions and exit")
	fs.BoolVar(&o.color, "color", false, "color the text output")
	fs.BoolVar(&o.info, "info", false, "print FEN, side to move, castling, en passant, clocks and hash")
	fs.StringVar(&o.svgPath, "svg", "", "write an SVG image to this file")
	fs.StringVar(&o.pngPath, "png", "", "write a PNG image to this file")
	fs.IntVar(&o.square, "square", render.DefaultSquareSize, "square size in pixels for -svg and -png")
	fs.BoolVar(&o.flip, "flip", false, "draw rank 1 at the top in images")
	fs.StringVar(&o.dbDir, "db", "", "database directory (default: user data directory)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "color" {
			o.colorSet = true
		}
	})
	if o.fen != "" && o.load != "" {
		return nil, errors.New("-fen and -load are mutually exclusive")
	}
	return o, nil
}

// needsStorage reports whether the run touches the database. An explicit
// -db also opens it so the saved preferences apply.
func (o *options) needsStorage() bool {
	return o.load != "" || o.save != "" || o.list || o.dbDir != ""
}

func openStorage(dir string) (*storage.Storage, error) {
	if dir == "" {
		return storage.NewStorage()
	}
	return storage.Open(dir)
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	var store *storage.Storage
	if o.needsStorage() {
		store, err = openStorage(o.dbDir)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	useColor := o.color
	if store != nil && !o.colorSet {
		prefs, err := store.LoadPreferences()
		if err != nil {
			return err
		}
		useColor = prefs.ColorText
	}

	if o.list {
		snaps, err := store.ListPositions()
		if err != nil {
			return err
		}
		for _, s := range snaps {
			fmt.Fprintf(stdout, "%s\t%s\t%016x\n", s.Name, s.FEN, s.Hash)
		}
		return nil
	}

	var b *board.Board
	switch {
	case o.load != "":
		b, err = store.LoadPosition(o.load)
	case o.fen != "":
		b, err = board.ParseFEN(o.fen)
	default:
		b = board.New()
	}
	if err != nil {
		return err
	}

	if useColor {
		fmt.Fprint(stdout, render.ColorText(b))
	} else if err := render.WriteText(stdout, b); err != nil {
		return err
	}

	if o.info {
		writeInfo(stdout, b)
	}

	geom := render.NewGeometry(o.square, o.flip)
	if o.svgPath != "" {
		doc := render.SVG(b, geom, render.DefaultTheme())
		if err := os.WriteFile(o.svgPath, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	if o.pngPath != "" {
		if err := writePNG(o.pngPath, b, geom); err != nil {
			return err
		}
	}

	if o.save != "" {
		name := o.save
		if name == autoName {
			name = ""
		}
		snap, err := store.SavePosition(name, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved %s\n", snap.Name)
	}
	return nil
}

func writeInfo(w io.Writer, b *board.Board) {
	fmt.Fprintf(w, "FEN: %s\n", b.FEN())
	fmt.Fprintf(w, "Side to move: %s\n", b.SideToMove)
	fmt.Fprintf(w, "Castling: %s\n", b.CastlingRights())
	fmt.Fprintf(w, "En passant: %s\n", b.EnPassant)
	fmt.Fprintf(w, "Half-move clock: %d\n", b.HalfMoveClock)
	fmt.Fprintf(w, "Full move: %d\n", b.FullMoveNumber)
	fmt.Fprintf(w, "Hash: %016x\n", b.Hash())
}

func writePNG(path string, b *board.Board, geom render.Geometry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if err := render.WritePNG(f, b, geom, render.DefaultTheme()); err != nil {
		f.Close()
		return fmt.Errorf("write png: %w", err)
	}
	return f.Close()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("chessboard: ")

	if err := run(os.Args[1:], color.Output, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
