package main

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/render"
	"github.com/hailam/chessboard/internal/storage"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRunDefault(t *testing.T) {
	out, err := runArgs(t)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff(render.Text(board.New()), out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFENInfo(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	out, err := runArgs(t, "-fen", fen, "-info")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		". . . . P . . . \n",
		"FEN: " + fen + "\n",
		"Side to move: Black\n",
		"Castling: KQkq\n",
		"En passant: e3\n",
		"Half-move clock: 0\n",
		"Full move: 1\n",
		"Hash: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunBadInput(t *testing.T) {
	if _, err := runArgs(t, "-fen", "not a fen"); !errors.Is(err, board.ErrMalformedPosition) {
		t.Errorf("bad FEN err = %v, want ErrMalformedPosition", err)
	}
	if _, err := runArgs(t, "-fen", board.StartFEN, "-load", "x"); err == nil {
		t.Error("-fen with -load should fail")
	}
	if _, err := runArgs(t, "-nope"); err == nil {
		t.Error("unknown flag should fail")
	}
	if _, err := runArgs(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h err = %v, want flag.ErrHelp", err)
	}
}

func TestRunSaveLoadList(t *testing.T) {
	db := t.TempDir()
	fen := "4k3/8/8/8/8/8/8/4K2R w K - 3 20"

	out, err := runArgs(t, "-db", db, "-fen", fen, "-save", "endgame")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(out, "saved endgame\n") {
		t.Errorf("save output = %q", out)
	}

	out, err = runArgs(t, "-db", db, "-save", "-")
	if err != nil {
		t.Fatalf("save auto: %v", err)
	}
	if !strings.Contains(out, "saved ") {
		t.Errorf("auto save output = %q", out)
	}

	out, err = runArgs(t, "-db", db, "-load", "endgame", "-info")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(out, "FEN: "+fen) {
		t.Errorf("loaded wrong position:\n%s", out)
	}

	out, err = runArgs(t, "-db", db, "-list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("list = %q, want 2 lines", out)
	}
	if !strings.Contains(out, "endgame\t"+fen+"\t") {
		t.Errorf("list missing endgame: %q", out)
	}

	if _, err := runArgs(t, "-db", db, "-load", "missing"); err == nil {
		t.Error("loading a missing position should fail")
	}
}

func TestRunImages(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "board.svg")
	pngPath := filepath.Join(dir, "board.png")

	if _, err := runArgs(t, "-svg", svgPath, "-png", pngPath, "-square", "20", "-flip"); err != nil {
		t.Fatalf("run: %v", err)
	}

	svg, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte(`<svg width="160" height="160"`)) {
		t.Errorf("svg file has no 160px root element:\n%s", svg)
	}

	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 160 {
		t.Errorf("png bounds = %v", img.Bounds())
	}
}

func TestRunColorPreference(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	color.NoColor = false

	db := t.TempDir()
	store, err := storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	prefs := storage.DefaultPreferences()
	prefs.ColorText = true
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	out, err := runArgs(t, "-db", db)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("saved color preference ignored:\n%q", out)
	}

	out, err = runArgs(t, "-db", db, "-color=false")
	if err != nil {
		t.Fatalf("run -color=false: %v", err)
	}
	if diff := cmp.Diff(render.Text(board.New()), out); diff != "" {
		t.Errorf("-color=false should override the preference (-want +got):\n%s", diff)
	}

	// Without a database the flag alone decides.
	if out, _ := runArgs(t); strings.Contains(out, "\x1b[") {
		t.Error("default run should not color")
	}
}
