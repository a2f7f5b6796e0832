package pkg

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func TestConsole(t *testing.T) {
	color.NoColor = true
	cfg, err := loadArgs(t, "--depth", "1")
	if err != nil {
		t.Fatal(err)
	}
	log := zap.NewNop().Sugar()
	player, err := NewPlayer(cfg, log)
	if err != nil {
		t.Fatal(err)
	}

	in := strings.NewReader(strings.Join([]string{
		"4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1",
		"nonsense",
		"   ",
		"k7/8/8/8/8/8/5q2/7K w - - 0 1",
		"",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}, "\n"))
	var out bytes.Buffer
	if err := NewConsole(player, in, &out, log).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		Prompt + "FATBOT found move: d2d5 (Rxd5, score ",
		"Invalid FEN!",
		"No legal move: Stalemate",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
	// the empty line ends the session before the last position
	if n := strings.Count(got, Prompt); n != 5 {
		t.Errorf("prompted %d times, want 5", n)
	}
	if n := strings.Count(got, "Invalid FEN!"); n != 2 {
		t.Errorf("rejected %d lines, want the nonsense and the blank one", n)
	}
}

func TestConsoleEOF(t *testing.T) {
	color.NoColor = true
	cfg, _ := loadArgs(t, "--depth", "1", "--strategy", "firstmove")
	player, _ := NewPlayer(cfg, zap.NewNop().Sugar())
	var out bytes.Buffer
	in := strings.NewReader("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1\n")
	if err := NewConsole(player, in, &out, zap.NewNop().Sugar()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "FATBOT found move: a2a3 (a3, White to move)") {
		t.Errorf("unexpected output %q", out.String())
	}
}
