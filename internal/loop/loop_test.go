package loop

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/lonely-shooter/internal/draw"
	"github.com/tomz197/lonely-shooter/internal/object"
)

func renderToString(t *testing.T, g *Game) string {
	t.Helper()
	var buf bytes.Buffer
	canvas := draw.NewCanvas(80, 40, g.Screen().W(), g.Screen().H())
	if err := renderFrame(draw.NewChunkWriter(&buf), canvas, g); err != nil {
		t.Fatalf("renderFrame: %v", err)
	}
	return buf.String()
}

func TestRenderMenu(t *testing.T) {
	out := renderToString(t, NewGame(Options{}))
	for _, want := range []string{"LONELY SHOOTER", "PRESS [ENTER] TO BEGIN", "PRESS [Q] TO QUIT"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}
	if strings.Contains(out, "LAST SCORE") {
		t.Error("menu shows a last score before any session")
	}
}

func TestRenderPlaying(t *testing.T) {
	g := startTestGame(emptyField())
	g.session.AddScore(125)
	g.Player().UpgradePower(0)

	out := renderToString(t, g.Game)
	for _, want := range []string{"SCORE 125", "x2", "A A A"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	if !strings.ContainsRune(out, draw.BlockFull) {
		t.Error("no field pixels drawn")
	}
}

func TestRenderLastScore(t *testing.T) {
	g := startTestGame(emptyField())
	g.session.AddScore(40)
	g.ReturnToMenu()

	if out := renderToString(t, g.Game); !strings.Contains(out, "LAST SCORE 40") {
		t.Error("menu does not show the last score")
	}
}

func TestDrawSpriteEveryKey(t *testing.T) {
	keys := []string{
		"player", "shield", "enemy", "bullet", "enemy_bullet", "missile",
		"asteroid_big", "explosion_ship", "boost", "powerup_shield", "powerup_missile", "unknown",
	}
	for _, key := range keys {
		canvas := draw.NewCanvas(80, 40, 480, 600)
		s := object.Sprite{Key: key}
		s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H = 200, 200, 60, 60
		drawSprite(canvas, s)

		lit := false
		for x := 0; x < canvas.TerminalWidth() && !lit; x++ {
			for y := 0; y < canvas.TerminalHeight()*2 && !lit; y++ {
				lit = canvas.Pixel(x, y)
			}
		}
		if !lit {
			t.Errorf("%s: nothing drawn", key)
		}
	}
}

func TestRunQuitsOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	err := Run(bufio.NewReader(strings.NewReader("")), &out, RunOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 40, nil },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() == 0 {
		t.Error("nothing written to the terminal")
	}
}
