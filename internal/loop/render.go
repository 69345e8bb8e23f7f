package loop

import (
	"strconv"
	"strings"

	"github.com/tomz197/lonely-shooter/internal/draw"
	"github.com/tomz197/lonely-shooter/internal/object"
)

// hudBand matches the strip at the top of the field that player shots vanish under.
const hudBand = 35

// renderFrame draws one complete frame into out and flushes it.
func renderFrame(out *draw.ChunkWriter, canvas *draw.Canvas, game *Game) error {
	out.ClearScreen()
	canvas.Clear()

	screen := game.Screen()
	hud := game.HUD()
	if hud.State != StateMenu {
		for _, s := range game.Snapshot() {
			drawSprite(canvas, s)
		}
		canvas.Line(draw.Point{X: 0, Y: hudBand}, draw.Point{X: screen.W(), Y: hudBand})
	}
	drawFieldEdges(canvas, screen)

	if err := canvas.Render(out); err != nil {
		return err
	}

	if hud.State == StateMenu {
		drawMenu(out, canvas, screen, hud)
	} else {
		drawHUD(out, canvas, screen, hud)
	}
	return out.Flush()
}

// drawFieldEdges marks the sides of the play field when the terminal is wider.
func drawFieldEdges(canvas *draw.Canvas, screen object.Screen) {
	canvas.Line(draw.Point{X: 0, Y: 0}, draw.Point{X: 0, Y: screen.H()})
	canvas.Line(draw.Point{X: screen.W(), Y: 0}, draw.Point{X: screen.W(), Y: screen.H()})
}

// drawSprite draws a sprite as a simple vector shape keyed by its visual key.
func drawSprite(c *draw.Canvas, s object.Sprite) {
	r := s.Rect
	cx, cy := r.Center()

	switch {
	case s.Key == "player":
		c.Polygon([]draw.Point{
			{X: cx, Y: r.Top()},
			{X: r.Right(), Y: r.Bottom()},
			{X: cx, Y: r.Bottom() - r.H/4},
			{X: r.Left(), Y: r.Bottom()},
		}, true)
	case s.Key == "shield":
		c.Circle(cx, cy, r.W/2)
	case s.Key == "enemy":
		c.Polygon([]draw.Point{
			{X: r.Left(), Y: r.Top()},
			{X: r.Right(), Y: r.Top()},
			{X: cx, Y: r.Bottom()},
		}, false)
	case s.Key == "bullet" || s.Key == "enemy_bullet":
		c.Rect(r.X, r.Y, r.W, r.H, true)
	case s.Key == "missile":
		c.Polygon([]draw.Point{
			{X: cx, Y: r.Top()},
			{X: r.Right(), Y: r.Bottom()},
			{X: r.Left(), Y: r.Bottom()},
		}, false)
	case strings.HasPrefix(s.Key, "asteroid"):
		c.Polygon(draw.RegularPolygon(cx, cy, r.W/2, 7, s.Angle), false)
	case strings.HasPrefix(s.Key, "explosion"):
		// Rings grow over the first half of the animation.
		grow := min(float64(s.Frame+1)/3, 1)
		c.Circle(cx, cy, r.W/2*grow)
		c.Polygon(draw.RegularPolygon(cx, cy, r.W/4*grow, 5, float64(s.Frame*20)), false)
	case s.Key == "boost":
		c.Line(draw.Point{X: cx, Y: cy - r.H/4}, draw.Point{X: cx, Y: cy + r.H/4})
	case s.Key == "powerup_shield":
		c.Circle(cx, cy, r.W/2)
		c.Plot(cx, cy)
	case s.Key == "powerup_missile":
		c.Polygon(draw.RegularPolygon(cx, cy, r.W/2, 4, -90), true)
	default:
		c.Rect(r.X, r.Y, r.W, r.H, false)
	}
}

// drawHUD writes the shield bar, score and lives into the top band.
func drawHUD(out *draw.ChunkWriter, canvas *draw.Canvas, screen object.Screen, hud HUD) {
	first, last := canvas.FieldColumns()
	_, row := canvas.Cell(0, hudBand/2)
	centerCol, _ := canvas.Cell(screen.W()/2, 0)

	out.WriteAt(first+1, row, draw.Bar(hud.Shield, object.MaxShield, 10))
	out.WriteCentered(centerCol, row, "SCORE "+strconv.Itoa(hud.Score))

	lives := strings.Repeat("A ", hud.Lives)
	if hud.Upgrade > object.MinUpgrade {
		lives = "x" + strconv.Itoa(hud.Upgrade) + " " + lives
	}
	out.WriteAt(max(last-len(lives), first), row, lives)
}

// drawMenu writes the title screen.
func drawMenu(out *draw.ChunkWriter, canvas *draw.Canvas, screen object.Screen, hud HUD) {
	col, row := canvas.Cell(screen.W()/2, screen.H()/2)

	out.WriteBold(col-len("LONELY SHOOTER")/2, row-6, "LONELY SHOOTER")
	out.WriteCentered(col, row-2, "PRESS [ENTER] TO BEGIN")
	out.WriteCentered(col, row, "PRESS [Q] TO QUIT")
	out.WriteCentered(col, row+3, "ARROWS / WASD  move")
	out.WriteCentered(col, row+4, "SPACE  shoot")
	if hud.Score > 0 {
		out.WriteCentered(col, row+7, "LAST SCORE "+strconv.Itoa(hud.Score))
	}
}
