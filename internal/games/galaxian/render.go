package galaxian

import (
	"fmt"

	"github.com/vovakirdan/shop-escalation/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	GlyphEnemy       = 'W'
	GlyphDiver       = 'V'
	GlyphPlayer      = 'A'
	GlyphDrone       = '^'
	GlyphBullet      = '|'
	GlyphEnemyBullet = '!'
)

const hudRows = 2

// Render draws the state into dst, scaling canvas pixels to cells. The top two
// rows hold the HUD.
func Render(s *State, dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 10 {
		dst.DrawText(0, 0, "terminal too small", core.ColorRed)
		return
	}

	renderHUD(s, dst)

	for _, e := range s.Enemies {
		if !e.Alive {
			continue
		}
		x, y := toCell(s, dst, e.X, e.Y)
		if e.Diving {
			dst.SetColored(x, y, GlyphDiver, core.ColorRed)
		} else {
			dst.SetColored(x, y, GlyphEnemy, core.ColorYellow)
		}
	}

	for _, b := range s.Bullets {
		x, y := toCell(s, dst, b.X, b.Y)
		color := core.ColorCyan
		if b.Source == SourceDrone {
			color = core.ColorBrightGreen
		}
		dst.SetColored(x, y, GlyphBullet, color)
	}
	for _, b := range s.EnemyBullets {
		x, y := toCell(s, dst, b.X, b.Y)
		dst.SetColored(x, y, GlyphEnemyBullet, core.ColorOrange)
	}

	if s.Drone.Active {
		x, y := toCell(s, dst, s.Drone.X, s.Drone.Y)
		dst.SetColored(x, y, GlyphDrone, core.ColorGreen)
	}

	px, py := toCell(s, dst, s.Player.X, s.Player.Y)
	playerColor := core.ColorCyan
	if s.Player.Invuln > 0 || s.Timers.InfLives > 0 {
		playerColor = core.ColorBrightCyan
	}
	dst.SetColored(px, py, GlyphPlayer, playerColor)

	renderOverlay(s, dst)
}

// toCell maps a canvas position to a screen cell below the HUD.
func toCell(s *State, dst *core.Screen, x, y float64) (int, int) {
	fieldH := dst.Height() - hudRows
	cx := int(x / s.Width * float64(dst.Width()))
	cy := hudRows + int(y/s.Height*float64(fieldH))
	return core.Clamp(cx, 0, dst.Width()-1), core.Clamp(cy, hudRows, dst.Height()-1)
}

func renderHUD(s *State, dst *core.Screen) {
	top := fmt.Sprintf("Score %d  Wave %d/%d  Lives %d/%d", s.Score, s.Wave, s.MaxWave, s.Lives, s.MaxLives)
	dst.DrawText(0, 0, top, core.ColorWhite)

	drone := "OFF"
	if s.Drone.Active {
		drone = "ON"
	}
	bottom := fmt.Sprintf("Credits %d  XP %d  Block %d  Drone %s  E %s  Q %s",
		s.Credits, s.XP, s.WaveBlock+1, drone,
		powerStatus(s.Timers.InfLives, s.Inventory.InfLivesCharges),
		powerStatus(s.Timers.DoubleXP, s.Inventory.DoubleXPCharges),
	)
	dst.DrawText(0, 1, bottom, core.ColorGray)
}

func powerStatus(timer float64, charges int) string {
	if timer > 0 {
		return fmt.Sprintf("%.1fs", timer)
	}
	return fmt.Sprintf("%dc", charges)
}

func renderOverlay(s *State, dst *core.Screen) {
	switch s.Mode {
	case ModeMenu:
		drawPanel(dst, []string{
			"Galaxian: Shop Escalation",
			"",
			fmt.Sprintf("Survive %d waves with shop breaks every %d rounds.", s.MaxWave, s.WavesPerBlock),
			"Move: Left/Right or A/D   Shoot: Space",
			"Pause: P   Restart: R   Powers: Q double XP, E infinity lives",
			"",
			"Press Enter to launch",
		})
	case ModePaused:
		drawPanel(dst, []string{"Paused", "", "Press P to resume"})
	case ModeGameOver:
		drawPanel(dst, []string{"Game Over", "You were overwhelmed", "", "Press R to restart"})
	case ModeVictory:
		drawPanel(dst, []string{"Victory", s.Intermission.Reason, "", "Press R to restart"})
	case ModeIntermission:
		renderShop(s, dst)
	}
}

func drawPanel(dst *core.Screen, lines []string) {
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		dst.DrawHLine(0, top+i, dst.Width(), ' ', core.ColorDefault)
		dst.DrawTextCentered(top+i, line, core.ColorWhite)
	}
}

func renderShop(s *State, dst *core.Screen) {
	for y := hudRows; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorDefault)
	}

	y := hudRows
	dst.DrawTextCentered(y, fmt.Sprintf("Intermission: Block %d", s.Intermission.NextBlock+1), core.ColorWhite)
	y++
	dst.DrawTextCentered(y, s.Intermission.Reason, core.ColorGray)
	y += 2

	for i, item := range ListItems(s) {
		level := fmt.Sprintf("x%d", item.Level)
		if item.MaxLevel != nil {
			level = fmt.Sprintf("%d/%d", item.Level, *item.MaxLevel)
		}
		color := core.ColorRed
		if item.Affordable {
			color = core.ColorGreen
		}
		line := fmt.Sprintf("%d. %-16s %5d cr  Lvl %-5s %s", i+1, item.Name, item.Cost, level, item.Description)
		dst.DrawText(2, y, line, color)
		y++
	}

	dst.DrawTextCentered(dst.Height()-1, "Buy with keys 1..9   Enter: start next block", core.ColorCyan)
}
