package galaxian

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vovakirdan/shop-escalation/internal/core"
)

func TestSnapshotDoesNotMutate(t *testing.T) {
	s := startedGame(t, 7777)
	for i := 0; i < 120; i++ {
		Step(s, Input{Shoot: true}, tickDT)
	}
	rng := s.RNGState

	first := TakeSnapshot(s).Hash()
	second := TakeSnapshot(s).Hash()

	if first != second {
		t.Error("consecutive snapshots differ")
	}
	if s.RNGState != rng {
		t.Error("snapshot advanced the rng")
	}
}

func TestSnapshotRounding(t *testing.T) {
	s := startedGame(t, 1)
	s.Player.X = 100.5
	s.Player.Invuln = 0.456
	s.Timers.DoubleXP = 3.14159

	snap := TakeSnapshot(s)

	if snap.Player.X != 101 {
		t.Errorf("player x = %d, expected 101", snap.Player.X)
	}
	if snap.Player.Invuln != 0.46 {
		t.Errorf("invuln = %v, expected 0.46", snap.Player.Invuln)
	}
	if snap.Timers.DoubleXP != 3.14 {
		t.Errorf("double xp = %v, expected 3.14", snap.Timers.DoubleXP)
	}
	if snap.FormationDir != 1 {
		t.Errorf("formation dir = %d", snap.FormationDir)
	}
}

func TestSnapshotJSON(t *testing.T) {
	s := startedGame(t, 1)

	data, err := TakeSnapshot(s).JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"mode", "difficultyProfile", "shop", "coordinateSystem", "upgrades", "inventory", "timers"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if fields["intermission"] != nil {
		t.Errorf("intermission = %v, expected null while playing", fields["intermission"])
	}
	if fields["lastDiveEnemyId"] != nil {
		t.Errorf("lastDiveEnemyId = %v, expected null before any dive", fields["lastDiveEnemyId"])
	}
	if !strings.Contains(string(data), `"origin":"top-left"`) {
		t.Error("coordinate system missing origin")
	}
}

func TestRenderOverlays(t *testing.T) {
	screen := core.NewScreen(100, 40)

	s := New(1)
	Render(s, screen)
	if !strings.Contains(screen.String(), "Press Enter to launch") {
		t.Error("menu overlay missing")
	}

	s = intermissionGame(t, 1000)
	Render(s, screen)
	out := screen.String()
	if !strings.Contains(out, "1. Rapid Fire") || !strings.Contains(out, "9. Double XP") {
		t.Errorf("shop rows missing:\n%s", out)
	}

	s = startedGame(t, 1)
	Render(s, screen)
	enemies := 0
	for y := hudRows; y < screen.Height(); y++ {
		enemies += strings.Count(screen.Row(y), string(GlyphEnemy))
	}
	if enemies != 40 {
		t.Errorf("enemy glyphs = %d, expected 40", enemies)
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := core.NewScreen(10, 5)
	Render(New(1), screen)
	if !strings.Contains(screen.Row(0), "terminal") {
		t.Errorf("row 0 = %q", screen.Row(0))
	}
}
