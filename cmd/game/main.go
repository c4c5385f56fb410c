// cmd/game/main.go
//
// Debug viewer for the simulation core. The core never queries this layer:
// it only hands out per-tick view snapshots and dispatches semantic events;
// everything drawn here is derived from those.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanepath"
)

const (
	worldScale   = 50.0
	worldOffsetX = 80.0
	worldOffsetY = 300.0
)

var towerKinds = []string{"TOWER_RAIL", "TOWER_LASER", "TOWER_PULSE"}

var towerColors = map[string]color.RGBA{
	"TOWER_RAIL":  {255, 50, 50, 255},
	"TOWER_LASER": {50, 100, 255, 255},
	"TOWER_PULSE": {180, 50, 230, 255},
}

var enemyColors = map[string]color.RGBA{
	"ENEMY_GRUNT": {50, 255, 50, 255},
	"ENEMY_TANK":  {194, 178, 128, 255},
	"ENEMY_SWARM": {255, 215, 0, 255},
}

func worldToScreen(p lanepath.Point) (float32, float32) {
	return float32(p.X*worldScale + worldOffsetX), float32(p.Y*worldScale + worldOffsetY)
}

func screenToWorld(x, y int) lanepath.Point {
	return lanepath.Point{
		X: (float64(x) - worldOffsetX) / worldScale,
		Y: (float64(y) - worldOffsetY) / worldScale,
	}
}

// Viewer implements ebiten.Game on top of the simulation core.
// 3x держит dt под клэмпом MaxDeltaTime при 60 TPS.
var speedSteps = []float64{1, 2, 3}

type Viewer struct {
	game         *app.Game
	face         font.Face
	selectedKind int
	speedStep    int
	lastReject   string
}

func NewViewer(game *app.Game) *Viewer {
	v := &Viewer{game: game, face: basicfont.Face7x13}
	game.EventDispatcher.Subscribe(event.GameOver, v)
	return v
}

// OnEvent satisfies event.Listener; the viewer is a pure sink.
func (v *Viewer) OnEvent(e event.Event) {
	if e.Type == event.GameOver {
		log.Println("game over")
	}
}

func (v *Viewer) Update() error {
	for i := range towerKinds {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			v.selectedKind = i
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if _, err := v.game.PlaceTower(towerKinds[v.selectedKind], screenToWorld(x, y)); err != nil {
			v.lastReject = err.Error()
		} else {
			v.lastReject = ""
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if id := v.towerUnderCursor(); id != 0 {
			if err := v.game.RequestUpgrade(id); err != nil {
				v.lastReject = err.Error()
			} else {
				v.lastReject = ""
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if id := v.towerUnderCursor(); id != 0 {
			v.unlockNextSkill(id)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.speedStep = (v.speedStep + 1) % len(speedSteps)
	}

	// Ускорение — чисто на стороне драйвера: ядро видит только больший dt.
	v.game.Update(speedSteps[v.speedStep] / float64(ebiten.TPS()))
	return nil
}

func (v *Viewer) towerUnderCursor() types.EntityID {
	x, y := ebiten.CursorPosition()
	cursor := screenToWorld(x, y)
	var best types.EntityID
	bestDist := 0.5 // world units
	for _, tv := range v.game.TowerViews() {
		d := lanepath.Dist(cursor, tv.Position)
		if d < bestDist {
			bestDist = d
			best = tv.ID
		}
	}
	return best
}

// unlockNextSkill walks the offense branch tier by tier — enough to exercise
// the skill tree from the viewer.
func (v *Viewer) unlockNextSkill(id types.EntityID) {
	for _, skillID := range []string{"SKILL_FOCUS_FIRE", "SKILL_OVERCHARGE", "SKILL_ANNIHILATE"} {
		err := v.game.UnlockSkill(id, skillID)
		if err == nil {
			v.lastReject = ""
			return
		}
		if err != app.ErrSkillAlreadyUnlocked {
			v.lastReject = err.Error()
			return
		}
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	// Lanes.
	for i := 0; i < v.game.Network.NumLanes(); i++ {
		wps := v.game.Network.Lane(i).Waypoints()
		for j := 1; j < len(wps); j++ {
			x0, y0 := worldToScreen(wps[j-1])
			x1, y1 := worldToScreen(wps[j])
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, color.RGBA{70, 100, 120, 220}, true)
		}
	}

	enemyPos := make(map[types.EntityID]lanepath.Point)
	for _, ev := range v.game.EnemyViews() {
		enemyPos[ev.ID] = ev.Position
	}

	// Towers, then fire lines on top.
	for _, tv := range v.game.TowerViews() {
		x, y := worldToScreen(tv.Position)
		c := towerColors[tv.Kind]
		vector.DrawFilledRect(screen, x-8, y-8, 16, 16, c, true)
		vector.StrokeCircle(screen, x, y, float32(tv.Range*worldScale), 1, color.RGBA{70, 70, 90, 120}, true)
		if tv.IsFiring {
			if target, ok := enemyPos[tv.TargetID]; ok {
				tx, ty := worldToScreen(target)
				vector.StrokeLine(screen, x, y, tx, ty, 1.5, color.RGBA{255, 255, 0, 200}, true)
			}
		}
		text.Draw(screen, fmt.Sprintf("%d", tv.Level), v.face, int(x)-3, int(y)+4, color.White)
	}

	// Enemies.
	for _, ev := range v.game.EnemyViews() {
		x, y := worldToScreen(ev.Position)
		c := enemyColors[ev.Kind]
		if ev.HitFlash {
			c = color.RGBA{255, 255, 255, 255}
		} else if ev.Slowed {
			c = color.RGBA{80, 160, 255, 255}
		}
		vector.DrawFilledCircle(screen, x, y, 7, c, true)
		// Health ring shrinks with remaining health.
		vector.StrokeCircle(screen, x, y, 7+2*float32(ev.HealthFrac), 1.5, color.RGBA{220, 60, 60, 220}, true)
	}

	hud := fmt.Sprintf("wave %d   credits %d   health %d   x%g   [1-3] tower: %s   LMB place   U upgrade   S skill   TAB speed",
		v.game.WaveIndex(), v.game.Credits(), v.game.Health(), speedSteps[v.speedStep], towerKinds[v.selectedKind])
	text.Draw(screen, hud, v.face, 10, 20, color.White)
	if v.lastReject != "" {
		text.Draw(screen, v.lastReject, v.face, 10, 40, color.RGBA{255, 120, 120, 255})
	}
	if v.game.IsOver() {
		text.Draw(screen, "GAME OVER", v.face, config.ScreenWidth/2-40, config.ScreenHeight/2, color.White)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	dataDir := flag.String("data", "assets/data", "directory with definition files")
	levelID := flag.String("level", "level_1", "level to start")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	flag.Parse()

	if err := defs.LoadAll(*dataDir); err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	game, err := app.NewGame(*levelID, *seed)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Lane Defense")
	if err := ebiten.RunGame(NewViewer(game)); err != nil {
		log.Fatal(err)
	}
}
