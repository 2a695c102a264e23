package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/survivors/components"
	"github.com/automoto/survivors/game"
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/automoto/survivors/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	Background = color.RGBA{20, 18, 28, 255}
	Grey       = color.RGBA{100, 100, 100, 255}
	Blue       = color.RGBA{60, 120, 255, 255}
	Red        = color.RGBA{255, 60, 60, 255}
	Green      = color.RGBA{60, 220, 90, 255}
	Yellow     = color.RGBA{255, 220, 80, 255}
	Cyan       = color.RGBA{0, 255, 255, 255}
	White      = color.RGBA{255, 255, 255, 255}
)

var drawable = donburi.NewQuery(filter.Contains(components.Position, components.Collider))

// view maps world coordinates to screen coordinates.
type view struct {
	offX, offY float64
	scale      float64
	bounds     gamemath.Rect // visible world area
}

func newView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)

	scale := camera.Scale
	if scale <= 0 {
		scale = 1
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	halfW, halfH := width/scale/2, height/scale/2

	return view{
		offX:  width/2 - camera.Position.X*scale,
		offY:  height/2 - camera.Position.Y*scale,
		scale: scale,
		bounds: gamemath.Rect{
			MinX: camera.Position.X - halfW,
			MinY: camera.Position.Y - halfH,
			MaxX: camera.Position.X + halfW,
			MaxY: camera.Position.Y + halfH,
		},
	}, true
}

func (v view) rect(r gamemath.Rect) (x, y, w, h float32) {
	return float32(r.MinX*v.scale + v.offX),
		float32(r.MinY*v.scale + v.offY),
		float32(r.Width() * v.scale),
		float32(r.Height() * v.scale)
}

func colliderColor(e *donburi.Entry) color.Color {
	switch {
	case e.HasComponent(tags.Wall):
		return Grey
	case e.HasComponent(tags.Player):
		return Blue
	case e.HasComponent(tags.Enemy):
		return Red
	case e.HasComponent(tags.Projectile):
		return Yellow
	}
	return Cyan
}

// drawColliders renders every collider as a rectangle. Walls are filled,
// everything else is outlined; immune entities blink.
func drawColliders(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}
	clock := components.MustSingleton(e.World, components.Clock)

	drawable.Each(e.World, func(entry *donburi.Entry) {
		r := components.WorldRect(entry)
		if !r.Overlaps(v.bounds) {
			return
		}
		x, y, w, h := v.rect(r)
		c := colliderColor(entry)

		if entry.HasComponent(tags.Wall) {
			vector.FillRect(screen, x, y, w, h, c, false)
			return
		}
		if entry.HasComponent(components.Health) && components.Health.Get(entry).Immunity != nil && clock.Tick/4%2 == 0 {
			return
		}
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	})
}

// drawDebug outlines the broad-phase proxies and prints collider counts.
func drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Proxies {
		r := gamemath.Rect{MinX: obj.X, MinY: obj.Y, MaxX: obj.X + obj.W, MaxY: obj.Y + obj.H}
		if !r.Overlaps(v.bounds) {
			continue
		}
		c := Cyan
		if obj.HasTags(tags.ResolvStatic) {
			c = White
		}
		x, y, w, h := v.rect(r)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	events := components.MustSingleton(e.World, components.CollisionEvents)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS %.0f  TPS %.0f  proxies %d  events %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(space.Proxies), len(events.Events)),
		4, screen.Bounds().Dy()-16)
}

const (
	healthBarWidth  = 100
	healthBarHeight = 6
)

// drawHUD renders the player health bar and run statistics.
func drawHUD(s *game.Session, screen *ebiten.Image) {
	sum := s.Summary()

	vector.FillRect(screen, 4, 4, healthBarWidth, healthBarHeight, Red, false)
	if sum.PlayerAlive {
		health := components.Health.Get(s.Player)
		pct := 0.0
		if health.Max > 0 {
			pct = float64(health.Amount) / float64(health.Max)
		}
		vector.FillRect(screen, 4, 4, float32(healthBarWidth*pct), healthBarHeight, Green, false)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  kills %d  ghosts %d", sum.Elapsed.Truncate(time.Second), sum.Kills, sum.Enemies),
		4, 12)
}
