package scenes

import (
	"fmt"
	"time"

	"github.com/automoto/survivors/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// GameOverScene shows the final statistics of a run until the player
// restarts or quits.
type GameOverScene struct {
	sceneChanger SceneChanger
	opts         Options
	summary      game.Summary
}

func NewGameOverScene(sc SceneChanger, opts Options, summary game.Summary) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts, summary: summary}
}

func (gs *GameOverScene) Update() {
	switch {
	case JustPressed(ActionRestart):
		gs.sceneChanger.ChangeScene(NewSurvivorsScene(gs.sceneChanger, gs.opts))
	case JustPressed(ActionQuit):
		gs.sceneChanger.Quit()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(Background)

	text := fmt.Sprintf("GAME OVER\n\nsurvived %s\nkills    %d\nghosts   %d\ndaggers  %d\n\nENTER to retry, ESC to quit",
		gs.summary.Elapsed.Truncate(time.Second),
		gs.summary.Kills,
		gs.summary.GhostsSpawned,
		gs.summary.DaggersSpawned,
	)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, text, w/2-80, h/2-60)
}
