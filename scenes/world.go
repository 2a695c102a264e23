package scenes

import (
	"sync"

	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Options configures the play scenes.
type Options struct {
	Session    game.Options
	ConfigPath string
	Watcher    *cfg.Watcher // nil disables hot reload
}

type SurvivorsScene struct {
	ecs          *ecs.ECS
	session      *game.Session
	sceneChanger SceneChanger
	opts         Options
	debug        bool
	once         sync.Once
	err          error
}

func NewSurvivorsScene(sc SceneChanger, opts Options) *SurvivorsScene {
	return &SurvivorsScene{sceneChanger: sc, opts: opts}
}

func (ss *SurvivorsScene) Update() {
	ss.once.Do(ss.configure)
	if ss.err != nil {
		ss.sceneChanger.Quit()
		return
	}

	if JustPressed(ActionQuit) {
		ss.sceneChanger.Quit()
		return
	}
	if JustPressed(ActionToggleDebug) {
		ss.debug = !ss.debug
	}

	ss.reloadConfig()
	ss.ecs.Update()

	if ss.session.Over() {
		log.Info().
			Dur("survived", ss.session.Summary().Elapsed).
			Int("kills", ss.session.Kills).
			Msg("player died")
		ss.session.Close()
		ss.sceneChanger.ChangeScene(NewGameOverScene(ss.sceneChanger, ss.opts, ss.session.Summary()))
	}
}

func (ss *SurvivorsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(Background)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SurvivorsScene) configure() {
	session, err := game.New(ss.opts.Session)
	if err != nil {
		log.Error().Err(err).Msg("failed to start session")
		ss.err = err
		return
	}
	ss.session = session

	world := ecs.NewECS(session.World)

	world.AddSystem(func(*ecs.ECS) {
		components.MustSingleton(session.World, components.Input).Direction = MoveDirection()
	})
	world.AddSystem(func(*ecs.ECS) {
		session.Step()
	})

	world.AddRenderer(LayerWorld, drawColliders)
	world.AddRenderer(LayerWorld, func(e *ecs.ECS, screen *ebiten.Image) {
		if ss.debug {
			drawDebug(e, screen)
		}
	})
	world.AddRenderer(LayerHUD, func(_ *ecs.ECS, screen *ebiten.Image) {
		drawHUD(session, screen)
	})

	ss.ecs = world
}

// reloadConfig applies pending config file changes. A file that fails to
// load is reported and the previous configuration stays in effect.
func (ss *SurvivorsScene) reloadConfig() {
	if ss.opts.Watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-ss.opts.Watcher.Events:
			if !ok {
				ss.opts.Watcher = nil
				return
			}
			if err := cfg.LoadFile(ss.opts.ConfigPath); err != nil {
				log.Warn().Err(err).Msg("config reload rejected")
				continue
			}
			ss.session.Rebuild()
			log.Info().Str("path", ss.opts.ConfigPath).Msg("config reloaded")
		case err, ok := <-ss.opts.Watcher.Errors:
			if !ok {
				ss.opts.Watcher = nil
				return
			}
			log.Warn().Err(err).Msg("config watcher error")
		default:
			return
		}
	}
}
