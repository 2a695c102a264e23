package main

import (
	"fmt"

	"github.com/automoto/survivors/assets"
	"github.com/automoto/survivors/config"
	"github.com/automoto/survivors/game"
	"github.com/automoto/survivors/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type commonFlags struct {
	configPath string
	level      string
	seed       int64
	broadphase string
	policy     string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file merged over the default configuration")
	cmd.Flags().StringVarP(&f.level, "level", "l", "arena", "level to play (see the levels command)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "spawner seed (default from config)")
	cmd.Flags().StringVar(&f.broadphase, "broadphase", "", "collision broad phase: all_pairs or grid")
	cmd.Flags().StringVar(&f.policy, "containment", "", "wall containment policy: soft or min_axis")
}

// apply loads the config file, then the command line overrides.
func (f *commonFlags) apply(cmd *cobra.Command) (game.Options, error) {
	if f.configPath != "" {
		if err := config.LoadFile(f.configPath); err != nil {
			return game.Options{}, err
		}
	}

	overrides := map[string]map[string]interface{}{}
	set := func(section, key string, v interface{}) {
		if overrides[section] == nil {
			overrides[section] = map[string]interface{}{}
		}
		overrides[section][key] = v
	}
	if cmd.Flags().Changed("broadphase") {
		set("collision", "broadphase", f.broadphase)
	}
	if cmd.Flags().Changed("containment") {
		set("containment", "policy", f.policy)
	}
	if cmd.Flags().Changed("seed") {
		set("simulation", "seed", f.seed)
	}
	if tickRate, err := cmd.Flags().GetInt("tick-rate"); err == nil && cmd.Flags().Changed("tick-rate") {
		set("simulation", "tick_rate", tickRate)
	}

	if len(overrides) > 0 {
		data, err := yaml.Marshal(overrides)
		if err != nil {
			return game.Options{}, eris.Wrap(err, "encode flag overrides")
		}
		if err := config.Load(data); err != nil {
			return game.Options{}, eris.Wrap(err, "flag overrides")
		}
	}

	return game.Options{Level: f.level, Seed: config.Simulation.Seed}, nil
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "survivors",
		Short:         "Top-down survivors arena",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return eris.Wrapf(err, "log level %q", logLevel)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "trace, debug, info, warn or error")

	root.AddCommand(newPlayCmd(), newSimulateCmd(), newLevelsCmd())

	// Running without a subcommand opens the window.
	play := newPlayCmd()
	root.Flags().AddFlagSet(play.Flags())
	root.RunE = play.RunE

	return root
}

func newPlayCmd() *cobra.Command {
	var (
		flags commonFlags
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.apply(cmd)
			if err != nil {
				return err
			}

			sceneOpts := scenes.Options{Session: opts, ConfigPath: flags.configPath}
			if watch {
				if flags.configPath == "" {
					return eris.New("--watch needs --config")
				}
				w, err := config.NewWatcher(flags.configPath)
				if err != nil {
					return err
				}
				defer w.Close()
				sceneOpts.Watcher = w
				log.Info().Str("path", flags.configPath).Msg("watching config")
			}

			ebiten.SetWindowTitle("Survivors")
			ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(config.Simulation.TickRate)

			if err := ebiten.RunGame(NewGame(sceneOpts)); err != nil {
				return err
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload --config when the file changes")
	cmd.Flags().Int("tick-rate", 0, "simulation ticks per second (default from config)")
	return cmd
}

func newSimulateCmd() *cobra.Command {
	var (
		flags       commonFlags
		ticks       int
		reportEvery int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation headless and log summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.apply(cmd)
			if err != nil {
				return err
			}

			s, err := game.New(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if reportEvery <= 0 {
				reportEvery = config.Simulation.TickRate
			}

			for i := 1; i <= ticks; i++ {
				s.Step()
				if i%reportEvery == 0 || s.Over() {
					logSummary(s.Summary())
				}
				if s.Over() {
					break
				}
			}

			sum := s.Summary()
			log.Info().
				Bool("survived", sum.PlayerAlive).
				Dur("elapsed", sum.Elapsed).
				Int("kills", sum.Kills).
				Msg("simulation finished")
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 3600, "number of ticks to run")
	cmd.Flags().IntVar(&reportEvery, "report-every", 0, "ticks between summaries (default one second)")
	cmd.Flags().Int("tick-rate", 0, "simulation ticks per second (default from config)")
	return cmd
}

func logSummary(sum game.Summary) {
	log.Info().
		Uint64("tick", sum.Tick).
		Dur("elapsed", sum.Elapsed).
		Int("health", sum.PlayerHealth).
		Int("enemies", sum.Enemies).
		Int("projectiles", sum.Projectiles).
		Int("walls", sum.Walls).
		Int("kills", sum.Kills).
		Msg("tick")
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the bundled levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := assets.LevelNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
