package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"falling-sand/internal/config"
	"falling-sand/internal/render"
	"falling-sand/internal/scene"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/telemetry"
	"falling-sand/pkg/logger"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	flags := config.Flags{Scene: "basin"}
	flags.Bind(flag.CommandLine)
	steps := flag.Int("steps", 600, "ticks to simulate")
	outputDir := flag.String("output-dir", "", "write census.csv, config.yaml and final.png here (overrides telemetry.output_dir)")
	var overrides kvList
	flag.Var(&overrides, "set", "world override in key=value form, e.g. seed=7 or liquid_dispersion=3 (repeatable)")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("loading config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			logger.Log.WithField("override", o).Warn("ignoring override without '='")
			continue
		}
		kv[parts[0]] = parts[1]
	}
	cfg.ApplyOverrides(kv)
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}

	if err := run(cfg, flags.Scene, *steps); err != nil {
		logger.Log.WithError(err).Fatal("run failed")
	}
}

func run(cfg *config.Config, sceneName string, steps int) error {
	s, err := scene.Resolve(sceneName)
	if err != nil {
		return fmt.Errorf("scene %q (presets: %s): %w", sceneName, strings.Join(scene.Names(), ", "), err)
	}
	world, err := cfg.NewWorld()
	if err != nil {
		return err
	}
	s.Apply(world.Grid())

	rec, err := telemetry.NewRecorder(cfg.Telemetry.OutputDir)
	if err != nil {
		return err
	}
	defer rec.Close()
	if err := rec.WriteConfig(cfg); err != nil {
		return err
	}

	log := logger.Log.WithFields(logrus.Fields{"scene": s.Name, "seed": cfg.Seed})
	log.WithField("steps", steps).Info("running")

	var series telemetry.Series
	record := func() error {
		c := telemetry.Count(world.Grid())
		series.Add(c)
		return rec.Write(c.Row(world.Tick()))
	}
	if err := record(); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		world.Update()
		if err := record(); err != nil {
			return err
		}
		if every := cfg.Telemetry.LogEvery; every > 0 && world.Tick()%uint64(every) == 0 {
			c := telemetry.Count(world.Grid())
			log.WithFields(logrus.Fields{
				"tick":   world.Tick(),
				"solids": c.Of(sand.TypeMoveableSolid),
				"liquid": c.Of(sand.TypeLiquid),
				"gas":    c.Of(sand.TypeGas),
				"fire":   c.Of(sand.TypeFire),
				"maze":   c.Of(sand.TypeMaze),
			}).Info("census")
		}
	}

	log.WithField("censuses", series.Len()).Debug("summarizing")
	for _, st := range series.Summary() {
		if st.Type == sand.TypeNothing {
			continue
		}
		log.WithFields(logrus.Fields{
			"type":   st.Type.String(),
			"mean":   st.Mean,
			"stddev": st.StdDev,
			"min":    st.Min,
			"max":    st.Max,
		}).Info("summary")
	}

	if dir := rec.Dir(); dir != "" {
		size := world.Size()
		img, err := render.Snapshot(size.W, size.H, world.Cells(), world.Palette(), cfg.Window.Scale)
		if err != nil {
			return err
		}
		if err := render.WritePNG(filepath.Join(dir, "final.png"), img); err != nil {
			return err
		}
		log.WithField("dir", dir).Info("output written")
	}
	return rec.Close()
}
