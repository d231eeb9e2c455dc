// Package main provides the CLI entry point for gradecast.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/gradecast/pkg/adapters/framedump"
	"github.com/user/gradecast/pkg/adapters/logger"
	"github.com/user/gradecast/pkg/adapters/mjpegsink"
	"github.com/user/gradecast/pkg/adapters/osfilesystem"
	"github.com/user/gradecast/pkg/adapters/rasterdevice"
	"github.com/user/gradecast/pkg/adapters/testpattern"
	"github.com/user/gradecast/pkg/adapters/vsyncclock"
	"github.com/user/gradecast/pkg/config"
	"github.com/user/gradecast/pkg/grading"
	"github.com/user/gradecast/pkg/player"
	"github.com/user/gradecast/pkg/ports"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "gradecast",
		Usage:   l10n.T("Real-time color grading for live video frames"),
		Version: version,
		Commands: []*cli.Command{
			gradeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func gradeCommand() *cli.Command {
	return &cli.Command{
		Name:  "grade",
		Usage: l10n.T("Grade a synthetic frame sequence and record the result as MP4"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"C"}, Usage: l10n.T("YAML configuration file")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output MP4 file path"), Required: true},

			&cli.Float64Flag{Name: "red-gain", Aliases: []string{"r"}, Value: 1.0, Usage: l10n.T("Red channel gain (0-2)")},
			&cli.Float64Flag{Name: "green-gain", Aliases: []string{"g"}, Value: 1.0, Usage: l10n.T("Green channel gain (0-2)")},
			&cli.Float64Flag{Name: "blue-gain", Aliases: []string{"b"}, Value: 1.0, Usage: l10n.T("Blue channel gain (0-2)")},
			&cli.Float64Flag{Name: "temperature", Aliases: []string{"t"}, Value: grading.NeutralTemperature, Usage: l10n.T("Color temperature in Kelvin (3000-9000)")},

			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Source frame width")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Source frame height")},
			&cli.Float64Flag{Name: "fps", Usage: l10n.T("Source frame rate")},
			&cli.IntFlag{Name: "duration-ms", Usage: l10n.T("Source sequence duration in milliseconds")},
			&cli.StringFlag{Name: "pattern", Usage: l10n.T("Source pattern (bars or solid)")},
			&cli.StringFlag{Name: "solid-color", Usage: l10n.T("Solid pattern color (hex, e.g. #646464)")},
			&cli.IntFlag{Name: "loops", Value: 1, Usage: l10n.T("Number of playback loops to record")},

			&cli.Float64Flag{Name: "refresh-hz", Usage: l10n.T("Display refresh rate driving the scheduler")},
			&cli.IntFlag{Name: "jpeg-quality", Usage: l10n.T("JPEG quality for recorded frames (1-100)")},

			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Save per-tick frames for debugging")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.StringFlag{Name: "log-format", Usage: l10n.T("Log format (console or json)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
		},
		Action: runGrade,
	}
}

// buildConfig layers CLI flags over the config file and defaults.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.OutputPath = c.String("output")
	cfg.Grading.RedGain = c.Float64("red-gain")
	cfg.Grading.GreenGain = c.Float64("green-gain")
	cfg.Grading.BlueGain = c.Float64("blue-gain")
	cfg.Grading.Temperature = c.Float64("temperature")

	if c.IsSet("width") {
		cfg.Source.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Source.Height = c.Int("height")
	}
	if c.IsSet("fps") {
		cfg.Source.FPS = c.Float64("fps")
	}
	if c.IsSet("duration-ms") {
		cfg.Source.DurationMs = c.Int("duration-ms")
	}
	if c.IsSet("pattern") {
		cfg.Source.Pattern = c.String("pattern")
	}
	if c.IsSet("solid-color") {
		cfg.Source.SolidColor = c.String("solid-color")
	}
	if c.IsSet("refresh-hz") {
		cfg.RefreshHz = c.Float64("refresh-hz")
	}
	if c.IsSet("jpeg-quality") {
		cfg.JPEGQuality = c.Int("jpeg-quality")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.Bool("quiet") {
		cfg.LogLevel = "quiet"
	}
	return cfg, nil
}

func buildLogger(cfg config.Config) ports.Logger {
	level := ports.ParseLogLevel(cfg.LogLevel)
	if level == ports.LevelQuiet {
		return logger.NewNoop()
	}
	if cfg.LogFormat == "json" {
		return logger.NewLogrus(level)
	}
	return logger.NewConsole(level)
}

func runGrade(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	log := buildLogger(cfg)
	fs := osfilesystem.New()

	pattern := testpattern.PatternBars
	if cfg.Source.Pattern == "solid" {
		pattern = testpattern.PatternSolid
	}
	source := testpattern.New(testpattern.Config{
		Width:    cfg.Source.Width,
		Height:   cfg.Source.Height,
		FPS:      cfg.Source.FPS,
		Duration: time.Duration(cfg.Source.DurationMs) * time.Millisecond,
		Pattern:  pattern,
		Solid:    config.ParseColor(cfg.Source.SolidColor),
	})

	sink := mjpegsink.New(cfg.Source.FPS, cfg.JPEGQuality, log)
	clock := vsyncclock.New(cfg.RefreshHz)

	opts := player.Options{
		PositionInterval: time.Duration(cfg.PositionPollMs) * time.Millisecond,
	}
	if cfg.Debug {
		opts.Debug = framedump.New(cfg.DebugDir, fs)
	}

	p, err := player.New(source, rasterdevice.New(), sink, clock, log, opts)
	if err != nil {
		return err
	}
	p.Params().Set(cfg.Grading.Parameters())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := p.Start(ctx); err != nil {
		return err
	}
	defer p.Stop()

	if err := p.Play(); err != nil {
		return err
	}

	loops := c.Int("loops")
	if loops < 1 {
		loops = 1
	}
	runFor := time.Duration(cfg.Source.DurationMs*loops) * time.Millisecond
	log.Info("Grading %d frame(s) for %s", source.FrameCount()*loops, runFor)

	select {
	case <-ctx.Done():
		log.Warn("Interrupted, writing partial recording")
	case <-time.After(runFor):
	}

	p.Pause()
	p.Stop()

	stats := p.Stats()
	log.Info("Pipeline stats: %d ticks, %d published, %d dropped", stats.Ticks, stats.Published, stats.Dropped)

	if cfg.Debug && opts.Debug != nil {
		if data, err := json.MarshalIndent(stats, "", "  "); err == nil {
			opts.Debug.SaveStatsJSON(data)
		}
	}

	if sink.SampleCount() == 0 {
		return fmt.Errorf("no frames were published")
	}
	return sink.WriteFile(cfg.OutputPath, fs)
}
