package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"dumbo-octopus/internal/report"
	"dumbo-octopus/internal/scenario"
	"dumbo-octopus/internal/sims/octopus"

	"github.com/google/uuid"
)

type runConfig struct {
	name       string
	size       int
	seed       int64
	steps      int
	interval   time.Duration
	untilSync  bool
	quiet      bool
	pngPath    string
	htmlPath   string
	levels     [][]uint8
	clearFrame bool
}

func main() {
	size := flag.Int("size", octopus.DefaultConfig().Size, "grid columns for random grids (rows are capped at 20)")
	seed := flag.Int64("seed", 0, "seed for random grids (0 uses the clock)")
	steps := flag.Int("steps", 100, "number of steps to run (0 with -until-sync runs until synchronization)")
	interval := flag.Duration("interval", 100*time.Millisecond, "delay between frames (0 runs as fast as possible)")
	input := flag.String("input", "", "grid file with one line of digits per row")
	scenarioPath := flag.String("scenario", "", "YAML scenario file; replaces the run flags above")
	untilSync := flag.Bool("until-sync", false, "stop at the first step in which every octopus flashes")
	quiet := flag.Bool("quiet", false, "print only the summary")
	pngPath := flag.String("png", "", "write a PNG chart of flashes per step to this path")
	htmlPath := flag.String("html", "", "write an HTML chart of flashes per step to this path")
	flag.Parse()

	cfg := runConfig{
		name:       "octopus",
		size:       *size,
		seed:       *seed,
		steps:      *steps,
		interval:   *interval,
		untilSync:  *untilSync,
		quiet:      *quiet,
		pngPath:    *pngPath,
		htmlPath:   *htmlPath,
		clearFrame: true,
	}

	if *scenarioPath != "" {
		sc, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg.applyScenario(sc)
	}
	if *input != "" {
		levels, err := readLevels(*input)
		if err != nil {
			log.Fatal(err)
		}
		cfg.levels = levels
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func (c *runConfig) applyScenario(sc *scenario.Scenario) {
	c.name = sc.Name
	c.steps = sc.Steps
	c.interval = sc.Interval
	c.untilSync = sc.StopAtSync
	if sc.Seed != 0 {
		c.seed = sc.Seed
	}
	if sc.Size > 0 {
		c.size = sc.Size
	}
	c.levels = sc.Levels
}

func readLevels(path string) ([][]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	levels, err := octopus.ParseLevels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levels, nil
}

func run(ctx context.Context, cfg runConfig, out io.Writer) error {
	if cfg.steps <= 0 && !cfg.untilSync {
		return fmt.Errorf("steps must be positive unless -until-sync is set")
	}
	simCfg := octopus.DefaultConfig()
	simCfg.Size = cfg.size
	if simCfg.Size > simCfg.MaxSize {
		simCfg.MaxSize = simCfg.Size
	}
	simCfg.Seed = cfg.seed
	swarm := octopus.NewWithConfig(simCfg)
	if cfg.levels != nil {
		if err := swarm.Load(cfg.levels); err != nil {
			return err
		}
	} else {
		swarm.Reset(cfg.seed)
	}

	limit := cfg.steps
	if limit <= 0 {
		limit = octopus.MaxSyncSteps
	}

	var tick <-chan time.Time
	if cfg.interval > 0 {
		ticker := time.NewTicker(cfg.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	if !cfg.quiet {
		drawFrame(out, swarm, cfg.clearFrame)
	}
	interrupted := false
loop:
	for swarm.Generation() < limit {
		if tick != nil {
			select {
			case <-ctx.Done():
				interrupted = true
				break loop
			case <-tick:
			}
		} else if ctx.Err() != nil {
			interrupted = true
			break
		}

		if _, err := swarm.Advance(); err != nil {
			return err
		}
		if !cfg.quiet {
			drawFrame(out, swarm, cfg.clearFrame)
		}
		if _, synced := swarm.FirstSync(); synced && cfg.untilSync {
			break
		}
	}

	size := swarm.Size()
	fmt.Fprintf(out, "%s: %dx%d grid, %d steps, %d flashes", cfg.name, size.W, size.H, swarm.Generation(), swarm.TotalFlashes())
	if step, ok := swarm.FirstSync(); ok {
		fmt.Fprintf(out, ", first sync at step %d", step)
	}
	if interrupted {
		fmt.Fprint(out, " (interrupted)")
	}
	fmt.Fprintln(out)

	if (cfg.pngPath == "" && cfg.htmlPath == "") || swarm.Generation() == 0 {
		return nil
	}
	return writeReports(cfg, swarm, out)
}

func writeReports(cfg runConfig, swarm *octopus.Swarm, out io.Writer) error {
	size := swarm.Size()
	sync, _ := swarm.FirstSync()
	hist := report.History{
		RunID:     uuid.NewString(),
		Title:     fmt.Sprintf("%s flashes per step", cfg.name),
		Cells:     size.W * size.H,
		Flashes:   swarm.History(),
		FirstSync: sync,
	}
	if cfg.pngPath != "" {
		if err := report.WritePNG(cfg.pngPath, hist); err != nil {
			return err
		}
		fmt.Fprintf(out, "run %s: chart written to %s\n", hist.RunID, cfg.pngPath)
	}
	if cfg.htmlPath != "" {
		if err := report.SaveHTML(cfg.htmlPath, hist); err != nil {
			return err
		}
		fmt.Fprintf(out, "run %s: chart written to %s\n", hist.RunID, cfg.htmlPath)
	}
	return nil
}

func drawFrame(out io.Writer, swarm *octopus.Swarm, clearScreen bool) {
	var b strings.Builder
	if clearScreen {
		b.WriteString("\x1b[H\x1b[2J")
	}
	size := swarm.Size()
	border := strings.Repeat("─", size.W)
	b.WriteString("┌" + border + "┐\n")
	for _, line := range strings.Split(strings.TrimSuffix(octopus.FormatLevels(swarm.Levels()), "\n"), "\n") {
		b.WriteString("│" + line + "│\n")
	}
	b.WriteString("└" + border + "┘\n")
	fmt.Fprintf(&b, "step %d  flashes %d  total %d\n", swarm.Generation(), swarm.LastFlashes(), swarm.TotalFlashes())
	io.WriteString(out, b.String())
}
