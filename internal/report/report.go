// Package report renders per-step flash histories as charts.
package report

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// History is the flash record of one run.
type History struct {
	RunID   string
	Title   string
	Cells   int
	Flashes []int
	// FirstSync is the first synchronized step, or 0.
	FirstSync int
}

func (h History) validate() error {
	if len(h.Flashes) == 0 {
		return fmt.Errorf("report: no steps recorded")
	}
	if h.FirstSync < 0 || h.FirstSync > len(h.Flashes) {
		return fmt.Errorf("report: first sync step %d outside %d recorded steps", h.FirstSync, len(h.Flashes))
	}
	return nil
}

func (h History) subtitle() string {
	s := fmt.Sprintf("run=%s cells=%d steps=%d", h.RunID, h.Cells, len(h.Flashes))
	if h.FirstSync > 0 {
		s += fmt.Sprintf(" first sync=%d", h.FirstSync)
	}
	return s
}

// WritePNG saves a line plot of flashes per step to path.
func WritePNG(path string, h History) error {
	if err := h.validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s\n%s", h.Title, h.subtitle())
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Flashes"
	p.Y.Min = 0
	if h.Cells > 0 {
		p.Y.Max = float64(h.Cells)
	}

	pts := make(plotter.XYs, len(h.Flashes))
	for i, f := range h.Flashes {
		pts[i] = plotter.XY{X: float64(i + 1), Y: float64(f)}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: build line: %w", err)
	}
	line.Width = vg.Points(1)
	line.Color = color.RGBA{R: 240, G: 140, B: 48, A: 255}
	p.Add(line, plotter.NewGrid())

	if h.FirstSync > 0 {
		sync, err := plotter.NewScatter(plotter.XYs{{X: float64(h.FirstSync), Y: float64(h.Flashes[h.FirstSync-1])}})
		if err != nil {
			return fmt.Errorf("report: build sync marker: %w", err)
		}
		sync.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
		sync.Radius = vg.Points(4)
		p.Add(sync)
		p.Legend.Add("first sync", sync)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}
	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// WriteHTML renders an interactive line chart of flashes per step.
func WriteHTML(w io.Writer, h History) error {
	if err := h.validate(); err != nil {
		return err
	}
	x := make([]string, len(h.Flashes))
	y := make([]opts.LineData, len(h.Flashes))
	for i, f := range h.Flashes {
		x[i] = strconv.Itoa(i + 1)
		y[i] = opts.LineData{Value: f}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: h.Title, Theme: "dark", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: h.Title, Subtitle: h.subtitle()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Step", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Flashes", Min: 0, Max: h.Cells}),
	)
	line.SetXAxis(x).AddSeries("flashes", y, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}
	return nil
}

// SaveHTML writes the HTML chart to path.
func SaveHTML(path string, h History) error {
	if err := h.validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := WriteHTML(f, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
