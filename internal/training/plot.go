// SPDX-License-Identifier: Apache-2.0

package training

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// LossesFile and AccuracyFile are the names written by Figures.Save.
	LossesFile   = "losses.png"
	AccuracyFile = "accuracy.png"

	figureWidth  = 6.4 * vg.Inch
	figureHeight = 4.8 * vg.Inch
	figureDPI    = 130
)

// Figures holds the two rendered plots. Each call to Render returns new plots.
type Figures struct {
	Losses   *plot.Plot
	Accuracy *plot.Plot
}

// Render plots training and validation loss per epoch, and validation
// accuracy per epoch.
func Render(stats []EpochStats) (*Figures, error) {
	if len(stats) == 0 {
		return nil, ErrNoStats
	}

	losses := newFigure("Loss")
	if err := addSeries(losses, "Training loss", 0, series(stats, func(s EpochStats) float64 { return s.TrainingLoss })); err != nil {
		return nil, err
	}
	if err := addSeries(losses, "Validation loss", 1, series(stats, func(s EpochStats) float64 { return s.ValidLoss })); err != nil {
		return nil, err
	}

	accuracy := newFigure("Accuracy")
	if err := addSeries(accuracy, "Validation accuracy", 0, series(stats, func(s EpochStats) float64 { return s.ValidAccuracy })); err != nil {
		return nil, err
	}

	return &Figures{Losses: losses, Accuracy: accuracy}, nil
}

func newFigure(yLabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func series(stats []EpochStats, value func(EpochStats) float64) plotter.XYs {
	pts := make(plotter.XYs, len(stats))
	for i, s := range stats {
		pts[i].X = float64(i)
		pts[i].Y = value(s)
	}
	return pts
}

func addSeries(p *plot.Plot, name string, idx int, pts plotter.XYs) error {
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("plotting %s: %w", name, err)
	}
	line.Color = plotutil.Color(idx)
	points.Color = plotutil.Color(idx)
	points.Shape = draw.CrossGlyph{}
	points.Radius = vg.Points(4)

	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}

// WritePNG renders p as a PNG image to w.
func WritePNG(w io.Writer, p *plot.Plot) error {
	c := vgimg.NewWith(vgimg.UseWH(figureWidth, figureHeight), vgimg.UseDPI(figureDPI))
	p.Draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// Save writes LossesFile and AccuracyFile into dir. When dir is empty or is
// not an existing directory nothing is written and saved is false.
func (f *Figures) Save(dir string) (saved bool, err error) {
	if dir == "" {
		return false, nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false, nil
	}

	if err := savePNG(filepath.Join(dir, LossesFile), f.Losses); err != nil {
		return false, err
	}
	if err := savePNG(filepath.Join(dir, AccuracyFile), f.Accuracy); err != nil {
		return false, err
	}
	return true, nil
}

func savePNG(path string, p *plot.Plot) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WritePNG(out, p); err != nil {
		_ = out.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return out.Close()
}
