// Package chart records per-state population counts over generations and
// plots them as a line chart.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"cell-society/internal/core"
)

// Recorder accumulates one population sample per recorded generation.
type Recorder struct {
	gens   []float64
	order  []string
	counts map[string][]float64
	colors map[string]drawing.Color
	total  int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{counts: map[string][]float64{}, colors: map[string]drawing.Color{}}
}

// Record samples the state counts of a snapshot taken at generation gen.
// States seen for the first time are back-filled with zeros.
func (r *Recorder) Record(gen int, states [][]core.State) {
	r.total = 0
	for _, row := range states {
		for _, s := range row {
			r.total++
			name := s.String()
			if _, ok := r.counts[name]; !ok {
				r.order = append(r.order, name)
				r.counts[name] = make([]float64, len(r.gens))
				c := s.Color()
				r.colors[name] = drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
			}
		}
	}
	tally := core.Count(states)
	r.gens = append(r.gens, float64(gen))
	for _, name := range r.order {
		r.counts[name] = append(r.counts[name], float64(tally[name]))
	}
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int { return len(r.gens) }

// States returns the recorded state names in order of first appearance.
func (r *Recorder) States() []string { return r.order }

// Counts returns the population series of a state.
func (r *Recorder) Counts(name string) []float64 { return r.counts[name] }

// Render draws the population chart as PNG.
func (r *Recorder) Render(w io.Writer, title string) error {
	if len(r.gens) == 0 {
		return errors.New("chart: nothing recorded")
	}
	series := make([]chart.Series, 0, len(r.order))
	for _, name := range r.order {
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: r.gens,
			YValues: r.counts[name],
			Style:   chart.Style{StrokeColor: r.colors[name], StrokeWidth: 2},
		})
	}
	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "generation",
			Range: &chart.ContinuousRange{Min: r.gens[0], Max: max(r.gens[len(r.gens)-1], r.gens[0]+1)},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(r.total, 1))},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
