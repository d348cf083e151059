// Package render draws a circuit's gate stream as a PNG, the way the
// teacher's qc/renderer/ggpng.go draws a qc/circuit.Circuit: one
// horizontal wire per line, gates laid out left to right in columns,
// using github.com/fogleman/gg for all drawing. Unlike the teacher's
// renderer, which switches on named single/two-qubit gate kinds
// (H, X, CNOT, CZ, SWAP, ...), this core only ever emits two gate
// shapes with variable-width control sets, so one column-scheduling
// pass plus one draw routine per gate.Type covers every case.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"

	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/gate"
)

// PNG renders a circuit.Circuit to a raster image at a fixed cell size.
type PNG struct{ Cell float64 }

// NewPNG returns a renderer using cellPx square cells.
func NewPNG(cellPx int) PNG { return PNG{Cell: float64(cellPx)} }

// Render draws c's wires and gate stream onto a white canvas.
func (r PNG) Render(c *circuit.Circuit) (image.Image, error) {
	columns := scheduleColumns(c)
	steps := 1
	for _, col := range columns {
		if col+1 > steps {
			steps = col + 1
		}
	}

	w := int(float64(steps) * r.Cell)
	h := int(float64(c.NumLines()) * r.Cell)
	if h <= 0 {
		h = int(r.Cell)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for i := 0; i < c.NumLines(); i++ {
		y := r.y(i)
		dc.DrawLine(0, y, float64(w), y)
		dc.Stroke()
	}

	for ref, g := range c.Gates() {
		col := columns[circuit.GateRef(ref)]
		switch g.Type() {
		case gate.Toffoli:
			r.drawToffoli(dc, col, g)
		case gate.Fredkin:
			r.drawFredkin(dc, col, g)
		default:
			return nil, fmt.Errorf("render: unsupported gate type %v", g.Type())
		}
	}

	return dc.Image(), nil
}

// Save renders c and writes it to path as a PNG.
func (r PNG) Save(path string, c *circuit.Circuit) error {
	img, err := r.Render(c)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// scheduleColumns assigns each gate the first column after every line
// it touches was last used, a greedy left-packing layering scheme
// (the same idea the teacher's qc/dag tracks via DAG.last per qubit,
// simplified here to a single pass since this core's gate stream has
// no branching structure to topologically sort).
func scheduleColumns(c *circuit.Circuit) map[circuit.GateRef]int {
	last := make([]int, c.NumLines())
	for i := range last {
		last[i] = -1
	}

	columns := make(map[circuit.GateRef]int, c.NumGates())
	for ref, g := range c.Gates() {
		col := 0
		for _, l := range involvedLines(g) {
			if last[l]+1 > col {
				col = last[l] + 1
			}
		}
		for _, l := range involvedLines(g) {
			last[l] = col
		}
		columns[circuit.GateRef(ref)] = col
	}
	return columns
}

func involvedLines(g gate.Gate) []gate.Line {
	return append(g.Controls(), g.Targets()...)
}

func (r PNG) x(col int) float64  { return float64(col)*r.Cell + r.Cell/2 }
func (r PNG) y(line int) float64 { return float64(line)*r.Cell + r.Cell/2 }

func (r PNG) drawControls(dc *gg.Context, x float64, controls []gate.Line) {
	dc.SetRGB(0, 0, 0)
	for _, l := range controls {
		dc.DrawCircle(x, r.y(int(l)), r.Cell*0.12)
		dc.Fill()
	}
}

func (r PNG) drawSpan(dc *gg.Context, x float64, lines []gate.Line) {
	lo, hi := int(lines[0]), int(lines[0])
	for _, l := range lines[1:] {
		if int(l) < lo {
			lo = int(l)
		}
		if int(l) > hi {
			hi = int(l)
		}
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawLine(x, r.y(lo), x, r.y(hi))
	dc.Stroke()
}

func (r PNG) drawToffoli(dc *gg.Context, col int, g gate.Gate) {
	x := r.x(col)
	controls := g.Controls()
	target := g.Targets()[0]

	r.drawSpan(dc, x, append(append([]gate.Line(nil), controls...), target))
	r.drawControls(dc, x, controls)

	y := r.y(int(target))
	rad := r.Cell * 0.18
	dc.SetRGB(0, 0, 0)
	dc.DrawCircle(x, y, rad)
	dc.Stroke()
	dc.DrawLine(x-rad, y, x+rad, y)
	dc.Stroke()
	dc.DrawLine(x, y-rad, x, y+rad)
	dc.Stroke()
}

func (r PNG) drawFredkin(dc *gg.Context, col int, g gate.Gate) {
	x := r.x(col)
	controls := g.Controls()
	targets := g.Targets()

	r.drawSpan(dc, x, append(append([]gate.Line(nil), controls...), targets...))
	r.drawControls(dc, x, controls)

	d := r.Cell * 0.18
	dc.SetRGB(0, 0, 0)
	for _, t := range targets {
		y := r.y(int(t))
		dc.DrawLine(x-d, y-d, x+d, y+d)
		dc.Stroke()
		dc.DrawLine(x-d, y+d, x+d, y-d)
		dc.Stroke()
	}
}
