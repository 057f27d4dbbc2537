// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: deterministic 2-D node placement for the network export.

package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/genonet/prim_kruskal"
)

// Point is a 2-D position.
type Point struct {
	X, Y float64
}

// Layout assigns one position per tree vertex, in tree.Vertices order.
type Layout interface {
	Positions(tree *prim_kruskal.Tree) []Point
}

// Layout names accepted by ParseLayout.
const (
	LayoutCircle = "circle"
	LayoutSpring = "spring"
)

// ParseLayout returns the layout registered under name; "" selects spring.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LayoutSpring:
		return NewSpringLayout(), nil
	case LayoutCircle:
		return CircleLayout{}, nil
	default:
		return nil, fmt.Errorf("export: %q: %w", name, ErrUnknownLayout)
	}
}

// CircleLayout places vertex i of N on the unit circle at angle 2πi/N.
// A single vertex sits at the origin.
type CircleLayout struct{}

// Positions implements Layout.
func (CircleLayout) Positions(tree *prim_kruskal.Tree) []Point {
	return circle(len(tree.Vertices))
}

func circle(n int) []Point {
	pos := make([]Point, n)
	if n == 1 {
		return pos
	}
	for i := range pos {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	return pos
}

// Spring layout defaults.
const (
	DefaultSpringK          = 0.5
	DefaultSpringIterations = 50
)

// SpringLayout is a Fruchterman-Reingold force-directed layout started from
// CircleLayout, so it needs no random seed. Every vertex pair repels with
// force K²/d; every tree edge attracts with d²/K. The step size cools
// linearly from a tenth of the initial extent. Output is centred on the
// origin and scaled to fit [-1, 1].
type SpringLayout struct {
	K          float64 // optimal edge length
	Iterations int
}

// NewSpringLayout returns a SpringLayout with K = 0.5 and 50 iterations.
func NewSpringLayout() SpringLayout {
	return SpringLayout{K: DefaultSpringK, Iterations: DefaultSpringIterations}
}

// minDistance keeps coincident points from producing infinite forces.
const minDistance = 0.01

// Positions implements Layout.
//
// Complexity: O(Iterations · V²).
func (s SpringLayout) Positions(tree *prim_kruskal.Tree) []Point {
	n := len(tree.Vertices)
	pos := circle(n)
	if n < 2 {
		return pos
	}
	k := s.K
	if k <= 0 {
		k = DefaultSpringK
	}
	iters := s.Iterations
	if iters < 0 {
		iters = 0
	}

	index := make(map[string]int, n)
	for i, v := range tree.Vertices {
		index[v.ID] = i
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range tree.Edges {
		u, v := index[e.From], index[e.To]
		adj[u][v], adj[v][u] = true, true
	}

	temp := 0.1 * extent(pos)
	dt := temp / float64(iters+1)
	disp := make([]Point, n)
	for it := 0; it < iters; it++ {
		for i := range disp {
			disp[i] = Point{}
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Max(math.Hypot(dx, dy), minDistance)
				f := k * k / (d * d)
				if adj[i][j] {
					f -= d / k
				}
				disp[i].X += dx * f
				disp[i].Y += dy * f
			}
		}
		for i := range pos {
			l := math.Max(math.Hypot(disp[i].X, disp[i].Y), minDistance)
			pos[i].X += disp[i].X * temp / l
			pos[i].Y += disp[i].Y * temp / l
		}
		temp -= dt
	}

	rescale(pos)

	return pos
}

// extent returns the larger side of the bounding box of pos.
func extent(pos []Point) float64 {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	return math.Max(maxX-minX, maxY-minY)
}

// rescale centres pos on the origin and scales the largest coordinate to 1.
func rescale(pos []Point) {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	lim := 0.0
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i].X /= lim
		pos[i].Y /= lim
	}
}
