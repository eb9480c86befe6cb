package raycast

import (
	"math"

	"wolfcast/level"
	"wolfcast/rcmath"
)

// Grid is the read-only tile grid the caster walks. TileAt is only called
// with in-bounds coordinates.
type Grid interface {
	Dims() (rows, cols int)
	TileAt(row, col int) level.Tile
}

// Hit is where a ray first meets a wall.
type Hit struct {
	Point    rcmath.Point
	Distance float64 // euclidean, uncorrected
	Axis     Axis
	Row, Col int // the wall tile
	Tile     level.Tile
}

// noIntercept stands in for the cursor of an axis the ray never crosses. Its
// distance from any finite point is +Inf, so it is never chosen.
var noIntercept = rcmath.Point{X: math.Inf(1), Y: math.Inf(1)}

// FirstXIntercept is where the ray first crosses a vertical (constant-x)
// grid line. from.X is rounded out to the next grid line in the direction of
// travel; y follows from the tangent of the ray angle.
func FirstXIntercept(from rcmath.Point, ray Ray, blockSize float64) rcmath.Point {
	tan := rcmath.TanDeg(ray.Angle)
	if ray.XDir == 0 || tan == 0 {
		return noIntercept
	}
	x := gridLine(from.X, ray.XDir, blockSize)
	return rcmath.Point{X: x, Y: from.Y - (x-from.X)/tan}
}

// FirstYIntercept is where the ray first crosses a horizontal (constant-y)
// grid line.
func FirstYIntercept(from rcmath.Point, ray Ray, blockSize float64) rcmath.Point {
	if ray.YDir == 0 {
		return noIntercept
	}
	y := gridLine(from.Y, ray.YDir, blockSize)
	return rcmath.Point{X: from.X - (y-from.Y)*rcmath.TanDeg(ray.Angle), Y: y}
}

func gridLine(v float64, dir int, blockSize float64) float64 {
	if dir > 0 {
		return math.Ceil(v/blockSize) * blockSize
	}
	return math.Floor(v/blockSize) * blockSize
}

// cursor walks one family of grid-line intercepts along a ray.
type cursor struct {
	pos  rcmath.Point
	step rcmath.Point
	dist float64
}

func (c *cursor) advance(from rcmath.Point) {
	c.pos = rcmath.Point{X: c.pos.X + c.step.X, Y: c.pos.Y + c.step.Y}
	c.dist = rcmath.Distance(from, c.pos)
}

func xCursor(from rcmath.Point, ray Ray, blockSize float64) cursor {
	pos := FirstXIntercept(from, ray, blockSize)
	if pos == noIntercept {
		return cursor{pos: pos, dist: math.Inf(1)}
	}
	dx := blockSize * float64(ray.XDir)
	return cursor{
		pos:  pos,
		step: rcmath.Point{X: dx, Y: -dx / rcmath.TanDeg(ray.Angle)},
		dist: rcmath.Distance(from, pos),
	}
}

func yCursor(from rcmath.Point, ray Ray, blockSize float64) cursor {
	pos := FirstYIntercept(from, ray, blockSize)
	if pos == noIntercept {
		return cursor{pos: pos, dist: math.Inf(1)}
	}
	dy := blockSize * float64(ray.YDir)
	return cursor{
		pos:  pos,
		step: rcmath.Point{X: -dy * rcmath.TanDeg(ray.Angle), Y: dy},
		dist: rcmath.Distance(from, pos),
	}
}

// Caster finds the first wall along a ray by stepping from grid line to
// grid line.
type Caster struct {
	BlockSize float64
	// MaxSteps caps the cursor advances per ray. Zero derives a cap from the
	// grid size that no in-bounds ray can reach.
	MaxSteps int
}

func (c Caster) maxSteps(rows, cols int) int {
	if c.MaxSteps > 0 {
		return c.MaxSteps
	}
	return 2*(rows+cols) + 4
}

// Cast walks ray from the viewer at from. At each step the nearer of the
// vertical and horizontal intercepts is tested; on an exact tie the vertical
// one wins. Leaving the grid or exceeding the step cap is an invariant
// violation.
func (c Caster) Cast(g Grid, from rcmath.Point, ray Ray) (Hit, error) {
	rows, cols := g.Dims()
	xc := xCursor(from, ray, c.BlockSize)
	yc := yCursor(from, ray, c.BlockSize)

	limit := c.maxSteps(rows, cols)
	for i := 0; i < limit; i++ {
		cur, axis := &xc, AxisVertical
		if yc.dist < xc.dist {
			cur, axis = &yc, AxisHorizontal
		}
		if math.IsInf(cur.dist, 1) {
			return Hit{}, invariant(ComponentTraversal, ErrOutOfBounds, cur.pos)
		}

		row, col, ok := c.tileOf(cur.pos, rows, cols)
		if !ok {
			return Hit{}, invariant(ComponentTraversal, ErrOutOfBounds, cur.pos)
		}

		// flooring puts a line at x = k*block in column k; a ray travelling
		// towards -x enters column k-1 there (and row-1 for -y)
		switch {
		case axis == AxisVertical && ray.XDir < 0:
			if t := g.TileAt(row, col); t.IsWall() {
				return c.hit(cur, axis, row, col, t), nil
			}
			col--
		case axis == AxisHorizontal && ray.YDir < 0:
			if t := g.TileAt(row, col); t.IsWall() {
				return c.hit(cur, axis, row, col, t), nil
			}
			row--
		}
		if row < 0 || col < 0 {
			return Hit{}, invariant(ComponentTraversal, ErrOutOfBounds, cur.pos)
		}
		if t := g.TileAt(row, col); t.IsWall() {
			return c.hit(cur, axis, row, col, t), nil
		}

		cur.advance(from)
	}
	return Hit{}, invariant(ComponentTraversal, ErrIterationCap, limit)
}

func (c Caster) hit(cur *cursor, axis Axis, row, col int, t level.Tile) Hit {
	return Hit{Point: cur.pos, Distance: cur.dist, Axis: axis, Row: row, Col: col, Tile: t}
}

// tileOf floors p into tile coordinates, reporting whether they are inside
// the grid.
func (c Caster) tileOf(p rcmath.Point, rows, cols int) (row, col int, ok bool) {
	r := math.Floor(p.Y / c.BlockSize)
	cl := math.Floor(p.X / c.BlockSize)
	if math.IsNaN(r) || math.IsNaN(cl) || r < 0 || cl < 0 || r >= float64(rows) || cl >= float64(cols) {
		return 0, 0, false
	}
	return int(r), int(cl), true
}
