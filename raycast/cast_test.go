package raycast

import (
	"errors"
	"math"
	"testing"

	"wolfcast/level"
	"wolfcast/rcmath"
)

const blockSize = 8.0

func nearPoint(t *testing.T, name string, got, want rcmath.Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

func TestNewRayDirections(t *testing.T) {
	cases := []struct {
		angle      float64
		xDir, yDir int
	}{
		{0, 0, -1},
		{45, 1, -1},
		{90, 1, 0},
		{135, 1, 1},
		{180, 0, 1},
		{225, -1, 1},
		{270, -1, 0},
		{315, -1, -1},
		{-90, -1, 0},
		{450, 1, 0},
	}
	for _, c := range cases {
		r := NewRay(c.angle)
		if r.XDir != c.xDir || r.YDir != c.yDir {
			t.Errorf("NewRay(%v) dirs = (%d, %d), want (%d, %d)", c.angle, r.XDir, r.YDir, c.xDir, c.yDir)
		}
		if r.Angle < 0 || r.Angle >= 360 {
			t.Errorf("NewRay(%v).Angle = %v not normalized", c.angle, r.Angle)
		}
	}
}

func TestScreenRayAngle(t *testing.T) {
	s := Screen{Width: 320, Height: 200, DegPerPixel: 0.1}
	cases := []struct {
		heading float64
		column  int
		want    float64
	}{
		{0, 160, 0},
		{0, 0, 344},
		{90, 160, 90},
		{350, 319, 5.9},
	}
	for _, c := range cases {
		if got := s.RayAngle(c.heading, c.column); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("RayAngle(%v, %d) = %v, want %v", c.heading, c.column, got, c.want)
		}
	}
}

func TestFirstXIntercept(t *testing.T) {
	from := rcmath.Point{X: 12, Y: 12}
	cases := []struct {
		angle float64
		want  rcmath.Point
	}{
		{45, rcmath.Point{X: 16, Y: 8}},
		{135, rcmath.Point{X: 16, Y: 16}},
		{225, rcmath.Point{X: 8, Y: 16}},
		{315, rcmath.Point{X: 8, Y: 8}},
		{90, rcmath.Point{X: 16, Y: 12}},
		{270, rcmath.Point{X: 8, Y: 12}},
	}
	for _, c := range cases {
		nearPoint(t, "FirstXIntercept", FirstXIntercept(from, NewRay(c.angle), blockSize), c.want)
	}

	for _, angle := range []float64{0, 180} {
		if got := FirstXIntercept(from, NewRay(angle), blockSize); got != noIntercept {
			t.Errorf("FirstXIntercept at %v = %+v, want sentinel", angle, got)
		}
	}
}

func TestFirstYIntercept(t *testing.T) {
	from := rcmath.Point{X: 12, Y: 12}
	cases := []struct {
		angle float64
		want  rcmath.Point
	}{
		{45, rcmath.Point{X: 16, Y: 8}},
		{135, rcmath.Point{X: 16, Y: 16}},
		{225, rcmath.Point{X: 8, Y: 16}},
		{315, rcmath.Point{X: 8, Y: 8}},
		{0, rcmath.Point{X: 12, Y: 8}},
		{180, rcmath.Point{X: 12, Y: 16}},
	}
	for _, c := range cases {
		nearPoint(t, "FirstYIntercept", FirstYIntercept(from, NewRay(c.angle), blockSize), c.want)
	}

	for _, angle := range []float64{90, 270} {
		if got := FirstYIntercept(from, NewRay(angle), blockSize); got != noIntercept {
			t.Errorf("FirstYIntercept at %v = %+v, want sentinel", angle, got)
		}
	}
}

func TestCursorStepStaysOnRay(t *testing.T) {
	from := rcmath.Point{X: 12, Y: 12}
	ray := NewRay(30)
	xc := xCursor(from, ray, blockSize)
	xc.advance(from)
	yc := yCursor(from, ray, blockSize)
	yc.advance(from)
	yc.advance(from)

	for _, p := range []rcmath.Point{xc.pos, yc.pos} {
		// every point on the ray satisfies dx = -dy * tan(angle)
		dx, dy := p.X-from.X, p.Y-from.Y
		if math.Abs(dx+dy*rcmath.TanDeg(30)) > 1e-9 {
			t.Errorf("point (%v, %v) is off the ray", p.X, p.Y)
		}
	}
	if xc.pos.X != 24 {
		t.Errorf("second vertical intercept x = %v, want 24", xc.pos.X)
	}
	if yc.pos.Y != -8 {
		t.Errorf("third horizontal intercept y = %v, want -8", yc.pos.Y)
	}
}

func TestCastRoomCardinals(t *testing.T) {
	m, spawn := level.Room(7, 7)
	from := spawn.State(blockSize).Location
	caster := Caster{BlockSize: blockSize}

	cases := []struct {
		angle float64
		axis  Axis
		point rcmath.Point
	}{
		{0, AxisHorizontal, rcmath.Point{X: 28, Y: 8}},
		{90, AxisVertical, rcmath.Point{X: 48, Y: 28}},
		{180, AxisHorizontal, rcmath.Point{X: 28, Y: 48}},
		{270, AxisVertical, rcmath.Point{X: 8, Y: 28}},
	}
	for _, c := range cases {
		hit, err := caster.Cast(m, from, NewRay(c.angle))
		if err != nil {
			t.Fatalf("Cast(%v): %v", c.angle, err)
		}
		// half of the 5-tile interior
		if math.Abs(hit.Distance-20) > 1e-9 {
			t.Errorf("Cast(%v) distance = %v, want 20", c.angle, hit.Distance)
		}
		if hit.Axis != c.axis {
			t.Errorf("Cast(%v) axis = %v, want %v", c.angle, hit.Axis, c.axis)
		}
		if !m.IsWall(hit.Row, hit.Col) {
			t.Errorf("Cast(%v) reported non-wall tile (%d, %d)", c.angle, hit.Row, hit.Col)
		}
		nearPoint(t, "hit point", hit.Point, c.point)
	}
}

func TestCastTieBreakPrefersVertical(t *testing.T) {
	m, spawn := level.Room(7, 7)
	hit, err := Caster{BlockSize: blockSize}.Cast(m, spawn.State(blockSize).Location, NewRay(45))
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	// the 45° ray passes exactly through grid corners
	if hit.Axis != AxisVertical {
		t.Fatalf("axis = %v, want vertical", hit.Axis)
	}
	nearPoint(t, "hit point", hit.Point, rcmath.Point{X: 48, Y: 8})
	if hit.Row != 1 || hit.Col != 6 {
		t.Fatalf("tile = (%d, %d), want (1, 6)", hit.Row, hit.Col)
	}
}

func TestCastChecksNeighbourWhenTravellingNegative(t *testing.T) {
	m := level.New(3, 3)
	m.Set(1, 0, 7)

	hit, err := Caster{BlockSize: blockSize}.Cast(m, rcmath.Point{X: 20, Y: 12}, NewRay(270))
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if hit.Distance != 12 || hit.Col != 0 || hit.Tile != 7 {
		t.Fatalf("hit = %+v, want distance 12 on tile 7 in column 0", hit)
	}

	m = level.New(3, 3)
	m.Set(0, 1, 3)
	hit, err = Caster{BlockSize: blockSize}.Cast(m, rcmath.Point{X: 12, Y: 20}, NewRay(0))
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if hit.Distance != 12 || hit.Row != 0 || hit.Axis != AxisHorizontal {
		t.Fatalf("hit = %+v, want distance 12 on row 0", hit)
	}
}

func TestCastLeavingGridIsInvariantError(t *testing.T) {
	open := level.New(3, 3)
	_, err := Caster{BlockSize: blockSize}.Cast(open, rcmath.Point{X: 12, Y: 12}, NewRay(90))
	if !errors.Is(err, ErrOutOfBounds) || !errors.Is(err, ErrInvariant) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	var ie *InvariantError
	if !errors.As(err, &ie) || ie.Component != ComponentTraversal {
		t.Fatalf("err = %#v, want traversal InvariantError", err)
	}

	// towards -x the neighbour check must not index column -1
	_, err = Caster{BlockSize: blockSize}.Cast(open, rcmath.Point{X: 12, Y: 12}, NewRay(270))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestCastFromOutsideMap(t *testing.T) {
	m, _ := level.Room(7, 7)
	_, err := Caster{BlockSize: blockSize}.Cast(m, rcmath.Point{X: -50, Y: 12}, NewRay(90))
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("err = %v, want invariant violation", err)
	}
}

func TestCastIterationCap(t *testing.T) {
	m, spawn := level.Room(7, 7)
	caster := Caster{BlockSize: blockSize, MaxSteps: 1}
	_, err := caster.Cast(m, spawn.State(blockSize).Location, NewRay(0))
	if !errors.Is(err, ErrIterationCap) {
		t.Fatalf("err = %v, want ErrIterationCap", err)
	}
}

func TestCastEveryAngleTerminates(t *testing.T) {
	m, spawn := level.Room(9, 13)
	from := spawn.State(blockSize).Location
	from.X += 1.3
	from.Y -= 2.7
	caster := Caster{BlockSize: blockSize}
	for a := 0.0; a < 360; a += 0.1 {
		hit, err := caster.Cast(m, from, NewRay(a))
		if err != nil {
			t.Fatalf("Cast(%v): %v", a, err)
		}
		if !m.IsWall(hit.Row, hit.Col) {
			t.Fatalf("Cast(%v) stopped on open tile (%d, %d)", a, hit.Row, hit.Col)
		}
		if d := rcmath.Distance(from, hit.Point); math.Abs(d-hit.Distance) > 1e-6 {
			t.Fatalf("Cast(%v) distance %v does not match point distance %v", a, hit.Distance, d)
		}
	}
}
