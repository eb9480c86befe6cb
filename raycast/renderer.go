package raycast

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wolfcast/level"
	"wolfcast/model"
	"wolfcast/texture"
)

// Textures resolves the texture pair drawn on a wall tile.
type Textures interface {
	WallPair(tile level.Tile) texture.Pair
}

// DrawCommand paints one screen column. Pixels holds Height RGBA pixels
// starting at TopY; either end may lie off screen.
type DrawCommand struct {
	Column   int
	TopY     int
	Height   int
	Axis     Axis
	Distance float64 // corrected
	Pixels   []byte
}

// Options configures a Renderer. The strategies are fixed for its lifetime.
type Options struct {
	Screen            Screen
	BlockSize         float64
	ReferenceDistance float64
	MinDistance       float64
	Distance          DistanceMode
	Walls             WallMode
	// Workers is the number of goroutines casting columns; 0 uses one per
	// CPU and 1 casts on the calling goroutine.
	Workers  int
	MaxSteps int
}

func DefaultOptions() Options {
	return Options{
		Screen:            Screen{Width: 320, Height: 200, DegPerPixel: 0.1},
		BlockSize:         8,
		ReferenceDistance: DefaultReferenceDistance,
		MinDistance:       DefaultMinDistance,
		Distance:          Perpendicular,
		Walls:             Textured,
	}
}

var ErrNoTextures = errors.New("raycast: textured walls need a texture source")

// Renderer turns a player state and a grid into one DrawCommand per column.
type Renderer struct {
	opts   Options
	caster Caster
	proj   Projection
}

func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Screen.Width <= 0 || opts.Screen.Height <= 0 {
		return nil, fmt.Errorf("raycast: invalid screen %dx%d", opts.Screen.Width, opts.Screen.Height)
	}
	if opts.Screen.DegPerPixel <= 0 {
		return nil, fmt.Errorf("raycast: invalid degrees per pixel %v", opts.Screen.DegPerPixel)
	}
	if opts.BlockSize <= 0 {
		return nil, fmt.Errorf("raycast: invalid block size %v", opts.BlockSize)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{
		opts:   opts,
		caster: Caster{BlockSize: opts.BlockSize, MaxSteps: opts.MaxSteps},
		proj:   NewProjection(opts.Screen.Height, opts.ReferenceDistance, opts.MinDistance),
	}, nil
}

func (r *Renderer) Options() Options { return r.opts }

// RenderColumn casts and projects a single screen column.
func (r *Renderer) RenderColumn(g Grid, tex Textures, state model.PlayerState, column int) (DrawCommand, error) {
	if r.opts.Walls == Textured && tex == nil {
		return DrawCommand{}, ErrNoTextures
	}
	ray := NewRay(r.opts.Screen.RayAngle(state.Heading, column))

	hit, err := r.caster.Cast(g, state.Location, ray)
	if err != nil {
		return DrawCommand{}, withColumn(err, column)
	}

	dist := r.opts.Distance.Correct(hit.Distance, state.Heading, ray.Angle)
	if dist < 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return DrawCommand{}, withColumn(invariant(ComponentProjection, ErrBadDistance, dist), column)
	}
	height := r.proj.WallHeight(dist)
	cmd := DrawCommand{
		Column:   column,
		TopY:     r.proj.TopY(height),
		Height:   height,
		Axis:     hit.Axis,
		Distance: dist,
	}

	light := hit.Axis == AxisVertical
	if r.opts.Walls == Flat {
		c := FlatDark
		if light {
			c = FlatLight
		}
		cmd.Pixels = solidColumn(height, c)
		return cmd, nil
	}

	pair := tex.WallPair(hit.Tile)
	t := pair.Dark
	if light {
		t = pair.Light
	}
	if t == nil {
		return DrawCommand{}, withColumn(invariant(ComponentTexture, ErrNoTexture, hit.Tile), column)
	}

	src, err := t.Column(TextureColumn(hit, r.opts.BlockSize, t.Size))
	if err != nil {
		return DrawCommand{}, withColumn(invariant(ComponentTexture, ErrTextureBounds, err), column)
	}
	cmd.Pixels, err = Resample(src, t.Size, height)
	if err != nil {
		return DrawCommand{}, withColumn(err, column)
	}
	return cmd, nil
}

// RenderFrame renders every column of the screen. The grid, textures and
// state are only read; columns are split into contiguous ranges, one per
// worker, and each command is written to its own slot. Any invariant error
// aborts the frame.
func (r *Renderer) RenderFrame(g Grid, tex Textures, state model.PlayerState) ([]DrawCommand, error) {
	if r.opts.Walls == Textured && tex == nil {
		return nil, ErrNoTextures
	}

	width := r.opts.Screen.Width
	cmds := make([]DrawCommand, width)

	renderRange := func(from, to int) error {
		for x := from; x < to; x++ {
			cmd, err := r.RenderColumn(g, tex, state, x)
			if err != nil {
				return err
			}
			cmds[x] = cmd
		}
		return nil
	}

	workers := r.opts.Workers
	if workers > width {
		workers = width
	}
	if workers <= 1 {
		if err := renderRange(0, width); err != nil {
			return nil, err
		}
		return cmds, nil
	}

	var eg errgroup.Group
	chunk := (width + workers - 1) / workers
	for from := 0; from < width; from += chunk {
		from, to := from, min(from+chunk, width)
		eg.Go(func() error {
			return renderRange(from, to)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return cmds, nil
}
