package greeting

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/abhisek/blossom/internal/bloom"
	"github.com/abhisek/blossom/internal/ui/theme"
)

// The tree is drawn in a 400x700 scene; rows above sceneTop stay empty.
const (
	sceneWidth  = 400.0
	sceneTop    = 40.0
	sceneBottom = 700.0

	crownX = 200.0
	crownY = 220.0

	// Seconds a petal takes to spring from the crown to its spot.
	petalSpring = 1.2
	petalAlpha  = 0.9

	// Background petals fall from above the scene to below it.
	driftFrom  = sceneTop - 50
	driftTo    = sceneBottom + 50
	driftColor = "#fecdd3"
	driftAlpha = 0.6
)

type point struct{ x, y float64 }

// cubic is one Bézier segment: start, two controls, end.
type cubic [4]point

func (c cubic) at(t float64) point {
	u := 1 - t
	a, b, d, e := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return point{
		x: a*c[0].x + b*c[1].x + d*c[2].x + e*c[3].x,
		y: a*c[0].y + b*c[1].y + d*c[2].y + e*c[3].y,
	}
}

// stroke is a path revealed over time, like a pen drawing it.
type stroke struct {
	segments []cubic
	delay    float32
	duration float32
	easing   ease.TweenFunc
	glyph    rune // 0 picks a line glyph from the slope
	color    string
	alpha    float64
	thick    bool
}

var tree = []stroke{
	{ // shadow trunk
		segments: []cubic{{{190, 700}, {170, 580}, {220, 530}, {195, 430}}},
		duration: 3.5, easing: ease.OutCirc, glyph: '░', color: "#4a403a", alpha: 0.3,
	},
	{ // trunk
		segments: []cubic{
			{{200, 700}, {180, 600}, {240, 550}, {210, 450}},
			{{210, 450}, {190, 380}, {230, 300}, {200, 200}},
		},
		duration: 3.5, easing: ease.OutCirc, glyph: '█', color: "#4a403a", alpha: 1, thick: true,
	},
	{ // left branch
		segments: []cubic{{{210, 450}, {160, 450}, {130, 480}, {90, 420}}},
		delay: 0.8, duration: 2.5, easing: ease.InOutQuad, color: "#4a403a", alpha: 1,
	},
	{ // right branch
		segments: []cubic{{{205, 350}, {260, 350}, {300, 380}, {350, 320}}},
		delay: 1.2, duration: 2.5, easing: ease.InOutQuad, color: "#4a403a", alpha: 1,
	},
}

var petalGlyphs = []rune{'✿', '❀', '✾', '❁'}

// progress returns how much of a tween from 0 to 1 has played at t seconds.
func progress(t, delay, duration float32, fn ease.TweenFunc) float64 {
	if t <= delay {
		return 0
	}
	v, _ := gween.New(0, 1, duration, fn).Set(t - delay)
	return float64(v)
}

// blend mixes hex toward the paper background; alpha 1 is the pure colour.
func blend(hex string, alpha float64) string {
	fg, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	bg, _ := colorful.Hex(theme.BgHex)
	alpha = math.Max(0, math.Min(1, alpha))
	return bg.BlendLab(fg, alpha).Clamped().Hex()
}

type cell struct {
	r     rune
	color string
}

// canvas is a character grid the tree and petals are plotted on.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 1), h: max(h, 1)}
	c.cells = make([][]cell, c.h)
	for i := range c.cells {
		c.cells[i] = make([]cell, c.w)
	}
	return c
}

// project maps scene coordinates to a cell.
func (c *canvas) project(p point) (col, row int) {
	col = int(math.Round(p.x / sceneWidth * float64(c.w-1)))
	row = int(math.Round((p.y - sceneTop) / (sceneBottom - sceneTop) * float64(c.h-1)))
	return col, row
}

func (c *canvas) set(col, row int, r rune, color string) {
	if col < 0 || row < 0 || col >= c.w || row >= c.h {
		return
	}
	c.cells[row][col] = cell{r: r, color: color}
}

func (c *canvas) drawStroke(s stroke, t float32) {
	p := progress(t, s.delay, s.duration, s.easing)
	if p <= 0 {
		return
	}
	color := blend(s.color, s.alpha)

	const samplesPerSegment = 60
	n := len(s.segments) * samplesPerSegment
	limit := int(math.Round(p * float64(n)))

	prevCol, prevRow := c.project(s.segments[0][0])
	for i := 0; i <= limit; i++ {
		seg := min(i/samplesPerSegment, len(s.segments)-1)
		u := float64(i-seg*samplesPerSegment) / samplesPerSegment
		col, row := c.project(s.segments[seg].at(u))

		r := s.glyph
		if r == 0 {
			r = slopeGlyph(col-prevCol, row-prevRow)
		}
		c.set(col, row, r, color)
		if s.thick && c.w >= 40 {
			c.set(col+1, row, r, color)
		}
		prevCol, prevRow = col, row
	}
}

func slopeGlyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (c *canvas) drawPetal(p bloom.Particle, t float32) {
	if t <= float32(p.Delay) {
		return
	}
	// Springy overshoot on position and size, plain ease on opacity.
	spring := progress(t, float32(p.Delay), petalSpring, ease.OutBack)
	fade := progress(t, float32(p.Delay), petalSpring, ease.OutQuad)

	col, row := c.project(point{x: crownX + p.X*spring, y: crownY + p.Y*spring})

	r := '•'
	if p.Scale*spring >= 0.7 {
		r = petalGlyphs[int(p.Rotation/90)%len(petalGlyphs)]
	}
	c.set(col, row, r, blend(p.Color, petalAlpha*fade))
}

// drawDrifter plots a background petal t seconds into its endless fall,
// turning once per fall. It only fills empty cells.
func (c *canvas) drawDrifter(d bloom.Drifter, t float32) {
	frac := math.Mod(float64(t), bloom.DriftPeriod) / bloom.DriftPeriod
	col, row := c.project(point{x: d.Column * sceneWidth, y: driftFrom + (driftTo-driftFrom)*frac})
	if col < 0 || row < 0 || col >= c.w || row >= c.h || c.cells[row][col].r != 0 {
		return
	}
	r := petalGlyphs[int(frac*float64(len(petalGlyphs)))%len(petalGlyphs)]
	c.set(col, row, r, blend(driftColor, driftAlpha))
}

// render turns the grid into styled lines, one style per colour run.
func (c *canvas) render() string {
	lines := make([]string, c.h)
	for row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range c.cells[row] {
			if cl.color != runColor {
				flush()
				runColor = cl.color
			}
			if cl.r == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(cl.r)
			}
		}
		flush()
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// renderScene draws the tree grown for growT seconds with the background
// petals behind it and, when petals is non-nil, the burst bloomT seconds
// after it started.
func renderScene(w, h int, growT float32, drifters []bloom.Drifter, petals []bloom.Particle, bloomT float32) string {
	c := newCanvas(w, h)
	for _, s := range tree {
		c.drawStroke(s, growT)
	}
	for _, p := range petals {
		c.drawPetal(p, bloomT)
	}
	for _, d := range drifters {
		c.drawDrifter(d, growT)
	}
	return c.render()
}

// treeDone reports whether every stroke has finished drawing at t.
func treeDone(t float32) bool {
	for _, s := range tree {
		if t < s.delay+s.duration {
			return false
		}
	}
	return true
}

// burstDone reports whether every petal has settled at t.
func burstDone(t float32) bool {
	return t >= bloom.MaxDelay+petalSpring
}
