package greeting

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/blossom/internal/bloom"
)

// glyphRow returns the first row holding a petal glyph, or -1.
func glyphRow(scene string) int {
	for i, line := range strings.Split(ansi.Strip(scene), "\n") {
		if strings.ContainsAny(line, string(petalGlyphs)) {
			return i
		}
	}
	return -1
}

func TestDrifterFalls(t *testing.T) {
	ds := []bloom.Drifter{{Column: 0.1}}

	assert.Equal(t, -1, glyphRow(renderScene(40, 20, 0, ds, nil, 0)), "starts above the scene")

	early := glyphRow(renderScene(40, 20, 4, ds, nil, 0))
	later := glyphRow(renderScene(40, 20, 8, ds, nil, 0))
	assert.GreaterOrEqual(t, early, 0)
	assert.Greater(t, later, early)

	// One full period later it is back where it was.
	assert.Equal(t, early, glyphRow(renderScene(40, 20, 4+bloom.DriftPeriod, ds, nil, 0)))
}

func TestDrifterStaysBehindTree(t *testing.T) {
	// Column 0.5 follows the trunk; once the trunk is drawn the drifter
	// must not replace its cells.
	ds := []bloom.Drifter{{Column: 0.5}}
	with := ansi.Strip(renderScene(40, 20, 10, ds, nil, 0))
	without := ansi.Strip(renderScene(40, 20, 10, nil, nil, 0))

	for i, line := range strings.Split(without, "\n") {
		got := []rune(strings.Split(with, "\n")[i])
		for j, r := range []rune(line) {
			if r != ' ' {
				assert.Equal(t, r, got[j], "row %d col %d", i, j)
			}
		}
	}
}
