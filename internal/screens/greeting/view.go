package greeting

import (
	"math"
	"path/filepath"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/tanema/gween/ease"

	"github.com/abhisek/blossom/internal/phase"
	"github.com/abhisek/blossom/internal/ui/components"
	"github.com/abhisek/blossom/internal/ui/layout"
	"github.com/abhisek/blossom/internal/ui/theme"
)

// Button area inside the question card, in cells.
const (
	areaWidth  = 44
	areaHeight = 7
	buttonRow  = areaHeight / 2
	yesCol     = 3

	// Layout units per terminal cell when applying the evasion offset.
	unitsPerCol = 8.0
	unitsPerRow = 16.0

	// Card border plus padding, per side.
	cardInsetX = 3
	cardInsetY = 2

	cardFade  = 1.2 // seconds
	cardWidth = 48
)

// rect is a cell rectangle relative to the content origin.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// near reports whether (x, y) is on r or one cell around it.
func (r rect) near(x, y int) bool {
	return rect{x: r.x - 1, y: r.y - 1, w: r.w + 2, h: r.h + 2}.contains(x, y)
}

// askingLayout is the question card and where its buttons ended up.
type askingLayout struct {
	head    []string
	yesBtn  components.Button
	noBtn   components.Button
	noCol   int
	noRow   int
	yes, no rect
	left    int
	top     int
}

func (s *Screen) askingLayout() askingLayout {
	l := askingLayout{
		yesBtn: components.YesButton(s.cfg.YesLabel),
		noBtn:  components.NoButton(s.cfg.NoLabel),
	}
	l.yesBtn.Focused = true

	center := func(st lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(areaWidth, lipgloss.Center, st.Render(text))
	}
	l.head = []string{
		center(lipgloss.NewStyle().Foreground(theme.Secondary), "✿"),
		"",
		center(theme.Title, s.cfg.Recipient),
		center(theme.Subtitle, strings.ToUpper(s.cfg.Question)),
		"",
	}

	yesW := l.yesBtn.Width()
	noW := l.noBtn.Width()
	baseCol := yesCol + yesW + 4

	o := s.coord.EvasionOffset()
	l.noCol = clamp(baseCol+int(math.Round(o.X/unitsPerCol)), 0, areaWidth-noW)
	l.noRow = clamp(buttonRow+int(math.Round(o.Y/unitsPerRow)), 0, areaHeight-1)

	// Never let "No" cover "Yes".
	if l.noRow == buttonRow && l.noCol < yesCol+yesW+1 && l.noCol+noW > yesCol-1 {
		if yesCol+yesW+1+noW <= areaWidth {
			l.noCol = yesCol + yesW + 1
		} else {
			l.noRow = (buttonRow + 1) % areaHeight
		}
	}

	cardW := areaWidth + 2*cardInsetX
	cardH := len(l.head) + areaHeight + 2*cardInsetY
	l.left = max(0, (s.width-cardW)/2)
	l.top = max(0, (s.height-cardH)/2)

	areaX := l.left + cardInsetX
	areaY := l.top + cardInsetY + len(l.head)
	l.yes = rect{x: areaX + yesCol, y: areaY + buttonRow, w: yesW, h: 1}
	l.no = rect{x: areaX + l.noCol, y: areaY + l.noRow, w: noW, h: 1}
	return l
}

type segment struct {
	col  int
	text string
}

// overlay lays segments on a blank line of the given width.
func overlay(width int, segs ...segment) string {
	sort.Slice(segs, func(i, j int) bool { return segs[i].col < segs[j].col })
	var b strings.Builder
	pos := 0
	for _, sg := range segs {
		if sg.col > pos {
			b.WriteString(strings.Repeat(" ", sg.col-pos))
			pos = sg.col
		}
		b.WriteString(sg.text)
		pos += lipgloss.Width(sg.text)
	}
	if pos < width {
		b.WriteString(strings.Repeat(" ", width-pos))
	}
	return b.String()
}

func (s *Screen) viewAsking() string {
	l := s.askingLayout()

	lines := append([]string{}, l.head...)
	for row := 0; row < areaHeight; row++ {
		var segs []segment
		if row == buttonRow {
			segs = append(segs, segment{col: yesCol, text: l.yesBtn.View()})
		}
		if row == l.noRow {
			segs = append(segs, segment{col: l.noCol, text: l.noBtn.View()})
		}
		lines = append(lines, overlay(areaWidth, segs...))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return offset(card, l.left, l.top)
}

// offset pads content down by top rows and right by left columns.
func offset(content string, left, top int) string {
	pad := strings.Repeat(" ", left)
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Repeat("\n", top) + strings.Join(lines, "\n")
}

func (s *Screen) View(width, height int) string {
	if width > 0 && height > 0 {
		s.width, s.height = width, height
	}

	switch s.coord.Phase() {
	case phase.Asking:
		return s.viewAsking()
	case phase.Growing:
		return s.viewTree(width, height, nil)
	case phase.Bloomed:
		return s.viewBloomed(width, height)
	}
	return ""
}

func (s *Screen) viewTree(width, height int, card *string) string {
	treeW := width
	if card != nil {
		treeW = max(16, width-lipgloss.Width(*card)-2)
	}

	t := s.growT(s.lastFrame)

	var scene string
	if s.coord.Phase() == phase.Growing {
		grown := math.Min(1, float64(t)/s.coord.GrowDelay().Seconds())
		bar := components.NewProgressBar("growing", grown, false, min(treeW, 40)).View()
		scene = renderScene(treeW, height-1, t, s.coord.Drifters(), nil, 0) + "\n" +
			lipgloss.PlaceHorizontal(treeW, lipgloss.Center, bar)
	} else {
		scene = renderScene(treeW, height, t, s.coord.Drifters(), s.coord.Particles(), s.bloomT(s.lastFrame))
	}

	if card == nil {
		return scene
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, scene, "  ", *card)
}

func (s *Screen) viewBloomed(width, height int) string {
	card := s.renderCard(s.bloomT(s.lastFrame), height)
	return s.viewTree(width, height, &card)
}

// renderCard draws the message card sliding up while it fades in.
func (s *Screen) renderCard(t float32, height int) string {
	alpha := progress(t, 0, cardFade, ease.OutQuad)
	inner := cardWidth - 2*cardInsetX

	headline := lipgloss.NewStyle().
		Foreground(lipgloss.Color(blend("#881337", alpha))).
		Bold(true).
		Italic(true).
		Width(inner).
		Align(lipgloss.Center).
		Render(s.cfg.Headline)

	quote := lipgloss.NewStyle().
		Foreground(lipgloss.Color(blend("#374151", alpha))).
		Italic(true).
		Width(inner).
		Align(lipgloss.Center).
		Render("“" + s.cfg.Quote + "”")

	divider := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render("────── ")+
			lipgloss.NewStyle().Foreground(theme.Primary).Render("♥")+
			lipgloss.NewStyle().Foreground(theme.Border).Render(" ──────"))

	story := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("⏱ "+strings.ToUpper(s.cfg.Story)))

	body := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, lipgloss.NewStyle().Foreground(theme.Primary).Render("✦")),
		headline,
		"",
		quote,
		"",
		divider,
		story,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.counter.View()),
	}
	card := theme.Card.Render(strings.Join(body, "\n"))
	if photos := s.renderPhotos(inner); photos != "" && !layout.IsCompactHeight(height) {
		withPhotos := theme.Card.Render(strings.Join(append(body, "", photos), "\n"))
		if lipgloss.Height(withPhotos) <= height {
			card = withPhotos
		}
	}

	// Slide up from two rows below its resting place.
	slide := int(math.Round(2 * (1 - alpha)))
	if lipgloss.Height(card)+slide > height {
		slide = 0
	}
	return strings.Repeat("\n", slide) + card
}

// renderPhotos lists each configured photo as a tilted tag, wrapped to
// width. The paths are shown as given; nothing is loaded.
func (s *Screen) renderPhotos(width int) string {
	if len(s.cfg.Photos) == 0 {
		return ""
	}
	tilts := []string{"╱", "╲"}

	var rows []string
	var row []string
	rowW := 0
	for i, p := range s.cfg.Photos {
		tag := theme.Photo.Render(tilts[i%len(tilts)] + "▣ " + truncate(filepath.Base(p), 12))
		w := lipgloss.Width(tag)
		if len(row) > 0 && rowW+2+w > width {
			rows = append(rows, strings.Join(row, "  "))
			row, rowW = nil, 0
		}
		if len(row) > 0 {
			rowW += 2
		}
		row = append(row, tag)
		rowW += w
	}
	rows = append(rows, strings.Join(row, "  "))

	for i := range rows {
		rows[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, rows[i])
	}
	return strings.Join(rows, "\n")
}

// cardDone reports whether the card has finished fading in at t.
func cardDone(t float32) bool {
	return t >= cardFade
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
