package ui

import (
	"image"
	"strconv"
	"strings"

	"dumbo-octopus/internal/core"
)

const (
	panelPadding   = 12
	rowHeight      = 36
	statLineHeight = 18
	buttonSize     = 24
	buttonGap      = 6
	titleBaseline  = 18
	labelBaseline  = 24
	statsGap       = 24
	rowsTop        = panelPadding + titleBaseline + 14
)

// controlRow is one adjustable parameter as laid out on the panel.
type controlRow struct {
	ctrl  core.ParameterControl
	value int
	known bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

func (r *controlRow) label() string {
	if !r.known {
		return "--"
	}
	return strconv.Itoa(r.value)
}

// canMove reports whether a click in direction would change the value.
func (r *controlRow) canMove(direction int) bool {
	if !r.known {
		return false
	}
	_, ok := r.ctrl.Adjust(r.value, direction)
	return ok
}

// layoutRows stacks one row per control, with the +/- buttons flush against
// the right edge of a panel of the given width.
func layoutRows(ctrls []core.ParameterControl, width int) []controlRow {
	rows := make([]controlRow, len(ctrls))
	for i, ctrl := range ctrls {
		top := rowsTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		rows[i] = controlRow{ctrl: ctrl, top: top, minus: minus, plus: plus}
	}
	return rows
}

// syncRows copies the current int values from snap into rows. Rows whose key
// is missing or not an integer are marked unknown and cannot be clicked.
func syncRows(rows []controlRow, snap core.ParameterSnapshot) {
	for i := range rows {
		r := &rows[i]
		r.known = false
		p, ok := snap.Lookup(r.ctrl.Key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			continue
		}
		r.value, r.known = v, true
	}
}

// buttonAt finds the row and direction of the button under pt, given in
// panel coordinates.
func buttonAt(rows []controlRow, pt image.Point) (row, direction int, ok bool) {
	for i := range rows {
		switch {
		case pt.In(rows[i].minus):
			return i, -1, true
		case pt.In(rows[i].plus):
			return i, 1, true
		}
	}
	return 0, 0, false
}

// statLine is one line of the read-only statistics listing.
type statLine struct {
	label  string
	value  string
	header bool
}

// statLines flattens snap into group headers and label/value lines, leaving
// out parameters already shown as controls.
func statLines(snap core.ParameterSnapshot, rows []controlRow) []statLine {
	shown := make(map[string]bool, len(rows))
	for _, r := range rows {
		shown[r.ctrl.Key] = true
	}
	var lines []statLine
	for _, g := range snap.Groups {
		lines = append(lines, statLine{label: g.Name, header: true})
		for _, p := range g.Params {
			if shown[p.Key] {
				continue
			}
			lines = append(lines, statLine{label: p.Label, value: p.Value})
		}
	}
	return lines
}

func panelTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
