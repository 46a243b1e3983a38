package analysis

import "slices"

// Layout places nodes row by row: one row per depth, nodes spread evenly across Width.
type Layout struct {
	Width     float64
	RowHeight float64
	TopMargin float64
}

var DefaultLayout = Layout{Width: 800, RowHeight: 150, TopMargin: 50}

// Apply returns a copy of nodes with positions set. Roots sit at the horizontal center.
// Only PositionX and PositionY differ from the input.
func (l Layout) Apply(nodes []Node) []Node {
	out := slices.Clone(nodes)

	rows := make(map[int][]int)
	for i, n := range out {
		rows[n.Depth] = append(rows[n.Depth], i)
	}

	for depth, idxs := range rows {
		y := l.TopMargin + float64(depth)*l.RowHeight
		spacing := l.Width / float64(len(idxs)+1)
		for slot, i := range idxs {
			if depth == 0 {
				out[i].PositionX = l.Width / 2
			} else {
				out[i].PositionX = spacing * float64(slot+1)
			}
			out[i].PositionY = y
		}
	}
	return out
}
