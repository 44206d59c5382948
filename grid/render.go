package grid

import "strings"

// String renders the textual preview of the grid: a top border of "+"
// then "---+" per column; per row, a middle line of "|" followed by each
// cell's 3-character interior and a " " or "|" east wall, and a bottom
// line of "+" followed by "   " or "---" south walls. Absent slots render
// as wall-only placeholders.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteByte('+')
	b.WriteString(strings.Repeat("---+", g.columns))

	for row := range g.EachRow() {
		var mid, bot strings.Builder
		mid.WriteByte('|')
		bot.WriteByte('+')
		for _, cell := range row {
			if cell == nil {
				mid.WriteString("   |")
				bot.WriteString("---+")
				continue
			}
			mid.WriteString(pad3(g.CellLabel(cell)))
			if cell.LinkedTo(cell.east) {
				mid.WriteByte(' ')
			} else {
				mid.WriteByte('|')
			}
			if cell.LinkedTo(cell.south) {
				bot.WriteString("   ")
			} else {
				bot.WriteString("---")
			}
			bot.WriteByte('+')
		}
		b.WriteByte('\n')
		b.WriteString(mid.String())
		b.WriteByte('\n')
		b.WriteString(bot.String())
	}

	return b.String()
}

// pad3 fits a label into the 3-character cell interior, centering single
// characters and truncating anything longer than three.
func pad3(label string) string {
	switch len(label) {
	case 0:
		return "   "
	case 1:
		return " " + label + " "
	case 2:
		return " " + label
	case 3:
		return label
	default:
		return label[:3]
	}
}
