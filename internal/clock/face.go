package clock

// Face is the drawing surface of the clock: a grid of cells that are either
// lit (foreground color) or dark (background).
type Face struct {
	width, height int
	cells         []bool
}

// NewFace returns a dark face of the given size.
func NewFace(width, height int) *Face {
	return &Face{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (f *Face) Width() int { return f.width }

// Height returns the number of rows.
func (f *Face) Height() int { return f.height }

// Lit reports whether the cell at (row, col) is lit. Cells outside the
// face are dark.
func (f *Face) Lit(row, col int) bool {
	if !f.inside(row, col) {
		return false
	}
	return f.cells[row*f.width+col]
}

// Clear darkens every cell.
func (f *Face) Clear() {
	clear(f.cells)
}

func (f *Face) inside(row, col int) bool {
	return row >= 0 && row < f.height && col >= 0 && col < f.width
}

func (f *Face) set(row, col int, lit bool) {
	if f.inside(row, col) {
		f.cells[row*f.width+col] = lit
	}
}

// fill lights n cells starting at (row, col).
func (f *Face) fill(row, col, n int) {
	for i := range n {
		f.set(row, col+i, true)
	}
}

// DrawNumber paints digit n with its top-left corner at (row, col). Both lit
// and dark cells are written so a previous digit never shows through.
func (f *Face) DrawNumber(n, row, col int) {
	g := GlyphTable[n]
	for r := range GlyphRows {
		for c := range GlyphCols {
			lit := g.At(r, c)
			for w := range CellWidth {
				f.set(row+r, col+c*CellWidth+w, lit)
			}
		}
	}
}

// DrawSeparator paints the two colon dots at col.
func (f *Face) DrawSeparator(col int) {
	f.fill(2, col, 2)
	f.fill(4, col, 2)
}

// DrawMeridiem paints the AM/PM block starting at col. The first letter is
// an A in the morning and a P in the afternoon; the M is always drawn.
func (f *Face) DrawMeridiem(col int, afternoon bool) {
	f.fill(1, col, 6)
	f.fill(2, col, 2)
	f.fill(2, col+4, 2)
	f.fill(3, col, 6)
	f.fill(4, col, 2)
	f.fill(5, col, 2)
	if !afternoon {
		f.fill(4, col+4, 2)
		f.fill(5, col+4, 2)
	}

	f.fill(1, col+7, 8)
	for _, offset := range []int{7, 10, 13} {
		for row := 2; row <= 5; row++ {
			f.fill(row, col+offset, 2)
		}
	}
}

// Paint redraws the whole face for d under cfg.
func (f *Face) Paint(d TimeDigits, cfg DisplayConfig) {
	f.Clear()

	f.DrawNumber(d.HourTens, glyphRow, colHourTens)
	f.DrawNumber(d.HourOnes, glyphRow, colHourOnes)
	f.DrawSeparator(colFirstSep)
	f.DrawNumber(d.MinuteTens, glyphRow, colMinuteTens)
	f.DrawNumber(d.MinuteOnes, glyphRow, colMinuteOnes)

	if cfg.ShowSeconds {
		f.DrawSeparator(colSecondSep)
		f.DrawNumber(d.SecondTens, glyphRow, colSecondTens)
		f.DrawNumber(d.SecondOnes, glyphRow, colSecondOnes)
	}

	if col := MeridiemColumn(cfg); col >= 0 {
		f.DrawMeridiem(col, d.Afternoon)
	}
}

// Rows renders the face as text, one string per row, using on for lit cells
// and off for dark ones.
func (f *Face) Rows(on, off rune) []string {
	rows := make([]string, f.height)
	buf := make([]rune, f.width)
	for r := range f.height {
		for c := range f.width {
			if f.Lit(r, c) {
				buf[c] = on
			} else {
				buf[c] = off
			}
		}
		rows[r] = string(buf)
	}
	return rows
}
