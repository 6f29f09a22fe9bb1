package clock

// Glyph dimensions in bitmap cells. Every bitmap cell is CellWidth
// terminal columns wide.
const (
	GlyphCols = 3
	GlyphRows = 5
	CellWidth = 2
)

// Glyph is a row-major 3x5 bitmap.
type Glyph [GlyphCols * GlyphRows]bool

// GlyphTable maps a decimal digit to its bitmap.
var GlyphTable = [10]Glyph{
	{true, true, true, true, false, true, true, false, true, true, false, true, true, true, true},       // 0
	{false, false, true, false, false, true, false, false, true, false, false, true, false, false, true}, // 1
	{true, true, true, false, false, true, true, true, true, true, false, false, true, true, true},      // 2
	{true, true, true, false, false, true, true, true, true, false, false, true, true, true, true},      // 3
	{true, false, true, true, false, true, true, true, true, false, false, true, false, false, true},    // 4
	{true, true, true, true, false, false, true, true, true, false, false, true, true, true, true},      // 5
	{true, true, true, true, false, false, true, true, true, true, false, true, true, true, true},       // 6
	{true, true, true, false, false, true, false, false, true, false, false, true, false, false, true},  // 7
	{true, true, true, true, false, true, true, true, true, true, false, true, true, true, true},        // 8
	{true, true, true, true, false, true, true, true, true, false, false, true, true, true, true},       // 9
}

// At reports whether the bitmap cell at (row, col) is lit.
func (g Glyph) At(row, col int) bool {
	return g[row*GlyphCols+col]
}
