package clock

// ViewportHeight is the fixed height of the clock face, border rows included.
const ViewportHeight = 7

// Viewport widths for each layout.
const (
	WidthCompact = 34 // 24-hour, no seconds
	WidthMedium  = 54 // 24-hour with seconds, or 12-hour without
	WidthWide    = 74 // 12-hour with seconds
)

// Geometry is the size and placement of the clock face inside the terminal.
// It is always derived from a DisplayConfig and a terminal size, never set
// field by field.
type Geometry struct {
	Width, Height        int
	OriginRow, OriginCol int
}

// WidthFor returns the face width for cfg.
func WidthFor(cfg DisplayConfig) int {
	switch {
	case cfg.TwentyFourHour && !cfg.ShowSeconds:
		return WidthCompact
	case cfg.TwentyFourHour, !cfg.ShowSeconds:
		return WidthMedium
	default:
		return WidthWide
	}
}

// NewGeometry sizes the face for cfg and centers it in a terminal of
// termWidth x termHeight cells. A face larger than the terminal is pinned
// to the top-left corner.
func NewGeometry(cfg DisplayConfig, termWidth, termHeight int) Geometry {
	w, h := WidthFor(cfg), ViewportHeight
	return Geometry{
		Width:     w,
		Height:    h,
		OriginRow: max(termHeight/2-h/2, 0),
		OriginCol: max(termWidth/2-w/2, 0),
	}
}

// Column positions of each element on the face.
const (
	colHourTens     = 1
	colHourOnes     = 8
	colFirstSep     = 16
	colMinuteTens   = 20
	colMinuteOnes   = 27
	colSecondSep    = 35
	colSecondTens   = 39
	colSecondOnes   = 46
	glyphRow        = 1
	meridiemNoSecs  = 39
	meridiemWithSec = 58
)

// MeridiemColumn returns the first column of the AM/PM block, or -1 in
// 24-hour mode.
func MeridiemColumn(cfg DisplayConfig) int {
	switch {
	case cfg.TwentyFourHour:
		return -1
	case cfg.ShowSeconds:
		return meridiemWithSec
	default:
		return meridiemNoSecs
	}
}
