package clock

import (
	"fmt"
	"time"
)

// TimeDigits is the decoded content of one tick.
type TimeDigits struct {
	HourTens, HourOnes     int
	MinuteTens, MinuteOnes int

	// SecondTens and SecondOnes are only meaningful when HasSeconds is set.
	SecondTens, SecondOnes int
	HasSeconds             bool

	// Afternoon selects PM over AM in 12-hour mode.
	Afternoon bool
}

// Decode splits a wall-clock time into display digits under cfg.
//
// Hours are expected in 0-23. In 24-hour mode the hour is reduced modulo 24,
// so a source that reports midnight as 24 still renders "00".
func Decode(hour, minute, second int, cfg DisplayConfig) TimeDigits {
	var d TimeDigits

	switch {
	case cfg.TwentyFourHour:
		h := hour % 24
		d.HourTens, d.HourOnes = h/10, h%10
	case hour%12 == 0:
		d.HourTens, d.HourOnes = 1, 2
	default:
		h := hour % 12
		d.HourTens, d.HourOnes = h/10, h%10
	}

	d.MinuteTens, d.MinuteOnes = minute/10, minute%10

	if cfg.ShowSeconds {
		d.SecondTens, d.SecondOnes = second/10, second%10
		d.HasSeconds = true
	}

	d.Afternoon = hour >= 12
	return d
}

// DecodeTime decodes t in its own location.
func DecodeTime(t time.Time, cfg DisplayConfig) TimeDigits {
	return Decode(t.Hour(), t.Minute(), t.Second(), cfg)
}

// String renders the digits as HH:MM or HH:MM:SS.
func (d TimeDigits) String() string {
	s := fmt.Sprintf("%d%d:%d%d", d.HourTens, d.HourOnes, d.MinuteTens, d.MinuteOnes)
	if d.HasSeconds {
		s += fmt.Sprintf(":%d%d", d.SecondTens, d.SecondOnes)
	}
	return s
}
