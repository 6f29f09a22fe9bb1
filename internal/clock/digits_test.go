package clock

import (
	"testing"
	"time"
)

func TestDecodeTwentyFourHour(t *testing.T) {
	cfg := DisplayConfig{TwentyFourHour: true, ShowSeconds: true}
	for h := range 24 {
		d := Decode(h, 0, 0, cfg)
		if d.HourTens != h/10 || d.HourOnes != h%10 {
			t.Errorf("hour %d: got %d%d, want %d%d", h, d.HourTens, d.HourOnes, h/10, h%10)
		}
	}
}

func TestDecodeTwentyFourHourNormalizesMidnight(t *testing.T) {
	d := Decode(24, 0, 0, DisplayConfig{TwentyFourHour: true})
	if d.HourTens != 0 || d.HourOnes != 0 {
		t.Errorf("hour 24: got %d%d, want 00", d.HourTens, d.HourOnes)
	}
}

func TestDecodeTwelveHour(t *testing.T) {
	cfg := DisplayConfig{ShowSeconds: true}
	for h := range 24 {
		d := Decode(h, 0, 0, cfg)

		wantTens, wantOnes := (h%12)/10, (h%12)%10
		if h%12 == 0 {
			wantTens, wantOnes = 1, 2
		}
		if d.HourTens != wantTens || d.HourOnes != wantOnes {
			t.Errorf("hour %d: got %d%d, want %d%d", h, d.HourTens, d.HourOnes, wantTens, wantOnes)
		}
		if d.Afternoon != (h >= 12) {
			t.Errorf("hour %d: Afternoon = %v, want %v", h, d.Afternoon, h >= 12)
		}
	}
}

func TestDecodeMinutesAndSeconds(t *testing.T) {
	tests := []struct {
		name        string
		cfg         DisplayConfig
		minute, sec int
		want        string
	}{
		{"seconds shown", DisplayConfig{TwentyFourHour: true, ShowSeconds: true}, 5, 7, "10:05:07"},
		{"seconds hidden", DisplayConfig{TwentyFourHour: true}, 59, 42, "10:59"},
		{"twelve hour minutes unchanged", DisplayConfig{ShowSeconds: true}, 30, 0, "10:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decode(10, tt.minute, tt.sec, tt.cfg)
			if got := d.String(); got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeTimeScenarios(t *testing.T) {
	tests := []struct {
		name          string
		cfg           DisplayConfig
		at            time.Time
		want          string
		wantAfternoon bool
	}{
		{
			name: "defaults in the morning",
			cfg:  DisplayConfig{ColorIndex: 4, ShowSeconds: true},
			at:   time.Date(2024, 1, 2, 9, 5, 7, 0, time.Local),
			want: "09:05:07",
		},
		{
			name:          "twenty four hour without seconds",
			cfg:           DisplayConfig{TwentyFourHour: true},
			at:            time.Date(2024, 1, 2, 23, 59, 0, 0, time.Local),
			want:          "23:59",
			wantAfternoon: true,
		},
		{
			name:          "noon is PM",
			cfg:           DisplayConfig{},
			at:            time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local),
			want:          "12:00",
			wantAfternoon: true,
		},
		{
			name: "midnight is AM",
			cfg:  DisplayConfig{},
			at:   time.Date(2024, 1, 2, 0, 15, 0, 0, time.Local),
			want: "12:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DecodeTime(tt.at, tt.cfg)
			if got := d.String(); got != tt.want {
				t.Errorf("DecodeTime() = %q, want %q", got, tt.want)
			}
			if d.Afternoon != tt.wantAfternoon {
				t.Errorf("Afternoon = %v, want %v", d.Afternoon, tt.wantAfternoon)
			}
		})
	}
}
