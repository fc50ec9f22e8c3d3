package watchface

import (
	"strings"
	"testing"
	"time"
)

func TestGaugeAngle(t *testing.T) {
	tests := []struct {
		kcal int
		want int
	}{
		{0, 0},
		{1, 0},
		{5, -1}, // 0.6° rounds away from zero
		{750, -90},
		{1500, -180},
		{2500, -300},
		{3000, -360},
		{4500, -540}, // not clamped
	}
	for _, tt := range tests {
		if got := GaugeAngle(tt.kcal); got != tt.want {
			t.Errorf("GaugeAngle(%d) = %d, want %d", tt.kcal, got, tt.want)
		}
	}
}

func TestGaugeAngleMatchesFormula(t *testing.T) {
	for c := 0; c <= 6000; c += 7 {
		want := -int(float64(360*c)/KCaloriesGoal + 0.5)
		if got := GaugeAngle(c); got != want {
			t.Fatalf("GaugeAngle(%d) = %d, want %d", c, got, want)
		}
	}
}

func TestEmojiThreshold(t *testing.T) {
	tests := []struct {
		kcal int
		want string
	}{
		{0, FrownEmoji},
		{2499, FrownEmoji},
		{2500, HappyEmoji},
		{2501, HappyEmoji},
		{9000, HappyEmoji},
	}
	for _, tt := range tests {
		if got := Emoji(tt.kcal); got != tt.want {
			t.Errorf("Emoji(%d) = %q, want %q", tt.kcal, got, tt.want)
		}
	}
}

func TestCalorieText(t *testing.T) {
	tests := []struct {
		kcal int
		want string
	}{
		{0, "0 cals \U0001F61E"},
		{2499, "2499 cals \U0001F61E"},
		{2500, "2500 cals \U0001F604"},
		{12345, "12345 cals \U0001F604"},
	}
	for _, tt := range tests {
		got := CalorieText(tt.kcal)
		if got != tt.want {
			t.Errorf("CalorieText(%d) = %q, want %q", tt.kcal, got, tt.want)
		}
		if strings.ContainsAny(got, ",.") {
			t.Errorf("CalorieText(%d) = %q contains a separator", tt.kcal, got)
		}
	}
}

func TestTimeText(t *testing.T) {
	tests := []struct {
		name   string
		at     time.Time
		use24h bool
		want   string
	}{
		{"24h morning", time.Date(2024, 1, 1, 7, 5, 0, 0, time.UTC), true, "07:05"},
		{"24h afternoon", time.Date(2024, 1, 1, 19, 45, 0, 0, time.UTC), true, "19:45"},
		{"24h midnight", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true, "00:00"},
		{"12h morning", time.Date(2024, 1, 1, 7, 5, 0, 0, time.UTC), false, "07:05"},
		{"12h afternoon", time.Date(2024, 1, 1, 19, 45, 0, 0, time.UTC), false, "07:45"},
		{"12h midnight", time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC), false, "12:30"},
		{"12h noon", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), false, "12:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeText(tt.at, tt.use24h); got != tt.want {
				t.Errorf("TimeText = %q, want %q", got, tt.want)
			}
		})
	}
}
