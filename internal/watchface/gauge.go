package watchface

import (
	"fmt"
	"math"
	"time"
)

const (
	// KCaloriesGoal is a full turn of the gauge
	KCaloriesGoal = 3000
	// KCaloriesGood is where the calorie label turns happy
	KCaloriesGood = 2500

	HappyEmoji = "\U0001F604"
	FrownEmoji = "\U0001F61E"
)

// GaugeAngle returns the arc sweep in degrees for kcal.
// Negative sweeps run counter-clockwise from 12 o'clock. The value is not
// clamped; a snapshot above the goal yields a sweep beyond -360.
func GaugeAngle(kcal int) int {
	return -int(math.Round(360 * float64(kcal) / KCaloriesGoal))
}

// Emoji picks the glyph for kcal
func Emoji(kcal int) string {
	if kcal >= KCaloriesGood {
		return HappyEmoji
	}
	return FrownEmoji
}

// CalorieText formats the calorie label
func CalorieText(kcal int) string {
	return fmt.Sprintf("%d cals %s", kcal, Emoji(kcal))
}

// TimeText formats t as HH:MM, on a 24 or 12 hour clock
func TimeText(t time.Time, use24h bool) string {
	if use24h {
		return t.Format("15:04")
	}
	return t.Format("03:04")
}
