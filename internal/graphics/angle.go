package graphics

// TrigAngleMax is one full revolution in trig-angle units.
// Trig angles start at 12 o'clock and grow clockwise.
const TrigAngleMax = 0x10000

// DegToTrigAngle converts degrees to trig-angle units
func DegToTrigAngle(deg int) int32 {
	return int32(deg * TrigAngleMax / 360)
}

// TrigAngleToDeg converts trig-angle units to degrees
func TrigAngleToDeg(angle int32) float64 {
	return float64(angle) * 360 / TrigAngleMax
}
