package flight

import "math"

// ReynoldsNumber returns the Reynolds number of a sphere of the given
// diameter (m) moving at velocity (m/s) through air of the given
// density (kg/m³) and dynamic viscosity (kg/m·s). The sign of the
// velocity is ignored.
func ReynoldsNumber(density, velocity, diameter, viscosity float64) float64 {
	return density * math.Abs(velocity) * diameter / viscosity
}

// BalloonCD returns the balloon drag coefficient at Reynolds number re.
// Below transition x 1e5 the coefficient is highCD, from
// (transition + reBand) x 1e5 on it is lowCD, and inside the band it
// drops linearly from highCD to lowCD. At re exactly on the lower
// boundary the blend applies and evaluates to highCD, so the curve is
// continuous at both boundaries.
func (c *FlightCalc) BalloonCD(re float64) float64 {
	if re < c.transition*1e5 {
		return c.highCD
	}
	if re < (c.transition+c.reBand)*1e5 {
		return c.highCD - (c.highCD-c.lowCD)*(re-c.transition*1e5)/(c.reBand*1e5)
	}
	return c.lowCD
}

// BalloonDrag returns the aerodynamic drag (N) of the balloon of the
// given diameter (m) moving vertically at ascentRate (m/s) through air
// of the given density (kg/m³) and dynamic viscosity (kg/m·s). The
// drag coefficient follows the calibrated Reynolds curve; the force is
// quadratic in the rate and independent of its sign.
func (c *FlightCalc) BalloonDrag(diameter, ascentRate, density, viscosity float64) float64 {
	re := ReynoldsNumber(density, ascentRate, diameter, viscosity)
	return 0.5 * density * ascentRate * ascentRate * (math.Pi * diameter * diameter / 4) * c.BalloonCD(re)
}

// ParachuteDrag returns the drag (N) generated by the calibrated
// parachute descending at descentRate (m/s) through air of the given
// density (kg/m³).
func (c *FlightCalc) ParachuteDrag(descentRate, density float64) float64 {
	return 0.5 * density * descentRate * descentRate * c.parachuteAref * c.parachuteCD
}
