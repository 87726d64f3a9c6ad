package flight

// This is the function we are solving: find v, so that balance(v) = 0.
// Inside the transition band the falling drag coefficient can outweigh
// the v² growth (drag crisis), so a freeLift landing in that dip has
// more than one balance; bisection returns one of them.
func (c *FlightCalc) balance(v, freeLift, diameter, density, viscosity float64) float64 {
	return c.BalloonDrag(diameter, v, density, viscosity) - freeLift*gravity
}

// AscentRate returns the steady ascent rate (m/s) at which the balloon
// drag balances the net free lift freeLift (kg), and the number of
// bisection rounds used. freeLift is the buoyancy surplus left after
// the balloon and payload weight, i.e. nozzle lift minus payload mass.
// Iteration stops when the bracket is shorter than tol; tol <= 0 uses
// 0.001 m/s. For freeLift <= 0 AscentRate returns 0, 0.
//
// AscentRate is a flight setup helper, not a per-timestep query: on a
// zero drag calibration no balance exists and the failure is appended
// to the calculator error message.
func (c *FlightCalc) AscentRate(freeLift, diameter, density, viscosity, tol float64) (vel float64, iter int) {
	if freeLift <= 0 {
		return 0, 0
	}
	if tol <= 0 {
		tol = 0.001
	}
	vL, vR := 0.0, 2.0
	for c.balance(vR, freeLift, diameter, density, viscosity) < 0 {
		if vR > maxAscentVel {
			c.appendErr(": AscentRate: no drag balance below " + maxAscentVelS)
			return vR, 0
		}
		vL = vR
		vR *= 2
	}
	for vR-vL > tol {
		v := (vL + vR) / 2
		if v == vL || v == vR { // adjacent numbers, small tol
			break
		}
		iter++
		if c.balance(v, freeLift, diameter, density, viscosity) > 0 {
			vR = v
		} else {
			vL = v
		}
	}
	return (vL + vR) / 2, iter
}

// FreeLiftForAscentRate returns the net free lift (kg) that makes the
// balloon climb steadily at ascentRate (m/s). Closed-form inverse of
// AscentRate: the lift weight equals the drag at that rate.
func (c *FlightCalc) FreeLiftForAscentRate(ascentRate, diameter, density, viscosity float64) float64 {
	return c.BalloonDrag(diameter, ascentRate, density, viscosity) / gravity
}
