/*
Package flight implements the closed-form performance calculations of a
high altitude balloon flight: lifting gas sizing at inflation, gas mass
and nozzle lift profiles for floating flights venting gas towards a
target altitude, and aerodynamic drag of the balloon on ascent and of
the parachute on descent.

The package holds no atmosphere model and no trajectory integrator. A
FlightCalc is calibrated once at flight setup and afterwards queried by
an external simulation loop once per timestep. The query methods read
the calibration fields and their arguments only and write nothing, so
concurrent queries from parallel simulation runs (Monte-Carlo
ensembles) are safe without locking, as long as the calibration is not
mutated concurrently.

Invalid physical inputs are not guarded against anywhere: a lifting gas
denser than air, a negative pressure or a zero viscosity propagate as
non-finite or physically nonsensical numbers, and the caller must treat
those as invalid.
*/
package flight

// Physical constants.
const (
	R = 8.31447 // universal gas constant, m³·Pa/(mol·K)

	AirMolecularMass      = 0.02896     // kg/mol
	HeliumMolecularMass   = 0.004002602 // kg/mol
	HydrogenMolecularMass = 0.0020159   // kg/mol

	gravity = 9.80665 // standard sea level value, m/s²
)

const (
	defaultVentStart = 500.0 // m below the float altitude
	maxAscentVel     = 150.0 // m/s
	maxAscentVelS    = "150 m/s"
)

// FlightCalc holds the calibration of a single flight: the balloon drag
// coefficient curve, the parachute and the venting threshold. Set once
// at flight setup, read-only for the remainder of the simulation.
type FlightCalc struct {
	errmsg []byte

	// Balloon drag coefficient curve. The coefficient is highCD below
	// the transition Reynolds number, lowCD above the transition band
	// and blends linearly inside it. transition and reBand are in
	// units of 1e5.
	highCD     float64
	lowCD      float64
	transition float64
	reBand     float64

	parachuteAref float64 // parachute reference area, m²
	parachuteCD   float64

	ventStart float64 // m below the float altitude where venting starts
}

// Calculator returns a new flight calculator. The drag calibration
// starts at zero, reproducing zero drag until a balloon drag curve and
// a parachute are set or loaded; CheckCalibration turns the zero
// defaults into a configuration error for hosts that want to fail at
// setup instead.
func Calculator() *FlightCalc {
	return &FlightCalc{
		ventStart: defaultVentStart,
	}
}

type errstr struct {
	s string
}

func (e *errstr) Error() string {
	return e.s
}

// Error returns the accumulated error message, nil if there is none.
func (c *FlightCalc) Error() error {
	if len(c.errmsg) == 0 {
		return nil
	}
	return &errstr{string(c.errmsg)}
}

func (c *FlightCalc) appendErr(s string) {
	c.errmsg = append(c.errmsg, s...)
}

// CheckCalibration reports every drag calibration field still at its
// zero value. The zero values silently give zero drag, which is the
// legacy behaviour; calling CheckCalibration at flight setup makes an
// incomplete calibration a hard configuration error instead. Any
// previously accumulated error message is discarded.
func (c *FlightCalc) CheckCalibration() error {
	c.errmsg = nil
	if c.highCD == 0 || c.lowCD == 0 {
		c.appendErr(": balloon drag coefficient curve not set")
	}
	if c.transition == 0 || c.reBand == 0 {
		c.appendErr(": drag transition Reynolds band not set")
	}
	if c.parachuteAref == 0 || c.parachuteCD == 0 {
		c.appendErr(": parachute not set")
	}
	return c.Error()
}
