package flight

// The setters keep the previous value when given a non-positive one,
// so a zero ventStart or a negative coefficient is not representable.

// SetHighCD sets the drag coefficient below the transition Reynolds number.
func (c *FlightCalc) SetHighCD(x float64) {
	if x > 0 {
		c.highCD = x
	}
}

// SetLowCD sets the drag coefficient above the transition band.
func (c *FlightCalc) SetLowCD(x float64) {
	if x > 0 {
		c.lowCD = x
	}
}

// SetTransition sets the Reynolds number starting the drag coefficient
// transition, in units of 1e5.
func (c *FlightCalc) SetTransition(x float64) {
	if x > 0 {
		c.transition = x
	}
}

// SetReBand sets the width of the drag coefficient transition band, in
// units of 1e5.
func (c *FlightCalc) SetReBand(x float64) {
	if x > 0 {
		c.reBand = x
	}
}

// SetDragCurve sets the whole balloon drag coefficient curve.
func (c *FlightCalc) SetDragCurve(highCD, lowCD, transition, reBand float64) {
	c.SetHighCD(highCD)
	c.SetLowCD(lowCD)
	c.SetTransition(transition)
	c.SetReBand(reBand)
}

// SetParachuteAref sets the parachute reference area (m²).
func (c *FlightCalc) SetParachuteAref(x float64) {
	if x > 0 {
		c.parachuteAref = x
	}
}

// SetParachuteCD sets the parachute drag coefficient.
func (c *FlightCalc) SetParachuteCD(x float64) {
	if x > 0 {
		c.parachuteCD = x
	}
}

// SetParachute sets the parachute reference area (m²) and drag coefficient.
func (c *FlightCalc) SetParachute(aref, cd float64) {
	c.SetParachuteAref(aref)
	c.SetParachuteCD(cd)
}

// SetVentStart sets how many meters below the float altitude the
// venting starts.
func (c *FlightCalc) SetVentStart(x float64) {
	if x > 0 {
		c.ventStart = x
	}
}

func (c *FlightCalc) HighCD() float64 {
	return c.highCD
}

func (c *FlightCalc) LowCD() float64 {
	return c.lowCD
}

func (c *FlightCalc) Transition() float64 {
	return c.transition
}

func (c *FlightCalc) ReBand() float64 {
	return c.reBand
}

func (c *FlightCalc) ParachuteAref() float64 {
	return c.parachuteAref
}

func (c *FlightCalc) ParachuteCD() float64 {
	return c.parachuteCD
}

func (c *FlightCalc) VentStart() float64 {
	return c.ventStart
}
