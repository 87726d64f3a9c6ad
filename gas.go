package flight

import "math"

// AirDensity returns the density of ambient air (kg/m³) from the ideal
// gas law at temperature tempC (°C) and pressure pressMbar (millibar).
func AirDensity(tempC, pressMbar float64) float64 {
	return pressMbar * 100 * AirMolecularMass / (R * (tempC + 273.15))
}

// GasDensity returns the density of the lifting gas (kg/m³) at ambient
// temperature tempC (°C) and pressure pressMbar (millibar).
// excessPressureCoefficient is the ratio of the gas pressure inside the
// balloon to the ambient pressure, >= 1 for an over-pressurized balloon.
func GasDensity(tempC, pressMbar, gasMolecularMass, excessPressureCoefficient float64) float64 {
	return excessPressureCoefficient * pressMbar * 100 * gasMolecularMass / (R * (tempC + 273.15))
}

// LiftingGasMass sizes the balloon at inflation. For the required
// nozzle lift (kg), the empty balloon mass (kg), the ambient conditions
// and the lifting gas it returns the gas mass (kg), the balloon volume
// (m³) and the diameter (m) of the sphere of that volume.
// The volume is solved from the static buoyancy balance
//
//	nozzleLift + balloonMass = (airDensity - gasDensity) x volume
//
// For gasDensity >= airDensity the volume is negative or infinite and
// returned as such.
func (c *FlightCalc) LiftingGasMass(nozzleLift, balloonMass, ambientTempC, ambientPressMbar,
	gasMolecularMass, excessPressureCoefficient float64) (gasMass, balloonVolume, balloonDiameter float64) {

	gasDensity := GasDensity(ambientTempC, ambientPressMbar, gasMolecularMass, excessPressureCoefficient)
	airDensity := AirDensity(ambientTempC, ambientPressMbar)

	balloonVolume = (nozzleLift + balloonMass) / (airDensity - gasDensity)
	gasMass = balloonVolume * gasDensity
	balloonDiameter = math.Cbrt(6 * balloonVolume / math.Pi)
	return
}

// GasMassForFloat returns the gas mass (kg) at currentAltitude for a
// floating flight venting gas on the approach to floatingAltitude (m).
// Below floatingAltitude - ventStart the mass at inflation is returned
// unchanged. Inside the venting band the mass drops linearly, reaching
// gasMassAtFloatingAltitude at the float altitude and staying there
// above it. The profile is continuous at both band edges.
func (c *FlightCalc) GasMassForFloat(currentAltitude, floatingAltitude,
	gasMassAtInflation, gasMassAtFloatingAltitude float64) float64 {

	if currentAltitude < floatingAltitude-c.ventStart {
		return gasMassAtInflation
	}
	if currentAltitude < floatingAltitude {
		return (gasMassAtInflation-gasMassAtFloatingAltitude)/c.ventStart*
			(floatingAltitude-currentAltitude) + gasMassAtFloatingAltitude
	}
	return gasMassAtFloatingAltitude
}

// NozzleLiftForFloat returns the nozzle lift (kg) at currentAltitude
// for a floating flight. Below floatingAltitude - ventStart the lift at
// inflation is returned unchanged. From the venting threshold on it is
// recomputed from the current buoyancy state, with airDensity,
// gasDensity (kg/m³), balloonVolume (m³) and balloonMass (kg) supplied
// by the caller at the current altitude:
//
//	nozzleLift = (airDensity - gasDensity) x balloonVolume - balloonMass
//
// A single threshold, not the two of GasMassForFloat: above the float
// altitude the lift keeps tracking the live state.
func (c *FlightCalc) NozzleLiftForFloat(nozzleLiftAtInflation, airDensity, gasDensity,
	balloonVolume, balloonMass, currentAltitude, floatingAltitude float64) float64 {

	if currentAltitude < floatingAltitude-c.ventStart {
		return nozzleLiftAtInflation
	}
	return (airDensity-gasDensity)*balloonVolume - balloonMass
}
