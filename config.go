package flight

import "gopkg.in/ini.v1"

// LoadCalibration reads the flight calibration from an ini file:
//
//	[balloon]
//	HighCD     = 0.425
//	LowCD      = 0.225
//	Transition = 3.296
//	ReBand     = 0.363
//	VentStart  = 500
//
//	[parachute]
//	Aref = 0.66
//	CD   = 0.8
//
// Keys left out keep the values already on the calculator, so a file
// may calibrate the balloon and the parachute separately. Completeness
// is not checked here; call CheckCalibration once the flight is fully
// set up.
func (c *FlightCalc) LoadCalibration(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return err
	}

	balloon := file.Section("balloon")
	c.SetHighCD(balloon.Key("HighCD").MustFloat64(c.highCD))
	c.SetLowCD(balloon.Key("LowCD").MustFloat64(c.lowCD))
	c.SetTransition(balloon.Key("Transition").MustFloat64(c.transition))
	c.SetReBand(balloon.Key("ReBand").MustFloat64(c.reBand))
	c.SetVentStart(balloon.Key("VentStart").MustFloat64(c.ventStart))

	parachute := file.Section("parachute")
	c.SetParachuteAref(parachute.Key("Aref").MustFloat64(c.parachuteAref))
	c.SetParachuteCD(parachute.Key("CD").MustFloat64(c.parachuteCD))
	return nil
}
