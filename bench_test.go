package flight

import "testing"

var fsink float64

var bc = func() *FlightCalc {
	c := Calculator()
	c.SetDragCurve(0.425, 0.225, 3.296, 0.363)
	c.SetParachute(0.66, 0.8)
	return c
}()

func BenchmarkLiftingGasMass(b *testing.B) {
	y := 0.0
	for n := 0; n < b.N; n++ {
		m, _, _ := bc.LiftingGasMass(1, 0.5, 15, 1013.25, HeliumMolecularMass, 1)
		y += m
	}
	fsink = y
}

func BenchmarkGasMassForFloat(b *testing.B) {
	y := 0.0
	for n := 0; n < b.N; n++ {
		y += bc.GasMassForFloat(23800, 24000, 1.5, 1.2)
	}
	fsink = y
}

func BenchmarkNozzleLiftForFloat(b *testing.B) {
	y := 0.0
	for n := 0; n < b.N; n++ {
		y += bc.NozzleLiftForFloat(1, 0.0452, 0.0063, 26, 1.1, 23800, 24000)
	}
	fsink = y
}

func BenchmarkBalloonDrag(b *testing.B) {
	y := 0.0
	v := 3.0
	for n := 0; n < b.N; n++ {
		y += bc.BalloonDrag(1.4, v, 1.225, 1.79e-5)
		v = -v
	}
	fsink = y
}

func BenchmarkParachuteDrag(b *testing.B) {
	y := 0.0
	for n := 0; n < b.N; n++ {
		y += bc.ParachuteDrag(5, 1.225)
	}
	fsink = y
}

func BenchmarkAscentRate(b *testing.B) {
	y := 0.0
	for n := 0; n < b.N; n++ {
		v, _ := bc.AscentRate(0.3, 1.4, 1.225, 1.79e-5, 0.001)
		y += v
	}
	fsink = y
}
