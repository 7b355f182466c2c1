package phasor

import "math"

// Calibrate rotates and scales a measured phasor point (g, s) by phase φ and
// modulation M:
//
//	g' = M·cos(φ)
//	s' = M·sin(φ)
//	G' = G·g' − S·s'
//	S' = G·s' + S·g'
//
// This is a complex multiplication by M·e^{iφ}: it corrects the instrument's
// phase delay and demodulation in one step.
func Calibrate(g, s, modulation, phase float64) (float64, float64) {
	gTrans := modulation * math.Cos(phase)
	sTrans := modulation * math.Sin(phase)

	return g*gTrans - s*sTrans, g*sTrans + s*gTrans
}

// ModulationAndPhase returns the calibration values (M, φ) that map a
// measured reference point (g, s) onto the theoretical monoexponential point
// of a fluorophore with known lifetime tau at angular frequency omega:
//
//	M = M_ref / M_meas
//	φ = φ_ref − φ_meas
//
// Feeding the result into Calibrate moves the measured point onto the
// universal semicircle.
func ModulationAndPhase(g, s, tau, omega float64) (float64, float64) {
	refG, refS := MonoexponentialCoordinates(tau, omega)

	dMod := Modulation(refG, refS) / Modulation(g, s)
	dPhs := Phase(refG, refS) - Phase(g, s)

	return dMod, dPhs
}
