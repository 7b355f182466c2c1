package phasor

import "math"

// MonoexponentialCoordinates returns the theoretical phasor-plot point of a
// pure monoexponential decay with lifetime tau at angular frequency omega:
//
//	G = 1 / (1 + (ωτ)²)
//	S = ωτ / (1 + (ωτ)²)
//
// These points trace the universal semicircle from (1, 0) at τ=0 toward
// (0, 0) as τ grows.
func MonoexponentialCoordinates(tau, omega float64) (g, s float64) {
	wt := omega * tau
	den := 1.0 + wt*wt

	return 1.0 / den, wt / den
}

// Modulation returns the modulation of a phasor point: its distance from the
// origin, √(G² + S²).
func Modulation(g, s float64) float64 {
	return math.Hypot(g, s)
}

// Phase returns the phase angle of a phasor point, atan2(S, G), in radians.
func Phase(g, s float64) float64 {
	return math.Atan2(s, g)
}
