// Package flimgo is a toolbox for fluorescence-lifetime and weighted
// rank-statistics computations — from closed-form instrument parameters
// to phasor analysis and a weighted Kendall correlation engine.
//
// 🚀 What is flimgo?
//
//	A small, pure-Go library that brings together:
//		• Weighted statistics: merge-sort inversion counting, Kendall's Tau-b,
//		  effective sample size
//		• Phasor analysis: time-domain transforms, calibration, plot coordinates
//		• Simulation: Gaussian IRFs and monoexponential decay curves
//		• Numerical integration: Simpson's 1/3 rule with composite fallback
//		• Instrument parameters: angular frequency, Abbe diffraction limit
//		• Thresholding: simple boolean masks over numeric sequences
//
// ✨ Why choose flimgo?
//
//   - Deterministic – pure functions, no hidden state, no randomness
//   - Rock-solid guarantees – sentinel errors, validation before mutation
//   - Pure Go – no cgo, no hidden deps
//   - Careful numerics – stable sorting, explicit tie correction
//
// Under the hood, everything is organized under six subpackages:
//
//	stats/       — weighted merge sort, Kendall's Tau-b, scalar reducers
//	parameter/   — closed-form optical/instrument parameters
//	integration/ — Simpson's 1/3 rule integrators
//	phasor/      — time-domain phasor transforms & calibration
//	simulation/  — IRF and decay-curve synthesis
//	threshold/   — boolean threshold masks
//
// Quick example — weighted rank correlation:
//
//	tau, err := stats.WeightedKendallTauB(a, b, weights)
//
// Dive into each package's doc.go for formulas, complexity notes and
// runnable examples.
//
//	go get github.com/flimlab/flimgo
package flimgo
