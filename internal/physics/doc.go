// Package physics provides dynamical system models for simulation.
//
// Each model implements [dynamo.System]. [LotkaVolterra] additionally
// implements [dynamo.Constrained], clamping populations at zero after every
// step, and [dynamo.Configurable] for runtime rate changes.
package physics
