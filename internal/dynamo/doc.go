// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for fixed-step
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Constrained]: systems that clamp their state after each step
//   - [Integrator]: numerical stepper interface
//   - [Observer]: per-sample callback
//
// # Example
//
//	dyn := physics.NewLotkaVolterra(0.1, 0.01, 0.1, 0.01)
//	s := sim.New(dyn, integrators.NewEuler())
//	result, _ := s.Run(dynamo.State{50, 10}, dynamo.Config{Dt: 0.1, Duration: 200})
package dynamo
