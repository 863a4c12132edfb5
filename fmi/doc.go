// Package fmi implements the generic runtime engine behind an FMI 3.0
// simulation component.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - instance.go: the Instance entity, instantiation and lifecycle calls
//   - state.go: lifecycle states and the per-call legality table
//   - stepper.go: co-simulation stepping with state/time event detection
//
// # Architecture
//
// The engine is generic; everything model specific sits behind the Model
// interface (model.go). A Model supplies its variable schema, start values,
// lazy value recomputation, event indicators and the event reaction hook.
// Concrete models live in the fmi/models sub-package and are resolved by
// name through a registry.
//
// Every protocol call is first admitted or rejected against the current
// lifecycle state (state.go). Admitted calls read and write variables
// through the typed batched getters and setters (access.go), which drive
// lazy recomputation via the dirty flag. DoStep (stepper.go) advances time
// with fixed forward-Euler sub-steps and surfaces discrete events; the
// model-exchange calls (modelexchange.go) expose the same machinery to an
// external integrator.
//
// Diagnostics pass through a per-instance category filter (logging.go)
// before reaching the host-supplied logger callback.
package fmi
