package fmi

// Description is the fixed configuration a model supplies at build time:
// identity, variable schema and the continuous-state layout.
type Description struct {
	// Name identifies the model in diagnostics and the registry.
	Name string
	// GUID is the model's unique identity, a brace-wrapped UUID string.
	// Instantiate rejects a host-supplied GUID that does not match.
	GUID string
	// Schema declares kind and array length per value reference.
	Schema Schema
	// States lists the value references forming the continuous-state
	// vector. By convention the derivative of state VR k is stored at k+1.
	States []ValueRef
	// EventIndicators is the number of zero-crossing functions.
	EventIndicators int
}

// Model is the capability interface a simulation component implements.
// The engine owns sequencing, storage and event detection; the model owns
// the equations. A Model value holds per-instance scratch state (event
// latches, cached previous values) and must not be shared between
// instances.
type Model interface {
	Description() Description

	// SetStartValues populates defaults into the store. Called on
	// instantiation and again on reset.
	SetStartValues(inst *Instance)

	// CalculateValues rederives values that depend on prior sets. Invoked
	// lazily, at most once per dirty period, before any get and when
	// leaving initialization mode.
	CalculateValues(inst *Instance)

	// Real resolves a real-kind read, letting the model compute derived
	// values (such as derivatives) on demand. Returns the backing array of
	// the variable, or nil for an unknown reference.
	Real(inst *Instance, vr ValueRef) []float64

	// EventIndicator returns the current value of zero-crossing function z.
	EventIndicator(inst *Instance, z int) float64

	// EventUpdate reacts to a discrete event. timeEvent tells whether a
	// scheduled time was reached; newIteration is true on the first
	// iteration of a simultaneous-event resolution loop, which is when
	// hysteresis-style hooks cache their "previous" values.
	EventUpdate(inst *Instance, info *EventInfo, timeEvent, newIteration bool)
}
