package fmi

// EventInfo is the discrete-event record shared between the engine and the
// model's event reaction hook. The stepper and NewDiscreteStates reset it;
// EventUpdate mutates it; the host reads it back after each discrete-event
// query.
type EventInfo struct {
	NewDiscreteStatesNeeded           bool
	TerminateSimulation               bool
	NominalsOfContinuousStatesChanged bool
	ValuesOfContinuousStatesChanged   bool
	NextEventTimeDefined              bool
	NextEventTime                     float64
}
