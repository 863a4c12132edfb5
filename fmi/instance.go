package fmi

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Instance is one simulated component: lifecycle state, simulation clock,
// variable store, event bookkeeping and the model behind it. Instances are
// independent; nothing is shared between two instances, so concurrently
// existing instances never interfere.
type Instance struct {
	model Model
	desc  Description

	name string
	guid string
	kind InstanceKind

	callbacks     Callbacks
	loggingOn     bool
	logCategories [numCategories]bool

	state ModelState
	time  float64

	store *VariableStore
	// isPositive latches the sign of each event indicator across events;
	// models use it for hysteresis around a zero crossing.
	isPositive []bool

	eventInfo         EventInfo
	dirty             bool
	newEventIteration bool
}

// Instantiate creates a new instance of model. The instance name and GUID
// must be non-empty and the GUID must match the model's; cb.Logger is
// required. Start values are populated through the model hook and the
// instance comes up dirty, so the first get recomputes derived values.
func Instantiate(model Model, instanceName, guid string, kind InstanceKind, cb Callbacks, loggingOn bool) (*Instance, error) {
	if cb.Logger == nil {
		return nil, fmt.Errorf("instantiate: missing logger callback")
	}
	if instanceName == "" {
		cb.Logger("?", StatusError, categoryNames[LogError], "Instantiate: Missing instance name.")
		return nil, fmt.Errorf("instantiate: missing instance name")
	}
	if guid == "" {
		cb.Logger(instanceName, StatusError, categoryNames[LogError], "Instantiate: Missing GUID.")
		return nil, fmt.Errorf("instantiate: missing GUID")
	}
	desc := model.Description()
	if !sameGUID(guid, desc.GUID) {
		cb.Logger(instanceName, StatusError, categoryNames[LogError],
			fmt.Sprintf("Instantiate: Wrong GUID %s. Expected %s.", guid, desc.GUID))
		return nil, fmt.Errorf("instantiate: wrong GUID %s, expected %s", guid, desc.GUID)
	}

	store, err := NewVariableStore(desc.Schema)
	if err != nil {
		cb.Logger(instanceName, StatusError, categoryNames[LogError],
			fmt.Sprintf("Instantiate: Invalid schema: %v.", err))
		return nil, fmt.Errorf("instantiate: %w", err)
	}

	inst := &Instance{
		model:      model,
		desc:       desc,
		name:       instanceName,
		guid:       guid,
		kind:       kind,
		callbacks:  cb,
		loggingOn:  loggingOn,
		store:      store,
		isPositive: make([]bool, desc.EventIndicators),
		state:      StateInstantiated,
	}
	// All categories follow loggingOn until SetDebugLogging narrows them.
	for i := range inst.logCategories {
		inst.logCategories[i] = loggingOn
	}

	model.SetStartValues(inst)
	inst.dirty = true

	inst.logf(StatusOK, LogFmiCall, "Instantiate: GUID=%s", guid)
	return inst, nil
}

// sameGUID compares two identity strings as UUIDs, accepting braced and
// bare forms. Falls back to a case-insensitive string compare when either
// side is not a parseable UUID.
func sameGUID(a, b string) bool {
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA == nil && errB == nil {
		return ua == ub
	}
	return strings.EqualFold(a, b)
}

// Name returns the instance name given at instantiation.
func (inst *Instance) Name() string { return inst.name }

// GUID returns the identity string given at instantiation.
func (inst *Instance) GUID() string { return inst.guid }

// Kind returns the driving mode fixed at instantiation.
func (inst *Instance) Kind() InstanceKind { return inst.kind }

// State returns the current lifecycle state.
func (inst *Instance) State() ModelState { return inst.state }

// Time returns the current simulation time.
func (inst *Instance) Time() float64 { return inst.time }

// EventInfo returns the event record as of the last discrete-event query.
func (inst *Instance) EventInfo() EventInfo { return inst.eventInfo }

// Positive returns the latched sign of event indicator z.
func (inst *Instance) Positive(z int) bool { return inst.isPositive[z] }

// SetPositive latches the sign of event indicator z. Called by model event
// hooks to arm hysteresis around a zero crossing.
func (inst *Instance) SetPositive(z int, positive bool) { inst.isPositive[z] = positive }

// R returns the backing array of a real variable. Model hooks use it the
// way the protocol uses value references: R(vr)[0] is the scalar value.
func (inst *Instance) R(vr ValueRef) []float64 { return inst.store.Reals(vr) }

// I returns the backing array of an integer variable.
func (inst *Instance) I(vr ValueRef) []int32 { return inst.store.Ints(vr) }

// B returns the backing array of a boolean variable.
func (inst *Instance) B(vr ValueRef) []bool { return inst.store.Bools(vr) }

// S returns the backing array of a string variable.
func (inst *Instance) S(vr ValueRef) []string { return inst.store.Strings(vr) }

// ScheduleEvent defines the next time event. Model hooks call it to set
// eventInfo.NextEventTime.
func (inst *Instance) ScheduleEvent(t float64) {
	inst.eventInfo.NextEventTimeDefined = true
	inst.eventInfo.NextEventTime = t
}

// SetupExperiment sets the start time of the experiment. Tolerance and
// stop time are accepted for protocol completeness and ignored, as the
// fixed sub-stepping scheme has no use for them.
func (inst *Instance) SetupExperiment(toleranceDefined bool, tolerance float64, startTime float64, stopTimeDefined bool, stopTime float64) Status {
	if !inst.checkCallState(opSetupExperiment) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "SetupExperiment: toleranceDefined=%t tolerance=%g",
		toleranceDefined, tolerance)
	inst.time = startTime
	return StatusOK
}

// EnterInitializationMode moves the instance into initialization mode.
func (inst *Instance) EnterInitializationMode() Status {
	if !inst.checkCallState(opEnterInitializationMode) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "EnterInitializationMode")
	inst.state = StateInitializationMode
	return StatusOK
}

// ExitInitializationMode leaves initialization. Pending lazy recomputation
// is flushed here so the model sees consistent values before stepping
// begins. Model-exchange instances continue in event mode with a fresh
// event iteration; co-simulation instances are ready for DoStep.
func (inst *Instance) ExitInitializationMode() Status {
	if !inst.checkCallState(opExitInitializationMode) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "ExitInitializationMode")

	if inst.dirty {
		inst.model.CalculateValues(inst)
		inst.dirty = false
	}

	if inst.kind == ModelExchange {
		inst.state = StateEventMode
		inst.newEventIteration = true
	} else {
		inst.state = StateStepComplete
	}
	return StatusOK
}

// Terminate ends the simulation regularly.
func (inst *Instance) Terminate() Status {
	if !inst.checkCallState(opTerminate) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "Terminate")
	inst.state = StateTerminated
	return StatusOK
}

// Reset returns the instance to the freshly instantiated state and
// reapplies the model's start values.
func (inst *Instance) Reset() Status {
	if !inst.checkCallState(opReset) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "Reset")

	inst.state = StateInstantiated
	inst.time = 0
	inst.eventInfo = EventInfo{}
	inst.newEventIteration = false
	for z := range inst.isPositive {
		inst.isPositive[z] = false
	}
	inst.model.SetStartValues(inst)
	inst.dirty = true
	return StatusOK
}

// FreeInstance tears the instance down. The store and identity are
// released and every subsequent call fails its state check.
func (inst *Instance) FreeInstance() {
	if inst == nil {
		return
	}
	if !inst.checkCallState(opFreeInstance) {
		return
	}
	inst.logf(StatusOK, LogFmiCall, "FreeInstance")
	inst.state = StateStartAndEnd
	inst.store = nil
	inst.isPositive = nil
	inst.model = nil
}
