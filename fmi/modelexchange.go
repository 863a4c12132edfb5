package fmi

// Model-exchange calls: the host integrates; the engine exposes states,
// derivatives and event indicators and resolves discrete events inside
// NewDiscreteStates.

// EnterEventMode switches to event mode and starts a fresh event
// iteration, so the next NewDiscreteStates call lets the model cache its
// "previous" values.
func (inst *Instance) EnterEventMode() Status {
	if !inst.checkCallState(opEnterEventMode) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "EnterEventMode")
	inst.state = StateEventMode
	inst.newEventIteration = true
	return StatusOK
}

// NewDiscreteStates runs one iteration of discrete-event resolution: the
// event record is reset, a pending time event is detected, and the model's
// EventUpdate hook reacts. The resulting record is copied into info for
// the host. Only the first iteration of a resolution loop passes
// newIteration=true to the hook.
func (inst *Instance) NewDiscreteStates(info *EventInfo) Status {
	if !inst.checkCallState(opNewDiscreteStates) {
		return StatusError
	}
	if info == nil {
		return inst.argErrorf("NewDiscreteStates: Invalid argument info = nil.")
	}
	inst.logf(StatusOK, LogFmiCall, "NewDiscreteStates")

	inst.eventInfo.NewDiscreteStatesNeeded = false
	inst.eventInfo.TerminateSimulation = false
	inst.eventInfo.NominalsOfContinuousStatesChanged = false
	inst.eventInfo.ValuesOfContinuousStatesChanged = false

	timeEvent := inst.eventInfo.NextEventTimeDefined && inst.eventInfo.NextEventTime <= inst.time
	inst.model.EventUpdate(inst, &inst.eventInfo, timeEvent, inst.newEventIteration)
	inst.newEventIteration = false

	*info = inst.eventInfo
	return StatusOK
}

// EnterContinuousTimeMode switches to continuous-time mode.
func (inst *Instance) EnterContinuousTimeMode() Status {
	if !inst.checkCallState(opEnterContinuousTimeMode) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "EnterContinuousTimeMode")
	inst.state = StateContinuousTimeMode
	return StatusOK
}

// CompletedIntegratorStep is called by the host after every accepted
// integrator step. This engine never asks to re-enter event mode here and
// never requests termination from this call.
func (inst *Instance) CompletedIntegratorStep(noSetFMUStatePriorToCurrentPoint bool) (enterEventMode, terminateSimulation bool, status Status) {
	if !inst.checkCallState(opCompletedIntegratorStep) {
		return false, false, StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "CompletedIntegratorStep")
	return false, false, StatusOK
}

// SetTime sets the independent variable.
func (inst *Instance) SetTime(t float64) Status {
	if !inst.checkCallState(opSetTime) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "SetTime: time=%.16g", t)
	inst.time = t
	return StatusOK
}

// SetContinuousStates writes the host integrator's state vector back into
// the store. len(x) must equal the declared number of continuous states.
func (inst *Instance) SetContinuousStates(x []float64) Status {
	if !inst.checkCallState(opSetContinuousStates) {
		return StatusError
	}
	if len(x) != len(inst.desc.States) {
		return inst.argErrorf("SetContinuousStates: Invalid argument nx = %d. Expected %d.", len(x), len(inst.desc.States))
	}
	if len(inst.desc.States) > 0 && x == nil {
		return inst.argErrorf("SetContinuousStates: Invalid argument x = nil.")
	}
	for i, vr := range inst.desc.States {
		inst.logf(StatusOK, LogFmiCall, "SetContinuousStates: #r%d# = %.16g", vr, x[i])
		inst.store.Reals(vr)[0] = x[i]
	}
	inst.dirty = true
	return StatusOK
}

// GetDerivatives fills the state derivative vector, resolving each
// derivative through the model hook at state VR + 1.
func (inst *Instance) GetDerivatives(derivatives []float64) Status {
	if !inst.checkCallState(opGetDerivatives) {
		return StatusError
	}
	if len(derivatives) != len(inst.desc.States) {
		return inst.argErrorf("GetDerivatives: Invalid argument nx = %d. Expected %d.", len(derivatives), len(inst.desc.States))
	}
	for i := range inst.desc.States {
		derivatives[i] = inst.derivative(i)
		inst.logf(StatusOK, LogFmiCall, "GetDerivatives: #r%d# = %.16g", inst.desc.States[i]+1, derivatives[i])
	}
	return StatusOK
}

// GetEventIndicators fills the current event indicator values.
func (inst *Instance) GetEventIndicators(indicators []float64) Status {
	if !inst.checkCallState(opGetEventIndicators) {
		return StatusError
	}
	if len(indicators) != inst.desc.EventIndicators {
		return inst.argErrorf("GetEventIndicators: Invalid argument ni = %d. Expected %d.", len(indicators), inst.desc.EventIndicators)
	}
	for z := range indicators {
		indicators[z] = inst.model.EventIndicator(inst, z)
		inst.logf(StatusOK, LogFmiCall, "GetEventIndicators: z%d = %.16g", z, indicators[z])
	}
	return StatusOK
}

// GetContinuousStates fills the current continuous-state vector.
func (inst *Instance) GetContinuousStates(x []float64) Status {
	if !inst.checkCallState(opGetContinuousStates) {
		return StatusError
	}
	if len(x) != len(inst.desc.States) {
		return inst.argErrorf("GetContinuousStates: Invalid argument nx = %d. Expected %d.", len(x), len(inst.desc.States))
	}
	for i, vr := range inst.desc.States {
		src := inst.model.Real(inst, vr)
		if src == nil {
			src = inst.store.Reals(vr)
		}
		x[i] = src[0]
		inst.logf(StatusOK, LogFmiCall, "GetContinuousStates: #r%d# = %.16g", vr, x[i])
	}
	return StatusOK
}

// GetNominalsOfContinuousStates fills the nominal value of every state.
// The engine declares no nominals, so all are 1.0.
func (inst *Instance) GetNominalsOfContinuousStates(nominals []float64) Status {
	if !inst.checkCallState(opGetNominalsContinuousStates) {
		return StatusError
	}
	if len(nominals) != len(inst.desc.States) {
		return inst.argErrorf("GetNominalsOfContinuousStates: Invalid argument nx = %d. Expected %d.", len(nominals), len(inst.desc.States))
	}
	inst.logf(StatusOK, LogFmiCall, "GetNominalsOfContinuousStates: nominals[0..%d] = 1.0", len(nominals)-1)
	for i := range nominals {
		nominals[i] = 1
	}
	return StatusOK
}
