package fmi

import "gonum.org/v1/gonum/floats"

const (
	// eulerSubSteps is the fixed partition of one communication interval.
	// Coarse by design: events are only detected at sub-step boundaries.
	eulerSubSteps = 10

	// timeEventEpsilon is the detection tolerance for scheduled times.
	timeEventEpsilon = 1e-10
)

// gatherStates copies the continuous-state vector out of the store.
func (inst *Instance) gatherStates(x []float64) {
	for i, vr := range inst.desc.States {
		x[i] = inst.store.Reals(vr)[0]
	}
}

// scatterStates writes the continuous-state vector back into the store.
func (inst *Instance) scatterStates(x []float64) {
	for i, vr := range inst.desc.States {
		inst.store.Reals(vr)[0] = x[i]
	}
}

// derivative resolves der(state i) through the model hook; the derivative
// of state VR k lives at VR k+1 by convention.
func (inst *Instance) derivative(i int) float64 {
	vr := inst.desc.States[i] + 1
	src := inst.model.Real(inst, vr)
	if src == nil {
		src = inst.store.Reals(vr)
	}
	return src[0]
}

// DoStep advances the instance by one communication interval in
// co-simulation mode. The interval is partitioned into fixed forward-Euler
// sub-steps; after each sub-step every event indicator is rechecked for a
// strict sign flip (state event) and the clock is checked against the next
// scheduled time (time event). Events invoke the model's EventUpdate hook,
// which may mutate states, reschedule, or request termination. Termination
// aborts the remaining sub-steps with StatusDiscard and leaves the
// instance in StepFailed; the host is expected to call Terminate next.
//
// No root finding is performed, so event times are only accurate to a
// sub-step boundary.
func (inst *Instance) DoStep(currentCommunicationPoint, communicationStepSize float64, noSetFMUStatePriorToCurrentPoint bool) Status {
	if !inst.checkCallState(opDoStep) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall,
		"DoStep: currentCommunicationPoint = %g, communicationStepSize = %g, noSetFMUStatePriorToCurrentPoint = %t",
		currentCommunicationPoint, communicationStepSize, noSetFMUStatePriorToCurrentPoint)

	if communicationStepSize <= 0 {
		return inst.argErrorf("DoStep: communication step size must be > 0. Found %g.", communicationStepSize)
	}

	h := communicationStepSize / eulerSubSteps
	nStates := len(inst.desc.States)
	nIndicators := inst.desc.EventIndicators

	prevZ := make([]float64, nIndicators)
	for z := 0; z < nIndicators; z++ {
		prevZ[z] = inst.model.EventIndicator(inst, z)
	}

	x := make([]float64, nStates)
	dx := make([]float64, nStates)

	inst.time = currentCommunicationPoint
	for k := 0; k < eulerSubSteps; k++ {
		inst.time += h

		if nStates > 0 {
			inst.gatherStates(x)
			for i := range dx {
				dx[i] = inst.derivative(i)
			}
			floats.AddScaled(x, h, dx)
			inst.scatterStates(x)
		}

		stateEvent := false
		for z := 0; z < nIndicators; z++ {
			ei := inst.model.EventIndicator(inst, z)
			if ei*prevZ[z] < 0 {
				inst.logf(StatusOK, LogEvent, "DoStep: state event at %g, z%d crosses zero", inst.time, z)
				stateEvent = true
			}
			prevZ[z] = ei
		}

		timeEvent := inst.eventInfo.NextEventTimeDefined &&
			inst.time-inst.eventInfo.NextEventTime > -timeEventEpsilon
		if timeEvent {
			inst.logf(StatusOK, LogEvent, "DoStep: time event detected at %g", inst.time)
		}

		if stateEvent || timeEvent {
			inst.model.EventUpdate(inst, &inst.eventInfo, timeEvent, true)
		}

		if inst.eventInfo.TerminateSimulation {
			inst.logf(StatusDiscard, LogAll, "DoStep: model requested termination at t=%g", inst.time)
			inst.state = StateStepFailed
			inst.notifyStepFinished(StatusDiscard)
			return StatusDiscard
		}
	}
	inst.notifyStepFinished(StatusOK)
	return StatusOK
}

// notifyStepFinished reports a completed (synchronous) step to the host.
func (inst *Instance) notifyStepFinished(status Status) {
	if inst.callbacks.StepFinished != nil {
		inst.callbacks.StepFinished(status)
	}
}

// CancelStep rejects cancellation. A step can only be canceled after
// DoStep returned StatusPending, and this synchronous engine never pends.
func (inst *Instance) CancelStep() Status {
	if !inst.checkCallState(opCancelStep) {
		// Never in StepInProgress, so this is the only exit.
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "CancelStep")
	inst.logf(StatusError, LogError,
		"CancelStep: Can be called when DoStep returned Pending. This is not the case.")
	return StatusError
}

// statusUnavailable is the shared tail of the GetStatus family for kinds
// that only carry information while a step is pending or discarded.
func (inst *Instance) statusUnavailable(op string, kind StatusKind) Status {
	if !inst.checkCallState(opGetStatus) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "%s: StatusKind = %s", op, kind)

	switch kind {
	case DoStepStatus, PendingStatus:
		inst.logf(StatusError, LogError,
			"%s: Can be called with %s when DoStep returned Pending. This is not the case.", op, kind)
	case LastSuccessfulTime, TerminatedStatus:
		inst.logf(StatusError, LogError,
			"%s: Can be called with %s when DoStep returned Discard. This is not the case.", op, kind)
	}
	return StatusDiscard
}

// GetStatus queries a Status-valued status kind. Always discarded: the
// only Status-valued kind is DoStepStatus, which needs a pending step.
func (inst *Instance) GetStatus(kind StatusKind) (Status, Status) {
	return StatusOK, inst.statusUnavailable(opGetStatus, kind)
}

// GetRealStatus queries a real-valued status kind. LastSuccessfulTime
// reports the instance clock; other kinds are unavailable.
func (inst *Instance) GetRealStatus(kind StatusKind) (float64, Status) {
	if kind == LastSuccessfulTime {
		if !inst.checkCallState(opGetStatus) {
			return 0, StatusError
		}
		return inst.time, StatusOK
	}
	return 0, inst.statusUnavailable("GetRealStatus", kind)
}

// GetIntegerStatus queries an integer-valued status kind; none exists.
func (inst *Instance) GetIntegerStatus(kind StatusKind) (int32, Status) {
	return 0, inst.statusUnavailable("GetIntegerStatus", kind)
}

// GetBooleanStatus queries a boolean-valued status kind. Terminated
// reports whether the model requested termination.
func (inst *Instance) GetBooleanStatus(kind StatusKind) (bool, Status) {
	if kind == TerminatedStatus {
		if !inst.checkCallState(opGetStatus) {
			return false, StatusError
		}
		return inst.eventInfo.TerminateSimulation, StatusOK
	}
	return false, inst.statusUnavailable("GetBooleanStatus", kind)
}

// GetStringStatus queries a string-valued status kind; none exists.
func (inst *Instance) GetStringStatus(kind StatusKind) (string, Status) {
	return "", inst.statusUnavailable("GetStringStatus", kind)
}
