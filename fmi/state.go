package fmi

// ModelState is the lifecycle phase of an Instance. States are mutually
// exclusive; an instance is in exactly one at any time.
type ModelState int

const (
	StateStartAndEnd ModelState = iota
	StateInstantiated
	StateInitializationMode

	// Model-exchange phases.
	StateEventMode
	StateContinuousTimeMode

	// Co-simulation phases.
	StateStepComplete
	StateStepInProgress
	StateStepFailed
	StateStepCanceled

	StateTerminated
	StateError
	StateFatal
)

func (s ModelState) String() string {
	switch s {
	case StateStartAndEnd:
		return "StartAndEnd"
	case StateInstantiated:
		return "Instantiated"
	case StateInitializationMode:
		return "InitializationMode"
	case StateEventMode:
		return "EventMode"
	case StateContinuousTimeMode:
		return "ContinuousTimeMode"
	case StateStepComplete:
		return "StepComplete"
	case StateStepInProgress:
		return "StepInProgress"
	case StateStepFailed:
		return "StepFailed"
	case StateStepCanceled:
		return "StepCanceled"
	case StateTerminated:
		return "Terminated"
	case StateError:
		return "Error"
	case StateFatal:
		return "Fatal"
	}
	return "Unknown"
}

// Protocol operation names. Keys of the call-rule table and the names used
// in diagnostic messages.
const (
	opSetDebugLogging             = "SetDebugLogging"
	opSetupExperiment             = "SetupExperiment"
	opEnterInitializationMode     = "EnterInitializationMode"
	opExitInitializationMode      = "ExitInitializationMode"
	opTerminate                   = "Terminate"
	opReset                       = "Reset"
	opFreeInstance                = "FreeInstance"
	opGetReal                     = "GetReal"
	opGetInteger                  = "GetInteger"
	opGetBoolean                  = "GetBoolean"
	opGetString                   = "GetString"
	opSetReal                     = "SetReal"
	opSetInteger                  = "SetInteger"
	opSetBoolean                  = "SetBoolean"
	opSetString                   = "SetString"
	opGetFMUState                 = "GetFMUState"
	opSetFMUState                 = "SetFMUState"
	opFreeFMUState                = "FreeFMUState"
	opSerializedFMUStateSize      = "SerializedFMUStateSize"
	opSerializeFMUState           = "SerializeFMUState"
	opDeserializeFMUState         = "DeserializeFMUState"
	opGetDirectionalDerivative    = "GetDirectionalDerivative"
	opSetRealInputDerivatives     = "SetRealInputDerivatives"
	opGetRealOutputDerivatives    = "GetRealOutputDerivatives"
	opDoStep                      = "DoStep"
	opCancelStep                  = "CancelStep"
	opGetStatus                   = "GetStatus"
	opEnterEventMode              = "EnterEventMode"
	opNewDiscreteStates           = "NewDiscreteStates"
	opEnterContinuousTimeMode     = "EnterContinuousTimeMode"
	opCompletedIntegratorStep     = "CompletedIntegratorStep"
	opSetTime                     = "SetTime"
	opSetContinuousStates         = "SetContinuousStates"
	opGetDerivatives              = "GetDerivatives"
	opGetEventIndicators          = "GetEventIndicators"
	opGetContinuousStates         = "GetContinuousStates"
	opGetNominalsContinuousStates = "GetNominalsOfContinuousStates"
)

// stateSet is a set of lifecycle states an operation may be invoked from.
type stateSet map[ModelState]struct{}

func states(list ...ModelState) stateSet {
	ss := make(stateSet, len(list))
	for _, s := range list {
		ss[s] = struct{}{}
	}
	return ss
}

func (ss stateSet) contains(s ModelState) bool {
	_, ok := ss[s]
	return ok
}

// Common legal-state sets shared by several operations.
var (
	anyLiveState = states(StateInstantiated, StateInitializationMode,
		StateEventMode, StateContinuousTimeMode,
		StateStepComplete, StateStepInProgress, StateStepFailed, StateStepCanceled,
		StateTerminated, StateError)

	teardownStates = states(StateInstantiated, StateInitializationMode,
		StateEventMode, StateContinuousTimeMode,
		StateStepComplete, StateStepFailed, StateStepCanceled,
		StateTerminated, StateError)

	getterStates = states(StateInitializationMode,
		StateEventMode, StateContinuousTimeMode,
		StateStepComplete, StateStepFailed, StateStepCanceled,
		StateTerminated, StateError)
)

// callRules maps every protocol operation to the set of states it may
// legally be invoked from. One table instead of per-call bit tests: the
// legality check and the table are the whole sequencing contract.
var callRules = map[string]stateSet{
	opSetDebugLogging:         anyLiveState,
	opSetupExperiment:         states(StateInstantiated),
	opEnterInitializationMode: states(StateInstantiated),
	opExitInitializationMode:  states(StateInitializationMode),
	opTerminate: states(StateEventMode, StateContinuousTimeMode,
		StateStepComplete, StateStepFailed),
	opReset:        teardownStates,
	opFreeInstance: teardownStates,

	opGetReal:    getterStates,
	opGetInteger: getterStates,
	opGetBoolean: getterStates,
	opGetString:  getterStates,
	opSetReal: states(StateInstantiated, StateInitializationMode,
		StateEventMode, StateContinuousTimeMode, StateStepComplete),
	opSetInteger: states(StateInstantiated, StateInitializationMode,
		StateEventMode, StateStepComplete),
	opSetBoolean: states(StateInstantiated, StateInitializationMode,
		StateEventMode, StateStepComplete),
	opSetString: states(StateInstantiated, StateInitializationMode,
		StateEventMode, StateStepComplete),

	opGetFMUState:              teardownStates,
	opSetFMUState:              teardownStates,
	opFreeFMUState:             teardownStates,
	opSerializedFMUStateSize:   teardownStates,
	opSerializeFMUState:        teardownStates,
	opDeserializeFMUState:      teardownStates,
	opGetDirectionalDerivative: getterStates,
	opSetRealInputDerivatives: states(StateInstantiated, StateInitializationMode,
		StateStepComplete),
	opGetRealOutputDerivatives: states(StateStepComplete, StateStepFailed,
		StateStepCanceled, StateTerminated, StateError),

	opDoStep:     states(StateStepComplete),
	opCancelStep: states(StateStepInProgress),
	opGetStatus: states(StateStepComplete, StateStepInProgress,
		StateStepFailed, StateTerminated),

	opEnterEventMode:          states(StateEventMode, StateContinuousTimeMode),
	opNewDiscreteStates:       states(StateEventMode),
	opEnterContinuousTimeMode: states(StateEventMode),
	opCompletedIntegratorStep: states(StateContinuousTimeMode),
	opSetTime:                 states(StateEventMode, StateContinuousTimeMode),
	opSetContinuousStates:     states(StateContinuousTimeMode),
	opGetDerivatives: states(StateEventMode, StateContinuousTimeMode,
		StateTerminated, StateError),
	opGetEventIndicators: states(StateInitializationMode,
		StateEventMode, StateContinuousTimeMode,
		StateTerminated, StateError),
	opGetContinuousStates: states(StateInitializationMode,
		StateEventMode, StateContinuousTimeMode,
		StateTerminated, StateError),
	opGetNominalsContinuousStates: states(StateInstantiated,
		StateEventMode, StateContinuousTimeMode,
		StateTerminated, StateError),
}

// checkCallState admits or rejects a protocol call for the current state.
// A rejected call drives the instance into the absorbing Error state; from
// there only teardown-class operations (Reset, FreeInstance) still pass
// their own rule.
func (inst *Instance) checkCallState(op string) bool {
	rule, ok := callRules[op]
	if !ok || !rule.contains(inst.state) {
		inst.state = StateError
		inst.logf(StatusError, LogError, "%s: Illegal call sequence.", op)
		return false
	}
	return true
}
