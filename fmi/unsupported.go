package fmi

// Optional protocol features this engine does not implement. Each call
// still validates the call sequence, then reports the missing capability
// and returns an error without any further state change.

func (inst *Instance) unsupported(op string) Status {
	if !inst.checkCallState(op) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "%s", op)
	inst.logf(StatusError, LogError, "%s: Function not implemented.", op)
	return StatusError
}

// FMUState is an opaque snapshot handle. Snapshots are not supported, so
// no value of this type is ever produced.
type FMUState any

// GetFMUState is not supported: no state snapshots.
func (inst *Instance) GetFMUState(state *FMUState) Status {
	return inst.unsupported(opGetFMUState)
}

// SetFMUState is not supported: no state snapshots.
func (inst *Instance) SetFMUState(state FMUState) Status {
	return inst.unsupported(opSetFMUState)
}

// FreeFMUState is not supported: no state snapshots.
func (inst *Instance) FreeFMUState(state *FMUState) Status {
	return inst.unsupported(opFreeFMUState)
}

// SerializedFMUStateSize is not supported: no state serialization.
func (inst *Instance) SerializedFMUStateSize(state FMUState, size *int) Status {
	return inst.unsupported(opSerializedFMUStateSize)
}

// SerializeFMUState is not supported: no state serialization.
func (inst *Instance) SerializeFMUState(state FMUState, serialized []byte) Status {
	return inst.unsupported(opSerializeFMUState)
}

// DeserializeFMUState is not supported: no state serialization.
func (inst *Instance) DeserializeFMUState(serialized []byte, state *FMUState) Status {
	return inst.unsupported(opDeserializeFMUState)
}

// GetDirectionalDerivative is not supported.
func (inst *Instance) GetDirectionalDerivative(unknownRefs, knownRefs []ValueRef, dKnown, dUnknown []float64) Status {
	return inst.unsupported(opGetDirectionalDerivative)
}

// SetRealInputDerivatives is not supported: inputs are not interpolated.
func (inst *Instance) SetRealInputDerivatives(vrs []ValueRef, order []int32, values []float64) Status {
	if !inst.checkCallState(opSetRealInputDerivatives) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "SetRealInputDerivatives: nvr = %d", len(vrs))
	inst.logf(StatusError, LogError,
		"SetRealInputDerivatives: ignoring function call. This model cannot interpolate inputs.")
	return StatusError
}

// GetRealOutputDerivatives is not supported: output derivative order is 0.
// The output buffer is zero-filled so the host never reads garbage.
func (inst *Instance) GetRealOutputDerivatives(vrs []ValueRef, order []int32, values []float64) Status {
	if !inst.checkCallState(opGetRealOutputDerivatives) {
		return StatusError
	}
	inst.logf(StatusOK, LogFmiCall, "GetRealOutputDerivatives: nvr = %d", len(vrs))
	inst.logf(StatusError, LogError,
		"GetRealOutputDerivatives: ignoring function call. This model cannot compute derivatives of outputs.")
	for i := range values {
		values[i] = 0
	}
	return StatusError
}
