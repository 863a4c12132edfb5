package fmi

// Typed batched get/set, the value-access contract seen by the host.
//
// A get always observes the cumulative effect of every set since the
// previous get: the first get after any successful set invokes the model's
// CalculateValues hook exactly once, then reads from the store. Multi
// element variables expand across the flat buffer in value-reference order.
//
// Batches have no rollback: entries written before the first invalid entry
// stay applied when the batch aborts.

// argErrorf reports an argument error: logged, instance forced into the
// absorbing Error state.
func (inst *Instance) argErrorf(format string, args ...any) Status {
	inst.state = StateError
	inst.logf(StatusError, LogError, format, args...)
	return StatusError
}

// invalidVR validates range and declared kind of a single reference.
func (inst *Instance) invalidVR(op string, vr ValueRef, kind Kind) bool {
	if !inst.store.inRange(vr) {
		inst.argErrorf("%s: Illegal value reference %d.", op, vr)
		return true
	}
	if inst.store.Kind(vr) != kind {
		inst.argErrorf("%s: Variable %d is not a %s.", op, vr, kind)
		return true
	}
	return false
}

// refreshValues flushes pending lazy recomputation before a read.
func (inst *Instance) refreshValues() {
	if inst.dirty {
		inst.model.CalculateValues(inst)
		inst.dirty = false
	}
}

// GetReal reads the listed real variables into values. Real reads resolve
// through the model hook so derived values (derivatives) are computed on
// demand.
func (inst *Instance) GetReal(vrs []ValueRef, values []float64) Status {
	if !inst.checkCallState(opGetReal) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("GetReal: Invalid argument values = nil.")
	}
	if len(vrs) > 0 {
		inst.refreshValues()
	}
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opGetReal, vr, Real) {
			return StatusError
		}
		src := inst.model.Real(inst, vr)
		if src == nil {
			src = inst.store.Reals(vr)
		}
		if k+len(src) > len(values) {
			return inst.argErrorf("GetReal: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(src))
		}
		k += copy(values[k:k+len(src)], src)
		inst.logf(StatusOK, LogFmiCall, "GetReal: #r%d# = %.16g", vr, src[0])
	}
	return StatusOK
}

// GetInteger reads the listed integer variables into values.
func (inst *Instance) GetInteger(vrs []ValueRef, values []int32) Status {
	if !inst.checkCallState(opGetInteger) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("GetInteger: Invalid argument values = nil.")
	}
	if len(vrs) > 0 {
		inst.refreshValues()
	}
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opGetInteger, vr, Integer) {
			return StatusError
		}
		src := inst.store.Ints(vr)
		if k+len(src) > len(values) {
			return inst.argErrorf("GetInteger: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(src))
		}
		k += copy(values[k:k+len(src)], src)
		inst.logf(StatusOK, LogFmiCall, "GetInteger: #i%d# = %d", vr, src[0])
	}
	return StatusOK
}

// GetBoolean reads the listed boolean variables into values.
func (inst *Instance) GetBoolean(vrs []ValueRef, values []bool) Status {
	if !inst.checkCallState(opGetBoolean) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("GetBoolean: Invalid argument values = nil.")
	}
	if len(vrs) > 0 {
		inst.refreshValues()
	}
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opGetBoolean, vr, Boolean) {
			return StatusError
		}
		src := inst.store.Bools(vr)
		if k+len(src) > len(values) {
			return inst.argErrorf("GetBoolean: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(src))
		}
		k += copy(values[k:k+len(src)], src)
		inst.logf(StatusOK, LogFmiCall, "GetBoolean: #b%d# = %t", vr, src[0])
	}
	return StatusOK
}

// GetString reads the listed string variables into values.
func (inst *Instance) GetString(vrs []ValueRef, values []string) Status {
	if !inst.checkCallState(opGetString) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("GetString: Invalid argument values = nil.")
	}
	if len(vrs) > 0 {
		inst.refreshValues()
	}
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opGetString, vr, String) {
			return StatusError
		}
		src := inst.store.Strings(vr)
		if k+len(src) > len(values) {
			return inst.argErrorf("GetString: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(src))
		}
		k += copy(values[k:k+len(src)], src)
		inst.logf(StatusOK, LogFmiCall, "GetString: #s%d# = %q", vr, src[0])
	}
	return StatusOK
}

// SetReal writes values into the listed real variables. The batch aborts
// on the first invalid entry; earlier writes stay applied. Every
// successful write marks the instance dirty.
func (inst *Instance) SetReal(vrs []ValueRef, values []float64) Status {
	if !inst.checkCallState(opSetReal) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("SetReal: Invalid argument values = nil.")
	}
	inst.logf(StatusOK, LogFmiCall, "SetReal: nvr = %d", len(vrs))
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opSetReal, vr, Real) {
			return StatusError
		}
		dst := inst.store.Reals(vr)
		if k+len(dst) > len(values) {
			return inst.argErrorf("SetReal: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(dst))
		}
		k += copy(dst, values[k:k+len(dst)])
		inst.dirty = true
		inst.logf(StatusOK, LogFmiCall, "SetReal: #r%d# = %.16g", vr, dst[0])
	}
	return StatusOK
}

// SetInteger writes values into the listed integer variables.
func (inst *Instance) SetInteger(vrs []ValueRef, values []int32) Status {
	if !inst.checkCallState(opSetInteger) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("SetInteger: Invalid argument values = nil.")
	}
	inst.logf(StatusOK, LogFmiCall, "SetInteger: nvr = %d", len(vrs))
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opSetInteger, vr, Integer) {
			return StatusError
		}
		dst := inst.store.Ints(vr)
		if k+len(dst) > len(values) {
			return inst.argErrorf("SetInteger: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(dst))
		}
		k += copy(dst, values[k:k+len(dst)])
		inst.dirty = true
		inst.logf(StatusOK, LogFmiCall, "SetInteger: #i%d# = %d", vr, dst[0])
	}
	return StatusOK
}

// SetBoolean writes values into the listed boolean variables.
func (inst *Instance) SetBoolean(vrs []ValueRef, values []bool) Status {
	if !inst.checkCallState(opSetBoolean) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("SetBoolean: Invalid argument values = nil.")
	}
	inst.logf(StatusOK, LogFmiCall, "SetBoolean: nvr = %d", len(vrs))
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opSetBoolean, vr, Boolean) {
			return StatusError
		}
		dst := inst.store.Bools(vr)
		if k+len(dst) > len(values) {
			return inst.argErrorf("SetBoolean: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(dst))
		}
		k += copy(dst, values[k:k+len(dst)])
		inst.dirty = true
		inst.logf(StatusOK, LogFmiCall, "SetBoolean: #b%d# = %t", vr, dst[0])
	}
	return StatusOK
}

// SetString writes values into the listed string variables.
func (inst *Instance) SetString(vrs []ValueRef, values []string) Status {
	if !inst.checkCallState(opSetString) {
		return StatusError
	}
	if len(vrs) > 0 && values == nil {
		return inst.argErrorf("SetString: Invalid argument values = nil.")
	}
	inst.logf(StatusOK, LogFmiCall, "SetString: nvr = %d", len(vrs))
	k := 0
	for _, vr := range vrs {
		if inst.invalidVR(opSetString, vr, String) {
			return StatusError
		}
		dst := inst.store.Strings(vr)
		if k+len(dst) > len(values) {
			return inst.argErrorf("SetString: Invalid argument nValues = %d. Expected at least %d.", len(values), k+len(dst))
		}
		k += copy(dst, values[k:k+len(dst)])
		inst.dirty = true
		inst.logf(StatusOK, LogFmiCall, "SetString: #s%d# = %q", vr, dst[0])
	}
	return StatusOK
}
