package fmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_CoSimulationHappyPath(t *testing.T) {
	// GIVEN a fresh co-simulation instance
	inst := mustInstantiate(t, newStubModel(), CoSimulation, Callbacks{Logger: discardLogger()}, false)
	assert.Equal(t, StateInstantiated, inst.State())

	// WHEN the canonical call sequence runs
	require.Equal(t, StatusOK, inst.SetupExperiment(false, 0, 0, false, 0))
	require.Equal(t, StatusOK, inst.EnterInitializationMode())
	assert.Equal(t, StateInitializationMode, inst.State())
	require.Equal(t, StatusOK, inst.ExitInitializationMode())

	// THEN the instance is ready for stepping, and terminates cleanly
	assert.Equal(t, StateStepComplete, inst.State())
	require.Equal(t, StatusOK, inst.DoStep(0, 0.1, true))
	assert.Equal(t, StateStepComplete, inst.State())
	require.Equal(t, StatusOK, inst.Terminate())
	assert.Equal(t, StateTerminated, inst.State())
}

func TestLifecycle_ModelExchangeHappyPath(t *testing.T) {
	// GIVEN a fresh model-exchange instance
	inst := mustInstantiate(t, newStubModel(), ModelExchange, Callbacks{Logger: discardLogger()}, false)

	// WHEN initialization completes
	require.Equal(t, StatusOK, inst.SetupExperiment(false, 0, 0, false, 0))
	toStepComplete(t, inst)

	// THEN the instance continues in event mode
	assert.Equal(t, StateEventMode, inst.State())

	// AND the event mode / continuous time mode cycle is legal
	var info EventInfo
	require.Equal(t, StatusOK, inst.NewDiscreteStates(&info))
	require.Equal(t, StatusOK, inst.EnterContinuousTimeMode())
	assert.Equal(t, StateContinuousTimeMode, inst.State())
	require.Equal(t, StatusOK, inst.SetTime(0.5))
	_, _, st := inst.CompletedIntegratorStep(true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, StatusOK, inst.EnterEventMode())
	assert.Equal(t, StateEventMode, inst.State())
}

func TestCheckCallState_IllegalCall_EntersErrorState(t *testing.T) {
	// GIVEN an instance that has not been initialized
	capture := &logCapture{}
	inst := mustInstantiate(t, newStubModel(), CoSimulation, Callbacks{Logger: capture.logger()}, false)

	// WHEN DoStep is called out of sequence
	st := inst.DoStep(0, 0.1, true)

	// THEN the call is rejected and the instance lands in the Error state
	assert.Equal(t, StatusError, st)
	assert.Equal(t, StateError, inst.State())
	errors := capture.byStatus(StatusError)
	require.NotEmpty(t, errors)
	assert.Contains(t, errors[0].message, "Illegal call sequence")
}

func TestCheckCallState_ErrorStateIsAbsorbing(t *testing.T) {
	// GIVEN an instance in the Error state
	inst := mustInstantiate(t, newStubModel(), CoSimulation, Callbacks{Logger: discardLogger()}, false)
	inst.Terminate() // illegal from Instantiated
	require.Equal(t, StateError, inst.State())

	// WHEN normal protocol calls are attempted
	assert.Equal(t, StatusError, inst.SetupExperiment(false, 0, 0, false, 0))
	assert.Equal(t, StatusError, inst.EnterInitializationMode())
	assert.Equal(t, StatusError, inst.DoStep(0, 0.1, true))

	// THEN the instance stays in Error
	assert.Equal(t, StateError, inst.State())
}

func TestCheckCallState_ResetRecoversFromError(t *testing.T) {
	// GIVEN an instance in the Error state
	inst := mustInstantiate(t, newStubModel(), CoSimulation, Callbacks{Logger: discardLogger()}, false)
	inst.Terminate()
	require.Equal(t, StateError, inst.State())

	// WHEN Reset is called
	st := inst.Reset()

	// THEN the instance is back to freshly instantiated
	assert.Equal(t, StatusOK, st)
	assert.Equal(t, StateInstantiated, inst.State())
}

func TestCheckCallState_GettersLegalInTerminated(t *testing.T) {
	// GIVEN a terminated instance
	inst := mustInstantiate(t, newStubModel(), CoSimulation, Callbacks{Logger: discardLogger()}, false)
	toStepComplete(t, inst)
	require.Equal(t, StatusOK, inst.Terminate())

	// WHEN variables are read after termination
	values := make([]float64, 1)
	st := inst.GetReal([]ValueRef{0}, values)

	// THEN the read is still legal
	assert.Equal(t, StatusOK, st)
	assert.Equal(t, StateTerminated, inst.State())
}

func TestCheckCallState_RejectedPairs(t *testing.T) {
	// Representative illegal (state, operation) pairs. Each case prepares a
	// fresh instance in the given state and expects rejection.
	cases := []struct {
		name    string
		prepare func(t *testing.T, inst *Instance)
		call    func(inst *Instance) Status
	}{
		{
			name:    "ExitInitializationMode from Instantiated",
			prepare: func(t *testing.T, inst *Instance) {},
			call:    func(inst *Instance) Status { return inst.ExitInitializationMode() },
		},
		{
			name: "EnterInitializationMode twice",
			prepare: func(t *testing.T, inst *Instance) {
				require.Equal(t, StatusOK, inst.EnterInitializationMode())
			},
			call: func(inst *Instance) Status { return inst.EnterInitializationMode() },
		},
		{
			name: "SetupExperiment after initialization",
			prepare: func(t *testing.T, inst *Instance) {
				toStepComplete(t, inst)
			},
			call: func(inst *Instance) Status { return inst.SetupExperiment(false, 0, 0, false, 0) },
		},
		{
			name:    "Terminate from Instantiated",
			prepare: func(t *testing.T, inst *Instance) {},
			call:    func(inst *Instance) Status { return inst.Terminate() },
		},
		{
			name: "DoStep after Terminate",
			prepare: func(t *testing.T, inst *Instance) {
				toStepComplete(t, inst)
				require.Equal(t, StatusOK, inst.Terminate())
			},
			call: func(inst *Instance) Status { return inst.DoStep(0, 0.1, true) },
		},
		{
			name: "NewDiscreteStates in co-simulation",
			prepare: func(t *testing.T, inst *Instance) {
				toStepComplete(t, inst)
			},
			call: func(inst *Instance) Status {
				var info EventInfo
				return inst.NewDiscreteStates(&info)
			},
		},
		{
			name: "SetReal after Terminate",
			prepare: func(t *testing.T, inst *Instance) {
				toStepComplete(t, inst)
				require.Equal(t, StatusOK, inst.Terminate())
			},
			call: func(inst *Instance) Status { return inst.SetReal([]ValueRef{0}, []float64{1}) },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := mustInstantiate(t, newStubModel(), CoSimulation, Callbacks{Logger: discardLogger()}, false)
			tc.prepare(t, inst)

			st := tc.call(inst)

			assert.Equal(t, StatusError, st)
			assert.Equal(t, StateError, inst.State())
		})
	}
}

func TestFreeInstance_ReleasesInstance(t *testing.T) {
	// GIVEN a live instance
	inst := mustInstantiate(t, newStubModel(), CoSimulation, Callbacks{Logger: discardLogger()}, false)

	// WHEN the instance is freed
	inst.FreeInstance()

	// THEN it is back at the start/end state and further calls fail
	assert.Equal(t, StateStartAndEnd, inst.State())
	assert.Equal(t, StatusError, inst.EnterInitializationMode())
}

func TestFreeInstance_NilReceiverIsIgnored(t *testing.T) {
	var inst *Instance
	inst.FreeInstance() // must not panic
}
