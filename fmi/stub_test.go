package fmi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test fixtures shared by the engine tests: a scriptable model and a
// capturing logger.

const testGUID = "{123e4567-e89b-12d3-a456-426614174000}"

// stubModel lets each test script exactly the hooks it cares about; the
// rest default to no-ops.
type stubModel struct {
	desc Description

	calcCalls   int
	startValues func(inst *Instance)
	calculate   func(inst *Instance)
	real        func(inst *Instance, vr ValueRef) []float64
	indicator   func(inst *Instance, z int) float64
	update      func(inst *Instance, info *EventInfo, timeEvent, newIteration bool)
}

func (m *stubModel) Description() Description { return m.desc }

func (m *stubModel) SetStartValues(inst *Instance) {
	if m.startValues != nil {
		m.startValues(inst)
	}
}

func (m *stubModel) CalculateValues(inst *Instance) {
	m.calcCalls++
	if m.calculate != nil {
		m.calculate(inst)
	}
}

func (m *stubModel) Real(inst *Instance, vr ValueRef) []float64 {
	if m.real != nil {
		return m.real(inst, vr)
	}
	return nil
}

func (m *stubModel) EventIndicator(inst *Instance, z int) float64 {
	if m.indicator != nil {
		return m.indicator(inst, z)
	}
	return 0
}

func (m *stubModel) EventUpdate(inst *Instance, info *EventInfo, timeEvent, newIteration bool) {
	if m.update != nil {
		m.update(inst, info, timeEvent, newIteration)
	}
}

// newStubModel builds a model with one real state (VR 0, derivative VR 1),
// one of each remaining kind and one real array, enough surface for the
// access and stepping tests:
//
//	VR 0: Real scalar (state)
//	VR 1: Real scalar (its derivative)
//	VR 2: Integer scalar
//	VR 3: Boolean scalar
//	VR 4: String scalar
//	VR 5: Real array of length 3
func newStubModel() *stubModel {
	return &stubModel{
		desc: Description{
			Name: "stub",
			GUID: testGUID,
			Schema: Schema{
				Scalar(Real),
				Scalar(Real),
				Scalar(Integer),
				Scalar(Boolean),
				Scalar(String),
				Array(Real, 3),
			},
			States: []ValueRef{0},
		},
	}
}

// logRecord is one captured diagnostic message.
type logRecord struct {
	instance string
	status   Status
	category string
	message  string
}

type logCapture struct {
	records []logRecord
}

func (lc *logCapture) logger() Logger {
	return func(instanceName string, status Status, category string, message string) {
		lc.records = append(lc.records, logRecord{instanceName, status, category, message})
	}
}

func (lc *logCapture) byStatus(status Status) []logRecord {
	var out []logRecord
	for _, r := range lc.records {
		if r.status == status {
			out = append(out, r)
		}
	}
	return out
}

// mustInstantiate builds an instance of model or fails the test.
func mustInstantiate(t *testing.T, model Model, kind InstanceKind, cb Callbacks, loggingOn bool) *Instance {
	t.Helper()
	inst, err := Instantiate(model, "test-instance", model.Description().GUID, kind, cb, loggingOn)
	require.NoError(t, err)
	return inst
}

// toStepComplete drives a fresh co-simulation instance through the
// initialization sequence.
func toStepComplete(t *testing.T, inst *Instance) {
	t.Helper()
	require.Equal(t, StatusOK, inst.EnterInitializationMode())
	require.Equal(t, StatusOK, inst.ExitInitializationMode())
}

// discardLogger is for tests that do not inspect diagnostics.
func discardLogger() Logger {
	return func(string, Status, string, string) {}
}
