package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmisim/fmisim/fmi"
)

func quietLogger() fmi.Logger {
	return func(string, fmi.Status, string, string) {}
}

// newCSInstance builds a co-simulation instance of the named model, driven
// through initialization and ready for DoStep.
func newCSInstance(t *testing.T, name string) *fmi.Instance {
	t.Helper()
	model, err := New(name)
	require.NoError(t, err)

	inst, err := fmi.Instantiate(model, name+"-test", model.Description().GUID,
		fmi.CoSimulation, fmi.Callbacks{Logger: quietLogger()}, false)
	require.NoError(t, err)

	require.Equal(t, fmi.StatusOK, inst.SetupExperiment(false, 0, 0, false, 0))
	require.Equal(t, fmi.StatusOK, inst.EnterInitializationMode())
	require.Equal(t, fmi.StatusOK, inst.ExitInitializationMode())
	return inst
}

// getReal reads one scalar real variable or fails the test.
func getReal(t *testing.T, inst *fmi.Instance, vr fmi.ValueRef) float64 {
	t.Helper()
	out := make([]float64, 1)
	require.Equal(t, fmi.StatusOK, inst.GetReal([]fmi.ValueRef{vr}, out))
	return out[0]
}
