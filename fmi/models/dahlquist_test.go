package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmisim/fmisim/fmi"
)

func TestDahlquist_DerivativeIsNegativeSquare(t *testing.T) {
	inst := newCSInstance(t, "dahlquist")

	assert.Equal(t, 1.0, getReal(t, inst, dqX))
	assert.Equal(t, -1.0, getReal(t, inst, dqDerX))
}

func TestDahlquist_FollowsClosedFormSolution(t *testing.T) {
	// GIVEN der(x) = -x*x with x(0) = 1, whose solution is 1/(1+t)
	inst := newCSInstance(t, "dahlquist")

	// WHEN three seconds are simulated in 10ms communication steps
	for k := 0; k < 300; k++ {
		require.Equal(t, fmi.StatusOK, inst.DoStep(float64(k)*0.01, 0.01, true))

		// THEN the trajectory tracks the closed form throughout
		tNow := float64(k+1) * 0.01
		assert.InDelta(t, 1/(1+tNow), getReal(t, inst, dqX), 1e-3)
	}
}

func TestDahlquist_MonotonicallyDecaysTowardZero(t *testing.T) {
	inst := newCSInstance(t, "dahlquist")

	prev := getReal(t, inst, dqX)
	for k := 0; k < 100; k++ {
		require.Equal(t, fmi.StatusOK, inst.DoStep(float64(k)*0.1, 0.1, true))
		x := getReal(t, inst, dqX)
		assert.Less(t, x, prev)
		assert.Positive(t, x)
		prev = x
	}
}
