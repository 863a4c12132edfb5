package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenario_IsValid(t *testing.T) {
	sc := DefaultScenario()

	require.NoError(t, sc.Validate())
	assert.Equal(t, "bouncingball", sc.Model)
	assert.Equal(t, 3.0, sc.StopTime)
}

func TestLoadScenario_OverridesDefaults(t *testing.T) {
	// GIVEN a scenario file setting a few fields
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := []byte("model: dahlquist\nstop_time: 5\nlog_categories: [logEvent]\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	// WHEN it is loaded
	sc, err := LoadScenario(path)

	// THEN set fields override the defaults, unset fields keep them
	require.NoError(t, err)
	assert.Equal(t, "dahlquist", sc.Model)
	assert.Equal(t, 5.0, sc.StopTime)
	assert.Equal(t, []string{"logEvent"}, sc.LogCategories)
	assert.Equal(t, "instance1", sc.InstanceName)
	assert.Equal(t, 0.01, sc.StepSize)
}

func TestLoadScenario_RejectsInvalidFile(t *testing.T) {
	// GIVEN a scenario with a non-positive step size
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step_size: -1\n"), 0o644))

	// WHEN it is loaded THEN validation fails
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step_size")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate_RejectsBadRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(sc *Scenario)
	}{
		{"empty model", func(sc *Scenario) { sc.Model = "" }},
		{"empty instance name", func(sc *Scenario) { sc.InstanceName = "" }},
		{"zero step size", func(sc *Scenario) { sc.StepSize = 0 }},
		{"stop before start", func(sc *Scenario) { sc.StartTime = 4; sc.StopTime = 3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := DefaultScenario()
			tc.mutate(sc)

			assert.Error(t, sc.Validate())
		})
	}
}
