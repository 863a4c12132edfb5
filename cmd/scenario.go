package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes one co-simulation run of a registered model.
type Scenario struct {
	Model         string   `yaml:"model"`          // registered model name
	InstanceName  string   `yaml:"instance_name"`  // name reported in diagnostics
	StartTime     float64  `yaml:"start_time"`     // experiment start time
	StopTime      float64  `yaml:"stop_time"`      // simulation end time
	StepSize      float64  `yaml:"step_size"`      // communication step size (must be > 0)
	LoggingOn     bool     `yaml:"logging_on"`     // initial value of every log category
	LogCategories []string `yaml:"log_categories"` // explicit categories; empty = all
	Output        string   `yaml:"output"`         // CSV trajectory path; empty = no file
}

// DefaultScenario is the fallback configuration: three seconds of the
// bouncing ball at a 10ms communication step.
func DefaultScenario() *Scenario {
	return &Scenario{
		Model:        "bouncingball",
		InstanceName: "instance1",
		StartTime:    0,
		StopTime:     3,
		StepSize:     0.01,
	}
}

// LoadScenario reads a yaml scenario file on top of the defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Validate rejects configurations the engine would refuse anyway, with a
// friendlier message.
func (sc *Scenario) Validate() error {
	if sc.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if sc.InstanceName == "" {
		return fmt.Errorf("instance_name must not be empty")
	}
	if sc.StepSize <= 0 {
		return fmt.Errorf("step_size must be > 0, got %g", sc.StepSize)
	}
	if sc.StopTime <= sc.StartTime {
		return fmt.Errorf("stop_time %g must be after start_time %g", sc.StopTime, sc.StartTime)
	}
	return nil
}
