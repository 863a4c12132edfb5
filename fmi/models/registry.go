// Package models provides the demonstration components shipped with the
// engine, each implementing the fmi.Model capability interface:
//
//   - bouncingball: state events and state reinitialization on impact
//   - dahlquist: the classic scalar test equation
//   - lineartransform: array-valued variables, no continuous dynamics
//   - values: every variable kind plus recurring time events
//
// A Model value carries per-instance scratch state, so the registry hands
// out a fresh value per call; never share one across instances.
package models

import (
	"fmt"
	"sort"

	"github.com/fmisim/fmisim/fmi"
)

var registry = map[string]func() fmi.Model{
	"bouncingball":    func() fmi.Model { return &BouncingBall{} },
	"dahlquist":       func() fmi.Model { return &Dahlquist{} },
	"lineartransform": func() fmi.Model { return &LinearTransform{} },
	"values":          func() fmi.Model { return &Values{} },
}

// New returns a fresh instance of the named model.
func New(name string) (fmi.Model, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown model %q (have %v)", name, Names())
	}
	return factory(), nil
}

// Names lists the registered model names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
