package models

import "github.com/fmisim/fmisim/fmi"

// Dahlquist is the scalar test equation
//
//	der(x) = -x * x, x(0) = 1
//
// with a rate parameter k carried for protocol completeness. No event
// indicators, no time events: pure continuous decay.
type Dahlquist struct{}

const (
	dqX fmi.ValueRef = iota
	dqDerX
	dqK
)

func (m *Dahlquist) Description() fmi.Description {
	return fmi.Description{
		Name: "dahlquist",
		GUID: "{8c4e810f-3df3-4a00-8276-176fa3c9f000}",
		Schema: fmi.Schema{
			fmi.Scalar(fmi.Real), // x
			fmi.Scalar(fmi.Real), // der(x)
			fmi.Scalar(fmi.Real), // k
		},
		States:          []fmi.ValueRef{dqX},
		EventIndicators: 0,
	}
}

func (m *Dahlquist) SetStartValues(inst *fmi.Instance) {
	inst.R(dqX)[0] = 1
	inst.R(dqK)[0] = 1
}

func (m *Dahlquist) CalculateValues(inst *fmi.Instance) {}

func (m *Dahlquist) Real(inst *fmi.Instance, vr fmi.ValueRef) []float64 {
	switch vr {
	case dqX:
		return inst.R(dqX)
	case dqDerX:
		inst.R(dqDerX)[0] = -inst.R(dqX)[0] * inst.R(dqX)[0]
		return inst.R(dqDerX)
	case dqK:
		return inst.R(dqK)
	}
	return nil
}

func (m *Dahlquist) EventIndicator(inst *fmi.Instance, z int) float64 { return 0 }

func (m *Dahlquist) EventUpdate(inst *fmi.Instance, info *fmi.EventInfo, timeEvent, newIteration bool) {
}
