package models

import "github.com/fmisim/fmisim/fmi"

// BouncingBall models a ball dropped onto a rigid surface:
//
//	der(h) = v
//	der(v) = -g
//	when h < 0 then v := -e * v
//
// with height h (start 1), velocity v (start 0), gravity g (start 9.81)
// and restitution e (start 0.7). The zero crossing of h is the single
// event indicator; on impact the velocity is reinitialized, and once the
// rebound speed drops below 1e-3 the ball is parked by clamping v and
// der(v) to zero.
type BouncingBall struct {
	// prevV caches the velocity at the start of an event iteration so the
	// impact reaction uses the pre-impact speed even after simultaneous
	// event iterations mutated v.
	prevV float64
}

// Value references. The derivative of a state VR k sits at k+1.
const (
	bbH fmi.ValueRef = iota
	bbDerH
	bbV
	bbDerV
	bbG
	bbE
)

// indicatorEps adds hysteresis to the height indicator and keeps it away
// from exactly zero after an impact reinitialization.
const indicatorEps = 1e-14

// restSpeed is the rebound speed below which the ball is parked.
const restSpeed = 1e-3

func (m *BouncingBall) Description() fmi.Description {
	return fmi.Description{
		Name: "bouncingball",
		GUID: "{8c4e810f-3df3-4a00-8276-176fa3c9f003}",
		Schema: fmi.Schema{
			fmi.Scalar(fmi.Real), // h
			fmi.Scalar(fmi.Real), // der(h)
			fmi.Scalar(fmi.Real), // v
			fmi.Scalar(fmi.Real), // der(v)
			fmi.Scalar(fmi.Real), // g
			fmi.Scalar(fmi.Real), // e
		},
		States:          []fmi.ValueRef{bbH, bbV},
		EventIndicators: 1,
	}
}

func (m *BouncingBall) SetStartValues(inst *fmi.Instance) {
	inst.R(bbH)[0] = 1
	inst.R(bbV)[0] = 0
	inst.R(bbG)[0] = 9.81
	inst.R(bbE)[0] = 0.7
}

func (m *BouncingBall) CalculateValues(inst *fmi.Instance) {
	if inst.State() == fmi.StateInitializationMode {
		inst.R(bbDerV)[0] = -inst.R(bbG)[0]
		inst.SetPositive(0, inst.R(bbH)[0] > 0)
	}
}

func (m *BouncingBall) Real(inst *fmi.Instance, vr fmi.ValueRef) []float64 {
	switch vr {
	case bbH:
		return inst.R(bbH)
	case bbDerH:
		// der(h) is v itself.
		return inst.R(bbV)
	case bbV:
		return inst.R(bbV)
	case bbDerV:
		return inst.R(bbDerV)
	case bbG:
		return inst.R(bbG)
	case bbE:
		return inst.R(bbE)
	}
	return nil
}

func (m *BouncingBall) EventIndicator(inst *fmi.Instance, z int) float64 {
	if z != 0 {
		return 0
	}
	if inst.Positive(0) {
		return inst.R(bbH)[0] + indicatorEps
	}
	return inst.R(bbH)[0] - indicatorEps
}

func (m *BouncingBall) EventUpdate(inst *fmi.Instance, info *fmi.EventInfo, timeEvent, newIteration bool) {
	if newIteration {
		m.prevV = inst.R(bbV)[0]
	}
	positive := inst.R(bbH)[0] > 0
	inst.SetPositive(0, positive)
	if !positive {
		reboundV := -inst.R(bbE)[0] * m.prevV
		if inst.R(bbV)[0] != reboundV {
			inst.R(bbV)[0] = reboundV
			info.ValuesOfContinuousStatesChanged = true
		}
		// Park the ball when it can no longer rebound meaningfully,
		// otherwise the Euler steps would tunnel it through the surface.
		if inst.R(bbV)[0] < restSpeed {
			inst.R(bbV)[0] = 0
			inst.R(bbDerV)[0] = 0
		}
	}
	info.NominalsOfContinuousStatesChanged = false
	info.TerminateSimulation = false
	info.NextEventTimeDefined = false
}
