package models

import "github.com/fmisim/fmisim/fmi"

// LinearTransform demonstrates array-valued variables: a 3-vector input u,
// a 3x3 matrix T stored row-major, a 3-vector output y, plus paired
// integer and boolean arrays that are copied input to output on
// recomputation. The model has no continuous states and no events.
type LinearTransform struct{}

const (
	ltU fmi.ValueRef = iota
	ltT
	ltY
	ltIntIn
	ltIntOut
	ltBoolIn
	ltBoolOut
)

func (m *LinearTransform) Description() fmi.Description {
	return fmi.Description{
		Name: "lineartransform",
		GUID: "{8c4e810f-3df3-4a00-8276-176fa3c9f001}",
		Schema: fmi.Schema{
			fmi.Array(fmi.Real, 3),    // u
			fmi.Array(fmi.Real, 9),    // T
			fmi.Array(fmi.Real, 3),    // y
			fmi.Array(fmi.Integer, 2), // int in
			fmi.Array(fmi.Integer, 2), // int out
			fmi.Array(fmi.Boolean, 2), // bool in
			fmi.Array(fmi.Boolean, 2), // bool out
		},
	}
}

func (m *LinearTransform) SetStartValues(inst *fmi.Instance) {
	copy(inst.R(ltU), []float64{-0.1, -0.2, -0.3})
	copy(inst.R(ltT), []float64{
		0, 0, -1,
		0, -1, 0,
		-1, 0, 0,
	})
	copy(inst.R(ltY), []float64{0.1, 0.2, 0.3})

	copy(inst.I(ltIntIn), []int32{-1, 1})
	copy(inst.I(ltIntOut), []int32{-1, 1})

	copy(inst.B(ltBoolIn), []bool{false, true})
	copy(inst.B(ltBoolOut), []bool{false, true})
}

func (m *LinearTransform) CalculateValues(inst *fmi.Instance) {
	copy(inst.I(ltIntOut), inst.I(ltIntIn))
	copy(inst.B(ltBoolOut), inst.B(ltBoolIn))
}

func (m *LinearTransform) Real(inst *fmi.Instance, vr fmi.ValueRef) []float64 {
	switch vr {
	case ltU:
		return inst.R(ltU)
	case ltT:
		return inst.R(ltT)
	case ltY:
		return inst.R(ltY)
	}
	return nil
}

func (m *LinearTransform) EventIndicator(inst *fmi.Instance, z int) float64 { return 0 }

func (m *LinearTransform) EventUpdate(inst *fmi.Instance, info *fmi.EventInfo, timeEvent, newIteration bool) {
}
