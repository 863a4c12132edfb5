package models

import "github.com/fmisim/fmisim/fmi"

// Values exercises every variable kind and recurring time events. One
// continuous state x decays with der(x) = -x. A time event fires every
// 1.0 time units starting one unit after initialization; each firing
// increments the integer output, toggles the boolean output and advances
// a twelve-entry month cycle on the string output. The twelfth firing
// requests termination instead of a thirteenth month.
type Values struct{}

const (
	valX fmi.ValueRef = iota
	valDerX
	valIntIn
	valIntOut
	valBoolIn
	valBoolOut
	valStringIn
	valStringOut
)

var months = []string{
	"jan", "feb", "march", "april", "may", "june", "july",
	"august", "sept", "october", "november", "december",
}

func (m *Values) Description() fmi.Description {
	return fmi.Description{
		Name: "values",
		GUID: "{8c4e810f-3df3-4a00-8276-176fa3c9f004}",
		Schema: fmi.Schema{
			fmi.Scalar(fmi.Real),    // x
			fmi.Scalar(fmi.Real),    // der(x)
			fmi.Scalar(fmi.Integer), // int in
			fmi.Scalar(fmi.Integer), // int out
			fmi.Scalar(fmi.Boolean), // bool in
			fmi.Scalar(fmi.Boolean), // bool out
			fmi.Scalar(fmi.String),  // string in
			fmi.Scalar(fmi.String),  // string out
		},
		States:          []fmi.ValueRef{valX},
		EventIndicators: 0,
	}
}

func (m *Values) SetStartValues(inst *fmi.Instance) {
	inst.R(valX)[0] = 1
	inst.I(valIntIn)[0] = 2
	inst.I(valIntOut)[0] = 0
	inst.B(valBoolIn)[0] = true
	inst.B(valBoolOut)[0] = false
	inst.S(valStringIn)[0] = "QTronic"
	inst.S(valStringOut)[0] = months[0]
}

func (m *Values) CalculateValues(inst *fmi.Instance) {
	if inst.State() == fmi.StateInitializationMode {
		inst.ScheduleEvent(1 + inst.Time())
	}
}

func (m *Values) Real(inst *fmi.Instance, vr fmi.ValueRef) []float64 {
	switch vr {
	case valX:
		return inst.R(valX)
	case valDerX:
		inst.R(valDerX)[0] = -inst.R(valX)[0]
		return inst.R(valDerX)
	}
	return nil
}

func (m *Values) EventIndicator(inst *fmi.Instance, z int) float64 { return 0 }

func (m *Values) EventUpdate(inst *fmi.Instance, info *fmi.EventInfo, timeEvent, newIteration bool) {
	if !timeEvent {
		return
	}
	info.NextEventTimeDefined = true
	info.NextEventTime = 1 + inst.Time()
	inst.I(valIntOut)[0]++
	inst.B(valBoolOut)[0] = !inst.B(valBoolOut)[0]
	if n := inst.I(valIntOut)[0]; n < 12 {
		inst.S(valStringOut)[0] = months[n]
	} else {
		info.TerminateSimulation = true
	}
}
