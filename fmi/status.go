package fmi

// Status is the result code returned by every protocol call.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	// StatusDiscard signals that the last step must be discarded; the model
	// requested termination and the host is expected to call Terminate.
	StatusDiscard
	StatusError
	StatusFatal
	// StatusPending belongs to the asynchronous co-simulation profile. This
	// engine is fully synchronous and never produces it, which is why
	// CancelStep always fails.
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "Warning"
	case StatusDiscard:
		return "Discard"
	case StatusError:
		return "Error"
	case StatusFatal:
		return "Fatal"
	case StatusPending:
		return "Pending"
	}
	return "Unknown"
}

// InstanceKind selects the driving mode fixed at instantiation.
type InstanceKind int

const (
	// ModelExchange: the host integrates; the engine exposes derivatives,
	// states and event indicators.
	ModelExchange InstanceKind = iota
	// CoSimulation: the engine integrates internally, one DoStep per
	// communication interval.
	CoSimulation
)

func (k InstanceKind) String() string {
	if k == ModelExchange {
		return "ModelExchange"
	}
	return "CoSimulation"
}

// StatusKind selects which piece of step status a GetStatus-family call asks for.
type StatusKind int

const (
	DoStepStatus StatusKind = iota
	PendingStatus
	LastSuccessfulTime
	TerminatedStatus
)

func (sk StatusKind) String() string {
	switch sk {
	case DoStepStatus:
		return "DoStepStatus"
	case PendingStatus:
		return "PendingStatus"
	case LastSuccessfulTime:
		return "LastSuccessfulTime"
	case TerminatedStatus:
		return "Terminated"
	}
	return "Unknown"
}

// Version is the protocol version implemented by this engine.
const Version = "3.0"

// TypesPlatform identifies the value type layout; "default" means the
// standard scalar types.
const TypesPlatform = "default"
