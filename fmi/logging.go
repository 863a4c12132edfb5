package fmi

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Category indexes the diagnostic categories an instance can gate on.
type Category int

const (
	LogAll Category = iota
	LogError
	LogFmiCall
	LogEvent

	numCategories
)

// categoryNames are the wire names accepted by SetDebugLogging.
var categoryNames = [numCategories]string{"logAll", "logError", "logFmiCall", "logEvent"}

func (c Category) String() string { return categoryNames[c] }

// Logger is the host-supplied diagnostic sink. It receives messages that
// survived the instance's category filter.
type Logger func(instanceName string, status Status, category string, message string)

// Callbacks bundles everything the host supplies at instantiation.
// Logger is required; StepFinished is optional and, since DoStep is fully
// synchronous, only ever reports the final status of a completed step.
type Callbacks struct {
	Logger       Logger
	StepFinished func(status Status)
}

// LogrusLogger adapts the package-wide logrus logger into a host Logger.
// Error and Fatal statuses map to logrus error level, Warning to warn,
// everything else to info.
func LogrusLogger() Logger {
	return func(instanceName string, status Status, category string, message string) {
		entry := logrus.WithFields(logrus.Fields{
			"instance": instanceName,
			"category": category,
			"status":   status.String(),
		})
		switch status {
		case StatusError, StatusFatal:
			entry.Error(message)
		case StatusWarning, StatusDiscard:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
	}
}

// categoryLogged reports whether messages of the given category pass the
// filter. LogAll enabled passes everything.
func (inst *Instance) categoryLogged(cat Category) bool {
	return cat < numCategories && (inst.logCategories[cat] || inst.logCategories[LogAll])
}

// logf gates a diagnostic message before handing it to the host logger.
// Error and fatal severities always pass; other messages pass only when
// their category is enabled.
func (inst *Instance) logf(status Status, cat Category, format string, args ...any) {
	if status != StatusError && status != StatusFatal && !inst.categoryLogged(cat) {
		return
	}
	if inst.callbacks.Logger == nil {
		return
	}
	inst.callbacks.Logger(inst.name, status, categoryNames[cat], fmt.Sprintf(format, args...))
}

// SetDebugLogging reconfigures the category filter. With no categories
// named, every category takes the loggingOn value. Naming an unrecognized
// category produces a warning and changes nothing for that name.
func (inst *Instance) SetDebugLogging(loggingOn bool, categories []string) Status {
	if !inst.checkCallState(opSetDebugLogging) {
		return StatusError
	}
	inst.loggingOn = loggingOn
	inst.logf(StatusOK, LogFmiCall, "SetDebugLogging")

	if len(categories) == 0 {
		for i := range inst.logCategories {
			inst.logCategories[i] = loggingOn
		}
		return StatusOK
	}

	for _, name := range categories {
		found := false
		for i, known := range categoryNames {
			if known == name {
				inst.logCategories[i] = loggingOn
				found = true
				break
			}
		}
		if !found && inst.callbacks.Logger != nil {
			inst.callbacks.Logger(inst.name, StatusWarning, categoryNames[LogError],
				fmt.Sprintf("logging category '%s' is not supported by model", name))
		}
	}
	return StatusOK
}
