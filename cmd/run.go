package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fmisim/fmisim/fmi"
	"github.com/fmisim/fmisim/fmi/models"
)

var (
	scenarioFile string  // yaml scenario path; flags override its fields
	modelName    string  // registered model name
	instanceName string  // instance name for diagnostics
	startTime    float64 // experiment start time
	stopTime     float64 // simulation end time
	stepSize     float64 // communication step size
	logLevel     string  // logrus verbosity
	loggingOn    bool    // initial value of every FMI log category
	outputFile   string  // CSV trajectory path
)

// runCmd drives one co-simulation through the public protocol calls:
// instantiate, setup, initialization, then DoStep until the stop time or
// until the model requests termination.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a co-simulation of a registered model",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc := DefaultScenario()
		if scenarioFile != "" {
			sc, err = LoadScenario(scenarioFile)
			if err != nil {
				logrus.Fatalf("unable to read scenario: %v", err)
			}
		}
		if cmd.Flags().Changed("model") {
			sc.Model = modelName
		}
		if cmd.Flags().Changed("instance-name") {
			sc.InstanceName = instanceName
		}
		if cmd.Flags().Changed("start-time") {
			sc.StartTime = startTime
		}
		if cmd.Flags().Changed("stop-time") {
			sc.StopTime = stopTime
		}
		if cmd.Flags().Changed("step-size") {
			sc.StepSize = stepSize
		}
		if cmd.Flags().Changed("logging-on") {
			sc.LoggingOn = loggingOn
		}
		if cmd.Flags().Changed("output") {
			sc.Output = outputFile
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}

		if err := simulate(sc); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// simulate performs the canonical co-simulation call sequence for sc.
func simulate(sc *Scenario) error {
	model, err := models.New(sc.Model)
	if err != nil {
		return err
	}
	desc := model.Description()

	inst, err := fmi.Instantiate(model, sc.InstanceName, desc.GUID, fmi.CoSimulation,
		fmi.Callbacks{Logger: fmi.LogrusLogger()}, sc.LoggingOn)
	if err != nil {
		return err
	}
	defer inst.FreeInstance()

	if len(sc.LogCategories) > 0 {
		inst.SetDebugLogging(sc.LoggingOn, sc.LogCategories)
	}

	if st := inst.SetupExperiment(false, 0, sc.StartTime, true, sc.StopTime); st != fmi.StatusOK {
		return fmt.Errorf("SetupExperiment: %s", st)
	}
	if st := inst.EnterInitializationMode(); st != fmi.StatusOK {
		return fmt.Errorf("EnterInitializationMode: %s", st)
	}
	if st := inst.ExitInitializationMode(); st != fmi.StatusOK {
		return fmt.Errorf("ExitInitializationMode: %s", st)
	}

	var rec *recorder
	if sc.Output != "" {
		rec, err = newRecorder(sc.Output, desc)
		if err != nil {
			return err
		}
		defer rec.close()
	}
	if err := rec.sample(inst, sc.StartTime); err != nil {
		return err
	}

	// Guard against float drift leaving a sliver step at the end.
	const stepEpsilon = 1e-9

	steps := 0
	for t := sc.StartTime; t < sc.StopTime-stepEpsilon; t += sc.StepSize {
		switch st := inst.DoStep(t, sc.StepSize, true); st {
		case fmi.StatusOK:
		case fmi.StatusDiscard:
			logrus.Warnf("model requested termination at t=%g", inst.Time())
			inst.Terminate()
			return rec.flushErr()
		default:
			return fmt.Errorf("DoStep at t=%g: %s", t, st)
		}
		steps++
		if err := rec.sample(inst, t+sc.StepSize); err != nil {
			return err
		}
	}

	logrus.Infof("finished %d steps, t=%g, state=%s", steps, inst.Time(), inst.State())
	if st := inst.Terminate(); st != fmi.StatusOK {
		return fmt.Errorf("Terminate: %s", st)
	}
	return rec.flushErr()
}

// recorder appends one CSV row per communication point with every real
// variable expanded across its array elements.
type recorder struct {
	file   *os.File
	writer *csv.Writer
	vrs    []fmi.ValueRef
	buf    []float64
}

func newRecorder(path string, desc fmi.Description) (*recorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output %s: %w", path, err)
	}

	header := []string{"time"}
	rec := &recorder{file: file, writer: csv.NewWriter(file)}
	total := 0
	for vr, spec := range desc.Schema {
		if spec.Kind != fmi.Real {
			continue
		}
		rec.vrs = append(rec.vrs, fmi.ValueRef(vr))
		total += spec.Len
		if spec.Len == 1 {
			header = append(header, fmt.Sprintf("r%d", vr))
			continue
		}
		for j := 0; j < spec.Len; j++ {
			header = append(header, fmt.Sprintf("r%d[%d]", vr, j))
		}
	}
	rec.buf = make([]float64, total)

	if err := rec.writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing header to %s: %w", path, err)
	}
	return rec, nil
}

// sample appends one row. A nil recorder ignores the call, so the driver
// loop does not special-case running without an output file.
func (rec *recorder) sample(inst *fmi.Instance, t float64) error {
	if rec == nil {
		return nil
	}
	if st := inst.GetReal(rec.vrs, rec.buf); st != fmi.StatusOK {
		return fmt.Errorf("GetReal for output row at t=%g: %s", t, st)
	}
	row := make([]string, 0, 1+len(rec.buf))
	row = append(row, strconv.FormatFloat(t, 'g', -1, 64))
	for _, v := range rec.buf {
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return rec.writer.Write(row)
}

func (rec *recorder) flushErr() error {
	if rec == nil {
		return nil
	}
	rec.writer.Flush()
	return rec.writer.Error()
}

func (rec *recorder) close() {
	if rec == nil {
		return
	}
	rec.writer.Flush()
	if err := rec.file.Close(); err != nil {
		logrus.Errorf("closing output file: %v", err)
	}
}

func init() {
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (flags override its fields)")
	runCmd.Flags().StringVar(&modelName, "model", "bouncingball", "Registered model name")
	runCmd.Flags().StringVar(&instanceName, "instance-name", "instance1", "Instance name used in diagnostics")
	runCmd.Flags().Float64Var(&startTime, "start-time", 0, "Experiment start time")
	runCmd.Flags().Float64Var(&stopTime, "stop-time", 3, "Simulation end time")
	runCmd.Flags().Float64Var(&stepSize, "step-size", 0.01, "Communication step size")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&loggingOn, "logging-on", false, "Enable FMI diagnostic categories")
	runCmd.Flags().StringVar(&outputFile, "output", "", "CSV trajectory output path")
}
