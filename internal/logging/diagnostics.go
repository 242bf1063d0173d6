package logging

import "gossdi/ports"

// DiagnosticLogger adapts the leveled logger to ports.DiagnosticPort
type DiagnosticLogger struct {
	logger *Logger
}

// NewDiagnosticLogger creates a logger-backed diagnostic sink
func NewDiagnosticLogger(logger *Logger) *DiagnosticLogger {
	return &DiagnosticLogger{logger: logger}
}

// Record routes each diagnostic kind to the matching log level. Skips and
// sample censuses are debug noise; exclusions warrant an error line the
// way unusable species always have.
func (d *DiagnosticLogger) Record(diag ports.Diagnostic) {
	switch diag.Kind {
	case ports.DiagMalformedRecord, ports.DiagSampleCensus:
		d.logger.Debug("%s: %s", diag.Kind, d.describe(diag))
	case ports.DiagIncompleteSpecies:
		d.logger.Error("%s: %s", diag.Kind, d.describe(diag))
	case ports.DiagDegenerateStatistic:
		d.logger.Warn("%s: %s", diag.Kind, d.describe(diag))
	default:
		d.logger.Info("%s: %s", diag.Kind, d.describe(diag))
	}
}

func (d *DiagnosticLogger) describe(diag ports.Diagnostic) string {
	msg := diag.Message
	if diag.Species != "" {
		msg = "species " + diag.Species.String() + ": " + msg
	}
	if diag.Err != nil {
		msg += " (" + diag.Err.Error() + ")"
	}
	return msg
}
