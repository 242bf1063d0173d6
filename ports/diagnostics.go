package ports

import "gossdi/domain/core"

// DiagnosticKind categorizes recoverable events the engine surfaces
type DiagnosticKind string

const (
	DiagMalformedRecord     DiagnosticKind = "malformed_record"
	DiagIncompleteSpecies   DiagnosticKind = "incomplete_species"
	DiagDegenerateStatistic DiagnosticKind = "degenerate_statistic"
	DiagPermutationSummary  DiagnosticKind = "permutation_summary"
	DiagSampleCensus        DiagnosticKind = "sample_census"
)

// Diagnostic is a single recoverable event. No skip or exclusion path is
// silent: every one of them produces exactly one Diagnostic.
type Diagnostic struct {
	Kind    DiagnosticKind
	Species core.SpeciesKey
	Line    int
	Message string
	Err     error
}

// DiagnosticPort receives recoverable events from the engine. The engine
// performs no console or file output itself.
type DiagnosticPort interface {
	Record(d Diagnostic)
}
