package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Ingestion errors
	ErrMalformedRecord  = errors.New("malformed record")
	ErrUnknownSexToken  = fmt.Errorf("%w: unrecognized sex token", ErrMalformedRecord)
	ErrUnparseableSize  = fmt.Errorf("%w: unparseable size", ErrMalformedRecord)
	ErrTooFewFields     = fmt.Errorf("%w: too few fields", ErrMalformedRecord)
	ErrInvalidInput     = errors.New("invalid input source")
	ErrInvalidOutput    = errors.New("invalid output target")
	ErrUnsupportedInput = errors.New("unsupported input format")

	// Analysis errors
	ErrIncompleteSpecies   = errors.New("species missing data for one sex")
	ErrDegenerateStatistic = errors.New("degenerate statistic")
	ErrNonPositiveSize     = errors.New("size values must be strictly positive")
	ErrInsufficientData    = errors.New("insufficient data for analysis")
)

// Error constructors with context

func NewMalformedRecordError(line int, reason error) error {
	return fmt.Errorf("line %d: %w", line, reason)
}

func NewIncompleteSpeciesError(species string) error {
	return fmt.Errorf("%w: %s", ErrIncompleteSpecies, species)
}

func NewInvalidInputError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
}

func NewInvalidOutputError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidOutput, path, err)
}

// Error checking helpers

func IsMalformedRecordError(err error) bool {
	return errors.Is(err, ErrMalformedRecord)
}

func IsFatalInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidOutput) ||
		errors.Is(err, ErrUnsupportedInput)
}
