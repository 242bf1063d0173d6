package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific identifier types
type (
	// RunID identifies one batch analysis run.
	RunID ID
	// SpeciesKey is the grouping key for cohorts and results.
	SpeciesKey string
)

func (id RunID) String() string { return ID(id).String() }

func (k SpeciesKey) String() string { return string(k) }

// NewRunID creates a fresh run identifier
func NewRunID() RunID {
	return RunID(NewID())
}

// ParseSpeciesKey parses a raw species field into a SpeciesKey
func ParseSpeciesKey(s string) (SpeciesKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("species key cannot be empty")
	}
	return SpeciesKey(s), nil
}
