package ports

import "gossdi/domain/morph"

// ResultSinkPort renders the per-species results table
type ResultSinkPort interface {
	Write(results morph.ResultSet) error
}
