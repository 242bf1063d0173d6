package ports

// RawRecord is one tokenized input row, header excluded
type RawRecord struct {
	Line   int
	Fields []string
}

// RecordSourcePort streams tokenized records from an input source.
// Each fetches the next record until ok is false.
type RecordSourcePort interface {
	Next() (rec RawRecord, ok bool, err error)
	Close() error
}
