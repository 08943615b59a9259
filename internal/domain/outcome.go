package domain

// CopyFailure records a single file that could not be copied.
type CopyFailure struct {
	Path    string
	Message string
}

// CopyOutcome aggregates the result of one copy operation.
type CopyOutcome struct {
	Succeeded int
	Failures  []CopyFailure
}

func (o CopyOutcome) HasFailures() bool {
	return len(o.Failures) > 0
}
