package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// AnalysisStatus represents the terminal state of an analysis run.
	AnalysisStatus string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All analysis statuses. StatusNoCommits and StatusNoChanges are normal
// outcomes of an empty window, distinguished from failure.
const (
	StatusOK        AnalysisStatus = "ok"
	StatusNoCommits AnalysisStatus = "no-commits"
	StatusNoChanges AnalysisStatus = "no-changes"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}
