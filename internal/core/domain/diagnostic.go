package domain

// Severity classifies a diagnostic.
type Severity uint8

const (
	// SeverityError marks a diagnostic that should fail a strict build.
	SeverityError Severity = iota
	// SeverityWarning marks a non-fatal diagnostic.
	SeverityWarning
	// SeverityInfo marks informational output from the compiler.
	SeverityInfo
)

// Diagnostic is a single compiler-reported finding for a file. Message
// formatting is left to the host; this is the raw record as reported.
type Diagnostic struct {
	Path     string   `msgpack:"path"`
	Line     int      `msgpack:"line"`
	Column   int      `msgpack:"column"`
	Code     string   `msgpack:"code"`
	Message  string   `msgpack:"message"`
	Severity Severity `msgpack:"severity"`
}

// HasErrors reports whether any diagnostic in the list is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
